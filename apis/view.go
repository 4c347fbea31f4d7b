/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error. It is
// the shape that is safe to expose over the wire or to log.
type ErrorView struct {
	// Code is the raw protocol value.
	Code uint32 `json:"code"`

	// Name is the rendering of Code.
	Name string `json:"name"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`

	// Details is an optional list of additional facts about the error.
	Details []Detail `json:"details,omitempty"`
}
