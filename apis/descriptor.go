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

// ErrorDescriptor is a flat, transport-friendly description of a resolved
// error: the code in both its numeric and rendered forms, plus the
// concrete transport statuses chosen for it.
//
// It is meant for structured logging and message bus propagation.
type ErrorDescriptor struct {
	// Code is the raw protocol value, identical to the kernel's.
	Code uint32 `json:"code"`

	// Name is the rendering of the code: a mnemonic or "code N".
	Name string `json:"name"`

	// Op is the operation that failed, if known.
	Op string `json:"op,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-friendly message carried by the error.
	Message string `json:"message,omitempty"`
}
