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

// Detail is a single key/value fact attached to an error. Values are kept
// as strings so details survive JSON, proto and log round-trips unchanged.
type Detail struct {
	// Key names the fact, e.g. "op", "driver", "raw".
	Key string `json:"key"`

	// Value is the rendered value.
	Value string `json:"value"`
}
