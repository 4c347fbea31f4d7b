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

import "dirpx.dev/kerrors/code"

// CodedError is an error classified by a kernel error code.
//
// Implementations must return a code that passed code.FromRaw. Adapters
// treat an invalid code as a protocol violation.
type CodedError interface {
	error

	// ErrorCode returns the kernel error code of the error.
	ErrorCode() code.ErrorCode
}

// DetailedError exposes zero or more structured details, e.g. the syscall
// operation or driver-specific arguments that failed.
//
// The returned slice must not be modified by the caller. Returning nil is
// allowed and means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
