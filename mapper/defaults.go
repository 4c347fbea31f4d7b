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

package mapper

import (
	"net/http"

	"dirpx.dev/kerrors/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the built-in HTTP mappings for the named codes.
// Callers override them at the boundary where HTTP is actually produced.
var defaultHTTP = map[code.ErrorCode]int{
	// 5xx: the kernel or a device could not serve the request.
	code.Fail:      http.StatusInternalServerError,
	code.Busy:      http.StatusServiceUnavailable, // Retry later.
	code.Off:       http.StatusServiceUnavailable, // Component powered down.
	code.NoMem:     http.StatusInsufficientStorage,
	code.NoSupport: http.StatusNotImplemented,
	code.NoAck:     http.StatusGatewayTimeout, // Peer never acknowledged.
	code.BadRVal:   http.StatusInternalServerError,

	// 4xx: the request itself cannot succeed as sent.
	code.Already:     http.StatusConflict,
	code.Reserve:     http.StatusConflict, // Needs a reservation first.
	code.Invalid:     http.StatusBadRequest,
	code.Size:        http.StatusRequestEntityTooLarge,
	code.Cancel:      http.StatusRequestTimeout,
	code.NoDevice:    http.StatusNotFound,
	code.Uninstalled: http.StatusNotFound,
}

// defaultGRPC defines the built-in gRPC mappings for the named codes.
var defaultGRPC = map[code.ErrorCode]codes.Code{
	code.Fail:        codes.Internal,
	code.Busy:        codes.Unavailable,
	code.Already:     codes.AlreadyExists,
	code.Off:         codes.Unavailable,
	code.Reserve:     codes.FailedPrecondition,
	code.Invalid:     codes.InvalidArgument,
	code.Size:        codes.OutOfRange,
	code.Cancel:      codes.Canceled,
	code.NoMem:       codes.ResourceExhausted,
	code.NoSupport:   codes.Unimplemented,
	code.NoDevice:    codes.NotFound,
	code.Uninstalled: codes.NotFound,
	code.NoAck:       codes.DeadlineExceeded,
	code.BadRVal:     codes.Internal, // Userspace misuse, never a kernel answer.
}
