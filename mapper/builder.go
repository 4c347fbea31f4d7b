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

type rangeRule struct {
	// lo and hi bound the closed range of raw codes the rule covers.
	lo, hi uint32
	// val is the numeric transport status to apply when the range matches.
	// For gRPC we store ints in the builder and convert to codes.Code later.
	val int
}

type builder struct {
	// httpDefaults holds per-code HTTP defaults seeded from the library table.
	httpDefaults map[code.ErrorCode]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted in New().
	grpcDefaults map[code.ErrorCode]int

	// httpOverride holds exact per-code HTTP overrides (higher than defaults).
	httpOverride map[code.ErrorCode]int
	// grpcOverride holds exact per-code gRPC overrides as ints.
	grpcOverride map[code.ErrorCode]int

	// httpRanges and grpcRanges are compiled into range sets in New().
	httpRanges []rangeRule
	grpcRanges []rangeRule

	// global fallbacks used when nothing else matched.
	fallbackHTTP int
	fallbackGRPC int
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.ErrorCode]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.ErrorCode]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[code.ErrorCode]int),
		grpcOverride: make(map[code.ErrorCode]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: int(codes.Unknown),
	}
}
