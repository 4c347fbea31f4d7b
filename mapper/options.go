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
	"dirpx.dev/kerrors/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for the given
// code.
func WithHTTPDefault(c code.ErrorCode, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for the given
// code.
func WithGRPCDefault(c code.ErrorCode, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over everything else.
func WithHTTPOverride(c code.ErrorCode, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// Overrides take precedence over everything else.
func WithGRPCOverride(c code.ErrorCode, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPRange maps every code in [lo, hi] without an override or default
// to the given HTTP status. Ranges must not overlap.
func WithHTTPRange(lo, hi uint32, http int) Option {
	return func(b *builder) { b.httpRanges = append(b.httpRanges, rangeRule{lo, hi, http}) }
}

// WithGRPCRange maps every code in [lo, hi] without an override or default
// to the given gRPC status. Ranges must not overlap.
func WithGRPCRange(lo, hi uint32, grpc int) Option {
	return func(b *builder) { b.grpcRanges = append(b.grpcRanges, rangeRule{lo, hi, grpc}) }
}

// WithHTTPFallback replaces the HTTP status used when no rule matches.
func WithHTTPFallback(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}

// WithGRPCFallback replaces the gRPC status used when no rule matches.
func WithGRPCFallback(grpc int) Option {
	return func(b *builder) { b.fallbackGRPC = grpc }
}
