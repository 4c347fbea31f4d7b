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
	"fmt"

	"dirpx.dev/kerrors/code"
	"dirpx.dev/kerrors/mapper/internal/rangeset"
	"google.golang.org/grpc/codes"
)

// maxGRPCCode is the largest canonical gRPC status code.
const maxGRPCCode = int(codes.Unauthenticated)

// validateBuilder checks every user-reachable value before freezing.
func validateBuilder(b *builder) error {
	for c, v := range b.httpDefaults {
		if err := checkHTTPRule(c, v); err != nil {
			return err
		}
	}
	for c, v := range b.httpOverride {
		if err := checkHTTPRule(c, v); err != nil {
			return err
		}
	}
	for c, v := range b.grpcDefaults {
		if err := checkGRPCRule(c, v); err != nil {
			return err
		}
	}
	for c, v := range b.grpcOverride {
		if err := checkGRPCRule(c, v); err != nil {
			return err
		}
	}
	for _, r := range b.httpRanges {
		if err := checkRange(r); err != nil {
			return err
		}
		if !validHTTP(r.val) {
			return fmt.Errorf("%w: HTTP status %d for range %d..%d", ErrInvalidRule, r.val, r.lo, r.hi)
		}
	}
	for _, r := range b.grpcRanges {
		if err := checkRange(r); err != nil {
			return err
		}
		if !validGRPC(r.val) {
			return fmt.Errorf("%w: gRPC code %d for range %d..%d", ErrInvalidRule, r.val, r.lo, r.hi)
		}
	}
	if !validHTTP(b.fallbackHTTP) {
		return fmt.Errorf("%w: HTTP fallback %d", ErrInvalidRule, b.fallbackHTTP)
	}
	if !validGRPC(b.fallbackGRPC) {
		return fmt.Errorf("%w: gRPC fallback %d", ErrInvalidRule, b.fallbackGRPC)
	}
	return nil
}

func checkHTTPRule(c code.ErrorCode, v int) error {
	if !c.Valid() {
		return fmt.Errorf("%w: code %d is outside %d..%d", ErrInvalidRule, c.Raw(), code.MinCode, code.MaxCode)
	}
	if !validHTTP(v) {
		return fmt.Errorf("%w: HTTP status %d for %s", ErrInvalidRule, v, c)
	}
	return nil
}

func checkGRPCRule(c code.ErrorCode, v int) error {
	if !c.Valid() {
		return fmt.Errorf("%w: code %d is outside %d..%d", ErrInvalidRule, c.Raw(), code.MinCode, code.MaxCode)
	}
	if !validGRPC(v) {
		return fmt.Errorf("%w: gRPC code %d for %s", ErrInvalidRule, v, c)
	}
	return nil
}

func checkRange(r rangeRule) error {
	if r.lo > r.hi || r.lo < code.MinCode || r.hi > code.MaxCode {
		return fmt.Errorf("%w: range %d..%d must lie within %d..%d", ErrInvalidRule, r.lo, r.hi, code.MinCode, code.MaxCode)
	}
	return nil
}

func validHTTP(v int) bool { return v >= 100 && v <= 599 }

func validGRPC(v int) bool { return v >= 0 && v <= maxGRPCCode }

// buildRangeSet compiles range rules into a set, converting builder ints
// into the transport's value type.
func buildRangeSet[V any](rules []rangeRule, conv func(int) V) (*rangeset.Set[V], error) {
	s := rangeset.New[V]()
	for _, r := range rules {
		if err := s.Insert(r.lo, r.hi, conv(r.val)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// freezeHTTP makes an immutable copy of an HTTP map. Empty maps become
// nil to keep lookups allocation-free and nil-safe.
func freezeHTTP(src map[code.ErrorCode]int) map[code.ErrorCode]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.ErrorCode]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC map, converting builder-style
// int values into typed gRPC codes.
func freezeGRPC(src map[code.ErrorCode]int) map[code.ErrorCode]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.ErrorCode]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
