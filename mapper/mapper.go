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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/code"
	"dirpx.dev/kerrors/mapper/internal/rangeset"
	"google.golang.org/grpc/codes"
)

var (
	// ErrInvalidRule is returned by New when an option names an invalid
	// code or range, or a status outside the transport's value space.
	ErrInvalidRule = errors.New("mapper: invalid rule")
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, ranges, fallbacks).
//  3. Validate every code, range and status.
//  4. Build the HTTP and gRPC range sets.
//  5. Freeze all maps into fresh copies.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults; keep gRPC values as int until freezing.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	if err := validateBuilder(b); err != nil {
		return nil, err
	}

	// (4) Range sets.
	httpRanges, err := buildRangeSet(b.httpRanges, func(v int) int { return v })
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP range: %w", err)
	}
	grpcRanges, err := buildRangeSet(b.grpcRanges, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC range: %w", err)
	}

	// (5) Freeze.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpRanges:   httpRanges,
		grpcRanges:   grpcRanges,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}

	return m, nil
}

// mapper combines per-code overrides, per-code defaults and range rules.
// Lookups are O(1) for the maps and O(log n) for ranges, and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given code.
	httpDefault map[code.ErrorCode]int

	// grpcDefault holds the base gRPC status for a given code.
	grpcDefault map[code.ErrorCode]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	httpOverride map[code.ErrorCode]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.ErrorCode]codes.Code

	// httpRanges and grpcRanges resolve codes without a per-code rule.
	httpRanges *rangeset.Set[int]
	grpcRanges *rangeset.Set[codes.Code]

	// fallbackHTTP is used when nothing matched. Typically 500.
	fallbackHTTP int

	// fallbackGRPC is used when nothing matched. Typically codes.Unknown.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code default;
//  3. range rule;
//  4. fallback.
func (m *mapper) HTTPStatus(c code.ErrorCode) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	if v, ok := m.httpRanges.Match(c.Raw()); ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.ErrorCode) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	if v, ok := m.grpcRanges.Match(c.Raw()); ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for the same code.
func (m *mapper) Status(c code.ErrorCode) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// Example output:
//
//	code=500 name="code 500"
//	http: source=range range=14..1023 -> 501
//	grpc: source=fallback -> UNKNOWN(2)
//
// source is one of override, default, range or fallback.
func (m *mapper) Explain(c code.ErrorCode) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%d name=%q\n", c.Raw(), c.String())
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns a line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(c code.ErrorCode) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	if v, ok, r := m.httpRanges.MatchWithRange(c.Raw()); ok {
		return fmt.Sprintf("http: source=range range=%s -> %d", r, v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(c code.ErrorCode) string {
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s", grpcName(v))
	}
	if v, ok := m.grpcDefault[c]; ok {
		return fmt.Sprintf("grpc: source=default -> %s", grpcName(v))
	}
	if v, ok, r := m.grpcRanges.MatchWithRange(c.Raw()); ok {
		return fmt.Sprintf("grpc: source=range range=%s -> %s", r, grpcName(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s", grpcName(m.fallbackGRPC))
}

func grpcName(v codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(v.String()), int(v))
}
