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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrorCode is a kernel syscall error code.
//
// Its underlying integer IS the protocol value: for any c produced by
// FromRaw(r), uint32(c) == r. Values are comparable with ==.
//
// The zero value is not a valid code. A plain conversion such as
// ErrorCode(5000) bypasses validation; use FromRaw for untrusted input and
// Valid to check values of unknown origin.
type ErrorCode uint32

// Range of the protocol-defined code space.
const (
	// MinCode is the smallest valid error code.
	MinCode uint32 = 1
	// MaxCode is the largest valid error code (BADRVAL).
	MaxCode uint32 = 1024

	// FirstReserved and LastReserved bound the codes that are valid but
	// carry no mnemonic in this revision.
	FirstReserved uint32 = 14
	LastReserved  uint32 = 1023
)

// MaxTextLen is the longest text Append can produce for any ErrorCode,
// including invalid ones ("code 4294967295").
const MaxTextLen = len(reservedPrefix) + 10

// reservedPrefix precedes the decimal value of a code without a mnemonic.
const reservedPrefix = "code "

// NotAnErrorCode reports that an integer lies outside [MinCode, MaxCode].
// It carries no payload; ErrNotAnErrorCode is its only useful value.
type NotAnErrorCode struct{}

// Error implements the error interface.
func (NotAnErrorCode) Error() string { return "kerrors: not an error code" }

var (
	// ErrNotAnErrorCode is returned when an integer is outside the
	// protocol-defined interval [1, 1024].
	ErrNotAnErrorCode error = NotAnErrorCode{}

	// ErrUnknownName is returned by Parse when the text is neither a
	// mnemonic, nor "code N", nor a decimal number.
	ErrUnknownName = errors.New("kerrors: unknown error code name")
)

var (
	_ error                  = ErrorCode(0)
	_ encoding.TextMarshaler = ErrorCode(0)
	_ interface {
		AppendText([]byte) ([]byte, error)
	} = ErrorCode(0) // encoding.TextAppender (Go 1.24+)
	_ encoding.TextUnmarshaler = (*ErrorCode)(nil)
)

// FromRaw converts the raw integer returned by a syscall into an ErrorCode.
//
// It succeeds iff 1 <= raw <= 1024 and the result is numerically identical
// to raw. On failure it returns 0 and ErrNotAnErrorCode.
func FromRaw(raw uint32) (ErrorCode, error) {
	// Unsigned wrap-around turns 0 into a huge value, so one comparison
	// covers both ends of the interval.
	if raw-MinCode > MaxCode-MinCode {
		return 0, ErrNotAnErrorCode
	}
	return ErrorCode(raw), nil
}

// MustFromRaw is the panic-on-error variant of FromRaw. It is meant for
// package-level declarations with known-good literals.
func MustFromRaw(raw uint32) ErrorCode {
	c, err := FromRaw(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse converts text back into an ErrorCode. It accepts:
//
//   - a mnemonic, case-insensitive: "INVALID", "nomem";
//   - the reserved rendering: "code 500";
//   - a bare decimal: "6", "1024".
//
// Surrounding whitespace is ignored. Numbers outside [1, 1024] fail with
// ErrNotAnErrorCode, anything else with ErrUnknownName.
func Parse(s string) (ErrorCode, error) {
	s = strings.TrimSpace(s)
	if c, ok := byName(strings.ToUpper(s)); ok {
		return c, nil
	}
	if rest, ok := cutPrefixFold(s, reservedPrefix); ok {
		s = strings.TrimSpace(rest)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, ErrNotAnErrorCode
		}
		return 0, ErrUnknownName
	}
	if n > math.MaxUint32 {
		return 0, ErrNotAnErrorCode
	}
	return FromRaw(uint32(n))
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) ErrorCode {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Raw returns the protocol integer of the code.
func (c ErrorCode) Raw() uint32 { return uint32(c) }

// Valid reports whether c lies in the protocol interval [1, 1024].
func (c ErrorCode) Valid() bool {
	_, err := FromRaw(uint32(c))
	return err == nil
}

// IsNamed reports whether c is one of the 14 codes with a mnemonic.
func (c ErrorCode) IsNamed() bool {
	_, ok := c.Name()
	return ok
}

// IsReserved reports whether c is valid but has no mnemonic in this revision.
func (c ErrorCode) IsReserved() bool {
	return uint32(c) >= FirstReserved && uint32(c) <= LastReserved
}

// String renders the code: the mnemonic for named codes, otherwise
// "code " followed by the decimal value (e.g. "code 500").
//
// Named codes render without allocating.
func (c ErrorCode) String() string {
	if s, ok := c.Name(); ok {
		return s
	}
	var buf [MaxTextLen]byte
	return string(c.Append(buf[:0]))
}

// Error implements the error interface, so a code can be returned as is.
func (c ErrorCode) Error() string { return c.String() }

// Append appends the rendering of c to dst and returns the extended slice.
// Given a dst with MaxTextLen bytes of spare capacity it never allocates.
func (c ErrorCode) Append(dst []byte) []byte {
	if s, ok := c.Name(); ok {
		return append(dst, s...)
	}
	dst = append(dst, reservedPrefix...)
	return strconv.AppendUint(dst, uint64(c), 10)
}

// AppendText implements encoding.TextAppender. Invalid codes fail with
// ErrNotAnErrorCode.
func (c ErrorCode) AppendText(dst []byte) ([]byte, error) {
	if !c.Valid() {
		return dst, ErrNotAnErrorCode
	}
	return c.Append(dst), nil
}

// MarshalText implements encoding.TextMarshaler.
//
// It returns the same text as String and rejects invalid codes.
func (c ErrorCode) MarshalText() ([]byte, error) {
	return c.AppendText(make([]byte, 0, MaxTextLen))
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (c *ErrorCode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
