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

// Package kerrors carries kernel syscall error codes through Go programs.
//
// The code subpackage defines the closed code space itself. This package
// adds Error, which pairs a code with the operation that failed, a human
// message, structured details and an optional cause, and FromReturn, the
// single entry point a syscall layer uses to turn a raw error signal into
// a typed error.
package kerrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/code"
)

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.ViewProvider  = (*Error)(nil)
)

// Error is a kernel error code with context.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Code is the kernel error code. It must be valid (see code.FromRaw).
	Code code.ErrorCode

	// Op names the operation that failed, e.g. "command" or "allow_rw".
	// May be empty.
	Op string

	// Message is a human-readable explanation. May be empty.
	Message string

	// Details is an optional, shallow map of extra fields.
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return kerrors.E(code.Busy, "radio is transmitting",
//	    kerrors.WithOpOption("command"),
//	    kerrors.WithDetailOption("driver", 0x30001),
//	)
func E(c code.ErrorCode, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// FromReturn interprets the raw error signal of a failed syscall.
//
// A raw value in [1, 1024] yields an *Error carrying that code. Any other
// value yields an error that wraps code.ErrNotAnErrorCode and names op and
// raw; whether that is fatal is up to the caller.
func FromReturn(op string, raw uint32) error {
	c, err := code.FromRaw(raw)
	if err != nil {
		return fmt.Errorf("%s: raw error value %d: %w", op, raw, err)
	}
	return &Error{Code: c, Op: op}
}

// CodeOf extracts the kernel error code from err's chain. It recognizes
// *Error, any apis.CodedError and a bare code.ErrorCode.
func CodeOf(err error) (code.ErrorCode, bool) {
	if err == nil {
		return 0, false
	}
	var ke *Error
	if errors.As(err, &ke) {
		if ke == nil {
			return 0, false
		}
		return ke.Code, true
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return ce.ErrorCode(), true
	}
	var c code.ErrorCode
	if errors.As(err, &c) {
		return c, true
	}
	return 0, false
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<op>: <CODE>: <message>
//
// with empty parts left out, e.g. "command: BUSY" or "code 500: reserved".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Code.String())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is the kernel code carried by e, so that
// errors.Is(err, code.Busy) works for wrapped errors.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	c, ok := target.(code.ErrorCode)
	return ok && e.Code == c
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() code.ErrorCode {
	if e == nil {
		return 0
	}
	return e.Code
}

// ErrorDetails implements apis.DetailedError. The op, when set, comes
// first; the remaining details follow sorted by key.
func (e *Error) ErrorDetails() []apis.Detail {
	if e == nil || e.Op == "" && len(e.Details) == 0 {
		return nil
	}
	out := make([]apis.Detail, 0, len(e.Details)+1)
	if e.Op != "" {
		out = append(out, apis.Detail{Key: "op", Value: e.Op})
	}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, apis.Detail{Key: k, Value: fmt.Sprint(e.Details[k])})
	}
	return out
}

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Code:    e.Code.Raw(),
		Name:    e.Code.String(),
		Message: e.Message,
		Details: e.ErrorDetails(),
	}
}

// WithOp returns a shallow copy of e with the given operation name.
func (e *Error) WithOp(op string) *Error {
	cp := *e
	cp.Op = op
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into Details.
//
// kv takes precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
