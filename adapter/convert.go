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

package adapter

import (
	"errors"
	"fmt"
	"strconv"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/code"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// Domain is the google.rpc.ErrorInfo domain for kernel error codes.
const Domain = "kerrors.dirpx.dev"

// Metadata keys written into google.rpc.ErrorInfo.
const (
	MetaCode    = "code"
	MetaName    = "name"
	MetaMessage = "message"
)

var (
	// ErrForeignInfo is returned by FromErrorInfo for an ErrorInfo that was
	// not produced by ToErrorInfo.
	ErrForeignInfo = errors.New("adapter: error info from another domain")
)

// ToDescriptor converts an error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation.
func ToDescriptor(e *kerrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       e.Code.Raw(),
		Name:       e.Code.String(),
		Op:         e.Op,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts an error into a public ErrorView. No redaction is
// performed; details are copied as the error reports them.
func ToView(e *kerrors.Error) apis.ErrorView {
	return e.ErrorView()
}

// ToErrorInfo renders an error as google.rpc.ErrorInfo.
//
// Reason is the mnemonic for named codes and "CODE_<n>" for reserved ones,
// keeping it in the UPPER_SNAKE_CASE form ErrorInfo expects. Metadata
// always carries the decimal code, so receivers never depend on names.
func ToErrorInfo(e *kerrors.Error) *errdetails.ErrorInfo {
	if e == nil {
		return nil
	}
	md := map[string]string{
		MetaCode: strconv.FormatUint(uint64(e.Code.Raw()), 10),
		MetaName: e.Code.String(),
	}
	if e.Message != "" {
		md[MetaMessage] = e.Message
	}
	for _, d := range e.ErrorDetails() {
		if _, taken := md[d.Key]; !taken {
			md[d.Key] = d.Value
		}
	}
	return &errdetails.ErrorInfo{
		Reason:   reasonOf(e.Code),
		Domain:   Domain,
		Metadata: md,
	}
}

// FromErrorInfo restores an *kerrors.Error from an ErrorInfo produced by
// ToErrorInfo. The code is validated with code.FromRaw, so a peer sending
// an out-of-range value yields code.ErrNotAnErrorCode.
func FromErrorInfo(info *errdetails.ErrorInfo) (*kerrors.Error, error) {
	if info == nil || info.GetDomain() != Domain {
		return nil, ErrForeignInfo
	}
	md := info.GetMetadata()
	raw, err := strconv.ParseUint(md[MetaCode], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("adapter: metadata %q: %w", MetaCode, code.ErrNotAnErrorCode)
	}
	c, err := code.FromRaw(uint32(raw))
	if err != nil {
		return nil, fmt.Errorf("adapter: metadata %q=%d: %w", MetaCode, raw, err)
	}
	e := &kerrors.Error{Code: c, Op: md["op"], Message: md[MetaMessage]}
	for k, v := range md {
		switch k {
		case MetaCode, MetaName, MetaMessage, "op":
			continue
		}
		e = e.WithDetail(k, v)
	}
	return e, nil
}

func reasonOf(c code.ErrorCode) string {
	if s, ok := c.Name(); ok {
		return s
	}
	return "CODE_" + strconv.FormatUint(uint64(c.Raw()), 10)
}
