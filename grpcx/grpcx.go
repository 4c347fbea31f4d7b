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

// Package grpcx carries kernel error codes across gRPC.
//
// On the server side a handler error whose chain holds a code becomes a
// status with the mapped gRPC code and a google.rpc.ErrorInfo detail. On
// the client side such a status turns back into a *kerrors.Error, with the
// code revalidated by code.FromRaw.
package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/adapter"
	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/metrics"
	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
)

// Option configures the interceptors.
type Option func(*options)

type options struct {
	logger   logrus.FieldLogger
	recorder *metrics.Recorder
}

// WithLogger logs every translated error with structured fields.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithRecorder counts every translated code.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Status builds the gRPC status for e, resolving the gRPC code via m and
// attaching the ErrorInfo detail. If the detail cannot be attached the
// plain status is returned.
func Status(m apis.Mapper, e *kerrors.Error) *gstatus.Status {
	return newStatus(m, e, e.Error())
}

func newStatus(m apis.Mapper, e *kerrors.Error, msg string) *gstatus.Status {
	base := gstatus.New(m.GRPCStatus(e.Code), msg)
	if with, err := base.WithDetails(adapter.ToErrorInfo(e)); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// maps handler errors carrying a kernel error code into gRPC statuses.
// Errors without a code are returned as-is. The status message is the
// handler error's text, so context added by fmt.Errorf wrapping survives.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := buildOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		c, ok := kerrors.CodeOf(err)
		if !ok {
			return nil, err
		}
		var ke *kerrors.Error
		if !errors.As(err, &ke) || ke == nil {
			ke = kerrors.E(c, err.Error())
		}

		// The status message keeps the full handler error text, including
		// any wrapping around ke; the ErrorInfo carries ke alone.
		st := newStatus(m, ke, err.Error())
		o.recorder.Observe(c)
		if o.logger != nil {
			d := adapter.ToDescriptor(ke, m.Status(c))
			entry := o.logger.WithFields(logrus.Fields{
				"method":    info.FullMethod,
				"op":        d.Op,
				"kcode":     d.Code,
				"kname":     d.Name,
				"http":      d.HTTPStatus,
				"grpc_code": st.Code().String(),
			})
			if c.IsReserved() {
				entry.Warn("kernel error code without a name in this revision")
			} else {
				entry.Debug("kernel error translated")
			}
		}
		return nil, st.Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// statuses produced by UnaryServerInterceptor back into *kerrors.Error.
// The status error is kept as the cause.
func UnaryClientInterceptor(opts ...Option) grpc.UnaryClientInterceptor {
	o := buildOptions(opts)
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err == nil {
			return nil
		}
		ke, ok := FromError(err)
		if !ok {
			return err
		}
		o.recorder.Observe(ke.Code)
		if o.logger != nil {
			o.logger.WithFields(logrus.Fields{
				"method": method,
				"kcode":  ke.Code.Raw(),
				"kname":  ke.Code.String(),
			}).Debug("kernel error received")
		}
		return ke.WithCause(err)
	}
}

// FromError extracts the kernel error carried by a gRPC status error, if
// present and valid.
func FromError(err error) (*kerrors.Error, bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok {
		return nil, false
	}
	ke, err := adapter.FromErrorInfo(info)
	if err != nil {
		return nil, false
	}
	return ke, true
}

// ExtractErrorInfo pulls the kerrors google.rpc.ErrorInfo out of a gRPC
// error, if present.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == adapter.Domain {
			return info, true
		}
	}
	return nil, false
}
