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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/code"
	"dirpx.dev/kerrors/mapper"
	"dirpx.dev/kerrors/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// healthStub fails every Check with err.
type healthStub struct {
	grpc_health_v1.UnimplementedHealthServer
	err error
}

func (h *healthStub) Check(context.Context, *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if h.err != nil {
		return nil, h.err
	}
	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}

func dial(t *testing.T, handlerErr error, serverOpts []Option, dialOpts ...grpc.DialOption) grpc_health_v1.HealthClient {
	t.Helper()
	m, err := mapper.New()
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryServerInterceptor(m, serverOpts...)))
	grpc_health_v1.RegisterHealthServer(srv, &healthStub{err: handlerErr})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dialOpts = append(dialOpts,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	conn, err := grpc.NewClient("passthrough:///bufnet", dialOpts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return grpc_health_v1.NewHealthClient(conn)
}

func check(c grpc_health_v1.HealthClient) error {
	_, err := c.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	return err
}

func TestServer_TranslatesError(t *testing.T) {
	client := dial(t, kerrors.E(code.Busy, "radio busy", kerrors.WithOpOption("command")), nil)

	err := check(client)
	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Unavailable, st.Code())
	require.Equal(t, "command: BUSY: radio busy", st.Message())

	info, ok := ExtractErrorInfo(err)
	require.True(t, ok)
	require.Equal(t, "BUSY", info.GetReason())
	require.Equal(t, "2", info.GetMetadata()["code"])

	ke, ok := FromError(err)
	require.True(t, ok)
	require.Equal(t, code.Busy, ke.Code)
	require.Equal(t, "command", ke.Op)
	require.Equal(t, "radio busy", ke.Message)
}

func TestServer_BareAndWrappedCodes(t *testing.T) {
	client := dial(t, errors.Join(errors.New("driver 3"), code.ErrorCode(600)), nil)

	err := check(client)
	require.Equal(t, codes.Unknown, gstatus.Code(err))
	ke, ok := FromError(err)
	require.True(t, ok)
	require.Equal(t, code.ErrorCode(600), ke.Code)
}

func TestServer_PassesThroughForeignErrors(t *testing.T) {
	client := dial(t, gstatus.Error(codes.PermissionDenied, "nope"), nil)

	err := check(client)
	require.Equal(t, codes.PermissionDenied, gstatus.Code(err))
	_, ok := FromError(err)
	require.False(t, ok)
}

func TestServer_Success(t *testing.T) {
	client := dial(t, nil, nil)
	require.NoError(t, check(client))
}

func TestClient_RestoresKernelError(t *testing.T) {
	client := dial(t, kerrors.E(code.NoAck, ""), nil, grpc.WithUnaryInterceptor(UnaryClientInterceptor()))

	err := check(client)
	require.ErrorIs(t, err, code.NoAck)
	var ke *kerrors.Error
	require.ErrorAs(t, err, &ke)
	require.Equal(t, code.NoAck, ke.Code)
	require.Equal(t, codes.DeadlineExceeded, gstatus.Code(ke.Cause))
}

func TestServer_LogsAndCounts(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	client := dial(t, code.MustFromRaw(321), []Option{WithLogger(logger), WithRecorder(rec)})
	require.Error(t, check(client))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, uint32(321), entry.Data["kcode"])
	require.Equal(t, "code 321", entry.Data["kname"])
	require.Equal(t, "/grpc.health.v1.Health/Check", entry.Data["method"])

	n, err := testutil.GatherAndCount(reg, "kerrors_codes_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestServer_LogsNamedAtDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	client := dial(t, code.Invalid, []Option{WithLogger(logger)})
	require.Equal(t, codes.InvalidArgument, gstatus.Code(check(client)))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.DebugLevel, entry.Level)
	require.Equal(t, "INVALID", entry.Data["kname"])
}

func TestExtractErrorInfo_NonStatus(t *testing.T) {
	_, ok := ExtractErrorInfo(nil)
	require.False(t, ok)
	_, ok = ExtractErrorInfo(errors.New("plain"))
	require.False(t, ok)
}

func TestServer_KeepsWrappingContext(t *testing.T) {
	inner := kerrors.E(code.Busy, "radio busy", kerrors.WithOpOption("command"))
	client := dial(t, fmt.Errorf("ctx: %w", inner), nil)

	err := check(client)
	require.Equal(t, codes.Unavailable, gstatus.Code(err))
	require.Equal(t, "ctx: command: BUSY: radio busy", gstatus.Convert(err).Message())

	ke, ok := FromError(err)
	require.True(t, ok)
	require.Equal(t, "radio busy", ke.Message)
	require.Equal(t, "command", ke.Op)
}

func TestServer_TypedNilPassesThrough(t *testing.T) {
	var ke *kerrors.Error
	client := dial(t, ke, nil)

	err := check(client)
	require.Error(t, err)
	_, ok := FromError(err)
	require.False(t, ok)
}
