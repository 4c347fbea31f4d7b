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
	"testing"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/code"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
)

func TestToDescriptor(t *testing.T) {
	e := kerrors.E(code.Busy, "tx queue full", kerrors.WithOpOption("command"))
	d := ToDescriptor(e, apis.Status{HTTP: 503, GRPC: codes.Unavailable})
	require.Equal(t, apis.ErrorDescriptor{
		Code:       2,
		Name:       "BUSY",
		Op:         "command",
		HTTPStatus: 503,
		GRPCCode:   int(codes.Unavailable),
		Message:    "tx queue full",
	}, d)
	require.Equal(t, apis.ErrorDescriptor{}, ToDescriptor(nil, apis.Status{}))
}

func TestToView(t *testing.T) {
	e := kerrors.E(code.MustFromRaw(321), "", kerrors.WithDetailOption("driver", 7))
	v := ToView(e)
	require.Equal(t, uint32(321), v.Code)
	require.Equal(t, "code 321", v.Name)
	require.Equal(t, []apis.Detail{{Key: "driver", Value: "7"}}, v.Details)
	require.Equal(t, apis.ErrorView{}, ToView(nil))
}

func TestErrorInfo_RoundTrip(t *testing.T) {
	for _, c := range []code.ErrorCode{code.Fail, code.Invalid, code.MustFromRaw(14), code.MustFromRaw(1023), code.BadRVal} {
		e := kerrors.E(c, "msg", kerrors.WithOpOption("subscribe"), kerrors.WithDetailOption("driver", 3))
		info := ToErrorInfo(e)
		require.Equal(t, Domain, info.GetDomain())

		back, err := FromErrorInfo(info)
		require.NoError(t, err)
		require.Equal(t, c, back.Code)
		require.Equal(t, "subscribe", back.Op)
		require.Equal(t, "msg", back.Message)
		require.Equal(t, "3", back.Details["driver"])
	}
}

func TestErrorInfo_Reason(t *testing.T) {
	require.Equal(t, "NOACK", ToErrorInfo(kerrors.E(code.NoAck, "")).GetReason())
	require.Equal(t, "CODE_500", ToErrorInfo(kerrors.E(code.MustFromRaw(500), "")).GetReason())
	require.Nil(t, ToErrorInfo(nil))
}

func TestFromErrorInfo_Rejects(t *testing.T) {
	_, err := FromErrorInfo(&errdetails.ErrorInfo{Domain: "googleapis.com", Reason: "X"})
	require.ErrorIs(t, err, ErrForeignInfo)

	_, err = FromErrorInfo(nil)
	require.ErrorIs(t, err, ErrForeignInfo)

	for _, raw := range []string{"0", "1025", "abc", ""} {
		_, err := FromErrorInfo(&errdetails.ErrorInfo{Domain: Domain, Metadata: map[string]string{MetaCode: raw}})
		require.True(t, errors.Is(err, code.ErrNotAnErrorCode), "raw %q: %v", raw, err)
	}
}
