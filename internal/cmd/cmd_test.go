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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/kerrors/code"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut)
	err := app.Run(append([]string{"kerrors"}, args...))
	return out.String(), errOut.String(), err
}

func TestDecode(t *testing.T) {
	t.Run("AllValid", func(t *testing.T) {
		out, _, err := run(t, "decode", "6", "1024", "50", "0x2")
		require.NoError(t, err)
		require.Equal(t, "6\tINVALID\n1024\tBADRVAL\n50\tcode 50\n0x2\tBUSY\n", out)
	})

	t.Run("Rejected", func(t *testing.T) {
		out, _, err := run(t, "decode", "0", "13", "2000", "4294967295", "4294967296", "-1", "busy")
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Equal(t, strings.Join([]string{
			"0\tnot an error code",
			"13\tNOACK",
			"2000\tnot an error code",
			"4294967295\tnot an error code",
			"4294967296\tnot an error code",
			"-1\tnot an error code",
			"busy\tnot an error code",
		}, "\n")+"\n", out)
	})

	t.Run("DebugLogsRejections", func(t *testing.T) {
		_, logs, err := run(t, "--log-level", "debug", "decode", "1025")
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Contains(t, logs, "input=1025")
	})

	t.Run("NoArgs", func(t *testing.T) {
		_, _, err := run(t, "decode")
		require.Error(t, err)
	})
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(code.Named()))
	require.Equal(t, "1\tFAIL", lines[0])
	require.Equal(t, "1024\tBADRVAL", lines[len(lines)-1])
}

func TestMap(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		out, _, err := run(t, "map", "INVALID", "code 50")
		require.NoError(t, err)
		require.Equal(t, `code=6 name="INVALID"
http: source=default -> 400
grpc: source=default -> INVALIDARGUMENT(3)
---
code=50 name="code 50"
http: source=fallback -> 500
grpc: source=fallback -> UNKNOWN(2)
`, out)
	})

	t.Run("Config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kerrors.yaml")
		require.NoError(t, os.WriteFile(path, []byte("mapping:\n  ranges:\n    - {from: 14, to: 1023, http: 501, grpc: unimplemented}\n"), 0o600))

		out, _, err := run(t, "map", "--config", path, "500")
		require.NoError(t, err)
		require.Contains(t, out, "http: source=range range=14..1023 -> 501")
		require.Contains(t, out, "grpc: source=range range=14..1023 -> UNIMPLEMENTED(12)")
	})

	t.Run("UnknownName", func(t *testing.T) {
		_, _, err := run(t, "map", "SIDEWAYS")
		require.ErrorIs(t, err, code.ErrUnknownName)
	})

	t.Run("BadConfig", func(t *testing.T) {
		_, _, err := run(t, "map", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "FAIL")
		require.Error(t, err)
	})
}

func TestBadLogFlags(t *testing.T) {
	_, _, err := run(t, "--log-format", "xml", "list")
	require.Error(t, err)
}
