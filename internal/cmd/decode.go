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
	"fmt"
	"strconv"

	"dirpx.dev/kerrors/code"
	"dirpx.dev/kerrors/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const notAnErrorCode = "not an error code"

// Decode prints RAW<TAB>RENDERING for every argument. Raw values may be
// decimal, 0x-hex or 0o-octal.
func Decode(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("decode: at least one raw value is required")
	}
	log := loggerFrom(ctx)
	rec, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	buf := make([]byte, 0, code.MaxTextLen+32)
	rejected := 0
	for _, arg := range ctx.Args().Slice() {
		buf = append(buf[:0], arg...)
		buf = append(buf, '\t')

		c, err := decodeRaw(rec, arg)
		if err != nil {
			rejected++
			log.WithFields(logrus.Fields{"input": arg}).WithError(err).Debug("rejected")
			buf = append(buf, notAnErrorCode...)
		} else {
			buf = c.Append(buf)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	if rejected > 0 {
		return fmt.Errorf("decode: %d of %d: %w", rejected, ctx.NArg(), ErrInvalidInput)
	}
	return nil
}

func decodeRaw(rec *metrics.Recorder, arg string) (code.ErrorCode, error) {
	n, err := strconv.ParseUint(arg, 0, 64)
	if err != nil || n > uint64(^uint32(0)) {
		rec.ObserveRejected()
		return 0, code.ErrNotAnErrorCode
	}
	return rec.ObserveRaw(uint32(n))
}

var DecodeCommand = &cli.Command{
	Name:        "decode",
	Usage:       "Decode raw kernel return values",
	ArgsUsage:   "RAW...",
	Description: "Decode raw kernel return values. Values outside 1..1024 print \"not an error code\" and make the command fail",
	Action:      Decode,
}
