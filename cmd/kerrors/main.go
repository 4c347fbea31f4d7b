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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dirpx.dev/kerrors/internal/cmd"
)

func main() {
	app := cmd.NewApp(os.Stdout, os.Stderr)
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	err := app.RunContext(ctx, os.Args)
	if err != nil {
		switch {
		case errors.Is(err, ctx.Err()):
			_, _ = fmt.Fprintln(os.Stderr, "command interrupted")
			os.Exit(130)
		case errors.Is(err, cmd.ErrInvalidInput):
			os.Exit(1)
		default:
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}
