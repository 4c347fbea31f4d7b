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

// Package cmd holds the commands of the kerrors tool.
package cmd

import (
	"errors"
	"io"

	"dirpx.dev/kerrors/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// ErrInvalidInput is returned when at least one argument was rejected.
// The per-argument outcome has already been printed.
var ErrInvalidInput = errors.New("one or more inputs were rejected")

const loggerKey = "logger"

var (
	LogLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "logrus level: trace, debug, info, warn, error",
		EnvVars: []string{config.EnvPrefix + "_LOG_LEVEL"},
		Value:   "info",
	}
	LogFormatFlag = &cli.StringFlag{
		Name:    "log-format",
		Usage:   "log output format: text or json",
		EnvVars: []string{config.EnvPrefix + "_LOG_FORMAT"},
		Value:   "text",
	}
	EnvFileFlag = &cli.PathFlag{
		Name:  "env-file",
		Usage: "dotenv file loaded before anything else",
	}
	ConfigFlag = &cli.PathFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "mapping configuration file (yaml, json or toml)",
		EnvVars: []string{config.EnvPrefix + "_CONFIG"},
	}
)

// NewApp builds the kerrors application. Command output goes to out,
// logs to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "kerrors"
	app.Usage = "Kernel syscall error code tool"
	app.Description = "Decode raw kernel return values and show how codes map onto HTTP and gRPC"
	app.Writer = out
	app.ErrWriter = errOut
	app.Metadata = map[string]interface{}{}
	app.Flags = []cli.Flag{LogLevelFlag, LogFormatFlag, EnvFileFlag}
	app.Before = setup
	app.Commands = []*cli.Command{
		DecodeCommand,
		ListCommand,
		MapCommand,
	}
	return app
}

func setup(ctx *cli.Context) error {
	if path := ctx.Path(EnvFileFlag.Name); path != "" {
		if err := config.LoadEnvFile(path); err != nil {
			return err
		}
	}
	lc := config.LogConfig{
		Level:  ctx.String(LogLevelFlag.Name),
		Format: ctx.String(LogFormatFlag.Name),
	}
	l, err := lc.Logger(ctx.App.ErrWriter)
	if err != nil {
		return err
	}
	ctx.App.Metadata[loggerKey] = l
	return nil
}

func loggerFrom(ctx *cli.Context) logrus.FieldLogger {
	if l, ok := ctx.App.Metadata[loggerKey].(logrus.FieldLogger); ok {
		return l
	}
	return logrus.StandardLogger()
}
