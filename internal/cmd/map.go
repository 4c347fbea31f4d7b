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
	"io"

	"dirpx.dev/kerrors/code"
	"dirpx.dev/kerrors/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Map explains how each code resolves to HTTP and gRPC under the given
// configuration.
func Map(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("map: at least one code is required")
	}
	log := loggerFrom(ctx)

	path := ctx.Path(ConfigFlag.Name)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	m, err := cfg.Mapper()
	if err != nil {
		return fmt.Errorf("build mapper: %w", err)
	}
	log.WithFields(logrus.Fields{
		"config": path,
		"codes":  len(cfg.Mapping.Codes),
		"ranges": len(cfg.Mapping.Ranges),
	}).Debug("mapper built")

	w := ctx.App.Writer
	for i, arg := range ctx.Args().Slice() {
		c, err := code.Parse(arg)
		if err != nil {
			return fmt.Errorf("map: %q: %w", arg, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, m.Explain(c)); err != nil {
			return err
		}
	}
	return nil
}

var MapCommand = &cli.Command{
	Name:        "map",
	Usage:       "Show the HTTP and gRPC status of codes",
	ArgsUsage:   "CODE...",
	Description: "Show which mapping rule resolves each code. CODE is a mnemonic, \"code N\" or a decimal",
	Action:      Map,
	Flags:       []cli.Flag{ConfigFlag},
}
