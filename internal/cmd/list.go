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

	"dirpx.dev/kerrors/code"
	"github.com/urfave/cli/v2"
)

// List prints every named code as NUMBER<TAB>NAME.
func List(ctx *cli.Context) error {
	for _, c := range code.Named() {
		if _, err := fmt.Fprintf(ctx.App.Writer, "%d\t%s\n", c.Raw(), c); err != nil {
			return err
		}
	}
	return nil
}

var ListCommand = &cli.Command{
	Name:   "list",
	Usage:  "List the named error codes",
	Action: List,
}
