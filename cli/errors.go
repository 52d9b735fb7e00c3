// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/ultravioletrs/quotegen/quote"
)

// printError renders message in red. message receives the failure kind and
// the error, in that order.
func printError(cmd *cobra.Command, message string, err error) {
	msg := color.New(color.FgRed).Sprintf(message, quote.Kind(err), err)
	cmd.PrintErrln(msg)
}
