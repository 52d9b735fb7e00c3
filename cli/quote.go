// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ultravioletrs/quotegen/quote"
)

// Options are the output and report settings exposed as flags. Values set
// from the environment act as flag defaults.
type Options struct {
	OutputDir    string
	OutputFile   string
	Naming       string
	Prefix       string
	Suffix       string
	ReportPolicy string
}

// ServiceFactory builds the service once flags have been parsed.
type ServiceFactory func(ctx context.Context, opts Options) (quote.Service, error)

// NewQuoteCmd returns the command that generates a quote over its single
// argument. Argument count is validated by the service so that the usage
// error carries the number of arguments received.
//
// Options are only recognised before the report data, by their long name.
// The first argument that is not a known option is the report data, even if
// it starts with a dash. "--" ends the options explicitly.
func NewQuoteCmd(opts *Options, factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-generator [options] [--] <report-data>",
		Short: "Generate a TDX quote over the given report data and save it to a file",
		Long: "Generate a TDX quote over the given report data and save it to a file.\n" +
			"The report data is taken as raw bytes, must be at most 64 bytes long and is zero padded to 64 bytes.\n" +
			"Options must precede the report data. Use -- before report data that matches an option name.",
		Example: "quote-generator my-nonce\n" +
			"quote-generator --naming input --output-dir /var/lib/quotes session-42\n" +
			"quote-generator -- --help",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, help, err := parseArgs(cmd.Flags(), args)
			if err != nil {
				printError(cmd, "Failed to parse arguments (%s): %s", err)
				return err
			}
			if help {
				return cmd.Help()
			}

			svc, err := factory(cmd.Context(), *opts)
			if err != nil {
				printError(cmd, "Failed to configure quote generator (%s): %s", err)
				return err
			}

			res, err := svc.Generate(cmd.Context(), data)
			if err != nil {
				printError(cmd, "Failed to generate quote (%s): %s", err)
				return err
			}

			cmd.Println(color.New(color.FgGreen).Sprintf("Quote successfully written to %s", res.Path))
			return nil
		},
	}

	addFlags(cmd.Flags(), opts)

	return cmd
}

// parseArgs applies the leading --name value and --name=value options to fs
// and returns the remaining positional arguments.
func parseArgs(fs *pflag.FlagSet, args []string) ([]string, bool, error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[i+1:], false, nil
		}
		if !strings.HasPrefix(arg, "--") {
			return args[i:], false, nil
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		if name == "help" && !hasValue {
			return nil, true, nil
		}
		if fs.Lookup(name) == nil || name == "help" {
			return args[i:], false, nil
		}

		if !hasValue {
			if i+1 == len(args) {
				return nil, false, &quote.UsageError{Reason: fmt.Sprintf("option --%s needs a value", name)}
			}
			i++
			value = args[i]
		}
		if err := fs.Set(name, value); err != nil {
			return nil, false, &quote.UsageError{Reason: fmt.Sprintf("invalid value %q for option --%s: %s", value, name, err)}
		}
	}

	return []string{}, false, nil
}

func addFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVar(&opts.OutputDir, "output-dir", opts.OutputDir, "Directory the quote file is written to")
	fs.StringVar(&opts.OutputFile, "output-file", opts.OutputFile, "Quote file name used by the fixed naming policy")
	fs.StringVar(&opts.Naming, "naming", opts.Naming, "Output naming policy: fixed or input")
	fs.StringVar(&opts.Prefix, "prefix", opts.Prefix, "File name prefix used by the input naming policy")
	fs.StringVar(&opts.Suffix, "suffix", opts.Suffix, "File name suffix used by the input naming policy")
	fs.StringVar(&opts.ReportPolicy, "report-policy", opts.ReportPolicy, "Report step policy: debug, always, never or strict")
}

// ServiceOptions converts flag values into service settings.
func ServiceOptions(opts Options) (quote.ReportPolicy, quote.PersisterConfig, error) {
	policy, err := quote.ParseReportPolicy(opts.ReportPolicy)
	if err != nil {
		return "", quote.PersisterConfig{}, err
	}

	naming, err := quote.ParseNaming(opts.Naming)
	if err != nil {
		return "", quote.PersisterConfig{}, err
	}

	return policy, quote.PersisterConfig{
		Naming:   naming,
		Dir:      opts.OutputDir,
		FileName: opts.OutputFile,
		Prefix:   opts.Prefix,
		Suffix:   opts.Suffix,
	}, nil
}
