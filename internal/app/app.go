// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"memstrap/internal/appcore"
	"memstrap/internal/cli"
	"memstrap/internal/version"
	"memstrap/internal/writers"
)

const longHelp = `memstrap extracts printable strings from memory images and other large
binary files. ASCII, UTF-8, UTF-16LE/BE and GBK runs are found in one
parallel pass; results are ordered by file offset.`

// NewCommand builds the root command. code receives the exit code of a
// completed scan.
func NewCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := cli.Defaults()
	cmd := &cobra.Command{
		Use:           "memstrap [flags] FILE",
		Short:         "Multi-encoding string extraction for memory forensics",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Version {
				_, err := fmt.Fprintf(stdout, "memstrap version %s\n", version.String())
				return err
			}
			if err := cli.Finalize(cmd.Flags(), &opts, args); err != nil {
				return err
			}
			ec, err := opts.EngineConfig()
			if err != nil {
				return err
			}
			*code = appcore.Run(cmd.Context(), stdout, stderr, appcore.Options{
				Input:           opts.Input,
				Decompress:      opts.Decompress,
				Engine:          ec,
				Threads:         opts.Threads,
				Dedup:           opts.Dedup,
				OutputPath:      opts.Output,
				Format:          opts.Format,
				Header:          !opts.NoHeader,
				NoProgress:      opts.NoProgress,
				Quiet:           opts.Quiet,
				LogLevel:        opts.LogLevel,
				NoMatchExitCode: opts.NoMatchExitCode,
			})
			return nil
		},
	}
	cli.Register(cmd.Flags(), &opts)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	cmd := NewCommand(stdout, stderr, &code)
	cmd.SetArgs(argv)

	if err := cmd.ExecuteContext(parent); err != nil {
		if writers.IsBrokenPipe(err) {
			return appcore.ExitOK
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		return appcore.ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
