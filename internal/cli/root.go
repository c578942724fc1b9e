// Package cli wires the permute command line onto the core package.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JonMunkholm/permute/internal/config"
	"github.com/JonMunkholm/permute/internal/core"
	"github.com/JonMunkholm/permute/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AppName is the command name used in help and the reproduction line.
const AppName = "permute"

// ErrPermutationFailed is returned by the root command after a failed run
// has already been logged and reported on stdout.
var ErrPermutationFailed = errors.New("data permutation failed")

type options struct {
	fileType  string
	header    bool
	delimiter string
	seed      int64
}

// NewRootCommand builds the permute command. Status lines are written to
// stdout; logs go through slog.
func NewRootCommand(cfg *config.Config, stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   AppName + " input_file output_file",
		Short: "Randomly reorders the rows in a data file.",
		Long: "Randomly reorders the rows of a CSV or Excel file and writes the result.\n" +
			"The order is drawn from a seeded generator, so the same input and seed\n" +
			"always produce the same output.",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := core.LookupFormat(opts.fileType); !ok {
				return fmt.Errorf("invalid argument --file_type: invalid choice: %q (choose from %s)",
					opts.fileType, strings.Join(core.FormatNames(), ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), stdout, cfg, opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.fileType, "file_type", "csv",
		fmt.Sprintf("Type of the input file (%s).", strings.Join(core.FormatNames(), " or ")))
	flags.BoolVar(&opts.header, "header", false,
		"Treat the first row of a CSV input as column names.")
	flags.StringVar(&opts.delimiter, "delimiter", core.DefaultDelimiter,
		"Delimiter for CSV files.")
	flags.Int64Var(&opts.seed, "seed", cfg.Shuffle.Seed,
		"Seed for the row permutation.")

	return cmd
}

func run(ctx context.Context, stdout io.Writer, cfg *config.Config, opts *options, input, output string) error {
	ctx = logging.WithRunID(ctx, uuid.NewString())

	req := core.Request{
		InputPath:  input,
		OutputPath: output,
		FileType:   opts.fileType,
		Header:     opts.header,
		Delimiter:  opts.delimiter,
		Seed:       opts.seed,
	}

	res, err := core.Permute(ctx, req)
	if err != nil {
		logging.FromContext(ctx).Error(fmt.Sprintf("data permutation failed: %v", err),
			"code", core.MapError(err).Code,
			"user_message", core.FormatUserError(err),
		)
		fmt.Fprintln(stdout, "Data permutation failed. See logs for details.")
		return ErrPermutationFailed
	}

	fmt.Fprintf(stdout, "Successfully permuted data from %s to %s\n", res.InputPath, res.OutputPath)
	fmt.Fprintf(stdout, "To reproduce this run: %s\n", ReproduceCommand(req, cfg.Shuffle.Seed))
	return nil
}

// ReproduceCommand renders the command line that repeats req.
// --seed is included only when it differs from defaultSeed.
func ReproduceCommand(req core.Request, defaultSeed int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s --file_type %s", AppName, req.InputPath, req.OutputPath, req.FileType)
	if req.Header {
		b.WriteString(" --header")
	}
	fmt.Fprintf(&b, " --delimiter '%s'", req.Delimiter)
	if req.Seed != defaultSeed {
		fmt.Fprintf(&b, " --seed %d", req.Seed)
	}
	return b.String()
}

// Execute runs the root command against the process arguments.
// Usage errors are printed to stderr; failed runs have already been reported.
func Execute(ctx context.Context, cfg *config.Config) error {
	cmd := NewRootCommand(cfg, os.Stdout)

	err := cmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrPermutationFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
