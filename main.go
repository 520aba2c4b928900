package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corebreaker/hexdump/core"
)

func dump_file(ctx context.Context, path string, out io.Writer) error {
	addstep("Reading %s", path)

	data, err := core.ReadFile(path)
	if err != nil {
		clog.WithError(core.GetCause(err)).WithField("kind", core.GetKind(err)).Debug("Can't load ", path)

		return err
	}

	clog.WithFields(logrus.Fields{
		"path": path,
		"size": len(data),
		"rows": core.RowCount(len(data)),
	}).Debug("File loaded")

	if err := ctx.Err(); err != nil {
		return interrupted(err)
	}

	addstep("Dumping %d bytes from %s", len(data), path)

	w := bufio.NewWriter(out)

	err = core.FprintBytesContext(ctx, w, data)
	if f_err := w.Flush(); err == nil {
		err = core.WrapError(f_err)
	}

	if core.IsKind(err, core.KIND_INTERRUPTED) {
		return interrupted(err)
	}

	return err
}

func check_args(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return core.NewKindError(core.KIND_USAGE, "%s\nUsage: %s", err, cmd.UseLine())
	}

	return nil
}

func new_command() *cobra.Command {
	var log_level string

	cmd := &cobra.Command{
		Use:   "hexdump path",
		Short: "Shows the content of a file as a hex dump",
		Long: `Shows the content of a file as rows of 16 bytes: the offset of the row,
the bytes in hexadecimal, then the bytes as ASCII characters between pipes.
Bytes that are not visible ASCII characters are shown as dots.`,
		Args:          check_args,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return setup_logging(log_level, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump_file(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&log_level, "log-level", "WARNING", "log level on standard error: DEBUG, INFO, WARNING, ERROR or PANIC")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return core.NewKindError(core.KIND_USAGE, "%s\nUsage: %s", err, c.UseLine())
	})

	return cmd
}

func work() (err error) {
	defer core.Recover(func(e error) { err = e })

	ctx, stop := notify_interrupt(context.Background())
	defer stop()

	cmd := new_command()
	cmd.SetArgs(os.Args[1:])

	return cmd.ExecuteContext(ctx)
}

func main() {
	core.CheckedMain(work)
}
