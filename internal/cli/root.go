package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/anujrohit1/pubfilter/internal/buildinfo"
)

// The input file and the service endpoint are fixed.
const (
	SourceFile = "example.json"
	TargetURL  = "https://example.com/service/generate"
)

// target is where a run reads from and posts to. Tests point it at temp
// files and httptest servers; the binary always uses the constants above.
type target struct {
	source string
	url    string
}

func defaultTarget() target {
	return target{source: SourceFile, url: TargetURL}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, newRootCmd(defaultTarget()), os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes cmd and turns any error into its console diagnostic and the
// exit code for its kind.
func run(ctx context.Context, cmd *cobra.Command, args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		writeDiagnostic(cmd.OutOrStdout(), err)
		return exitCode(err)
	}
	return 0
}

func newRootCmd(t target) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:           "pubfilter",
		Short:         "Post the public entries of example.json and list the keys the service marks valid",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildinfo.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, t, opts)
		},
	}
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging (to --log-file, or stderr if none)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "append JSON logs to this file")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "optional YAML settings file")

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
