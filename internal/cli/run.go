package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anujrohit1/pubfilter/internal/buildinfo"
	"github.com/anujrohit1/pubfilter/internal/domain"
	"github.com/anujrohit1/pubfilter/internal/infra/config"
	"github.com/anujrohit1/pubfilter/internal/infra/httpclient"
	"github.com/anujrohit1/pubfilter/internal/infra/httpsubmit"
	"github.com/anujrohit1/pubfilter/internal/infra/jsondoc"
	"github.com/anujrohit1/pubfilter/internal/infra/logger"
	"github.com/anujrohit1/pubfilter/internal/usecase"
)

type runOptions struct {
	debug      bool
	logFile    string
	configPath string
}

func runPipeline(cmd *cobra.Command, t target, opts runOptions) error {
	cfg, err := config.NewLoader().LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Logging.Debug = opts.debug
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}

	cleanup, err := logger.Setup(logger.Config{
		File:   cfg.Logging.File,
		Debug:  cfg.Logging.Debug,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return &domain.OpError{
			Op:   "logger.setup",
			Kind: domain.KindInvalidConfig,
			Path: cfg.Logging.File,
			Err:  err,
		}
	}
	defer func() { _ = cleanup() }()

	userAgent := cfg.HTTP.UserAgent
	if userAgent == "" {
		userAgent = buildinfo.UserAgent()
	}

	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(httpclient.ConfigFrom(cfg.HTTP))),
		httpclient.WithMaxBodyBytes(cfg.HTTP.MaxResponseBytes),
	)
	uc := usecase.NewRunPipeline(
		jsondoc.NewLoader(),
		httpsubmit.New(exec, httpsubmit.WithUserAgent(userAgent)),
		logger.L(),
	)

	rep, err := uc.Execute(cmd.Context(), t.source, t.url)
	if err != nil {
		return err
	}
	if rep.Shape != domain.ReportObject {
		return &domain.OpError{
			Op:   "report.shape",
			Kind: domain.KindUnexpectedResponseShape,
			Path: t.url,
		}
	}
	printReport(cmd.OutOrStdout(), rep)
	return nil
}

func printReport(w io.Writer, rep domain.Report) {
	for _, k := range rep.Keys {
		fmt.Fprintln(w, k)
	}
}

func writeDiagnostic(w io.Writer, err error) {
	fmt.Fprintln(w, diagnostic(err))
}

// exitCode is 1 for errors that stop the run and 0 for informational ones.
func exitCode(err error) int {
	if err == nil || !domain.KindOf(err).Fatal() {
		return 0
	}
	return 1
}

// diagnostic renders the one-line console message for an error.
func diagnostic(err error) string {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}

	cause := oe.Err
	if cause == nil {
		cause = errors.New(string(oe.Kind))
	}

	switch oe.Kind {
	case domain.KindFileNotFound:
		return fmt.Sprintf("File %s not found.", oe.Path)
	case domain.KindReadFailed:
		return fmt.Sprintf("Failed to read %s: %v", oe.Path, cause)
	case domain.KindInvalidJSON:
		return fmt.Sprintf("Invalid JSON in %s: %v", oe.Path, cause)
	case domain.KindInvalidRootShape:
		return "JSON root structure is not a list or dict."
	case domain.KindRequestFailed:
		return fmt.Sprintf("Failed to make POST request: %v", cause)
	case domain.KindInvalidResponseJSON:
		return "Response is not valid JSON."
	case domain.KindUnexpectedResponseShape:
		return "Response JSON is not an object/dict."
	case domain.KindInvalidConfig:
		return fmt.Sprintf("Invalid config in %s: %v", oe.Path, cause)
	default:
		return err.Error()
	}
}
