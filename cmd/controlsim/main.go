// controlsim runs interaction scenarios against buttons with closure actions and prints which actions fired.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/iotaledger/controlactions/actions"
	"github.com/iotaledger/controlactions/ierrors"
	"github.com/iotaledger/controlactions/logger"
	"github.com/iotaledger/controlactions/scenario"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "controlsim: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	config, err := loadConfiguration(flagSet)
	if err != nil {
		return err
	}

	rootLogger, err := logger.NewRootLogger(loggerConfig(config))
	if err != nil {
		return ierrors.Wrap(err, "failed to create logger")
	}
	//nolint:errcheck // syncing stderr fails on some platforms
	defer rootLogger.Sync()

	actions.SetLogger(rootLogger)
	defer actions.SetLogger(nil)

	scenarioPath := config.String(keyScenario)
	if scenarioPath == "" {
		return ierrors.Errorf("no scenario given, use --%s", keyScenario)
	}

	script, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}

	runnerLogger := rootLogger.Named("scenario")
	runnerLogger.Infof("running scenario %s with %d steps", scenarioPath, len(script.Steps))

	report, runErr := scenario.NewRunner(script, scenario.WithLogger(runnerLogger)).Run(ctx)

	if err := printReport(out, report, config.String(keyReportFormat)); err != nil {
		return err
	}

	return runErr
}

func printReport(out io.Writer, report *scenario.Report, format string) error {
	switch format {
	case reportFormatText:
		_, err := fmt.Fprint(out, report)

		return err
	case reportFormatYAML:
		encoded, err := report.YAML()
		if err != nil {
			return err
		}
		_, err = out.Write(encoded)

		return err
	default:
		return ierrors.Wrapf(ErrUnknownReportFormat, "%q", format)
	}
}
