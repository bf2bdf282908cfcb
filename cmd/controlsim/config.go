package main

import (
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/controlactions/configuration"
	"github.com/iotaledger/controlactions/ierrors"
	"github.com/iotaledger/controlactions/logger"
)

const (
	envPrefix = "CONTROLSIM"

	flagConfig          = "config"
	keyScenario         = "scenario"
	keyReportFormat     = "report.format"
	reportFormatText    = "text"
	reportFormatYAML    = "yaml"
	defaultLoggerOutput = "stderr"
)

// ErrUnknownReportFormat is returned if the report format is neither text nor yaml.
var ErrUnknownReportFormat = ierrors.New("unknown report format")

func newFlagSet() *flag.FlagSet {
	flagSet := configuration.NewUnsortedFlagSet("controlsim", flag.ContinueOnError)

	flagSet.StringP(flagConfig, "c", "", "file path of the configuration file (json, yaml or toml)")
	flagSet.StringP(keyScenario, "s", "", "file path of the scenario to run (json, yaml or toml)")
	flagSet.String(keyReportFormat, reportFormatText, "format of the printed report (text or yaml)")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (console or json)")

	return flagSet
}

// loadConfiguration merges the defaults, the configuration file, the environment variables and the command line
// flags (in that order of precedence, the last one wins).
func loadConfiguration(flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()

	defaults := map[string]interface{}{
		keyScenario:                              "",
		keyReportFormat:                          reportFormatText,
		logger.ConfigurationKeyLevel:             logger.DefaultCfg.Level,
		logger.ConfigurationKeyDisableCaller:     logger.DefaultCfg.DisableCaller,
		logger.ConfigurationKeyDisableStacktrace: logger.DefaultCfg.DisableStacktrace,
		logger.ConfigurationKeyStacktraceLevel:   logger.DefaultCfg.StacktraceLevel,
		logger.ConfigurationKeyEncoding:          logger.DefaultCfg.Encoding,
		logger.ConfigurationKeyTimeEncoder:       logger.DefaultCfg.EncodingConfig.EncodeTime,
		logger.ConfigurationKeyOutputPaths:       defaultLoggerOutput,
	}
	for key, value := range defaults {
		if err := config.Set(key, value); err != nil {
			return nil, ierrors.Wrapf(err, "failed to set default of %s", key)
		}
	}

	if configuration.HasFlag(flagSet, flagConfig) {
		filePath, err := flagSet.GetString(flagConfig)
		if err != nil {
			return nil, ierrors.Wrapf(err, "failed to read --%s", flagConfig)
		}

		if err := config.LoadFile(filePath); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment variables")
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	return config, nil
}

// loggerConfig reads the logger settings from the configuration.
func loggerConfig(config *configuration.Configuration) logger.Config {
	return logger.Config{
		Level:             config.String(logger.ConfigurationKeyLevel),
		DisableCaller:     config.Bool(logger.ConfigurationKeyDisableCaller),
		DisableStacktrace: config.Bool(logger.ConfigurationKeyDisableStacktrace),
		StacktraceLevel:   config.String(logger.ConfigurationKeyStacktraceLevel),
		Encoding:          config.String(logger.ConfigurationKeyEncoding),
		EncodingConfig: logger.EncodingConfig{
			EncodeTime: config.String(logger.ConfigurationKeyTimeEncoder),
		},
		OutputPaths: config.Strings(logger.ConfigurationKeyOutputPaths),
	}
}
