package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/controlactions/ierrors"
)

// Logger is the logger used throughout the module.
type Logger = zap.SugaredLogger

// ErrInvalidConfig is returned when a logger config contains an invalid value.
var ErrInvalidConfig = ierrors.New("invalid logger config")

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	atomicLevel := zap.NewAtomicLevel()
	if err := atomicLevel.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(ErrInvalidConfig, "level %q", cfg.Level)
	}

	stacktraceLevel := zapcore.PanicLevel
	if cfg.StacktraceLevel != "" {
		if err := stacktraceLevel.UnmarshalText([]byte(cfg.StacktraceLevel)); err != nil {
			return nil, ierrors.Wrapf(ErrInvalidConfig, "stacktrace level %q", cfg.StacktraceLevel)
		}
	}

	encoderConfig := defaultEncoderConfig
	if cfg.EncodingConfig.EncodeTime != "" {
		if err := encoderConfig.EncodeTime.UnmarshalText([]byte(cfg.EncodingConfig.EncodeTime)); err != nil {
			return nil, ierrors.Wrapf(ErrInvalidConfig, "time encoder %q", cfg.EncodingConfig.EncodeTime)
		}
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = DefaultCfg.Encoding
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = DefaultCfg.OutputPaths
	}

	zapCfg := zap.Config{
		Level:             atomicLevel,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	var opts []zap.Option
	if !cfg.DisableStacktrace {
		opts = append(opts, zap.AddStacktrace(stacktraceLevel))
	}

	root, err := zapCfg.Build(opts...)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build logger")
	}

	return root.Sugar(), nil
}
