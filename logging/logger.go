// Package logging builds the zap loggers that carry list diagnostics.
//
// The plain format writes nothing but the message, one per line, so console
// output reads exactly like the diagnostics themselves. The json format uses
// zap's production encoder for machine consumption.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

var ErrUnknownFormat = errors.New("unknown log format")

// Options selects the level and encoding of a logger.
type Options struct {
	Level  string
	Format string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}
	}

	enc, err := encoder(opts.Format)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(out), level)
	return zap.New(core), nil
}

func encoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "", FormatPlain:
		return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			LineEnding: zapcore.DefaultLineEnding,
		}), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
