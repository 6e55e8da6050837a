// Package config holds the settings shared by every ecdsa subcommand and
// binds them to command line flags and environment variables.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

// Output formats for keys and signatures.
const (
	OutputPEM = "pem" // PEM keys, Base64 signatures
	OutputDER = "der" // hex-encoded DER
	OutputRaw = "raw" // hex-encoded fixed-width scalars and points
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Environment variables backing the global flags.
const (
	EnvCurve     = "ECDSA_CURVE"
	EnvHash      = "ECDSA_HASH"
	EnvLogLevel  = "ECDSA_LOG_LEVEL"
	EnvLogFormat = "ECDSA_LOG_FORMAT"
	EnvOutput    = "ECDSA_OUTPUT"
)

// Flag names.
const (
	FlagCurve     = "curve"
	FlagHash      = "hash"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagOutput    = "output"
)

// Config is the resolved set of global settings.
type Config struct {
	Curve     string
	Hash      string
	LogLevel  string
	LogFormat string
	Output    string
}

// Default returns the settings used when no flag or variable is set.
func Default() *Config {
	return &Config{
		Curve:     ecdsa.Secp256k1().Name,
		Hash:      "sha256",
		LogLevel:  "info",
		LogFormat: LogFormatConsole,
		Output:    OutputPEM,
	}
}

// Flags returns the global flags, each with its default and environment
// variable.
func Flags() []cli.Flag {
	def := Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagCurve,
			Usage:   "Curve name (see the curves command)",
			Value:   def.Curve,
			Sources: cli.EnvVars(EnvCurve),
		},
		&cli.StringFlag{
			Name:    FlagHash,
			Usage:   "Message digest used by sign and verify",
			Value:   def.Hash,
			Sources: cli.EnvVars(EnvHash),
		},
		&cli.StringFlag{
			Name:    FlagLogLevel,
			Usage:   "Log level: debug, info, warn or error",
			Value:   def.LogLevel,
			Sources: cli.EnvVars(EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    FlagLogFormat,
			Usage:   "Log format: console or json",
			Value:   def.LogFormat,
			Sources: cli.EnvVars(EnvLogFormat),
		},
		&cli.StringFlag{
			Name:    FlagOutput,
			Usage:   "Output encoding: pem, der or raw",
			Value:   def.Output,
			Sources: cli.EnvVars(EnvOutput),
		},
	}
}

// FromCommand reads the global flags of cmd and validates them.
func FromCommand(_ context.Context, cmd *cli.Command) (*Config, error) {
	c := &Config{
		Curve:     cmd.String(FlagCurve),
		Hash:      cmd.String(FlagHash),
		LogLevel:  cmd.String(FlagLogLevel),
		LogFormat: cmd.String(FlagLogFormat),
		Output:    cmd.String(FlagOutput),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every setting. Curve and hash names are resolved against
// their registries so the error names the available choices.
func (c *Config) Validate() error {
	if _, err := ecdsa.CurveByName(c.Curve); err != nil {
		return err
	}
	if _, err := ecdsa.HashByName(c.Hash); err != nil {
		return err
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q, expected debug, info, warn or error", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q, expected %s or %s", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	switch c.Output {
	case OutputPEM, OutputDER, OutputRaw:
	default:
		return fmt.Errorf("invalid output %q, expected %s, %s or %s", c.Output, OutputPEM, OutputDER, OutputRaw)
	}
	return nil
}

// CurveParams returns the configured curve.
func (c *Config) CurveParams() (*ecdsa.Curve, error) {
	return ecdsa.CurveByName(c.Curve)
}

// HashFunc returns the configured digest.
func (c *Config) HashFunc() (ecdsa.HashFunc, error) {
	return ecdsa.HashByName(c.Hash)
}
