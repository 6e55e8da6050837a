// Package command implements the subcommands of the ecdsa tool.
package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecdsa/internal/config"
	"github.com/smallyu/go-ecdsa/internal/logging"
)

// App returns the root ecdsa command with every subcommand attached.
func App() *cli.Command {
	return &cli.Command{
		Name:  "ecdsa",
		Usage: "Generate keys, sign and verify with ECDSA",
		Flags: config.Flags(),
		Commands: []*cli.Command{
			GenerateCommand(),
			PublicCommand(),
			SignCommand(),
			VerifyCommand(),
			InspectCommand(),
			CurvesCommand(),
		},
	}
}

// setup resolves the global settings and builds a logger named after the
// running subcommand.
func setup(ctx context.Context, cmd *cli.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.FromCommand(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.Named(cmd.Name), nil
}

// writer returns the destination for command output.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// emit writes text to path, or to the command output when path is empty.
func emit(cmd *cli.Command, path, text string) error {
	if path == "" {
		_, err := io.WriteString(writer(cmd), text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
