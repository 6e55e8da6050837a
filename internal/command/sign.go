package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

// messageFlags are shared by sign and verify.
func messageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "message",
			Usage: "Message text",
		},
		&cli.StringFlag{
			Name:  "in",
			Usage: "Path to a file holding the message",
		},
	}
}

// SignCommand creates the sign command
func SignCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "Sign a message with a private key",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Path to the private key (PEM, hex DER or hex scalar)",
				Required: true,
			},
		}, messageFlags()...),
		Action: runSignCommand,
	}
}

func runSignCommand(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	curve, err := cfg.CurveParams()
	if err != nil {
		return err
	}
	hash, err := cfg.HashFunc()
	if err != nil {
		return err
	}
	text, err := readText(cmd.String("key"))
	if err != nil {
		return err
	}
	key, err := parsePrivateKey(text, curve)
	if err != nil {
		return fmt.Errorf("failed to load private key: %w", err)
	}
	message, err := readMessage(cmd)
	if err != nil {
		return err
	}
	logger.Debug("signing", zap.String("curve", key.Curve.Name), zap.String("hash", cfg.Hash), zap.Int("bytes", len(message)))

	sig, err := ecdsa.SignWith(nil, message, key, hash)
	if err != nil {
		return fmt.Errorf("failed to sign: %w", err)
	}
	out, err := formatSignature(sig, cfg.Output)
	if err != nil {
		return err
	}
	return emit(cmd, "", out)
}

// VerifyCommand creates the verify command
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify a signature against a public key",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Path to the public key (PEM, hex DER or hex point)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "signature",
				Usage:    "Signature as Base64 or hex DER",
				Required: true,
			},
		}, messageFlags()...),
		Action: runVerifyCommand,
	}
}

func runVerifyCommand(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	curve, err := cfg.CurveParams()
	if err != nil {
		return err
	}
	hash, err := cfg.HashFunc()
	if err != nil {
		return err
	}
	text, err := readText(cmd.String("key"))
	if err != nil {
		return err
	}
	key, err := parsePublicKey(text, curve)
	if err != nil {
		return fmt.Errorf("failed to load public key: %w", err)
	}
	sig, err := parseSignature(cmd.String("signature"))
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}
	message, err := readMessage(cmd)
	if err != nil {
		return err
	}

	if !ecdsa.VerifyWith(message, sig, key, hash) {
		logger.Info("signature rejected", zap.String("curve", key.Curve.Name), zap.String("hash", cfg.Hash))
		return cli.Exit("signature is invalid", 1)
	}
	logger.Info("signature verified", zap.String("curve", key.Curve.Name), zap.String("hash", cfg.Hash))
	return emit(cmd, "", "valid\n")
}
