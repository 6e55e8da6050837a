package command

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

// GenerateCommand creates the generate command
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a private key on the selected curve",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write the private key to this file instead of stdout",
			},
		},
		Action: runGenerateCommand,
	}
}

func runGenerateCommand(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	curve, err := cfg.CurveParams()
	if err != nil {
		return err
	}
	logger.Debug("generating key", zap.String("curve", curve.Name))

	key, err := ecdsa.GeneratePrivateKey(curve)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	text, err := formatPrivateKey(key, cfg.Output)
	if err != nil {
		return err
	}

	logger.Info("generated key", zap.String("curve", curve.Name), zap.String("public", key.PublicKey().Hex()))
	return emit(cmd, cmd.String("out"), text)
}

// PublicCommand creates the public command
func PublicCommand() *cli.Command {
	return &cli.Command{
		Name:  "public",
		Usage: "Derive the public key of a private key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Path to the private key (PEM, hex DER or hex scalar)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write the public key to this file instead of stdout",
			},
		},
		Action: runPublicCommand,
	}
}

func runPublicCommand(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	curve, err := cfg.CurveParams()
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
	logger.Debug("loaded private key", zap.String("curve", key.Curve.Name))

	out, err := formatPublicKey(key.PublicKey(), cfg.Output)
	if err != nil {
		return err
	}
	return emit(cmd, cmd.String("out"), out)
}

// InspectCommand creates the inspect command
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Describe a PEM or DER encoded key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Path to a private or public key",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output in JSON format",
			},
		},
		Action: runInspectCommand,
	}
}

// keyInfo is the description printed by inspect.
type keyInfo struct {
	Type      string `json:"type"`
	Curve     string `json:"curve"`
	OID       string `json:"oid"`
	Bits      int    `json:"bits"`
	PublicKey string `json:"publicKey"`
}

func runInspectCommand(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	curve, err := cfg.CurveParams()
	if err != nil {
		return err
	}
	text, err := readText(cmd.String("key"))
	if err != nil {
		return err
	}

	info, err := inspectKey(text, curve)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		jsonBytes, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return emit(cmd, "", string(jsonBytes)+"\n")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Type:       %s\n", info.Type)
	fmt.Fprintf(&sb, "Curve:      %s\n", info.Curve)
	fmt.Fprintf(&sb, "OID:        %s\n", info.OID)
	fmt.Fprintf(&sb, "Bits:       %d\n", info.Bits)
	fmt.Fprintf(&sb, "Public key: %s\n", info.PublicKey)
	return emit(cmd, "", sb.String())
}

// inspectKey tries the private key encodings first, then the public ones.
func inspectKey(text string, curve *ecdsa.Curve) (*keyInfo, error) {
	describe := func(kind string, pub *ecdsa.PublicKey) *keyInfo {
		return &keyInfo{
			Type:      kind,
			Curve:     pub.Curve.Name,
			OID:       curves.FormatOID(pub.Curve.OID),
			Bits:      pub.Curve.N.BitLen(),
			PublicKey: hex.EncodeToString(pub.Uncompressed()),
		}
	}

	if key, err := parsePrivateKey(text, curve); err == nil {
		return describe("private key", key.PublicKey()), nil
	}
	pub, err := parsePublicKey(text, curve)
	if err != nil {
		return nil, fmt.Errorf("not a private or public key: %w", err)
	}
	return describe("public key", pub), nil
}
