package command

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

// CurvesCommand creates the curves command
func CurvesCommand() *cli.Command {
	return &cli.Command{
		Name:  "curves",
		Usage: "List the supported curves and hash functions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output in JSON format",
			},
		},
		Action: runCurvesCommand,
	}
}

type curveInfo struct {
	Name string `json:"name"`
	OID  string `json:"oid"`
	Bits int    `json:"bits"`
}

func runCurvesCommand(ctx context.Context, cmd *cli.Command) error {
	var list []curveInfo
	for _, c := range ecdsa.SupportedCurves() {
		list = append(list, curveInfo{Name: c.Name, OID: curves.FormatOID(c.OID), Bits: c.N.BitLen()})
	}

	if cmd.Bool("json") {
		jsonBytes, err := json.MarshalIndent(map[string]interface{}{
			"curves": list,
			"hashes": digest.Names(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return emit(cmd, "", string(jsonBytes)+"\n")
	}

	var sb strings.Builder
	sb.WriteString("=== Curves ===\n")
	for _, c := range list {
		fmt.Fprintf(&sb, "%-12s %-22s %d bits\n", c.Name, c.OID, c.Bits)
	}
	sb.WriteString("\n=== Hashes ===\n")
	for _, name := range digest.Names() {
		fmt.Fprintf(&sb, "%s\n", name)
	}
	return emit(cmd, "", sb.String())
}
