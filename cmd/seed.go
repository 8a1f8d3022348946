package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"crimpqc/internal/bootstrap/logging"
	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

type refDataFile struct {
	Tools     []ports.CrimpingTool      `toml:"tools"`
	Terminals []ports.TerminalSpec      `toml:"terminals"`
	Wires     []ports.WireSpec          `toml:"wires"`
	Standards []ports.PullForceStandard `toml:"standards"`
}

// seedCmd loads the static lookup tables. The HTTP surface never writes
// them, so this is the only way reference data enters the system.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data (tools, terminals, wires, standards) from a TOML file",
	RunE: withApp(func(cmd *cobra.Command, deps *appDeps) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		path, _ := cmd.Flags().GetString("file")
		raw, err := os.ReadFile(path)
		if err != nil {
			return errs.Wrapf(err, "read seed file %q", path)
		}

		var data refDataFile
		if err := toml.Unmarshal(raw, &data); err != nil {
			return errs.Wrapf(err, "parse seed file %q", path)
		}

		if err := deps.UOW.WithTx(ctx, func(txCtx context.Context) error {
			if err := deps.Refs.UpsertTools(txCtx, data.Tools); err != nil {
				return err
			}
			if err := deps.Refs.UpsertTerminals(txCtx, data.Terminals); err != nil {
				return err
			}
			if err := deps.Refs.UpsertWires(txCtx, data.Wires); err != nil {
				return err
			}
			return deps.Refs.UpsertStandards(txCtx, data.Standards)
		}); err != nil {
			return errs.Wrap(err, "seed reference data")
		}

		logging.Info(ctx, "reference data seeded",
			slog.Int("tools", len(data.Tools)),
			slog.Int("terminals", len(data.Terminals)),
			slog.Int("wires", len(data.Wires)),
			slog.Int("standards", len(data.Standards)),
		)
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "reference data seeded from %s\n", path); err != nil {
			return errs.Wrap(err, "write seed output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().String("file", "configs/refdata.toml", "Reference data TOML file")
}
