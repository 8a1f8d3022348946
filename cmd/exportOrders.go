package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"crimpqc/internal/bootstrap/logging"
	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

type exportSample struct {
	SampleIndex   int      `yaml:"sample_index"`
	MeasuredForce *float64 `yaml:"measured_force"`
	IsPassed      *bool    `yaml:"is_passed"`
}

type exportRecord struct {
	ID            string         `yaml:"id"`
	Type          *string        `yaml:"type"`
	SubmitterName *string        `yaml:"submitter_name"`
	SubmittedAt   *time.Time     `yaml:"submitted_at"`
	Status        int            `yaml:"status"`
	AuditorName   *string        `yaml:"auditor_name"`
	AuditedAt     *time.Time     `yaml:"audited_at"`
	AuditNote     *string        `yaml:"audit_note"`
	Samples       []exportSample `yaml:"samples"`
}

type exportOrder struct {
	ID                string         `yaml:"id"`
	ProductionOrderNo string         `yaml:"production_order_no"`
	ProductName       *string        `yaml:"product_name"`
	ProductModel      *string        `yaml:"product_model"`
	ToolNo            *string        `yaml:"tool_no"`
	StandardPullForce *float64       `yaml:"standard_pull_force"`
	CreatorName       *string        `yaml:"creator_name"`
	IsClosed          bool           `yaml:"is_closed"`
	CreatedAt         time.Time      `yaml:"created_at"`
	Records           []exportRecord `yaml:"records"`
}

// exportOrdersCmd dumps the full order tree for offline QC reporting.
var exportOrdersCmd = &cobra.Command{
	Use:   "export-orders",
	Short: "Export all orders with records and samples as YAML",
	RunE: withApp(func(cmd *cobra.Command, deps *appDeps) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		orders, err := deps.Crimping.ListOrders(ctx)
		if err != nil {
			return errs.Wrap(err, "list orders")
		}

		out, err := yaml.Marshal(toExportOrders(orders))
		if err != nil {
			return errs.Wrap(err, "marshal orders")
		}

		path, _ := cmd.Flags().GetString("out")
		if path == "" || path == "-" {
			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return errs.Wrap(err, "write export output")
			}
			return nil
		}

		if err := os.WriteFile(path, out, 0o644); err != nil {
			return errs.Wrapf(err, "write export file %q", path)
		}
		logging.Info(ctx, "orders exported", slog.Int("count", len(orders)), slog.String("path", path))
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "exported %d orders to %s\n", len(orders), path); err != nil {
			return errs.Wrap(err, "write export output")
		}
		return nil
	}),
}

func toExportOrders(orders []ports.ProductionOrder) []exportOrder {
	out := make([]exportOrder, 0, len(orders))
	for _, order := range orders {
		records := make([]exportRecord, 0, len(order.Records))
		for _, record := range order.Records {
			samples := make([]exportSample, 0, len(record.Samples))
			for _, sample := range record.Samples {
				samples = append(samples, exportSample{
					SampleIndex:   sample.SampleIndex,
					MeasuredForce: sample.MeasuredForce,
					IsPassed:      sample.IsPassed,
				})
			}
			records = append(records, exportRecord{
				ID:            record.ID,
				Type:          record.Type,
				SubmitterName: record.SubmitterName,
				SubmittedAt:   record.SubmittedAt,
				Status:        record.Status,
				AuditorName:   record.AuditorName,
				AuditedAt:     record.AuditedAt,
				AuditNote:     record.AuditNote,
				Samples:       samples,
			})
		}
		out = append(out, exportOrder{
			ID:                order.ID,
			ProductionOrderNo: order.ProductionOrderNo,
			ProductName:       order.ProductName,
			ProductModel:      order.ProductModel,
			ToolNo:            order.ToolNo,
			StandardPullForce: order.StandardPullForce,
			CreatorName:       order.CreatorName,
			IsClosed:          order.IsClosed,
			CreatedAt:         order.CreatedAt,
			Records:           records,
		})
	}
	return out
}

func init() {
	rootCmd.AddCommand(exportOrdersCmd)
	exportOrdersCmd.Flags().String("out", "-", "Output file, or - for stdout")
}
