package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/bootstrap"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"

	"github.com/spf13/cobra"
)

// OwnerReportCmd renders the report of an owner to a file
func (handler *CommandHandler) OwnerReportCmd(cmd *cobra.Command, _ []string) error {
	ownerID, _ := cmd.Flags().GetString("owner-id")
	fromValue, _ := cmd.Flags().GetString("from")
	toValue, _ := cmd.Flags().GetString("to")
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	send, _ := cmd.Flags().GetBool("send")

	from, err := httputil.ParseDate(fromValue)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := httputil.ParseDate(toValue)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}

	return handler.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
		if send {
			if err := c.Reports.SendToOwner(cmd.Context(), ownerID, from, to); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "report sent to owner")
			return nil
		}

		report, err := c.Reports.OwnerReport(cmd.Context(), ownerID, from, to)
		if err != nil {
			return err
		}
		export, err := c.Reports.Export(cmd.Context(), report, strings.ToLower(format))
		if err != nil {
			return err
		}
		if out == "" {
			out = export.FileName
		}
		if err := os.WriteFile(out, export.Data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		t := report.Totals
		fmt.Fprintf(cmd.OutOrStdout(), "%d reservations, revenue %s, net %s, occupancy %.1f%%\n",
			t.Reservations, formatMoney(t.Revenue), formatMoney(t.NetAmount), t.Occupancy*100)
		handler.logger.Info("Report written to ", out)
		return nil
	})
}

// InitReportCommands registers the report command group
func InitReportCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Build owner reports",
	}

	ownerCmd := &cobra.Command{
		Use:   "owner",
		Short: "Render or email the report of an owner for a window of check-in days",
		Args:  cobra.NoArgs,
		RunE:  handler.OwnerReportCmd,
	}
	ownerCmd.Flags().String("owner-id", "", "Owner ID")
	ownerCmd.Flags().String("from", "", "First check-in day (YYYY-MM-DD)")
	ownerCmd.Flags().String("to", "", "Last check-in day (YYYY-MM-DD)")
	ownerCmd.Flags().String("format", reports.FormatPDF, "pdf, xlsx or csv")
	ownerCmd.Flags().String("out", "", "Output file, defaults to the report file name")
	ownerCmd.Flags().Bool("send", false, "Email the PDF to the owner instead of writing a file")
	for _, flag := range []string{"owner-id", "from", "to"} {
		_ = ownerCmd.MarkFlagRequired(flag)
	}
	reportCmd.AddCommand(ownerCmd)

	rootCmd.AddCommand(reportCmd)
}
