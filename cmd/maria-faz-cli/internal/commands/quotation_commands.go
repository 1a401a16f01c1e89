package commands

import (
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/app"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"

	"github.com/spf13/cobra"
)

// CalculateQuotationCmd prints the price breakdown of a property without storing anything
func (handler *CommandHandler) CalculateQuotationCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := handler.loadConfig()
	if err != nil {
		return err
	}
	calculator, err := app.NewFormulaPriceCalculator(&cfg.Pricing)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	input := &quotations.PricingInput{}
	input.PropertyType, _ = flags.GetString("type")
	input.Area, _ = flags.GetFloat64("area")
	input.ExteriorArea, _ = flags.GetFloat64("exterior-area")
	input.Bedrooms, _ = flags.GetInt("bedrooms")
	input.Bathrooms, _ = flags.GetInt("bathrooms")
	input.IsDuplex, _ = flags.GetBool("duplex")
	input.HasBBQ, _ = flags.GetBool("bbq")
	input.HasGlassGarden, _ = flags.GetBool("glass-garden")

	price, err := calculator.Calculate(input)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "base:       %s\n", formatMoney(price.BasePrice))
	fmt.Fprintf(w, "additional: %s\n", formatMoney(price.AdditionalPrice))
	fmt.Fprintf(w, "total:      %s\n", formatMoney(price.TotalPrice))
	return nil
}

// InitQuotationCommands registers the quotation command group
func InitQuotationCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	quotationCmd := &cobra.Command{
		Use:   "quotation",
		Short: "Quotation tools",
	}

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a quotation price with the configured formulas",
		Args:  cobra.NoArgs,
		RunE:  handler.CalculateQuotationCmd,
	}
	calculateCmd.Flags().String("type", "apartment", "apartment, house, villa or commercial")
	calculateCmd.Flags().Float64("area", 0, "Interior area in m²")
	calculateCmd.Flags().Float64("exterior-area", 0, "Exterior area in m²")
	calculateCmd.Flags().Int("bedrooms", 0, "Number of bedrooms")
	calculateCmd.Flags().Int("bathrooms", 0, "Number of bathrooms")
	calculateCmd.Flags().Bool("duplex", false, "Property is a duplex")
	calculateCmd.Flags().Bool("bbq", false, "Property has a barbecue")
	calculateCmd.Flags().Bool("glass-garden", false, "Property has a glass garden")
	_ = calculateCmd.MarkFlagRequired("area")
	quotationCmd.AddCommand(calculateCmd)

	rootCmd.AddCommand(quotationCmd)
}
