package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/pricing"
)

func newQuoteCmd(app *cliApp) *cobra.Command {
	var (
		serviceID uint
		quantity  string
		req       dto.QuoteRequest
	)
	cmd := &cobra.Command{
		Use:   "quote --service <id> (--method-id <id> | --method <name>)",
		Short: "Расчет цены метода с модификаторами услуги",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.MethodID == 0 && req.Method == "" {
				return errors.New("either --method-id or --method is required")
			}
			qty, err := decimal.NewFromString(quantity)
			if err != nil {
				return fmt.Errorf("--quantity: %w", err)
			}
			req.Quantity = qty
			if req.Quantity.IsNegative() || req.LevelsSpanned < 0 {
				return errors.New("--quantity and --levels must not be negative")
			}

			ctx := cmd.Context()
			store, err := app.open(ctx)
			if err != nil {
				return err
			}
			quoter := pricing.NewQuoter(store, store)

			var q pricing.Quote
			if req.MethodID != 0 {
				q, err = quoter.Quote(ctx, serviceID, req.MethodID, req.QuoteContext())
			} else {
				q, err = quoter.QuoteBySelector(ctx, serviceID, req.Method, req.QuoteContext())
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Base price:\t\t%s\n", q.BasePrice.StringFixed(2))
			for _, line := range q.Breakdown {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", line.ModifierName, signed(line.Delta.StringFixed(2)), line.RunningPrice.StringFixed(2))
			}
			fmt.Fprintf(tw, "Final price:\t\t%s\n", q.FinalPrice.StringFixed(2))
			return tw.Flush()
		},
	}

	cmd.Flags().UintVar(&serviceID, "service", 0, "ID услуги")
	cmd.Flags().UintVar(&req.MethodID, "method-id", 0, "ID метода")
	cmd.Flags().StringVar(&req.Method, "method", "", "имя или сокращение метода")
	cmd.Flags().StringVarP(&quantity, "quantity", "q", "1", "количество, допускается дробное (часы)")
	cmd.Flags().IntVar(&req.LevelsSpanned, "levels", 0, "число уровней для PER_LEVEL")
	cmd.Flags().StringToStringVar(&req.CustomFields, "field", nil, "пользовательские поля key=value")
	_ = cmd.MarkFlagRequired("service")
	return cmd
}

func signed(s string) string {
	if len(s) > 0 && s[0] != '-' {
		return "+" + s
	}
	return s
}
