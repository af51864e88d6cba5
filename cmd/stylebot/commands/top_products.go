package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stylebot-ai/support-engine/cmd/stylebot/ui"
)

func newTopProductsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-products",
		Short: "Show the best-selling products",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(cmd.Context())

			top := service.Store().TopProducts(limit)
			if len(top) == 0 {
				ui.Warning("No sales data available")
				return nil
			}

			rows := make([][]string, 0, len(top))
			for i, p := range top {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					p.Name,
					p.Category,
					fmt.Sprintf("%d", p.UnitsSold),
					fmt.Sprintf("$%.2f", p.UnitPrice),
					fmt.Sprintf("$%.2f", p.TotalRevenue),
				})
			}
			ui.Table([]string{"#", "Product", "Category", "Units sold", "Unit price", "Revenue"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "number of products to show")
	return cmd
}
