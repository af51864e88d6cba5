package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stylebot-ai/support-engine/cmd/stylebot/ui"
)

func newTrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train the knowledge base and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(cmd.Context())
			result := service.TrainingResult()

			if !result.Success {
				ui.Error("Training failed: every step was skipped")
				return fmt.Errorf("training failed")
			}

			ui.Success("Training completed (%d steps run, %d skipped)",
				len(result.StepsRun), len(result.StepsSkipped))
			if len(result.StepsSkipped) > 0 {
				ui.Warning("Skipped steps: %s", strings.Join(result.StepsSkipped, ", "))
			}

			s := result.Summary
			ui.Table(
				[]string{"Metric", "Value"},
				[][]string{
					{"Categories analyzed", fmt.Sprintf("%d", s.CategoriesAnalyzed)},
					{"Brands analyzed", fmt.Sprintf("%d", s.BrandsAnalyzed)},
					{"Order status types", fmt.Sprintf("%d", s.StatusTypes)},
					{"Popular products", fmt.Sprintf("%d", s.PopularProducts)},
					{"Availability rate", fmt.Sprintf("%.1f%%", s.AvailabilityRate)},
					{"Categories in stock", fmt.Sprintf("%d", s.CategoriesAvailable)},
					{"Users", fmt.Sprintf("%d", s.TotalUsers)},
					{"Repeat customers", fmt.Sprintf("%d", s.RepeatCustomers)},
					{"Training scenarios", fmt.Sprintf("%d", s.TrainingScenarios)},
					{"Response templates", fmt.Sprintf("%d", s.ResponseTemplates)},
				},
			)
			return nil
		},
	}
}
