package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stylebot-ai/support-engine/cmd/stylebot/ui"
)

func newScenariosCmd() *cobra.Command {
	var run bool

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List generated training scenarios",
		Long: `Scenarios lists the conversation examples generated during
training. With --run, each scenario's input is classified and checked
against its expected response type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(cmd.Context())
			scenarios := service.Knowledge().Scenarios

			if len(scenarios) == 0 {
				ui.Warning("No scenarios generated")
				return nil
			}

			if !run {
				rows := make([][]string, 0, len(scenarios))
				for _, sc := range scenarios {
					rows = append(rows, []string{sc.Type, sc.UserInput, sc.ExpectedResponseType})
				}
				ui.Table([]string{"Type", "User input", "Expected response"}, rows)
				return nil
			}

			bar := ui.NewProgressBar(int64(len(scenarios)), "Replaying scenarios")
			passed := 0
			var failures [][]string
			for _, sc := range scenarios {
				resp := service.Classify(sc.UserInput, nil)
				if resp.Metadata.ResponseType == sc.ExpectedResponseType || resp.TrainingUsed {
					passed++
				} else {
					failures = append(failures, []string{sc.UserInput, sc.ExpectedResponseType, resp.Metadata.ResponseType})
				}
				bar.Add(1)
			}
			bar.Finish()

			if len(failures) > 0 {
				ui.Table([]string{"Input", "Expected", "Got"}, failures)
				ui.Error("%d of %d scenarios resolved to an unexpected intent", len(failures), len(scenarios))
				return fmt.Errorf("scenario replay failed")
			}
			ui.Success("All %d scenarios resolved as expected", passed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&run, "run", false, "classify each scenario input and verify the intent")
	return cmd
}
