package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stylebot-ai/support-engine/cmd/stylebot/ui"
	"github.com/stylebot-ai/support-engine/internal/chat"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the bot a question, or chat interactively",
		Long: `Ask classifies a question and prints the rendered response.
With no argument it starts an interactive session; type "exit" to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(cmd.Context())

			if len(args) > 0 {
				printResponse(service.Classify(strings.Join(args, " "), nil))
				return nil
			}

			ui.Message("%s", service.Welcome().Text)
			ui.Message("Type your question, or \"exit\" to quit.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				ui.Prompt(cfg.Bot.Name)
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}
				printResponse(service.Classify(line, nil))
			}
			return scanner.Err()
		},
	}
}

func printResponse(resp chat.Response) {
	ui.Box("", resp.Text)
	if len(resp.QuickReplies) > 0 {
		ui.Info("Quick replies: %s", strings.Join(resp.QuickReplies, " | "))
	}
	if len(resp.Suggestions) > 0 {
		ui.Info("Suggestions: %s", strings.Join(resp.Suggestions, " | "))
	}
	if verbose {
		ui.Message("intent=%s confidence=%.2f trained=%v",
			resp.IntentTag, resp.Confidence, resp.TrainingUsed)
	}
	fmt.Println()
}
