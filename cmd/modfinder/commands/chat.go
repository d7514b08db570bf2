package commands

import (
	"context"
	"fmt"
	"modfinder/lib/render"
	"modfinder/services/modfinder"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chatCmd)
}

// chatReply answers a query the way a chat bot would, as a list of
// messages that each fit in one chat message.
func chatReply(ctx context.Context, service modfinder.Service, text string, output OutputConfig) []string {
	result, err := service.Find(ctx, text)
	if err != nil {
		return []string{userMessage(err)}
	}
	if result.Empty() {
		return []string{msgNoMatch}
	}

	opts, err := output.renderOptions()
	if err != nil {
		return []string{err.Error()}
	}
	return render.SplitMessages(render.Table(result.Characters, opts), output.MessageLimit)
}

var chatCmd = &cobra.Command{
	Use:   "chat <query...>",
	Short: "Prints the answer to a query as chat messages that fit the message length limit.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}

		messages := chatReply(cmd.Context(), service, strings.Join(args, " "), cfg.Output)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(messages, "\n\n"))
		return nil
	},
}
