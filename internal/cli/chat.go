package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ayushs57139/jobportal-go/internal/device"
)

func newChatCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the career assistant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clear {
				if err := app.bot.Clear(); err != nil {
					return fmt.Errorf("clear chat history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Chat history cleared.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, msg := range app.bot.History() {
				printChatMessage(out, msg)
			}
			fmt.Fprintln(out, `Type a message, or "exit" to quit.`)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "you> ")
				if !scanner.Scan() {
					break
				}
				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if input == "exit" || input == "quit" {
					break
				}
				reply := app.bot.Reply(input)
				fmt.Fprintf(out, "bot> %s\n", reply.Content)
			}
			return scanner.Err()
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "wipe the saved conversation and exit")
	return cmd
}

func printChatMessage(out io.Writer, msg device.ChatMessage) {
	prefix := "you"
	if msg.Sender == "bot" {
		prefix = "bot"
	}
	fmt.Fprintf(out, "%s> %s\n", prefix, msg.Content)
}
