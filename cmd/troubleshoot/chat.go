package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/botivate/troubleshoot/pkg/conversation"
	"github.com/botivate/troubleshoot/pkg/support"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive conversation; history is kept until exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHandler()
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), h)
		},
	}
}

// runChat reads one question per line and carries the history between turns.
// An empty line is skipped; "exit" or "quit" ends the session.
func runChat(ctx context.Context, in io.Reader, out io.Writer, turns conversation.TurnHandler) error {
	fmt.Fprintln(out, support.Greeting)
	state := support.State{History: []support.Turn{}}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		state.Question = line
		state = turns.Handle(ctx, state)
		fmt.Fprintf(out, "\n%s\n\n", state.Answer)
	}
}
