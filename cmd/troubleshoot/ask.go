package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/botivate/troubleshoot/pkg/support"
)

const defaultQuestion = "Google Sheet script is not sending emails"

func newAskCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Run a single troubleshooting turn with an empty history",
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				question = defaultQuestion
			}
			h, err := newHandler()
			if err != nil {
				return err
			}
			out := h.Handle(cmd.Context(), support.State{Question: question, History: []support.Turn{}})
			return printAnswer(cmd.OutOrStdout(), out, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resulting state and parsed sections as JSON")
	return cmd
}

func printAnswer(w io.Writer, out support.State, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			support.State
			Sections support.Sections `json:"sections"`
		}{State: out, Sections: support.ParseSections(out.Answer)})
	}
	_, err := fmt.Fprintf(w, "\n-------------------- FINAL AI ANSWER --------------------\n\n%s\n", out.Answer)
	return err
}
