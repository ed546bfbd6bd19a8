package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/botivate/troubleshoot/pkg/config"
	"github.com/botivate/troubleshoot/pkg/llm/provider"
	"github.com/botivate/troubleshoot/pkg/logging"
	"github.com/botivate/troubleshoot/pkg/support"
)

func main() {
	if err := newRoot().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "troubleshoot",
		Short:        "Ask the Botivate troubleshooting assistant from the terminal",
		SilenceUsage: true,
	}
	root.AddCommand(newAskCommand())
	root.AddCommand(newChatCommand())
	root.AddCommand(newTokenCommand())
	return root
}

// newHandler wires the turn handler from the environment. Diagnostics go to
// stderr so answers on stdout stay clean.
func newHandler() (*support.Handler, error) {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	model, err := provider.New(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.APIKey() == "" {
		logger.Warn().Str("provider", cfg.LLMProvider).Msg("no API key configured; answers will fall back")
	}
	return support.NewHandler(model, logger), nil
}
