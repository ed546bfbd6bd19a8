package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/botivate/troubleshoot/pkg/config"
	"github.com/botivate/troubleshoot/pkg/security/jwt"
)

func newTokenCommand() *cobra.Command {
	var subject, name string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the conversation API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			gen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
			token, err := gen.Generate(cmd.Context(), subject, name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "owner id embedded as the token subject")
	cmd.Flags().StringVar(&name, "name", "", "optional display name")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
