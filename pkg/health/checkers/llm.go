package checkers

import (
	"context"
	"errors"
	"strings"
)

// CredentialChecker fails readiness when the completion provider has no API
// key. It does not call the provider.
type CredentialChecker struct {
	provider string
	apiKey   string
}

func NewCredentialChecker(provider, apiKey string) *CredentialChecker {
	return &CredentialChecker{provider: provider, apiKey: apiKey}
}

func (c *CredentialChecker) Name() string { return "llm:" + c.provider }

func (c *CredentialChecker) Check(context.Context) error {
	if strings.TrimSpace(c.apiKey) == "" {
		return errors.New("api key is not configured")
	}
	return nil
}
