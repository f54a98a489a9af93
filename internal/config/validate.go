package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.VoterCode == "" || c.Auth.AdminCode == "" {
		return fmt.Errorf("auth.voter_code and auth.admin_code must be non-empty")
	}
	if c.Auth.VoterCode == c.Auth.AdminCode {
		return fmt.Errorf("auth.voter_code and auth.admin_code must differ")
	}
	if c.Auth.ChallengeTTL <= 0 {
		return fmt.Errorf("auth.challenge_ttl must be positive")
	}
	if c.Auth.CodeHashCost < bcrypt.MinCost || c.Auth.CodeHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.code_hash_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if strings.TrimSpace(c.Session.Path) == "" {
		return fmt.Errorf("session.path must be non-empty")
	}

	if c.Assistant.MaxTokens <= 0 {
		return fmt.Errorf("assistant.max_tokens must be positive")
	}
	if c.Assistant.Temperature < 0 || c.Assistant.Temperature > 1 {
		return fmt.Errorf("assistant.temperature must be within [0, 1]")
	}

	if !strings.HasPrefix(c.Voice.Endpoint, "ws://") && !strings.HasPrefix(c.Voice.Endpoint, "wss://") {
		return fmt.Errorf("voice.endpoint must be a ws:// or wss:// URL")
	}

	return nil
}
