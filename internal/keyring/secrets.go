package keyring

import (
	"log/slog"

	"github.com/alkime/postgen/internal/config"
)

// Resolve returns current when it is non-empty and the keychain value otherwise.
// A keychain miss yields "" and the lookup error.
func Resolve(current string, apiKey APIKey) (string, error) {
	if current != "" {
		return current, nil
	}

	return Get(apiKey)
}

// FillSecrets copies keychain values into the secret fields cfg left empty.
// Environment values take priority; keychain misses are logged at debug.
func FillSecrets(cfg *config.Config, logger *slog.Logger) {
	if secret, err := Resolve(cfg.Azure.Key, Azure); err == nil {
		cfg.Azure.Key = secret
	} else {
		logger.Debug("keychain lookup failed", "key", Azure.DisplayName(), "error", err)
	}

	if secret, err := Resolve(cfg.Anthropic.APIKey, Anthropic); err == nil {
		cfg.Anthropic.APIKey = secret
	} else {
		logger.Debug("keychain lookup failed", "key", Anthropic.DisplayName(), "error", err)
	}
}
