// Package keyring stores the completion provider secrets in the system
// keychain under the "postgen" service. Environment variables always take
// priority; see FillSecrets.
package keyring

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "postgen"

// APIKey is the keychain account name of one provider secret.
type APIKey string

const (
	// Azure holds AZURE_OPENAI_KEY. The other three Azure settings are not secret
	// and only come from the environment.
	Azure APIKey = "azure-openai-key"
	// Anthropic holds ANTHROPIC_API_KEY.
	Anthropic APIKey = "anthropic-api-key"
)

// AllAPIKeys lists the secrets in the order list-keys prints them.
func AllAPIKeys() []APIKey {
	return []APIKey{Azure, Anthropic}
}

// DisplayName is the service name used on the command line.
func (k APIKey) DisplayName() string {
	switch k {
	case Azure:
		return "azure"
	case Anthropic:
		return "anthropic"
	default:
		return string(k)
	}
}

// Get retrieves an API key value from the system keychain.
func Get(apiKey APIKey) (string, error) {
	value, err := keyring.Get(serviceName, string(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to get %s from keychain: %w", apiKey.DisplayName(), err)
	}

	return value, nil
}

// Set stores an API key value in the system keychain.
func Set(apiKey APIKey, value string) error {
	if err := keyring.Set(serviceName, string(apiKey), value); err != nil {
		return fmt.Errorf("failed to set %s in keychain: %w", apiKey.DisplayName(), err)
	}

	return nil
}

// IsSet reports whether the keychain holds a value for apiKey.
func IsSet(apiKey APIKey) bool {
	_, err := keyring.Get(serviceName, string(apiKey))

	return err == nil
}

// APIKeyFromServiceName maps a set-key service argument to its APIKey.
func APIKeyFromServiceName(name string) (APIKey, error) {
	switch name {
	case "azure":
		return Azure, nil
	case "anthropic":
		return Anthropic, nil
	default:
		return "", fmt.Errorf("unknown service: %s", name)
	}
}
