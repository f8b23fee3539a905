package config

import (
	"errors"
	"fmt"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/console"
	"github.com/zalando/go-keyring"
)

// DefaultService namespaces pathkit's entries in the system keyring.
const DefaultService = "pathkit"

// Secrets stores credentials in the system keyring.
type Secrets struct {
	service string
}

// NewSecrets creates a Secrets store for the given keyring service name.
func NewSecrets(service string) (*Secrets, error) {
	if service == "" {
		return nil, fmt.Errorf("service name cannot be empty")
	}
	return &Secrets{service: service}, nil
}

// Set stores a value in the keyring under the given key.
func (s *Secrets) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	return keyring.Set(s.service, key, value)
}

// Get returns the value stored under key. A missing key is not an error;
// the boolean reports whether it was found.
func (s *Secrets) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}

	value, err := keyring.Get(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("keyring get %s: %w", key, err)
	}
	return value, true, nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Secrets) Delete(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if err := keyring.Delete(s.service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// SetFromInput prompts the user for a value and stores it under key.
func (s *Secrets) SetFromInput(key string, options console.InputOptions) (string, error) {
	value, err := console.Input(options)
	if err != nil {
		return "", err
	}

	if err := s.Set(key, value); err != nil {
		return "", err
	}
	return value, nil
}

func passwordKey(profile string) string { return "host/" + profile + "/password" }

func (s *Secrets) Password(profile string) (string, bool, error) {
	return s.Get(passwordKey(profile))
}

func (s *Secrets) SetPassword(profile, password string) error {
	return s.Set(passwordKey(profile), password)
}

func (s *Secrets) DeletePassword(profile string) error {
	return s.Delete(passwordKey(profile))
}

// PromptPassword asks for the password of profile without echoing it and
// stores the answer.
func (s *Secrets) PromptPassword(profile string) error {
	options := console.DefaultInputOptions()
	options.Prompt = fmt.Sprintf("Password for %s:", profile)
	options.Secret = true
	options.Required = true

	_, err := s.SetFromInput(passwordKey(profile), options)
	return err
}
