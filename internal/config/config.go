// Package config centralises environment-sourced configuration for the binary.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/ouramail/pkg/mailer"
	"github.com/dmitrymomot/ouramail/pkg/mailer/smtp"
	"github.com/dmitrymomot/ouramail/pkg/oura"
	"github.com/dmitrymomot/ouramail/pkg/scheduler"
)

// Config is the immutable application configuration, read once at startup and
// passed to each component.
type Config struct {
	Oura     oura.Config
	SMTP     smtp.Config
	Mailer   mailer.Config
	Schedule scheduler.Config

	Recipient string `env:"RECIPIENT_EMAIL,required"`
}

// Load parses the environment into Config. Missing required values fail here,
// before any component starts.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
