package oura

import "time"

// Config holds Oura API client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	AccessToken string        `env:"OURA_ACCESS_TOKEN,required"`
	BaseURL     string        `env:"OURA_BASE_URL" envDefault:"https://api.ouraring.com"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}
