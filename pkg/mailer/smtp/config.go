package smtp

import "time"

// Config holds SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string        `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	Username string        `env:"SENDER_EMAIL,required"`
	Password string        `env:"SENDER_PASSWORD,required"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}
