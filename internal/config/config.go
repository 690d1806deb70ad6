package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE"`
	Port       int    `env:"PORT" envDefault:"8080"`
	Secret     string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	// CredentialsFile switches the user repository to a CSV file when set.
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	BcryptHasherCost int `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	DispatchPeriod  time.Duration `env:"DISPATCH_PERIOD" envDefault:"20s"`
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"10s"`
	DeliveryPolicy  string        `env:"DELIVERY_POLICY" envDefault:"single-attempt"`

	AttemptsExchange string `env:"ATTEMPTS_EXCHANGE" envDefault:""`
	AttemptsQueue    string `env:"ATTEMPTS_QUEUE" envDefault:"delivery-attempts"`

	AwsRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey   string `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey   string `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender string `env:"AWS_EMAIL_SENDER,required"`

	AssistantBaseURL string        `env:"ASSISTANT_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	AssistantModel   string        `env:"ASSISTANT_MODEL" envDefault:"gemini-1.5-flash"`
	AssistantAPIKey  string        `env:"ASSISTANT_API_KEY,required"`
	AssistantTimeout time.Duration `env:"ASSISTANT_TIMEOUT" envDefault:"30s"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
