package configs

// AMQP configures the escrow event feed. An empty URL disables publishing.
type AMQP struct {
	URL      string `env:"URL"`
	Exchange string `env:"EXCHANGE" envDefault:"escrow_events"`
}
