package main

// demoConfig is loaded via pkg/config from the process environment (and
// .env, if present). It only covers what the demo itself needs to pick
// a logger shape and a service name for its structured logs.
type demoConfig struct {
	ServiceName string `env:"RXDEMO_SERVICE_NAME" envDefault:"rxdemo"`
	Environment string `env:"RXDEMO_ENV" envDefault:"development"`
}
