package config

import "github.com/caarlos0/env/v6"

// parseEnv overlays environment variables onto the config using the struct
// tags declared on Config. Unset variables leave the current values alone.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
