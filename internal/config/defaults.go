package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			RequireComplete: false,
		},
		Preview: PreviewConfig{
			TickRate: 30,
			Speed:    1.0,
		},
		Log: LogConfig{
			Level: "info",
		},
		Serve: ServeConfig{
			Address:     ":2323",
			HostKey:     ".ssh/sprites_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}
