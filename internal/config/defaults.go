package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultConfig returns the stock match: three T1000s in an 80x40 arena.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  80,
			Height: 40,
		},
		Match: MatchConfig{
			Seed:     0,
			TickRate: 8,
			MaxTicks: 2000,
		},
		Robots: []RobotConfig{
			{ID: "A", Bot: "t1000"},
			{ID: "B", Bot: "t1000"},
			{ID: "C", Bot: "t1000"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
