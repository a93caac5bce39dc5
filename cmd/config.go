package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/grahambinns/ancient-history-pokerlib/domain/poker"
)

// Config controls the demonstration table.
type Config struct {
	Players   int  `env:"POKERLIB_PLAYERS"    envDefault:"7"`
	Shuffles  int  `env:"POKERLIB_SHUFFLES"   envDefault:"1"`
	HoleCards int  `env:"POKERLIB_HOLE_CARDS" envDefault:"2"`
	Board     bool `env:"POKERLIB_BOARD"      envDefault:"true"`
}

// LoadConfig reads the table configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects tables a single deck cannot serve.
func (c Config) Validate() error {
	if c.Players < 1 {
		return fmt.Errorf("need at least one player, got %d", c.Players)
	}
	if c.HoleCards < 1 {
		return fmt.Errorf("need at least one hole card, got %d", c.HoleCards)
	}
	if c.Shuffles < 0 {
		return fmt.Errorf("shuffle count cannot be negative, got %d", c.Shuffles)
	}
	if need := c.CardsNeeded(); need > poker.DeckSize {
		return fmt.Errorf("%d players with %d hole cards need %d cards, deck has %d",
			c.Players, c.HoleCards, need, poker.DeckSize)
	}
	return nil
}

// CardsNeeded is the number of cards one hand at this table consumes.
func (c Config) CardsNeeded() int {
	n := c.Players * c.HoleCards
	if c.Board {
		n += boardSize
	}
	return n
}
