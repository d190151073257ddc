package format

import (
	"fmt"
	"time"
)

// Config holds the defaults the command line applies to formatting calls.
type Config struct {
	// Currency is the currency code used when none is given.
	Currency string `mapstructure:"currency" default:"usd"`
	// Timezone is an IANA zone name, "Local" or "UTC".
	Timezone string `mapstructure:"timezone" default:"Local"`
	// Decimal selects 1000-based size units instead of 1024-based.
	Decimal bool `mapstructure:"decimal" default:"false"`
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
