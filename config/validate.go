package config

import "github.com/starhash/starhash/errors"

// Validate checks that the configuration is valid.
// Vocabulary coverage (W^3 >= npix) is checked at engine construction, where
// the word count is known.
func (c *Config) Validate() error {
	if c.Grid.Nside < 1 {
		return errors.Newf("grid.nside must be positive, got %d", c.Grid.Nside)
	}
	if c.Grid.Nside&(c.Grid.Nside-1) != 0 {
		return errors.Newf("grid.nside must be a power of two, got %d", c.Grid.Nside)
	}

	if c.Cipher.Key == "" {
		return errors.New("cipher.key cannot be empty")
	}
	if len(c.Cipher.Key) > 32 {
		return errors.Newf("cipher.key must be at most 32 bytes, got %d", len(c.Cipher.Key))
	}
	if c.Cipher.Tweak == "" {
		return errors.New("cipher.tweak cannot be empty")
	}

	if c.Name.Separator == "" {
		return errors.New("name.separator cannot be empty")
	}

	return nil
}
