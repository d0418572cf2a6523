// Package config manages starhash configuration: the grid resolution, cipher
// constants, vocabulary source, and name separator.
//
// Everything here is epoch-defining. The defaults match the published epoch;
// overriding any value produces an instance whose names are incompatible with
// names issued under other settings, which is why overrides exist for
// experimentation rather than day-to-day use.
package config

import (
	"github.com/starhash/starhash"
	"github.com/starhash/starhash/vocab"
)

// Config represents the starhash configuration
type Config struct {
	Grid       GridConfig       `mapstructure:"grid" toml:"grid"`
	Cipher     CipherConfig     `mapstructure:"cipher" toml:"cipher"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary" toml:"vocabulary"`
	Name       NameConfig       `mapstructure:"name" toml:"name"`
}

// GridConfig configures the HEALPix grid
type GridConfig struct {
	Nside int64 `mapstructure:"nside" toml:"nside"` // power of two; 65536 gives ~3.2 arcsec pixels
}

// CipherConfig configures the FF3 index permutation
type CipherConfig struct {
	Key   string `mapstructure:"key" toml:"key"`     // zero-padded to 32 bytes
	Tweak string `mapstructure:"tweak" toml:"tweak"` // truncated to 8 bytes
}

// VocabularyConfig configures the word list source
type VocabularyConfig struct {
	Path string `mapstructure:"path" toml:"path"` // empty = bundled default list
}

// NameConfig configures name rendering
type NameConfig struct {
	Separator string `mapstructure:"separator" toml:"separator"`
}

// Options translates the configuration into engine options, loading the
// vocabulary file if one is configured.
func (c *Config) Options() (starhash.Options, error) {
	opts := starhash.Options{
		Nside:     c.Grid.Nside,
		Key:       []byte(c.Cipher.Key),
		Tweak:     []byte(c.Cipher.Tweak),
		Separator: c.Name.Separator,
	}
	if c.Vocabulary.Path != "" {
		v, err := vocab.LoadFile(c.Vocabulary.Path)
		if err != nil {
			return starhash.Options{}, err
		}
		opts.Vocabulary = v
	}
	return opts, nil
}
