package config

import (
	"github.com/spf13/viper"

	"github.com/starhash/starhash"
)

// Default filesystem permissions
const (
	DefaultDirPermissions  = 0o755
	DefaultFilePermissions = 0o644
)

// SetDefaults configures default values for all configuration options.
// These are the published epoch constants.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("grid.nside", int64(starhash.DefaultNside))

	v.SetDefault("cipher.key", string(starhash.DefaultKey))
	v.SetDefault("cipher.tweak", string(starhash.DefaultTweak))

	v.SetDefault("vocabulary.path", "") // bundled list

	v.SetDefault("name.separator", starhash.DefaultSeparator)
}

// Default returns a Config holding the published epoch constants.
func Default() *Config {
	return &Config{
		Grid:       GridConfig{Nside: starhash.DefaultNside},
		Cipher:     CipherConfig{Key: string(starhash.DefaultKey), Tweak: string(starhash.DefaultTweak)},
		Vocabulary: VocabularyConfig{Path: ""},
		Name:       NameConfig{Separator: starhash.DefaultSeparator},
	}
}
