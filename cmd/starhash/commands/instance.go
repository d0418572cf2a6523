package commands

import (
	"github.com/starhash/starhash"
	"github.com/starhash/starhash/config"
	"github.com/starhash/starhash/errors"
)

// newInstance builds the engine from the merged configuration. Vocabulary
// coverage is verified here, so every subcommand fails fast on a bad epoch.
func newInstance() (*starhash.StarHash, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return starhash.New(opts)
}
