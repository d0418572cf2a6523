// Package starhash assigns a stable three-word name to every ~3 arcsecond
// patch of the celestial sphere, and recovers the patch center from a name.
//
// The pipeline is coordinate -> HEALPix pixel -> FF3-permuted index ->
// three-word name; decoding runs the same chain in reverse. Coordinates are
// quantized to their patch, so coordinate round-trips are lossy by design,
// while name -> index -> name is exact.
//
// The triple (vocabulary, nside, cipher constants) forms one compatibility
// epoch: names issued under one epoch only decode correctly under the same
// epoch.
package starhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/starhash/starhash/healpix"
	"github.com/starhash/starhash/logger"
	"github.com/starhash/starhash/permute"
	"github.com/starhash/starhash/vocab"
	"github.com/starhash/starhash/words"
)

// Published epoch defaults. Changing any of these remaps every name already
// issued, so they are frozen alongside the bundled vocabulary.
const (
	// DefaultNside yields 12*65536^2 pixels of ~3.2 arcsec mean spacing.
	DefaultNside = 65536

	// DefaultSeparator joins the three words of a name.
	DefaultSeparator = "-"
)

var (
	// DefaultKey is the published FF3 key material (zero-padded to AES-256).
	DefaultKey = []byte("starhash!")

	// DefaultTweak is the published FF3 tweak (truncated to 8 bytes).
	DefaultTweak = []byte("opensource")
)

// Options configures a StarHash instance. The zero value selects the
// published epoch defaults.
type Options struct {
	Nside      int64
	Key        []byte
	Tweak      []byte
	Vocabulary *vocab.Vocabulary // nil selects the bundled default list
	Separator  string
}

// StarHash converts between sky coordinates and three-word names. Immutable
// after construction; a single instance may serve any number of concurrent
// callers without locking.
type StarHash struct {
	grid     healpix.Grid
	permuter *permute.Permuter
	codec    *words.Codec
	vocab    *vocab.Vocabulary
	keySum   string
}

// New builds a StarHash from opts, applying epoch defaults for unset fields.
// Fails if the vocabulary cannot cover the grid (W^3 < npix): an undersized
// vocabulary is a configuration error, never a per-request one.
func New(opts Options) (*StarHash, error) {
	if opts.Nside == 0 {
		opts.Nside = DefaultNside
	}
	if opts.Key == nil {
		opts.Key = DefaultKey
	}
	if opts.Tweak == nil {
		opts.Tweak = DefaultTweak
	}
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	if opts.Vocabulary == nil {
		v, err := vocab.Default()
		if err != nil {
			return nil, err
		}
		opts.Vocabulary = v
	}

	grid, err := healpix.NewGrid(opts.Nside)
	if err != nil {
		return nil, err
	}

	permuter, err := permute.New(opts.Key, opts.Tweak, grid.Npix())
	if err != nil {
		return nil, err
	}

	codec, err := words.NewCodec(opts.Vocabulary, grid.Npix(), opts.Separator)
	if err != nil {
		return nil, err
	}

	h := sha256.Sum256(append(append([]byte{}, opts.Key...), opts.Tweak...))

	s := &StarHash{
		grid:     grid,
		permuter: permuter,
		codec:    codec,
		vocab:    opts.Vocabulary,
		keySum:   hex.EncodeToString(h[:4]),
	}

	logger.Debugw("healpix grid properties",
		"nside", grid.Nside(),
		"npix", grid.Npix(),
		"resolution_arcsec", grid.ResolutionArcsec(),
		"words", opts.Vocabulary.Size(),
		"coverage", s.Coverage())

	return s, nil
}

// Default returns a StarHash under the published epoch.
func Default() (*StarHash, error) {
	return New(Options{})
}

// EncodeCoordinate names the patch containing (lon, lat), degrees.
func (s *StarHash) EncodeCoordinate(lon, lat float64) (string, error) {
	pix, err := s.grid.Ang2Pix(lon, lat)
	if err != nil {
		return "", err
	}
	permuted, err := s.permuter.Forward(pix)
	if err != nil {
		return "", err
	}
	return s.codec.Encode(permuted)
}

// DecodeName recovers the center of the patch a name refers to, degrees.
func (s *StarHash) DecodeName(name string) (lon, lat float64, err error) {
	permuted, err := s.codec.Decode(name)
	if err != nil {
		return 0, 0, err
	}
	pix, err := s.permuter.Inverse(permuted)
	if err != nil {
		return 0, 0, err
	}
	return s.grid.Pix2Ang(pix)
}

// Grid returns the underlying HEALPix grid.
func (s *StarHash) Grid() healpix.Grid { return s.grid }

// Vocabulary returns the word list in use.
func (s *StarHash) Vocabulary() *vocab.Vocabulary { return s.vocab }

// Coverage returns W^3/npix, how many times over the vocabulary covers the
// grid. Always >= 1 for a successfully constructed instance.
func (s *StarHash) Coverage() float64 {
	return float64(s.codec.Capacity()) / float64(s.grid.Npix())
}

// Epoch identifies the compatibility epoch: names round-trip only between
// instances whose epochs match.
type Epoch struct {
	Nside         int64  `json:"nside"`
	Words         int    `json:"words"`
	VocabChecksum string `json:"vocab_checksum"`
	CipherKeySum  string `json:"cipher_key_sum"`
	Separator     string `json:"separator"`
}

// Epoch returns this instance's epoch descriptor.
func (s *StarHash) Epoch() Epoch {
	return Epoch{
		Nside:         s.grid.Nside(),
		Words:         s.vocab.Size(),
		VocabChecksum: s.vocab.Checksum(),
		CipherKeySum:  s.keySum,
		Separator:     s.codec.Separator(),
	}
}

// String renders a short one-line epoch fingerprint.
func (e Epoch) String() string {
	return fmt.Sprintf("nside=%d words=%d vocab=%.8s key=%s sep=%q",
		e.Nside, e.Words, e.VocabChecksum, e.CipherKeySum, e.Separator)
}
