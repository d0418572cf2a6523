// Package permute scrambles pixel indices so that neighbouring sky patches do
// not receive lexically similar names.
//
// The transform is FF3 format-preserving encryption over zero-padded decimal
// strings. FF3 permutes the full decimal domain [0, 10^width); values that
// land outside [0, n) are walked back into the domain by re-encrypting until
// they fall inside it (cycle walking), which keeps the restriction to [0, n)
// a total bijection. The key and tweak are part of the published epoch:
// changing either remaps every name ever issued.
package permute

import (
	"fmt"
	"strconv"

	"github.com/capitalone/fpe/ff3"

	"github.com/starhash/starhash/errors"
)

const (
	radix    = 10
	keySize  = 32 // AES-256
	tweakLen = 8  // FF3 requires a 64-bit tweak

	// FF3 length bounds for radix 10
	minWidth = 2
	maxWidth = 56

	// Cycle walking converges in ~10^width/n steps on average; for any sane
	// grid that is single digits. The cap only guards against a broken cipher.
	maxWalk = 4096
)

// Permuter is an invertible transform on [0, n). Immutable after
// construction; safe for concurrent use.
type Permuter struct {
	cipher ff3.Cipher
	n      int64
	width  int
}

// New builds a Permuter over [0, n). The key is right-padded with zero bytes
// to 32 bytes (AES-256) and the tweak is truncated or zero-padded to 8 bytes,
// mirroring how the published epoch constants were derived.
func New(key, tweak []byte, n int64) (*Permuter, error) {
	if len(key) > keySize {
		return nil, errors.Newf("key longer than %d bytes", keySize)
	}
	paddedKey := make([]byte, keySize)
	copy(paddedKey, key)

	paddedTweak := make([]byte, tweakLen)
	copy(paddedTweak, tweak)

	width := len(strconv.FormatInt(n, 10))
	if n < 1 || width < minWidth || width > maxWidth {
		return nil, errors.Newf("domain size %d not representable for FF3 (width %d not in [%d, %d])",
			n, width, minWidth, maxWidth)
	}

	cipher, err := ff3.NewCipher(radix, paddedKey, paddedTweak)
	if err != nil {
		return nil, errors.Wrap(err, "failed to construct FF3 cipher")
	}

	return &Permuter{cipher: cipher, n: n, width: width}, nil
}

// N returns the size of the permuter's domain.
func (p *Permuter) N() int64 { return p.n }

// Forward maps id to its permuted value in [0, n).
func (p *Permuter) Forward(id int64) (int64, error) {
	return p.walk(id, p.cipher.Encrypt)
}

// Inverse recovers the id that Forward mapped to permuted.
// Inverse(Forward(x)) == x for every x in [0, n).
func (p *Permuter) Inverse(permuted int64) (int64, error) {
	return p.walk(permuted, p.cipher.Decrypt)
}

func (p *Permuter) walk(id int64, step func(string) (string, error)) (int64, error) {
	if id < 0 || id >= p.n {
		return 0, errors.Wrapf(errors.ErrPermuterDomain, "index %d not in [0, %d)", id, p.n)
	}

	v := id
	for i := 0; i < maxWalk; i++ {
		s, err := step(fmt.Sprintf("%0*d", p.width, v))
		if err != nil {
			return 0, errors.Wrap(err, "FF3 transform failed")
		}
		v, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrap(err, "FF3 produced a non-decimal string")
		}
		if v < p.n {
			return v, nil
		}
	}
	return 0, errors.AssertionFailedf("cycle walk did not converge after %d steps", maxWalk)
}
