// Package words converts permuted pixel indices to and from three-word names.
//
// A name is the base-W representation of the index, W being the vocabulary
// size, written least-significant word first and joined with a separator.
// The digit order and separator are load-bearing: both are part of the name
// stability contract and must never change once names have been issued.
//
// Word lookup is case-insensitive; encoded output preserves the vocabulary's
// casing.
package words

import (
	"strings"

	"github.com/starhash/starhash/errors"
	"github.com/starhash/starhash/vocab"
)

const (
	// DefaultSeparator joins the three words of a name.
	DefaultSeparator = "-"

	// WordCount is the fixed number of words per name.
	WordCount = 3

	// maxVocabSize keeps W^3 comfortably inside int64.
	maxVocabSize = 2_000_000
)

// Codec encodes indices in [0, n) as three-word names over a fixed
// vocabulary. Immutable; safe for concurrent use.
type Codec struct {
	vocab *vocab.Vocabulary
	sep   string
	n     int64
}

// NewCodec builds a codec over v for indices in [0, n). Construction fails
// with ErrVocabularyTooSmall if W^3 < n, so an undersized vocabulary is
// rejected at startup rather than surfacing per-request.
func NewCodec(v *vocab.Vocabulary, n int64, sep string) (*Codec, error) {
	if sep == "" {
		return nil, errors.New("separator is empty")
	}
	if n < 1 {
		return nil, errors.Newf("index domain size must be positive, got %d", n)
	}
	w := int64(v.Size())
	if w > maxVocabSize {
		return nil, errors.Newf("vocabulary size %d exceeds limit %d", w, maxVocabSize)
	}
	if w*w*w < n {
		return nil, errors.Wrapf(errors.ErrVocabularyTooSmall,
			"%d words cover %d names but the grid has %d pixels", w, w*w*w, n)
	}
	return &Codec{vocab: v, sep: sep, n: n}, nil
}

// Capacity returns W^3, the number of representable names.
func (c *Codec) Capacity() int64 {
	w := int64(c.vocab.Size())
	return w * w * w
}

// Separator returns the word separator.
func (c *Codec) Separator() string { return c.sep }

// Encode renders id as a three-word name. Repeated modulo by W yields the
// digits least-significant first.
func (c *Codec) Encode(id int64) (string, error) {
	if id < 0 || id >= c.n {
		return "", errors.Wrapf(errors.ErrPermutedIDOutOfRange, "index %d not in [0, %d)", id, c.n)
	}

	w := int64(c.vocab.Size())
	parts := make([]string, WordCount)
	rest := id
	for i := 0; i < WordCount; i++ {
		word, err := c.vocab.Word(int(rest % w))
		if err != nil {
			return "", err
		}
		parts[i] = word
		rest /= w
	}
	return strings.Join(parts, c.sep), nil
}

// Decode parses a three-word name back to its index. Returns
// ErrMalformedName for a wrong token count or empty tokens, ErrUnknownWord
// (naming the token) for words outside the vocabulary, and
// ErrPermutedIDOutOfRange when the digits reconstruct a value in the unused
// tail of the word space; the tail is rejected, never wrapped around.
func (c *Codec) Decode(name string) (int64, error) {
	tokens := strings.Split(name, c.sep)
	if len(tokens) != WordCount {
		return 0, errors.Wrapf(errors.ErrMalformedName,
			"expected %d words separated by %q, got %d", WordCount, c.sep, len(tokens))
	}

	w := int64(c.vocab.Size())
	var id int64
	scale := int64(1)
	for _, token := range tokens {
		if token == "" {
			return 0, errors.Wrap(errors.ErrMalformedName, "empty word")
		}
		idx, ok := c.vocab.Index(token)
		if !ok {
			return 0, errors.NewUnknownWordError(token)
		}
		id += int64(idx) * scale
		scale *= w
	}

	if id >= c.n {
		return 0, errors.Wrapf(errors.ErrPermutedIDOutOfRange,
			"name decodes to %d but the grid has only %d pixels", id, c.n)
	}
	return id, nil
}
