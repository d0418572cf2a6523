package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrapf(ErrPermutedIDOutOfRange, "index %d >= npix %d", 100, 48)

	assert.Contains(t, wrapped.Error(), "index 100 >= npix 48")
	assert.True(t, Is(wrapped, ErrPermutedIDOutOfRange))
	assert.False(t, Is(wrapped, ErrMalformedName))
}

func TestNewUnknownWordError(t *testing.T) {
	err := NewUnknownWordError("nonexistentmadeupword")

	require.NotNil(t, err)
	assert.True(t, Is(err, ErrUnknownWord))
	assert.Contains(t, err.Error(), "nonexistentmadeupword")
}

func TestNewInvalidCoordinateError(t *testing.T) {
	err := NewInvalidCoordinateError("latitude %f outside [-90, 90]", 91.5)

	assert.True(t, IsInvalidCoordinateError(err))
	assert.Contains(t, err.Error(), "91.5")
}

func TestIsDecodeError(t *testing.T) {
	assert.True(t, IsDecodeError(ErrMalformedName))
	assert.True(t, IsDecodeError(Wrap(ErrUnknownWord, "bad token")))
	assert.True(t, IsDecodeError(ErrPermutedIDOutOfRange))

	assert.False(t, IsDecodeError(nil))
	assert.False(t, IsDecodeError(ErrInvalidCoordinate))
	assert.False(t, IsDecodeError(New("unrelated")))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidCoordinate,
		ErrPixelOutOfRange,
		ErrPermuterDomain,
		ErrMalformedName,
		ErrUnknownWord,
		ErrPermutedIDOutOfRange,
		ErrVocabularyTooSmall,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "sentinel %v should not match %v", a, b)
		}
	}
}
