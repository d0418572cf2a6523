package permute_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starhash/starhash/errors"
	"github.com/starhash/starhash/permute"
)

var (
	testKey   = []byte("starhash!")
	testTweak = []byte("opensource")
)

func TestBijectivityExhaustive(t *testing.T) {
	for _, n := range []int64{12, 48, 192, 768} {
		p, err := permute.New(testKey, testTweak, n)
		require.NoError(t, err)

		seen := make(map[int64]int64, n)
		for x := int64(0); x < n; x++ {
			y, err := p.Forward(x)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, y, int64(0))
			assert.Less(t, y, n)

			if prev, dup := seen[y]; dup {
				t.Fatalf("n=%d: collision, Forward(%d) == Forward(%d) == %d", n, x, prev, y)
			}
			seen[y] = x

			back, err := p.Inverse(y)
			require.NoError(t, err)
			assert.Equal(t, x, back, "n=%d x=%d", n, x)
		}
		assert.Len(t, seen, int(n), "permutation must cover the full domain")
	}
}

func TestBijectivityProductionDomain(t *testing.T) {
	const npix = 51539607552 // nside 65536
	p, err := permute.New(testKey, testTweak, npix)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(99))
	seen := make(map[int64]int64)
	for i := 0; i < 1000; i++ {
		x := rng.Int63n(npix)
		y, err := p.Forward(x)
		require.NoError(t, err)
		assert.Less(t, y, int64(npix))

		if prev, dup := seen[y]; dup && prev != x {
			t.Fatalf("collision: Forward(%d) == Forward(%d) == %d", x, prev, y)
		}
		seen[y] = x

		back, err := p.Inverse(y)
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}
}

func TestDeterminism(t *testing.T) {
	p, err := permute.New(testKey, testTweak, 768)
	require.NoError(t, err)

	a, err := p.Forward(123)
	require.NoError(t, err)
	b, err := p.Forward(123)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDifferentKeysDiverge(t *testing.T) {
	const n = 768
	p1, err := permute.New([]byte("starhash!"), testTweak, n)
	require.NoError(t, err)
	p2, err := permute.New([]byte("different"), testTweak, n)
	require.NoError(t, err)

	diverged := false
	for x := int64(0); x < n; x++ {
		a, err := p1.Forward(x)
		require.NoError(t, err)
		b, err := p2.Forward(x)
		require.NoError(t, err)
		if a != b {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "distinct keys should yield distinct permutations")
}

func TestDomainErrors(t *testing.T) {
	p, err := permute.New(testKey, testTweak, 48)
	require.NoError(t, err)

	for _, x := range []int64{-1, 48, 1000} {
		_, err := p.Forward(x)
		assert.True(t, errors.Is(err, errors.ErrPermuterDomain), "Forward(%d)", x)

		_, err = p.Inverse(x)
		assert.True(t, errors.Is(err, errors.ErrPermuterDomain), "Inverse(%d)", x)
	}
}

func TestConstructionErrors(t *testing.T) {
	// Single-digit domains are below FF3's minimum message length
	_, err := permute.New(testKey, testTweak, 5)
	assert.Error(t, err)

	_, err = permute.New(testKey, testTweak, 0)
	assert.Error(t, err)

	longKey := make([]byte, 33)
	_, err = permute.New(longKey, testTweak, 48)
	assert.Error(t, err)
}
