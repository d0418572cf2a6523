package starhash_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starhash/starhash"
	"github.com/starhash/starhash/errors"
	"github.com/starhash/starhash/vocab"
)

// separationArcmin returns the great-circle distance between two points in
// arcminutes (haversine form).
func separationArcmin(lon1, lat1, lon2, lat2 float64) float64 {
	const degToRad = math.Pi / 180.0
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * math.Asin(math.Sqrt(a)) / degToRad * 60.0
}

func defaultInstance(t *testing.T) *starhash.StarHash {
	t.Helper()
	s, err := starhash.Default()
	require.NoError(t, err)
	return s
}

func TestEncodeDecodeIdempotence(t *testing.T) {
	s := defaultInstance(t)

	const ra, dec = 321.4214, -54.21231

	name, err := s.EncodeCoordinate(ra, dec)
	require.NoError(t, err)
	assert.Len(t, strings.Split(name, "-"), 3)

	lon, lat, err := s.DecodeName(name)
	require.NoError(t, err)

	// Square-ish pixels: center-to-corner is at most ~1.4x the resolution
	maxSep := 1.4 * s.Grid().Resolution()
	assert.Less(t, separationArcmin(ra, dec, lon, lat), maxSep)

	again, err := s.EncodeCoordinate(lon, lat)
	require.NoError(t, err)
	assert.Equal(t, name, again, "re-encoding a decoded center must reproduce the name")
}

func TestRandomCoordinateRoundTrip(t *testing.T) {
	s := defaultInstance(t)
	maxSep := 1.4 * s.Grid().Resolution()

	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 300; i++ {
		ra := rng.Float64() * 360.0
		dec := rng.Float64()*180.0 - 90.0

		name, err := s.EncodeCoordinate(ra, dec)
		require.NoError(t, err)

		lon, lat, err := s.DecodeName(name)
		require.NoError(t, err)
		assert.Less(t, separationArcmin(ra, dec, lon, lat), maxSep, "coord (%f, %f) name %q", ra, dec, name)

		again, err := s.EncodeCoordinate(lon, lat)
		require.NoError(t, err)
		assert.Equal(t, name, again)
	}
}

// Every pixel of a small grid must round-trip through its name.
func TestFullPipelineSmallGrid(t *testing.T) {
	v, err := vocab.New([]string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"})
	require.NoError(t, err)

	// W^3 = 216 covers npix = 192
	s, err := starhash.New(starhash.Options{Nside: 4, Vocabulary: v})
	require.NoError(t, err)

	names := make(map[string]int64)
	for pix := int64(0); pix < s.Grid().Npix(); pix++ {
		lon, lat, err := s.Grid().Pix2Ang(pix)
		require.NoError(t, err)

		name, err := s.EncodeCoordinate(lon, lat)
		require.NoError(t, err)

		if prev, dup := names[name]; dup {
			t.Fatalf("pixels %d and %d share name %q", prev, pix, name)
		}
		names[name] = pix

		backLon, backLat, err := s.DecodeName(name)
		require.NoError(t, err)

		backPix, err := s.Grid().Ang2Pix(backLon, backLat)
		require.NoError(t, err)
		assert.Equal(t, pix, backPix)
	}
	assert.Len(t, names, int(s.Grid().Npix()), "every pixel gets a distinct name")
}

func TestSamePatchSameName(t *testing.T) {
	s := defaultInstance(t)

	lon, lat, err := s.Grid().Pix2Ang(987654321)
	require.NoError(t, err)

	name, err := s.EncodeCoordinate(lon, lat)
	require.NoError(t, err)

	// Nudges far smaller than the ~3.2 arcsec pixel stay in the same patch
	nudged, err := s.EncodeCoordinate(lon+1e-7, lat-1e-7)
	require.NoError(t, err)
	assert.Equal(t, name, nudged)

	// The neighbouring pixel's center must name differently
	lon2, lat2, err := s.Grid().Pix2Ang(987654322)
	require.NoError(t, err)
	other, err := s.EncodeCoordinate(lon2, lat2)
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

func TestShippedVocabularySampleName(t *testing.T) {
	s := defaultInstance(t)

	lon, lat, err := s.DecodeName("gathering-equinox-approach")
	require.NoError(t, err)

	name, err := s.EncodeCoordinate(lon, lat)
	require.NoError(t, err)
	assert.Equal(t, "gathering-equinox-approach", name)
}

func TestDeterministicAcrossInstances(t *testing.T) {
	a := defaultInstance(t)
	b := defaultInstance(t)

	nameA, err := a.EncodeCoordinate(10.5, 20.25)
	require.NoError(t, err)
	nameB, err := b.EncodeCoordinate(10.5, 20.25)
	require.NoError(t, err)
	assert.Equal(t, nameA, nameB)
	assert.Equal(t, a.Epoch(), b.Epoch())
}

func TestDifferentKeyDifferentEpoch(t *testing.T) {
	a := defaultInstance(t)
	b, err := starhash.New(starhash.Options{Key: []byte("otherkey")})
	require.NoError(t, err)

	assert.NotEqual(t, a.Epoch().CipherKeySum, b.Epoch().CipherKeySum)

	nameA, err := a.EncodeCoordinate(10.5, 20.25)
	require.NoError(t, err)
	nameB, err := b.EncodeCoordinate(10.5, 20.25)
	require.NoError(t, err)
	assert.NotEqual(t, nameA, nameB)
}

func TestVocabularyTooSmallFailsAtConstruction(t *testing.T) {
	v, err := vocab.New([]string{"alpha", "bravo", "charlie"})
	require.NoError(t, err)

	// W^3 = 27 < 48 pixels
	_, err = starhash.New(starhash.Options{Nside: 2, Vocabulary: v})
	assert.True(t, errors.Is(err, errors.ErrVocabularyTooSmall))
}

func TestEncodeRejectsInvalidCoordinates(t *testing.T) {
	s := defaultInstance(t)

	_, err := s.EncodeCoordinate(0, 95)
	assert.True(t, errors.Is(err, errors.ErrInvalidCoordinate))

	_, err = s.EncodeCoordinate(math.NaN(), 0)
	assert.True(t, errors.Is(err, errors.ErrInvalidCoordinate))

	// Out-of-range longitude is normalized, not rejected
	name1, err := s.EncodeCoordinate(-30, 10)
	require.NoError(t, err)
	name2, err := s.EncodeCoordinate(330, 10)
	require.NoError(t, err)
	assert.Equal(t, name2, name1)
}

func TestDecodeErrors(t *testing.T) {
	s := defaultInstance(t)

	_, _, err := s.DecodeName("only-two")
	assert.True(t, errors.Is(err, errors.ErrMalformedName))

	_, _, err = s.DecodeName("gathering-equinox-nonexistentmadeupword")
	require.True(t, errors.Is(err, errors.ErrUnknownWord))
	assert.Contains(t, err.Error(), "nonexistentmadeupword")

	assert.True(t, errors.IsDecodeError(err))
}

func TestCoverage(t *testing.T) {
	s := defaultInstance(t)
	assert.Greater(t, s.Coverage(), 1.0)

	// 4422^3 / (12 * 65536^2)
	assert.InDelta(t, 1.678, s.Coverage(), 0.01)
}
