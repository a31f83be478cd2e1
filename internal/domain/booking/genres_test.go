package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresRoundTripPreservesOrder(t *testing.T) {
	in := Genres{"Jazz", "Reggae", "Swing", "Classical", "Folk"}

	val, err := in.Value()
	require.NoError(t, err)

	var out Genres
	require.NoError(t, out.Scan(val))
	assert.Equal(t, in, out)
}

func TestGenresValueOfNilIsEmptyList(t *testing.T) {
	var g Genres

	val, err := g.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
}

func TestGenresScanSupportsBytesAndNil(t *testing.T) {
	var g Genres
	require.NoError(t, g.Scan([]byte(`["Rock n Roll"]`)))
	assert.Equal(t, Genres{"Rock n Roll"}, g)

	require.NoError(t, g.Scan(nil))
	assert.Nil(t, g)

	assert.Error(t, g.Scan(42))
}
