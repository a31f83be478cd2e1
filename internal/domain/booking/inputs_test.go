package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueInputValidateCollectsAllMissingFields(t *testing.T) {
	err := VenueInput{Phone: "123"}.Validate()

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"name", "city", "state", "address", "genres"}, ve.Fields)
}

func TestVenueInputValidateRejectsWhitespaceOnly(t *testing.T) {
	err := VenueInput{
		Name:    "   ",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz"},
	}.Validate()

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"name"}, ve.Fields)
}

func TestVenueInputValidateAccepted(t *testing.T) {
	err := VenueInput{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz"},
	}.Validate()
	assert.NoError(t, err)
}

func TestArtistInputValidate(t *testing.T) {
	err := ArtistInput{Name: "Guns N Petals"}.Validate()

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"city", "state", "genres"}, ve.Fields)

	assert.NoError(t, ArtistInput{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	}.Validate())
}

func TestShowInputValidate(t *testing.T) {
	err := ShowInput{}.Validate()

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"venue_id", "artist_id", "start_time"}, ve.Fields)

	assert.NoError(t, ShowInput{
		VenueID:   1,
		ArtistID:  2,
		StartTime: time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC),
	}.Validate())
}

func TestVenueInputApplyReplacesEverything(t *testing.T) {
	v := Venue{
		Name:          "Old Name",
		ImageLink:     "https://example.com/old.jpg",
		SeekingTalent: true,
	}

	VenueInput{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz"},
	}.Apply(&v)

	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, Genres{"Jazz"}, v.Genres)
	assert.Empty(t, v.ImageLink)
	assert.False(t, v.SeekingTalent)
}
