package booking

import (
	"strings"
	"time"
)

// VenueInput carries every mutable venue attribute for create and edit
// operations. Edits replace all of them.
type VenueInput struct {
	Name    string
	City    string
	State   string
	Address string
	Phone   string

	Genres []string

	FacebookLink string
	ImageLink    string
	WebsiteLink  string

	SeekingTalent      bool
	SeekingDescription string
}

func (in VenueInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(in.State) == "" {
		missing = append(missing, "state")
	}
	if strings.TrimSpace(in.Address) == "" {
		missing = append(missing, "address")
	}
	if len(in.Genres) == 0 {
		missing = append(missing, "genres")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Apply copies the input onto a venue, replacing every mutable attribute.
func (in VenueInput) Apply(v *Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.Genres = Genres(in.Genres)
	v.FacebookLink = in.FacebookLink
	v.ImageLink = in.ImageLink
	v.WebsiteLink = in.WebsiteLink
	v.SeekingTalent = in.SeekingTalent
	v.SeekingDescription = in.SeekingDescription
}

// ArtistInput mirrors VenueInput for artists; artists have no address.
type ArtistInput struct {
	Name  string
	City  string
	State string
	Phone string

	Genres []string

	FacebookLink string
	ImageLink    string
	WebsiteLink  string

	SeekingVenue       bool
	SeekingDescription string
}

func (in ArtistInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(in.State) == "" {
		missing = append(missing, "state")
	}
	if len(in.Genres) == 0 {
		missing = append(missing, "genres")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func (in ArtistInput) Apply(a *Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.Genres = Genres(in.Genres)
	a.FacebookLink = in.FacebookLink
	a.ImageLink = in.ImageLink
	a.WebsiteLink = in.WebsiteLink
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// ShowInput books an existing artist at an existing venue. Both references
// are checked against the store before the show row is written.
type ShowInput struct {
	VenueID   uint
	ArtistID  uint
	StartTime time.Time
}

func (in ShowInput) Validate() error {
	var missing []string
	if in.VenueID == 0 {
		missing = append(missing, "venue_id")
	}
	if in.ArtistID == 0 {
		missing = append(missing, "artist_id")
	}
	if in.StartTime.IsZero() {
		missing = append(missing, "start_time")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
