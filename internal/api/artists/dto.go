package artists

import "booking-app/internal/domain/booking"

// ---------- requests

type ArtistRequest struct {
	Name  string `json:"name" binding:"required"`
	City  string `json:"city" binding:"required"`
	State string `json:"state" binding:"required"`
	Phone string `json:"phone"`

	Genres []string `json:"genres" binding:"required"`

	FacebookLink string `json:"facebook_link"`
	ImageLink    string `json:"image_link"`
	WebsiteLink  string `json:"website_link"`

	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`
}

func (r ArtistRequest) Input() booking.ArtistInput {
	return booking.ArtistInput{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Phone:              r.Phone,
		Genres:             r.Genres,
		FacebookLink:       r.FacebookLink,
		ImageLink:          r.ImageLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
	}
}

type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}
