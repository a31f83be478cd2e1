package venues

import "booking-app/internal/domain/booking"

// ---------- requests

type VenueRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`

	Genres []string `json:"genres" binding:"required"`

	FacebookLink string `json:"facebook_link"`
	ImageLink    string `json:"image_link"`
	WebsiteLink  string `json:"website_link"`

	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`
}

func (r VenueRequest) Input() booking.VenueInput {
	return booking.VenueInput{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              r.Phone,
		Genres:             r.Genres,
		FacebookLink:       r.FacebookLink,
		ImageLink:          r.ImageLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
	}
}

type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}
