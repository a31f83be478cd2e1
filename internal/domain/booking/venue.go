package booking

import "time"

type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	City    string `gorm:"type:varchar(120);not null;index:idx_venues_city_state,priority:1" json:"city"`
	State   string `gorm:"type:varchar(120);not null;index:idx_venues_city_state,priority:2" json:"state"`
	Address string `gorm:"type:varchar(120);not null" json:"address"`
	Phone   string `gorm:"type:varchar(120)" json:"phone,omitempty"`

	Genres Genres `gorm:"type:text;not null" json:"genres"`

	FacebookLink string `gorm:"type:varchar(120)" json:"facebook_link,omitempty"`
	ImageLink    string `gorm:"type:varchar(500)" json:"image_link,omitempty"`
	WebsiteLink  string `gorm:"type:varchar(500)" json:"website_link,omitempty"`

	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string `gorm:"type:varchar(500)" json:"seeking_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
