package booking

import "time"

// Show books one artist at one venue at a specific start time. It is the
// association between Venue and Artist; a row is never edited, only created
// or removed together with its venue.
type Show struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID uint  `gorm:"not null;index" json:"venue_id"`
	Venue   Venue `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ArtistID uint   `gorm:"not null;index" json:"artist_id"`
	Artist   Artist `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	CreatedAt time.Time `json:"created_at"`
}
