package directory

import (
	"errors"

	"booking-app/internal/domain/booking"

	"gorm.io/gorm"
)

// CreateVenue validates the submission, then persists the venue in one
// transaction. Validation failures never reach the store.
func (d *Directory) CreateVenue(in booking.VenueInput) (*booking.Venue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var v booking.Venue
	in.Apply(&v)
	err := d.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&v).Error
	})
	if err != nil {
		return nil, &booking.PersistenceError{Entity: "Venue", Name: in.Name, Err: err}
	}
	return &v, nil
}

// UpdateVenue replaces every mutable attribute of the venue atomically; on
// failure the stored row is left unchanged.
func (d *Directory) UpdateVenue(id uint, in booking.VenueInput) (*booking.Venue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var v booking.Venue
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			return err
		}
		in.Apply(&v)
		return tx.Save(&v).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &booking.NotFoundError{Entity: "venue", ID: id}
		}
		return nil, &booking.PersistenceError{Entity: "Venue", Name: in.Name, Err: err}
	}
	return &v, nil
}

// DeleteVenue removes the venue together with all of its shows. The two
// deletes share one transaction; if either fails nothing is deleted.
func (d *Directory) DeleteVenue(id uint) error {
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var v booking.Venue
		if err := tx.First(&v, id).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&booking.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&v).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &booking.NotFoundError{Entity: "venue", ID: id}
		}
		return &booking.PersistenceError{Entity: "Venue", Err: err}
	}
	return nil
}

func (d *Directory) CreateArtist(in booking.ArtistInput) (*booking.Artist, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var a booking.Artist
	in.Apply(&a)
	err := d.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&a).Error
	})
	if err != nil {
		return nil, &booking.PersistenceError{Entity: "Artist", Name: in.Name, Err: err}
	}
	return &a, nil
}

func (d *Directory) UpdateArtist(id uint, in booking.ArtistInput) (*booking.Artist, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var a booking.Artist
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, id).Error; err != nil {
			return err
		}
		in.Apply(&a)
		return tx.Save(&a).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &booking.NotFoundError{Entity: "artist", ID: id}
		}
		return nil, &booking.PersistenceError{Entity: "Artist", Name: in.Name, Err: err}
	}
	return &a, nil
}

// CreateShow books an artist at a venue. Both references are resolved
// inside the insert transaction; a dangling reference aborts it before the
// show row is written.
func (d *Directory) CreateShow(in booking.ShowInput) (*booking.Show, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var s booking.Show
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&booking.Venue{}).Where("id = ?", in.VenueID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return &booking.ReferentialIntegrityError{Field: "venue_id", ID: in.VenueID}
		}
		if err := tx.Model(&booking.Artist{}).Where("id = ?", in.ArtistID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return &booking.ReferentialIntegrityError{Field: "artist_id", ID: in.ArtistID}
		}

		s = booking.Show{
			VenueID:   in.VenueID,
			ArtistID:  in.ArtistID,
			StartTime: in.StartTime.UTC(),
		}
		return tx.Create(&s).Error
	})
	if err != nil {
		var ref *booking.ReferentialIntegrityError
		if errors.As(err, &ref) {
			return nil, ref
		}
		// No entity name is available at this stage.
		return nil, &booking.PersistenceError{Entity: "Show", Err: err}
	}
	return &s, nil
}
