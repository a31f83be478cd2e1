// Package directory implements the booking directory's query and mutation
// operations on top of the schema layer in internal/domain/booking. All
// operations run against the gorm handle held by the Directory; there is no
// package-level database state.
package directory

import (
	"time"

	"gorm.io/gorm"
)

// startTimeLayout is the textual form shows carry in query results.
const startTimeLayout = "2006-01-02 15:04:05"

type Directory struct {
	db *gorm.DB

	// now is sampled once at the start of each query so every comparison
	// within that query sees the same instant.
	now func() time.Time
}

func New(db *gorm.DB) *Directory {
	return &Directory{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}
