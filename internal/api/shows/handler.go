package shows

import (
	"errors"
	"net/http"
	"time"

	"booking-app/internal/directory"
	"booking-app/internal/domain/booking"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	dir *directory.Directory
}

func NewHandler(dir *directory.Directory) *Handler {
	return &Handler{dir: dir}
}

type ShowRequest struct {
	VenueID   uint      `json:"venue_id" binding:"required"`
	ArtistID  uint      `json:"artist_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

// ------------------------------
// GET /shows -> every show, both sides joined in
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	listings, err := h.dir.ListShows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shows"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shows": listings})
}

// ------------------------------
// POST /shows
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.dir.CreateShow(booking.ShowInput{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: req.StartTime,
	})
	if err != nil {
		var ve *booking.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid show submission", "fields": ve.Fields})
			return
		}
		var ref *booking.ReferentialIntegrityError
		if errors.As(err, &ref) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ref.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred. Show could not be listed."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"show":    s,
		"message": "Show was successfully listed!",
	})
}
