package venues

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

func venueID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue id"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /venues -> venues grouped by (city, state)
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	areas, err := h.dir.VenueBoard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venues"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// ------------------------------
// POST /venues/search
// ------------------------------
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.dir.SearchVenues(req.SearchTerm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search venues"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "search_term": req.SearchTerm})
}

// ------------------------------
// GET /venues/:id -> detail with past/upcoming shows
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	detail, err := h.dir.VenueDetail(id)
	if err != nil {
		var nf *booking.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venue"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ------------------------------
// POST /venues
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.dir.CreateVenue(req.Input())
	if err != nil {
		var ve *booking.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue submission", "fields": ve.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"venue":   v,
		"message": fmt.Sprintf("Venue %s was successfully listed!", v.Name),
	})
}

// ------------------------------
// PUT /venues/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.dir.UpdateVenue(id, req.Input())
	if err != nil {
		var ve *booking.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue submission", "fields": ve.Fields})
			return
		}
		var nf *booking.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("An error occurred. Venue %s could not be edited.", req.Name),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venue":   v,
		"message": fmt.Sprintf("Venue %s was successfully edited!", v.Name),
	})
}

// ------------------------------
// DELETE /venues/:id -> removes the venue and all of its shows
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, ok := venueID(c)
	if !ok {
		return
	}

	if err := h.dir.DeleteVenue(id); err != nil {
		var nf *booking.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "It was not possible to delete this Venue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The venue has been removed together with all of its shows."})
}
