package artists

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

func artistID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist id"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /artists -> id/name listing
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	refs, err := h.dir.ListArtists()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": refs})
}

// ------------------------------
// POST /artists/search
// ------------------------------
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.dir.SearchArtists(req.SearchTerm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search artists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "search_term": req.SearchTerm})
}

// ------------------------------
// GET /artists/:id -> detail with past/upcoming shows
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, ok := artistID(c)
	if !ok {
		return
	}

	detail, err := h.dir.ArtistDetail(id)
	if err != nil {
		var nf *booking.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ------------------------------
// POST /artists
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.dir.CreateArtist(req.Input())
	if err != nil {
		var ve *booking.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist submission", "fields": ve.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"artist":  a,
		"message": fmt.Sprintf("Artist %s was successfully listed!", a.Name),
	})
}

// ------------------------------
// PUT /artists/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, ok := artistID(c)
	if !ok {
		return
	}

	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.dir.UpdateArtist(id, req.Input())
	if err != nil {
		var ve *booking.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist submission", "fields": ve.Fields})
			return
		}
		var nf *booking.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("An error occurred. Artist %s could not be edited.", req.Name),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artist":  a,
		"message": fmt.Sprintf("Artist %s was successfully edited!", a.Name),
	})
}
