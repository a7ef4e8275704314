package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamenpro/kamenpro-backend/internal/gmb"
)

// GMBHandler izlaže upravljanje poslovnim profilima lokacija. Servis je
// opcion: bez konfigurisanih kredencijala svi pozivi vraćaju 503.
type GMBHandler struct {
	svc *gmb.Service
}

func NewGMBHandler(svc *gmb.Service) *GMBHandler {
	return &GMBHandler{svc: svc}
}

func (h *GMBHandler) unavailable(c *gin.Context) bool {
	if h.svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "GMB integracija nije konfigurisana."})
		return true
	}
	return false
}

// ListLocations obrađuje GET /api/gmb/locations.
func (h *GMBHandler) ListLocations(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	locations, err := h.svc.Locations(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// GetLocation obrađuje GET /api/gmb/locations/:slug.
func (h *GMBHandler) GetLocation(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	location, err := h.svc.Location(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// CreatePost obrađuje POST /api/gmb/locations/:slug/posts.
func (h *GMBHandler) CreatePost(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	var post gmb.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nema podataka u zahtevu."})
		return
	}
	if post.Summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sadržaj objave je obavezan."})
		return
	}
	if post.TopicType == "" {
		post.TopicType = gmb.TopicStandard
	}

	result, err := h.svc.CreatePost(c.Request.Context(), c.Param("slug"), post)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListReviews obrađuje GET /api/gmb/locations/:slug/reviews.
func (h *GMBHandler) ListReviews(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	reviews, err := h.svc.Reviews(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ReviewReplyRequest je telo odgovora na recenziju.
type ReviewReplyRequest struct {
	ReviewName string `json:"reviewName"`
	Comment    string `json:"comment"`
}

// ReplyToReview obrađuje POST /api/gmb/locations/:slug/reviews/reply.
func (h *GMBHandler) ReplyToReview(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	var req ReviewReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReviewName == "" || req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recenzija i tekst odgovora su obavezni."})
		return
	}

	reply, err := h.svc.ReplyToReview(c.Request.Context(), c.Param("slug"), req.ReviewName, req.Comment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// Insights obrađuje GET /api/gmb/locations/:slug/insights. Period se
// zadaje sa ?start=YYYY-MM-DD&end=YYYY-MM-DD; podrazumevano zadnjih 30 dana.
func (h *GMBHandler) Insights(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datum početka nije ispravan."})
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datum kraja nije ispravan."})
			return
		}
		end = parsed
	}

	insights, err := h.svc.Insights(c.Request.Context(), c.Param("slug"), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

func (h *GMBHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, gmb.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lokacija nije pronađena."})
		return
	}
	c.Error(err)
}
