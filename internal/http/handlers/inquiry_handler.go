package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamenpro/kamenpro-backend/internal/metrics"
	"github.com/kamenpro/kamenpro-backend/internal/service"
	"github.com/kamenpro/kamenpro-backend/internal/validation"
)

// InquiryHandler prima upite za proizvode i opšte kontakt poruke i
// prosleđuje ih na email.
type InquiryHandler struct {
	inquiries *service.InquiryService
	metrics   *metrics.Metrics
}

func NewInquiryHandler(inquiries *service.InquiryService, m *metrics.Metrics) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries, metrics: m}
}

// SendInquiry obrađuje POST /api/send-inquiry.
func (h *InquiryHandler) SendInquiry(c *gin.Context) {
	var inq service.ProductInquiry
	if err := c.ShouldBindJSON(&inq); err != nil {
		h.metrics.IncInquiry("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.ErrEmptyBody.Error()})
		return
	}

	_, err := h.inquiries.SendProductInquiry(c.Request.Context(), inq)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.metrics.IncInquiry("sent")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vaš upit je uspešno poslat.",
	})
}

// Contact obrađuje POST /api/contact.
func (h *InquiryHandler) Contact(c *gin.Context) {
	var cm service.ContactMessage
	if err := c.ShouldBindJSON(&cm); err != nil {
		h.metrics.IncInquiry("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.ErrEmptyBody.Error()})
		return
	}

	messageID, err := h.inquiries.SendContactMessage(c.Request.Context(), cm)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.metrics.IncInquiry("sent")
	resp := gin.H{
		"success": true,
		"message": "Vaša poruka je uspešno poslata.",
	}
	if messageID != "" {
		resp["messageId"] = messageID
	}
	c.JSON(http.StatusOK, resp)
}

// respondError mapira greške servisa na statusne kodove: neispravan unos
// je 400, pad slanja 500.
func (h *InquiryHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validation.ErrMissingFields), errors.Is(err, validation.ErrInvalidEmail):
		h.metrics.IncInquiry("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.metrics.IncInquiry("failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": service.ErrSendFailed.Error()})
	}
}
