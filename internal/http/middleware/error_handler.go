package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kamenpro/kamenpro-backend/internal/logger"
	"github.com/kamenpro/kamenpro-backend/internal/repository"
)

// ErrorHandler centralizovano pretvara greške u JSON odgovore. Interne
// greške se maskiraju; klijent dobija poruku na srpskom.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()

		statusCode := http.StatusInternalServerError
		message := "Dogodila se interna greška servera."

		logger.Log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("greška pri obradi zahteva")

		switch {
		case errors.Is(err.Err, repository.ErrProductNotFound):
			statusCode = http.StatusNotFound
			message = repository.ErrProductNotFound.Error()
		case errors.Is(err.Err, repository.ErrCategoryNotFound):
			statusCode = http.StatusNotFound
			message = repository.ErrCategoryNotFound.Error()
		default:
			if msg := err.Error(); msg != "" && !containsInternalKeywords(msg) {
				message = msg
			}
		}

		c.JSON(statusCode, gin.H{"error": message})
	}
}

// containsInternalKeywords prepoznaje poruke koje ne smeju do klijenta.
func containsInternalKeywords(s string) bool {
	keywords := []string{
		"sql:",
		"database",
		"connection",
		"timeout",
		"internal",
		"panic",
		"runtime",
	}

	lower := strings.ToLower(s)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
