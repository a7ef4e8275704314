package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidateUUIDParam proverava da je path parametar ispravan UUID pre nego
// što zahtev stigne do handlera, da upit sa lošim ID-jem ne ide u bazu.
func ValidateUUIDParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param(param)); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Identifikator nije ispravan.",
			})
			return
		}
		c.Next()
	}
}
