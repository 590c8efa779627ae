package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
)

// statusFor maps the error taxonomy to HTTP. Conflict answers 400 because
// the duplicate-email contract has always been a 400 on the wire and the
// frontend matches on it.
func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindBadRequest, apperrors.KindConflict:
		return http.StatusBadRequest
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Println("request failed:", err)
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": apperrors.Message(err),
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
