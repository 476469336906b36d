package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	credentialsMessage = "Invalid email or password"
	inUseMessage       = "Record is still referenced by other records"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors onto status codes: rule violations are 400
// with the rule message, missing records are a bare 404 and deletes blocked
// by referencing records are 409.
func writeError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: vErr.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrInUse):
		c.JSON(http.StatusConflict, errorResponse{Error: inUseMessage})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: credentialsMessage})
	default:
		if logger := logging.FromContext(c.Request.Context()); logger != nil {
			logger.Error("request failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
