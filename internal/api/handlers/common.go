package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseIDParam reads a numeric path parameter and writes a 400 response
// when it is not a valid ID
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// pageParams binds page and page_size from the query string
func pageParams(c *gin.Context) query.Params {
	var p query.Params
	_ = c.ShouldBindQuery(&p)
	return p
}

// queryInt64Ptr returns a pointer to a numeric query parameter, or nil
// when the parameter is absent. Writes a 400 response on garbage input.
func queryInt64Ptr(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return nil, false
	}
	return &v, true
}

// queryStringPtr returns a pointer to a query parameter, or nil when absent
func queryStringPtr(c *gin.Context, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// queryBoolPtr returns a pointer to a boolean query parameter, or nil
// when the parameter is absent. Writes a 400 response on garbage input.
func queryBoolPtr(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return nil, false
	}
	return &v, true
}

// currentUserID reads the authenticated user's ID set by the auth middleware
func currentUserID(c *gin.Context) (int64, bool) {
	raw, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	id, ok := raw.(int64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsValidation(err), apperrors.IsConflict(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
