package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"podverse-web/internal/domain"
	"podverse-web/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.AbortWithStatusJSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}

// listParams reads ?page= and ?sort=. Missing values fall back to page 1 and
// def; a malformed page is a validation error.
func listParams(c *gin.Context, def domain.SortKey) (int, domain.SortKey, error) {
	page := 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, "", domain.ValidationError{Field: "page", Msg: "tidak valid", Err: err}
		}
		page = n
	}
	sort := def
	if raw := strings.TrimSpace(c.Query("sort")); raw != "" {
		sort = domain.SortKey(raw)
	}
	return page, sort, nil
}
