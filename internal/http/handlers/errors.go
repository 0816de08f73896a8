package handlers

import (
	"net/http"

	"podverse-web/internal/domain"
	"podverse-web/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorPage is the template data of error.tmpl.
type ErrorPage struct {
	Status    int
	Title     string
	Message   string
	RequestID string
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	})
}

func domainErrorStatus(err error) (int, string, string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, "validation_error", err.Error()
	case domain.IsNotFound(err):
		return http.StatusNotFound, "not_found", err.Error()
	case domain.IsUpstream(err):
		return http.StatusBadGateway, "upstream_error", "gagal memuat data dari server podcast"
	default:
		return http.StatusInternalServerError, "internal_error", "terjadi kesalahan"
	}
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	status, code, msg := domainErrorStatus(err)
	respondError(c, status, code, msg)
}

// RespondPageError is RespondDomainError for HTML routes.
func RespondPageError(c *gin.Context, err error) {
	status, _, msg := domainErrorStatus(err)
	c.HTML(status, "error.tmpl", ErrorPage{
		Status:    status,
		Title:     http.StatusText(status),
		Message:   msg,
		RequestID: middleware.GetRequestID(c),
	})
	c.Abort()
}
