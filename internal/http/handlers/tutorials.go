package handlers

import (
	"net/http"
	"strings"

	"podverse-web/internal/pages"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) TutorialsPage(c *gin.Context) {
	t, _ := h.translator(c)
	view := pages.BuildTutorialsView(
		h.Tutorials,
		h.WebBaseURL,
		strings.TrimSpace(c.Query("q")),
		pages.IsMobileOrTablet(c.GetHeader("User-Agent")),
		t,
	)
	c.HTML(http.StatusOK, "tutorials.tmpl", view)
}
