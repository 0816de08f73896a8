// Package handlers serves the podverse web pages and their JSON endpoints.
package handlers

import (
	"database/sql"
	"strings"

	"podverse-web/internal/http/middleware"
	"podverse-web/internal/i18n"
	"podverse-web/internal/pages"
	"podverse-web/internal/services"
	"podverse-web/internal/state"
	"podverse-web/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handlers carries the dependencies shared by every route.
type Handlers struct {
	// DB is nil when pages are backed by the remote API.
	DB         *sql.DB
	Episodes   services.EpisodeLookup
	Clips      services.ListFetcher
	PageSize   int
	Registry   *state.Registry
	I18n       *i18n.Bundle
	Tutorials  []pages.TutorialSection
	WebBaseURL string

	// routes lists the engine's routes for /api/routes; set by SetRouter.
	routes func() gin.RoutesInfo
}

func (h *Handlers) translator(c *gin.Context) (i18n.T, map[i18n.Key]string) {
	tag := h.I18n.Match(c.GetHeader("Accept-Language"))
	return h.I18n.Translator(tag), h.I18n.Messages(tag)
}

func (h *Handlers) episodeDeps() pages.EpisodeDeps {
	return pages.EpisodeDeps{Episodes: h.Episodes, Clips: h.Clips, PageSize: h.PageSize}
}

// sessionStore returns the store of the calling browser. A session minted by
// this request gets a throwaway store so cookieless clients leave nothing behind.
func (h *Handlers) sessionStore(c *gin.Context) *state.Store {
	sid := middleware.GetSessionID(c)
	if middleware.IsNewSession(c) {
		return h.Registry.Ephemeral(sid)
	}
	return h.Registry.Get(sid)
}

// LogDispatch is the registry listener that logs every state change.
func LogDispatch(sessionID string, a state.Action, _ state.State) {
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}
	msg := "session=" + sessionID
	if p, ok := a.Payload.(state.QueryStatePayload); ok {
		msg += " page=" + p.PageKey
	}
	utils.LogEvent("", "state", strings.ToLower(string(a.Type)), msg)
}
