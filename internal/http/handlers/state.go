package handlers

import (
	"io"
	"net/http"
	"strings"

	"podverse-web/internal/state"

	"github.com/gin-gonic/gin"
)

// GetQueryState returns the session's query state for :pageKey. A key that
// was never written yields an empty object.
func (h *Handlers) GetQueryState(c *gin.Context) {
	store := h.sessionStore(c)
	entry, _ := store.PageEntry(strings.TrimSpace(c.Param("pageKey")))
	c.JSON(http.StatusOK, entry)
}

// PatchQueryState merges the JSON body into :pageKey. Keys missing from the
// body keep their stored value.
func (h *Handlers) PatchQueryState(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "body tidak bisa dibaca", err)
		return
	}
	payload, err := state.QueryStatePayloadFromJSON(c.Param("pageKey"), raw)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if payload.PageKey == "" {
		RespondError(c, http.StatusBadRequest, "pageKey wajib diisi", nil)
		return
	}

	store := h.sessionStore(c)
	next := store.Dispatch(state.Action{Type: state.PagesSetQueryState, Payload: payload})
	c.JSON(http.StatusOK, next.Pages[payload.PageKey])
}

func (h *Handlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionStore(c).Settings())
}

type boolSettingRequest struct {
	Value *bool `json:"value" binding:"required"`
}

type stringSettingRequest struct {
	Value *string `json:"value" binding:"required"`
}

// PutBoolSetting returns a handler that replaces one boolean setting.
func (h *Handlers) PutBoolSetting(build func(bool) state.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req boolSettingRequest
		if !BindJSONOrError(c, &req) {
			return
		}
		h.dispatchSetting(c, build(*req.Value))
	}
}

func (h *Handlers) PutUITheme(c *gin.Context) {
	var req stringSettingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	theme := strings.TrimSpace(*req.Value)
	if theme == "" {
		RespondError(c, http.StatusBadRequest, "tema tidak valid", nil)
		return
	}
	h.dispatchSetting(c, state.SetUITheme(theme))
}

func (h *Handlers) dispatchSetting(c *gin.Context, a state.Action) {
	next := h.sessionStore(c).Dispatch(a)
	c.JSON(http.StatusOK, next.Settings)
}
