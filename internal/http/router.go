package api

import (
	"embed"
	"html/template"
	"log"
	stdhttp "net/http"

	"podverse-web/internal/auth"
	intconfig "podverse-web/internal/config"
	h "podverse-web/internal/http/handlers"
	"podverse-web/internal/http/middleware"
	"podverse-web/internal/state"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.tmpl"))
}

// NewRouter wires pages and JSON endpoints onto a gin engine.
func NewRouter(env intconfig.Env, hs *h.Handlers) *gin.Engine {
	if hs.Registry == nil {
		hs.Registry = state.NewRegistry()
	}
	if hs.PageSize < 1 {
		hs.PageSize = env.PageSize
	}
	if hs.Registry.OnDispatch == nil {
		hs.Registry.OnDispatch = h.LogDispatch
	}
	if hs.WebBaseURL == "" {
		hs.WebBaseURL = env.WebBaseURL
	}
	sessions := auth.Sessions{Key: []byte(env.JWTSigningKey), Issuer: "podverse"}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Session(env.SessionCookie, sessions),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}
	r.SetHTMLTemplate(loadTemplates())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/episode/:episodeId", hs.EpisodePage)
	r.GET("/tutorials", hs.TutorialsPage)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", hs.DBCheck)
		api.GET("/routes", hs.Routes)

		api.GET("/episode/:episodeId/clips", hs.EpisodeClips)

		pages := api.Group("/pages/:pageKey")
		pages.GET("/query-state", hs.GetQueryState)
		pages.PATCH("/query-state", hs.PatchQueryState)

		settings := api.Group("/settings")
		settings.GET("", hs.GetSettings)
		settings.PUT("/nsfw-mode", hs.PutBoolSetting(state.SetNSFWMode))
		settings.PUT("/nsfw-mode-hide", hs.PutBoolSetting(state.SetHideNSFWMode))
		settings.PUT("/ui-theme", hs.PutUITheme)
		settings.PUT("/ui-theme-hide", hs.PutBoolSetting(state.SetHideUITheme))
	}

	hs.SetRouter(r)
	return r
}
