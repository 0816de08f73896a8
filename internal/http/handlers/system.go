package handlers

import (
	"net/http"

	intconfig "podverse-web/internal/config"

	"github.com/gin-gonic/gin"
)

// SetRouter lets /api/routes list the engine these handlers are mounted on.
func (h *Handlers) SetRouter(r *gin.Engine) {
	h.routes = r.Routes
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "podverse web berjalan"})
}

func (h *Handlers) DBCheck(c *gin.Context) {
	if err := intconfig.PingDB(h.DB); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	var count int
	err := h.DB.QueryRowContext(c.Request.Context(), "SELECT COUNT(*) FROM episodes").Scan(&count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal query ke database: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "koneksi database OK", "episodes_in_db": count})
}

func (h *Handlers) Routes(c *gin.Context) {
	if h.routes == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router belum siap"})
		return
	}

	routes := h.routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
