// Package server exposes the release calendar over HTTP: a JSON API under
// /api plus the static frontend with SPA fallback routing.
package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bourboncal/internal"
	"bourboncal/internal/config"
	"bourboncal/internal/storage"
)

type Handler struct {
	db *storage.DB
}

func NewHandler(db *storage.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/releases", h.listReleases)
	rg.GET("/releases/:id", h.getRelease)
	rg.GET("/months", h.listMonths)
	rg.GET("/distilleries", h.listDistilleries)
	rg.GET("/stats", h.getStats)
}

// NewRouter assembles the full engine: CORS, API routes, health check and
// the static frontend.
func NewRouter(db *storage.DB, cfg config.Config) *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies(nil)
	router.Use(corsMiddleware())

	h := NewHandler(db)
	h.RegisterRoutes(router.Group("/api"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerStatic(router, cfg.StaticDir)
	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// registerStatic serves files from staticDir and falls back to index.html
// for unknown paths so client-side routing works.
func registerStatic(router *gin.Engine, staticDir string) {
	index := filepath.Join(staticDir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

func (h *Handler) listReleases(c *gin.Context) {
	filters := storage.Filters{
		Month:      c.Query("month"),
		Type:       c.Query("type"),
		Distillery: c.Query("distillery"),
		Search:     c.Query("search"),
		MinProof:   parseFloat(c.Query("minProof")),
		MaxProof:   parseFloat(c.Query("maxProof")),
		MaxPrice:   parseFloat(c.Query("maxPrice")),
		Year:       parseIntPtr(c.Query("year")),
	}

	releases, err := h.db.ListReleases(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	if releases == nil {
		releases = []internal.ReleaseListItem{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(releases),
		"releases": releases,
	})
}

func (h *Handler) getRelease(c *gin.Context) {
	detail, err := h.db.GetRelease(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Release not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) listMonths(c *gin.Context) {
	year := 2026
	if y := parseIntPtr(c.Query("year")); y != nil {
		year = *y
	}
	months, err := h.db.MonthSummary(year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "months failed"})
		return
	}
	if months == nil {
		months = []internal.MonthCount{}
	}
	c.JSON(http.StatusOK, months)
}

func (h *Handler) listDistilleries(c *gin.Context) {
	distilleries, err := h.db.Distilleries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "distilleries failed"})
		return
	}
	if distilleries == nil {
		distilleries = []internal.DistilleryCount{}
	}
	c.JSON(http.StatusOK, distilleries)
}

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.db.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseFloat(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(s string) *int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
