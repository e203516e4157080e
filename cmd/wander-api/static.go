package main

import (
	"bytes"
	"embed"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/maps"
)

//go:embed web
var webFS embed.FS

// setupStaticFiles serves the embedded page. The startup map URL (world view)
// is injected server-side so the embed key never needs hardcoding in the HTML.
func setupStaticFiles(router *gin.Engine, embedKey string) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		log.Fatalf("read embedded page: %v", err)
	}
	page = bytes.ReplaceAll(page, []byte("__INITIAL_MAP_URL__"), []byte(maps.EmbedURL(embedKey, "")))

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
}
