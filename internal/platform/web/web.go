// Package web serves the bundled single-page frontend.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

const indexFile = "index.html"

// Register mounts the page at / and its assets under /static.
func Register(router gin.IRoutes) error {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return fmt.Errorf("web: open embedded assets: %w", err)
	}
	index, err := fs.ReadFile(static, indexFile)
	if err != nil {
		return fmt.Errorf("web: read %s: %w", indexFile, err)
	}
	router.StaticFS("/static", http.FS(static))
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	return nil
}
