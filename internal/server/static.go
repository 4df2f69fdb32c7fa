package server

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed assets/*
var assetsFS embed.FS

// assets returns the embedded browser script and stylesheet.
func assets() http.FileSystem {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return http.FS(assetsFS)
	}
	return http.FS(sub)
}

// static serves the embedded assets first and falls back to the static
// directory on disk (resume, favicon and the like).
func (s *Server) static(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	if name == "" {
		c.Status(http.StatusNotFound)
		return
	}
	if f, err := assetsFS.Open("assets/" + name); err == nil {
		_ = f.Close()
		c.FileFromFS(name, assets())
		return
	}
	c.FileFromFS(name, gin.Dir(s.cfg.StaticDir, false))
}
