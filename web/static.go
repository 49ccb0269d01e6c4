package web

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// StaticHandler serves the embedded stylesheet and default images.
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFiles))
}
