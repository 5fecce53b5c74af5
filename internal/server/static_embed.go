package server

import "embed"

//go:embed static/css/*.css
var staticFS embed.FS
