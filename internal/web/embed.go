// Package web holds the embedded viewer page.
package web

import _ "embed"

// IndexHTML is the single-page molecule viewer served at the root route.
//
//go:embed index.html
var IndexHTML string
