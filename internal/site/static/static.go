// Package static embeds the stylesheet and browser script copied into every
// build.
package static

import "embed"

// FS exposes the site assets.
//
//go:embed *.css *.js
var FS embed.FS
