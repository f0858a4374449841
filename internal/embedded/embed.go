package embedded

import (
	"embed"
)

// FS embeds the built-in achievement catalog at build time.
//
//go:embed achievements.yaml
var FS embed.FS
