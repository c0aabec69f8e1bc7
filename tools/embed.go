package tools

import (
	"embed"
)

// ConfigFiles embeds the YAML query tool definitions under config/ so the
// compiled binary does not depend on the working directory at runtime.
//
//go:embed all:config
var ConfigFiles embed.FS
