// Package assets holds files embedded into the binary.
package assets

import "embed"

// Config contains the simulation tuning files.
//
//go:embed config
var Config embed.FS
