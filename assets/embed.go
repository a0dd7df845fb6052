// Package assets embeds the arena maps so the sandbox and tests need no
// files on disk.
package assets

import "embed"

//go:embed all:levels
var Levels embed.FS

// DefaultArena is the map loaded when no other is requested.
const DefaultArena = "levels/arena.tmx"
