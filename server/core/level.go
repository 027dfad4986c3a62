package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/arena"
)

const builtinPrefix = "builtin:"

// LoadArena resolves the -arena flag. An empty name is the default arena,
// "builtin:<name>" picks a bundled map and anything else is a TMX path on
// disk.
func LoadArena(name string) (*arena.Arena, error) {
	switch {
	case name == "":
		return arena.Default(), nil
	case strings.HasPrefix(name, builtinPrefix):
		stem := strings.TrimPrefix(name, builtinPrefix)
		a, err := arena.Load(arena.Maps, "maps/"+stem+".tmx", cfg.Arena.PixelsPerUnit)
		if err != nil {
			return nil, fmt.Errorf("load builtin arena %s: %w", stem, err)
		}
		return a, nil
	}

	a, err := arena.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name), cfg.Arena.PixelsPerUnit)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return a, nil
}
