package arena

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Maps holds the arenas shipped with the game.
//
//go:embed maps/*.tmx
var Maps embed.FS

// Object group names read from a TMX file.
const (
	groupWalls        = "Walls"
	groupObstacles    = "Obstacles"
	groupPlayerSpawn  = "PlayerSpawn"
	groupEnemySpawns  = "EnemySpawns"
	groupWeaponSpawns = "WeaponSpawns"
)

var (
	ErrNoPlayerSpawn       = errors.New("arena has no player spawn")
	ErrNoEnemySpawns       = errors.New("arena has no enemy spawns")
	ErrUnknownObstacleKind = errors.New("unknown obstacle kind")
	ErrBadScale            = errors.New("pixels per unit must be positive")
)

// Load parses a TMX file from fsys. Pixel coordinates are divided by
// pixelsPerUnit; TMX y becomes arena Z.
func Load(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*Arena, error) {
	if pixelsPerUnit <= 0 {
		return nil, ErrBadScale
	}
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(m.Width*m.TileWidth) / pixelsPerUnit,
		Depth: float64(m.Height*m.TileHeight) / pixelsPerUnit,
	}

	hasPlayer := false
	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{
				X: o.X / pixelsPerUnit,
				Z: o.Y / pixelsPerUnit,
				W: o.Width / pixelsPerUnit,
				H: o.Height / pixelsPerUnit,
			}
			switch og.Name {
			case groupWalls:
				a.Walls = append(a.Walls, r)
			case groupObstacles:
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = KindStatic
				}
				switch kind {
				case KindStatic, KindDynamic, KindExplosive:
				default:
					return nil, fmt.Errorf("%s object %d: %w %q", tmxPath, o.ID, ErrUnknownObstacleKind, kind)
				}
				a.Obstacles = append(a.Obstacles, Obstacle{Rect: r, Kind: kind})
			case groupPlayerSpawn:
				if !hasPlayer {
					a.PlayerSpawn = spawnOf(r, o.Properties.GetFloat("facing"))
					hasPlayer = true
				}
			case groupEnemySpawns:
				a.EnemySpawns = append(a.EnemySpawns, spawnOf(r, o.Properties.GetFloat("facing")))
			case groupWeaponSpawns:
				a.WeaponSpawns = append(a.WeaponSpawns, spawnOf(r, 0))
			}
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	if len(a.EnemySpawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoEnemySpawns)
	}
	return a, nil
}

// spawnOf uses the middle of the object; point objects have no size.
func spawnOf(r Rect, facing float64) Spawn {
	return Spawn{X: r.X + r.W/2, Z: r.Z + r.H/2, Facing: facing}
}

// LoadAll discovers all .tmx files in dir within fsys and returns them by
// stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string, pixelsPerUnit float64) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := Load(fsys, path, pixelsPerUnit)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

// Default is a small walled square used when no map is given.
func Default() *Arena {
	const size = 24.0
	return &Arena{
		Name:  "default",
		Width: size,
		Depth: size,
		Walls: []Rect{
			{X: 0, Z: 0, W: size, H: 1},
			{X: 0, Z: size - 1, W: size, H: 1},
			{X: 0, Z: 1, W: 1, H: size - 2},
			{X: size - 1, Z: 1, W: 1, H: size - 2},
		},
		Obstacles: []Obstacle{
			{Rect: Rect{X: 6, Z: 6, W: 2, H: 2}, Kind: KindStatic},
			{Rect: Rect{X: 16, Z: 6, W: 1, H: 1}, Kind: KindDynamic},
			{Rect: Rect{X: 6, Z: 16, W: 1, H: 1}, Kind: KindExplosive},
			{Rect: Rect{X: 16, Z: 16, W: 2, H: 2}, Kind: KindStatic},
		},
		PlayerSpawn: Spawn{X: 12, Z: 12},
		EnemySpawns: []Spawn{
			{X: 3, Z: 3, Facing: 45},
			{X: 21, Z: 3, Facing: -45},
			{X: 3, Z: 21, Facing: 135},
			{X: 21, Z: 21, Facing: -135},
		},
		WeaponSpawns: []Spawn{
			{X: 12, Z: 4},
			{X: 12, Z: 20},
			{X: 4, Z: 12},
			{X: 20, Z: 12},
		},
	}
}
