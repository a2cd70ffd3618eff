package levels

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/parallax/obj"
)

// defaults applied when a level file omits the corresponding fields
const (
	DefaultFgScrollRate = 1.0
	DefaultBgScrollRate = 0.4
	DefaultSpawnCellX   = 4
	DefaultSpawnCellY   = 0
)

// Level is a parsed level file. All geometry is in grid cells; pixel
// positions are cell * Dimensions.CellSize.
type Level struct {
	Dimensions   Dimensions    `json:"dimensions"`
	Parallax     *Parallax     `json:"parallax,omitempty"`
	Spawn        *Cell         `json:"spawn,omitempty"`
	Platforms    []PlatformDef `json:"platforms,omitempty"`
	GroundBlocks []GroundDef   `json:"ground_blocks,omitempty"`
	Enemies      []EnemyDef    `json:"enemies,omitempty"`
}

type Dimensions struct {
	CellSize int `json:"cell_size"`
	Width    int `json:"width"`
	Height   int `json:"height"`
}

type Parallax struct {
	FgScrollRate float64 `json:"fg_scroll_rate"`
	BgScrollRate float64 `json:"bg_scroll_rate"`
}

type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PlatformDef is a floating platform in cells. Height defaults to one cell.
type PlatformDef struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height,omitempty"`
}

// GroundDef is a one-cell-tall run of solid ground.
type GroundDef struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Width int `json:"width"`
}

type EnemyDef struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Type string `json:"type"`
}

// Load reads a level by name, preferring the copy under the levels/
// directory on disk so edited levels take effect without a rebuild, and
// falling back to the embedded copy. The name may carry a "levels/"
// prefix; both forms resolve to the same file.
func Load(name string) (*Level, error) {
	clean := cleanPath(name)
	data, err := os.ReadFile(diskPath(clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
	}
	return Parse(data)
}

func cleanPath(name string) string {
	s := filepath.ToSlash(name)
	return strings.TrimPrefix(s, "levels/")
}

func diskPath(name string) string {
	return filepath.Join("levels", name)
}

// Parse decodes and validates a level, filling in defaults for omitted
// fields. Unknown enemy types are kept but downgraded to "basic" with a
// warning so a typo in a level file doesn't kill the run.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}

	d := lvl.Dimensions
	if d.CellSize <= 0 || d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("levels: invalid dimensions: cell_size=%d width=%d height=%d",
			d.CellSize, d.Width, d.Height)
	}

	if lvl.Parallax == nil {
		lvl.Parallax = &Parallax{
			FgScrollRate: DefaultFgScrollRate,
			BgScrollRate: DefaultBgScrollRate,
		}
	}
	if lvl.Spawn == nil {
		lvl.Spawn = &Cell{X: DefaultSpawnCellX, Y: DefaultSpawnCellY}
	}

	for i := range lvl.Platforms {
		if lvl.Platforms[i].Height <= 0 {
			lvl.Platforms[i].Height = 1
		}
	}
	for i, e := range lvl.Enemies {
		if _, ok := obj.BehaviorKindFromString(e.Type); !ok {
			log.Printf("levels: unknown enemy type %q at cell (%d, %d), using basic", e.Type, e.X, e.Y)
			lvl.Enemies[i].Type = "basic"
		}
	}

	return &lvl, nil
}

// PixelWidth returns the level width in pixels.
func (l *Level) PixelWidth() float64 {
	return float64(l.Dimensions.Width * l.Dimensions.CellSize)
}

// PixelHeight returns the level height in pixels.
func (l *Level) PixelHeight() float64 {
	return float64(l.Dimensions.Height * l.Dimensions.CellSize)
}

// SpawnPosition returns the player spawn point in pixels, anchored at the
// bottom-center convention the actors use: the X is the spawn cell's
// center and the Y is the spawn cell's top edge.
func (l *Level) SpawnPosition() (float64, float64) {
	cs := float64(l.Dimensions.CellSize)
	return float64(l.Spawn.X)*cs + cs/2, float64(l.Spawn.Y) * cs
}

// BuildContext converts the level geometry into a collision context.
func (l *Level) BuildContext(p obj.Physics) *obj.Context {
	cs := l.Dimensions.CellSize

	platforms := make([]obj.Platform, 0, len(l.Platforms))
	for _, pd := range l.Platforms {
		platforms = append(platforms, obj.NewPlatform(pd.X, pd.Y, pd.Width, pd.Height, cs))
	}
	blocks := make([]obj.GroundBlock, 0, len(l.GroundBlocks))
	for _, gd := range l.GroundBlocks {
		blocks = append(blocks, obj.NewGroundBlock(gd.X, gd.Y, gd.Width, cs))
	}

	return obj.NewContext(cs, l.Dimensions.Width, l.Dimensions.Height, platforms, blocks, p)
}
