package sandbox

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed stages/*.tmx
var stagesFS embed.FS

// Rect is an axis aligned box in stage space, which is the host's XZ plane.
type Rect struct {
	X, Y, W, H float64
}

// scope limits a map object to some rooms or layers. A nil field matches
// everything.
type scope struct {
	room  *int
	layer *int
}

func (s scope) matches(room, layer uint8) bool {
	if s.room != nil && *s.room != int(room) {
		return false
	}
	if s.layer != nil && *s.layer != int(layer) {
		return false
	}
	return true
}

// ActorSpec is an actor placed in a stage map.
type ActorSpec struct {
	Name  string
	Box   Rect
	Flag  int
	scope scope
}

type entranceSpec struct {
	index int
	x, y  float64
	scope scope
}

// StageMap is one stage's collision and placement data.
type StageMap struct {
	Code      string
	Name      string
	Width     float64
	Height    float64
	Walls     []Rect
	Actors    []ActorSpec
	entrances []entranceSpec
}

// ActorsIn lists the actors present in a room and layer.
func (m *StageMap) ActorsIn(room, layer uint8) []ActorSpec {
	var out []ActorSpec
	for _, a := range m.Actors {
		if a.scope.matches(room, layer) {
			out = append(out, a)
		}
	}
	return out
}

// Spawn returns where an entrance puts the player. Unknown entrances fall
// back to the first entrance in the room, then the middle of the map.
func (m *StageMap) Spawn(room, entrance uint8) (x, y float64) {
	var fallback *entranceSpec
	for i := range m.entrances {
		e := &m.entrances[i]
		if e.scope.room != nil && *e.scope.room != int(room) {
			continue
		}
		if e.index == int(entrance) {
			return e.x, e.y
		}
		if fallback == nil {
			fallback = e
		}
	}
	if fallback != nil {
		return fallback.x, fallback.y
	}
	return m.Width / 2, m.Height / 2
}

// properties is satisfied by the property lists go-tiled attaches to maps and
// objects.
type properties interface {
	GetString(name string) string
}

func optionalInt(p properties, name string) (*int, error) {
	s := p.GetString(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("property %s=%q: %w", name, s, err)
	}
	return &v, nil
}

func readScope(p properties) (scope, error) {
	room, err := optionalInt(p, "room")
	if err != nil {
		return scope{}, err
	}
	layer, err := optionalInt(p, "layer")
	if err != nil {
		return scope{}, err
	}
	return scope{room: room, layer: layer}, nil
}

// LoadStage parses one TMX stage map from fsys.
func LoadStage(fsys fs.FS, tmxPath string) (*StageMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	m := &StageMap{
		Code:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	if levelMap.Properties != nil {
		m.Name = levelMap.Properties.GetString("name")
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			sc, err := readScope(o.Properties)
			if err != nil {
				return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
			}
			switch og.Name {
			case "Walls":
				m.Walls = append(m.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			case "Entrances":
				m.entrances = append(m.entrances, entranceSpec{
					index: o.Properties.GetInt("entrance"),
					x:     o.X,
					y:     o.Y,
					scope: sc,
				})
			case "Actors":
				m.Actors = append(m.Actors, ActorSpec{
					Name:  o.Name,
					Box:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Flag:  o.Properties.GetInt("flag"),
					scope: sc,
				})
			}
		}
	}

	sort.Slice(m.entrances, func(i, j int) bool {
		return m.entrances[i].index < m.entrances[j].index
	})
	return m, nil
}

// LoadStages loads every stage map under dir, keyed by stage code.
func LoadStages(fsys fs.FS, dir string) (map[string]*StageMap, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*StageMap, len(matches))
	for _, p := range matches {
		m, err := LoadStage(fsys, p)
		if err != nil {
			return nil, err
		}
		stages[m.Code] = m
	}
	return stages, nil
}
