package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown scene format")

// --- Scene types ---

type SceneFile struct {
	Name   string    `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Bodies []BodyDef `json:"bodies" toml:"bodies" yaml:"bodies"`
}

type BodyDef struct {
	Name     string      `json:"name" toml:"name" yaml:"name"`
	Tags     []string    `json:"tags,omitempty" toml:"tags,omitempty" yaml:"tags,omitempty"`
	Parent   string      `json:"parent,omitempty" toml:"parent,omitempty" yaml:"parent,omitempty"`
	Position [3]float32  `json:"position" toml:"position" yaml:"position"`
	Rotation [3]float32  `json:"rotation" toml:"rotation" yaml:"rotation"`
	Scale    [3]float32  `json:"scale" toml:"scale" yaml:"scale"`
	Collider ColliderDef `json:"collider" toml:"collider" yaml:"collider"`
}

// ColliderDef is a flat union of every shape's parameters. Shape selects
// which fields apply; an empty Shape makes the body a plain node.
type ColliderDef struct {
	Shape    string     `json:"shape,omitempty" toml:"shape,omitempty" yaml:"shape,omitempty"`
	Offset   [3]float32 `json:"offset,omitempty" toml:"offset,omitempty" yaml:"offset,omitempty"`
	Bitflag  *uint32    `json:"bitflag,omitempty" toml:"bitflag,omitempty" yaml:"bitflag,omitempty"`
	Disabled bool       `json:"disabled,omitempty" toml:"disabled,omitempty" yaml:"disabled,omitempty"`
	Color    string     `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`

	Radius     float32      `json:"radius,omitempty" toml:"radius,omitempty" yaml:"radius,omitempty"`
	HalfHeight float32      `json:"halfHeight,omitempty" toml:"halfHeight,omitempty" yaml:"halfHeight,omitempty"`
	Cylinder   bool         `json:"cylinder,omitempty" toml:"cylinder,omitempty" yaml:"cylinder,omitempty"`
	HalfSize   [3]float32   `json:"halfSize,omitempty" toml:"halfSize,omitempty" yaml:"halfSize,omitempty"`
	Normal     [3]float32   `json:"normal,omitempty" toml:"normal,omitempty" yaml:"normal,omitempty"`
	TrimMin    [3]float32   `json:"trimMin,omitempty" toml:"trimMin,omitempty" yaml:"trimMin,omitempty"`
	TrimMax    [3]float32   `json:"trimMax,omitempty" toml:"trimMax,omitempty" yaml:"trimMax,omitempty"`
	Points     [][3]float32 `json:"points,omitempty" toml:"points,omitempty" yaml:"points,omitempty"`
	TwoSided   bool         `json:"twoSided,omitempty" toml:"twoSided,omitempty" yaml:"twoSided,omitempty"`
	ShearX     float32      `json:"shearX,omitempty" toml:"shearX,omitempty" yaml:"shearX,omitempty"`
	Faces      string       `json:"faces,omitempty" toml:"faces,omitempty" yaml:"faces,omitempty"`
	Heights    [4]float32   `json:"heights,omitempty" toml:"heights,omitempty" yaml:"heights,omitempty"`
}

func vec(a [3]float32) rl.Vector3 { return rl.Vector3{X: a[0], Y: a[1], Z: a[2]} }
func arr(v rl.Vector3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// DefaultColor is used for bodies without a valid color name.
var DefaultColor = rl.Lime

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	if name != "" {
		var r, g, b, a uint8
		if n, _ := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); n == 4 {
			return rl.Color{R: r, G: g, B: b, A: a}
		}
	}
	return DefaultColor
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Formats ---

type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "json"
}

// FormatOf picks the scene format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

func Decode(data []byte, f Format) (*SceneFile, error) {
	var sf SceneFile
	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &sf)
	case FormatYAML:
		err = yaml.Unmarshal(data, &sf)
	default:
		err = json.Unmarshal(data, &sf)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s scene: %w", f, err)
	}
	return &sf, nil
}

func Encode(sf *SceneFile, f Format) ([]byte, error) {
	var data []byte
	var err error
	switch f {
	case FormatTOML:
		data, err = toml.Marshal(sf)
	case FormatYAML:
		data, err = yaml.Marshal(sf)
	default:
		data, err = json.MarshalIndent(sf, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("marshal %s scene: %w", f, err)
	}
	return data, nil
}

// --- Loading and saving ---

func LoadScene(path string) (*SceneFile, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := Decode(data, f)
	if err != nil {
		return nil, err
	}
	log.Printf("world: loaded %s (%d bodies)", path, len(sf.Bodies))
	return sf, nil
}

// SaveScene writes sf in the format given by the extension of path.
func SaveScene(path string, sf *SceneFile) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(sf, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	log.Printf("world: saved %s (%d bodies)", path, len(sf.Bodies))
	return nil
}
