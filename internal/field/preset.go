package field

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinPresets []byte

// ErrUnknownPreset is returned by Lookup for a name with no preset.
var ErrUnknownPreset = errors.New("unknown preset")

// Camera follow modes.
const (
	FollowNone    = "none"
	FollowLowPass = "lowpass"
	FollowSpring  = "spring"
)

// PointerConfig controls how screen observations become field pointers.
type PointerConfig struct {
	Reach     float64 `yaml:"reach"`
	Smoothing float64 `yaml:"smoothing"`
}

// CameraConfig controls the optional viewpoint follow.
type CameraConfig struct {
	Follow    string  `yaml:"follow"`
	Factor    float64 `yaml:"factor"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
	Parallax  float64 `yaml:"parallax"`
}

// Style holds rendering-only values.
type Style struct {
	DotRadius  float64 `yaml:"dot_radius"`
	Color      string  `yaml:"color"`
	Light      string  `yaml:"light"`
	Background string  `yaml:"background"`
}

// Palette is a parsed Style.
type Palette struct {
	Dot, Light, Background colorful.Color
}

// Preset is one named visual variant.
type Preset struct {
	Name    string        `yaml:"name"`
	Grid    GridConfig    `yaml:"grid"`
	Params  Params        `yaml:"params"`
	Pointer PointerConfig `yaml:"pointer"`
	Camera  CameraConfig  `yaml:"camera"`
	Style   Style         `yaml:"style"`
}

// Validate checks the grid, the params and the camera mode.
func (p Preset) Validate() error {
	if p.Name == "" {
		return errors.New("preset has no name")
	}
	if err := p.Grid.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if err := p.Params.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	switch p.Camera.Follow {
	case "", FollowNone, FollowLowPass:
	case FollowSpring:
		if !(p.Camera.Frequency > 0) || p.Camera.Damping < 0 {
			return fmt.Errorf("preset %q: spring camera needs frequency > 0 and damping >= 0 (got %v, %v)",
				p.Name, p.Camera.Frequency, p.Camera.Damping)
		}
	default:
		return fmt.Errorf("preset %q: unknown camera follow mode %q", p.Name, p.Camera.Follow)
	}
	return nil
}

// Palette parses the style colours. Empty entries fall back to white
// dots and light on black.
func (p Preset) Palette() (Palette, error) {
	parse := func(s, fallback string) (colorful.Color, error) {
		if s == "" {
			s = fallback
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("preset %q: colour %q: %w", p.Name, s, err)
		}
		return c, nil
	}
	var pal Palette
	var err error
	if pal.Dot, err = parse(p.Style.Color, "#ffffff"); err != nil {
		return Palette{}, err
	}
	if pal.Light, err = parse(p.Style.Light, "#ffffff"); err != nil {
		return Palette{}, err
	}
	if pal.Background, err = parse(p.Style.Background, "#000000"); err != nil {
		return Palette{}, err
	}
	return pal, nil
}

// CameraFollower builds the per-axis follower for the camera mode, or
// nil when the camera stays put.
func (p Preset) CameraFollower(fps int) Follower {
	switch p.Camera.Follow {
	case FollowLowPass:
		return NewSmoother(p.Camera.Factor)
	case FollowSpring:
		return NewSpringFollower(fps, p.Camera.Frequency, p.Camera.Damping)
	default:
		return nil
	}
}

// Presets is an ordered preset list.
type Presets []Preset

// Lookup finds a preset by case-insensitive name.
func (ps Presets) Lookup(name string) (Preset, error) {
	for _, p := range ps {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names lists preset names in file order.
func (ps Presets) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// LoadPresets decodes and validates a YAML preset list. Unknown keys are
// rejected.
func LoadPresets(r io.Reader) (Presets, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var ps Presets
	if err := dec.Decode(&ps); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("preset file is empty")
		}
		return nil, fmt.Errorf("decoding presets: %w", err)
	}
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[key] = true
	}
	return ps, nil
}

// LoadPresetFile reads presets from path.
func LoadPresetFile(path string) (Presets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ps, err := LoadPresets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}

// DefaultPresets returns the built-in presets.
func DefaultPresets() Presets {
	ps, err := LoadPresets(bytes.NewReader(builtinPresets))
	if err != nil {
		panic(fmt.Sprintf("built-in presets: %v", err))
	}
	return ps
}
