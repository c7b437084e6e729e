package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/kinematic"
	"gopkg.in/yaml.v3"
)

var ErrUnknownProfile = errors.New("prefabs: unknown body profile")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BodySpec describes a player body: its size, movement tuning, resolver
// options and the level it plays on by default.
type BodySpec struct {
	Name    string            `yaml:"name"`
	Level   string            `yaml:"level"`
	Width   int               `yaml:"width"`
	Height  int               `yaml:"height"`
	Color   YAMLColor         `yaml:"color"`
	Tuning  kinematic.Tuning  `yaml:"tuning"`
	Options kinematic.Options `yaml:"options"`
}

// LoadBodySpec loads the body profile stored in <profile>.yaml.
func LoadBodySpec(profile string) (*BodySpec, error) {
	filename := profileFile(profile)
	spec, err := LoadSpec[BodySpec](filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q", ErrUnknownProfile, profile)
	}
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: body size %dx%d must be positive", filename, spec.Width, spec.Height)
	}
	if err := spec.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	if spec.Name == "" {
		spec.Name = ProfileName(filename)
	}
	return &spec, nil
}

// NewBody places a body built from the spec with its anchor at (x, y).
func (s *BodySpec) NewBody(x, y float64) *kinematic.Body {
	return kinematic.New(x, y, s.Width, s.Height, s.Tuning, s.Options)
}

// Profiles lists the embedded body profiles.
func Profiles() ([]string, error) {
	files, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, ProfileName(f))
	}
	return names, nil
}

// ProfileName turns a prefab path like "prefabs/classic.yaml" into "classic".
func ProfileName(path string) string {
	clean := cleanPrefabPath(path)
	if i := strings.LastIndex(clean, "/"); i >= 0 {
		clean = clean[i+1:]
	}
	return strings.TrimSuffix(strings.TrimSuffix(clean, ".yaml"), ".yml")
}

func profileFile(profile string) string {
	if strings.HasSuffix(profile, ".yaml") || strings.HasSuffix(profile, ".yml") {
		return profile
	}
	return profile + ".yaml"
}

type YAMLColor struct {
	color.Color
}

// Or returns the color, or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
