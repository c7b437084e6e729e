package sim

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"strings"

	"github.com/milk9111/platformer/kinematic"
	"gopkg.in/yaml.v3"
)

//go:embed scripts/*.yaml
var ScriptsFS embed.FS

var ErrEmptyScript = errors.New("sim: script has no frames")

const defaultDT = 1.0 / 60

// Script is a recorded input sequence replayed against a level.
type Script struct {
	Name    string  `yaml:"name"`
	Profile string  `yaml:"profile"`
	Level   string  `yaml:"level"`
	DT      float64 `yaml:"dt"`
	Steps   []Step  `yaml:"steps"`
}

// Step holds one input for a number of frames. Jump is the held state of the
// button; the press is reported on the first frame it goes down.
type Step struct {
	Frames int     `yaml:"frames"`
	Move   float64 `yaml:"move"`
	MoveY  float64 `yaml:"move_y"`
	Jump   bool    `yaml:"jump"`
}

// LoadScript reads a script from disk, falling back to the embedded scripts
// by name.
func LoadScript(name string) (*Script, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		file := strings.TrimSuffix(strings.TrimPrefix(name, "scripts/"), ".yaml") + ".yaml"
		data, err = fs.ReadFile(ScriptsFS, "scripts/"+file)
	}
	if err != nil {
		return nil, fmt.Errorf("sim: read script %s: %w", name, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sim: unmarshal script: %w", err)
	}
	if s.DT <= 0 {
		s.DT = defaultDT
	}
	if s.Frames() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScript, s.Name)
	}
	return &s, nil
}

// Frames is the total number of frames the script runs.
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.Steps {
		n += max(st.Frames, 0)
	}
	return n
}

// Intents yields the per-frame input of the script.
func (s *Script) Intents() iter.Seq[kinematic.Intent] {
	return func(yield func(kinematic.Intent) bool) {
		held := false
		for _, st := range s.Steps {
			for range max(st.Frames, 0) {
				in := kinematic.Intent{
					MoveX:       st.Move,
					MoveY:       st.MoveY,
					JumpHeld:    st.Jump,
					JumpPressed: st.Jump && !held,
				}
				held = st.Jump
				if !yield(in) {
					return
				}
			}
		}
	}
}

// Run replays s on w and calls emit after every frame. It stops early when
// emit returns false.
func (w *World) Run(s *Script, emit func(Frame) bool) Frame {
	var last Frame
	for in := range s.Intents() {
		last = w.Step(in, s.DT)
		if emit != nil && !emit(last) {
			break
		}
	}
	return last
}
