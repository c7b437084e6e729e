package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/platformer/kinematic"
	"gopkg.in/yaml.v3"
)

func TestLoadBodySpec(t *testing.T) {
	cases := []struct {
		profile string
		width   int
		height  int
		level   string
		options kinematic.Options
	}{
		{"classic", 8, 16, "classic", kinematic.Options{}},
		{"classic32", 32, 32, "classic32", kinematic.Options{Anchor: kinematic.AnchorTopLeft, Sweep: kinematic.SweepBox}},
	}
	for _, c := range cases {
		t.Run(c.profile, func(t *testing.T) {
			spec, err := LoadBodySpec(c.profile)
			if err != nil {
				t.Fatalf("LoadBodySpec: %v", err)
			}
			if spec.Name != c.profile || spec.Level != c.level {
				t.Fatalf("unexpected name/level %q/%q", spec.Name, spec.Level)
			}
			if spec.Width != c.width || spec.Height != c.height {
				t.Fatalf("unexpected size %dx%d", spec.Width, spec.Height)
			}
			if spec.Options != c.options {
				t.Fatalf("unexpected options %+v", spec.Options)
			}
			if spec.Color.Color == nil {
				t.Fatalf("expected a body color")
			}
			b := spec.NewBody(10, 20)
			if b.Width != c.width || b.Tuning() != spec.Tuning {
				t.Fatalf("body does not carry the spec")
			}
		})
	}
}

func TestClassicProfileMatchesClassicTuning(t *testing.T) {
	spec, err := LoadBodySpec("classic")
	if err != nil {
		t.Fatalf("LoadBodySpec: %v", err)
	}
	if spec.Tuning != kinematic.ClassicTuning() {
		t.Fatalf("classic.yaml drifted from ClassicTuning: %+v", spec.Tuning)
	}
}

func TestUnknownProfile(t *testing.T) {
	_, err := LoadBodySpec("moon")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.Mkdir("prefabs", 0o755); err != nil {
		t.Fatal(err)
	}
	src := `
width: 10
height: 10
tuning:
  max_speed: 50
  gravity: 100
  jump_impulse: -200
`
	if err := os.WriteFile(filepath.Join("prefabs", "classic.yaml"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadBodySpec("prefabs/classic.yaml")
	if err != nil {
		t.Fatalf("LoadBodySpec: %v", err)
	}
	if spec.Width != 10 || spec.Tuning.MaxSpeed != 50 || spec.Name != "classic" {
		t.Fatalf("disk copy was not used: %+v", spec)
	}

	bad := "width: 10\nheight: 10\ntuning:\n  jump_impulse: 5\n"
	if err := os.WriteFile(filepath.Join("prefabs", "classic.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBodySpec("classic"); !errors.Is(err, kinematic.ErrInvalidTuning) {
		t.Fatalf("expected ErrInvalidTuning, got %v", err)
	}
}

func TestProfiles(t *testing.T) {
	names, err := Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(names) != 2 || names[0] != "classic" || names[1] != "classic32" {
		t.Fatalf("unexpected profiles %v", names)
	}
}

func TestYAMLColor(t *testing.T) {
	var spec struct {
		A YAMLColor `yaml:"a"`
		B YAMLColor `yaml:"b"`
	}
	if err := yaml.Unmarshal([]byte("a: \"#ff8000\"\nb: \"#00000080\"\n"), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if spec.A.Color != (color.NRGBA{R: 0xff, G: 0x80, A: 0xff}) {
		t.Fatalf("unexpected color %v", spec.A.Color)
	}
	if spec.B.Color != (color.NRGBA{A: 0x80}) {
		t.Fatalf("unexpected color %v", spec.B.Color)
	}
	var none YAMLColor
	if none.Or(color.White) != color.White {
		t.Fatalf("expected the fallback color")
	}
	if err := yaml.Unmarshal([]byte("a: \"#12\"\n"), &spec); err == nil {
		t.Fatalf("expected an error for a short color")
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "classic.yaml")
	if err := os.WriteFile(path, []byte("width: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if ProfileName(got) != "classic" {
			t.Fatalf("unexpected event for %s", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for %s", path)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	for range w.Events {
	}
}
