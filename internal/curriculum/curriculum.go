// Package curriculum holds the authored course content: phases A to D as Go
// literals and the physical-class modules as embedded YAML.
package curriculum

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mind-engage/pppcourse/internal/course"
)

//go:embed data/*.yaml
var dataFS embed.FS

const physicalClassesFile = "data/physical_classes.yaml"

var (
	physicalOnce  sync.Once
	physicalTrack course.Track
	physicalErr   error
)

func physicalClasses() (course.Track, error) {
	physicalOnce.Do(func() {
		physicalTrack, physicalErr = LoadTrackYAML(physicalClassesFile)
	})
	return physicalTrack, physicalErr
}

// LoadTrackYAML decodes one embedded track file.
func LoadTrackYAML(name string) (course.Track, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return course.Track{}, fmt.Errorf("read %s: %w", name, err)
	}
	var t course.Track
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return course.Track{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return t, nil
}

// Tracks returns every track in teaching order: phases A, B, C, D, then the
// physical classes. The slice is fresh on each call but the records inside
// share backing arrays with the package data and must not be modified.
func Tracks() ([]course.Track, error) {
	pc, err := physicalClasses()
	if err != nil {
		return nil, err
	}
	return []course.Track{phaseA, phaseB, phaseC, phaseD, pc}, nil
}

// MustTracks is Tracks for callers that treat broken embedded data as a
// programming error.
func MustTracks() []course.Track {
	t, err := Tracks()
	if err != nil {
		panic(err)
	}
	return t
}

// Modules flattens Tracks into catalog order.
func Modules() ([]course.Module, error) {
	tracks, err := Tracks()
	if err != nil {
		return nil, err
	}
	var out []course.Module
	for _, t := range tracks {
		out = append(out, t.Modules...)
	}
	return out, nil
}
