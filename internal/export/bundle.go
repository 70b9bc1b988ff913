// Package export writes the course out of process: as JSON or YAML bundles
// into a blob store, or as a one-way snapshot into SQL.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mind-engage/pppcourse/internal/course"
)

// SchemaVersion changes when the bundle layout changes incompatibly.
const SchemaVersion = 1

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json or yaml)", s)
	}
}

func (f Format) Ext() string { return string(f) }

func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

type Bundle struct {
	SchemaVersion int            `json:"schemaVersion" yaml:"schemaVersion"`
	Tracks        []course.Track `json:"tracks" yaml:"tracks"`
}

func NewBundle(tracks []course.Track) Bundle {
	return Bundle{SchemaVersion: SchemaVersion, Tracks: tracks}
}

// Write encodes v in format f.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteJSON writes indented JSON without HTML escaping, so Portuguese text
// and "<" stay readable.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// ReadBundle decodes a bundle produced by Write.
func ReadBundle(r io.Reader, f Format) (Bundle, error) {
	var b Bundle
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&b)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&b)
	default:
		err = fmt.Errorf("unknown export format %q", f)
	}
	if err != nil {
		return Bundle{}, err
	}
	if b.SchemaVersion != SchemaVersion {
		return Bundle{}, fmt.Errorf("bundle schema version %d, want %d", b.SchemaVersion, SchemaVersion)
	}
	return b, nil
}
