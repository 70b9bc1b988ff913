package course

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var errNilExercise = errors.New("nil exercise in list")

func (l ExerciseList) wires() ([]exerciseWire, error) {
	out := make([]exerciseWire, 0, len(l))
	for i, e := range l {
		if e == nil {
			return nil, fmt.Errorf("exercise %d: %w", i, errNilExercise)
		}
		out = append(out, e.toWire())
	}
	return out, nil
}

func listFromWires(wires []exerciseWire) (ExerciseList, error) {
	if wires == nil {
		return nil, nil
	}
	out := make(ExerciseList, 0, len(wires))
	for _, w := range wires {
		e, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (l ExerciseList) MarshalJSON() ([]byte, error) {
	w, err := l.wires()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (l *ExerciseList) UnmarshalJSON(b []byte) error {
	var w []exerciseWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out, err := listFromWires(w)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

func (l ExerciseList) MarshalYAML() (interface{}, error) {
	return l.wires()
}

func (l *ExerciseList) UnmarshalYAML(node *yaml.Node) error {
	var w []exerciseWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	out, err := listFromWires(w)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// MarshalExercise encodes a single exercise in its wire form.
func MarshalExercise(e Exercise) ([]byte, error) {
	if e == nil {
		return nil, errNilExercise
	}
	return json.Marshal(e.toWire())
}

// UnmarshalExercise decodes a single wire-form exercise.
func UnmarshalExercise(b []byte) (Exercise, error) {
	var w exerciseWire
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	return fromWire(w)
}
