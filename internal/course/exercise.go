package course

import (
	"errors"
	"fmt"
)

// Kind is the discriminator carried in an exercise's "type" field.
type Kind string

const (
	KindFlashcard     Kind = "flashcard"
	KindMCQ           Kind = "mcq"
	KindTyping        Kind = "typing"
	KindListening     Kind = "listening"
	KindMatching      Kind = "matching"
	KindOrder         Kind = "order"
	KindPronunciation Kind = "pronunciation"
)

// Kinds lists every recognised exercise kind in a stable order.
var Kinds = []Kind{
	KindFlashcard,
	KindMCQ,
	KindTyping,
	KindListening,
	KindMatching,
	KindOrder,
	KindPronunciation,
}

var ErrUnknownKind = errors.New("unknown exercise type")

// Valid reports whether k is one of the seven recognised kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Exercise is one practice item. The set of implementations is closed: only
// the variant types in this package satisfy it.
type Exercise interface {
	ExerciseID() string
	Kind() Kind
	toWire() exerciseWire
	check() []string
}

// ExerciseList is an ordered list of exercises that encodes to the flat,
// "type"-tagged wire form.
type ExerciseList []Exercise

type Flashcard struct {
	ID          string
	Term        string
	Translation string
}

type MCQ struct {
	ID      string
	Prompt  string
	Options []string
	Correct string
}

type Typing struct {
	ID          string
	Prompt      string
	Correct     string
	Translation string
}

// Listening plays AudioTextPT. With Options it is answered by choice,
// without them by typing Correct.
type Listening struct {
	ID          string
	Prompt      string
	AudioTextPT string
	Options     []string
	Correct     string
}

type Matching struct {
	ID     string
	Prompt string
	Pairs  []MatchPair
}

type MatchPair struct {
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
}

// Order holds Items in their correct sequence.
type Order struct {
	ID          string
	Prompt      string
	Items       []string
	Translation string
}

type Pronunciation struct {
	ID          string
	Prompt      string
	AudioTextPT string
	Translation string
}

func (e Flashcard) ExerciseID() string     { return e.ID }
func (e MCQ) ExerciseID() string           { return e.ID }
func (e Typing) ExerciseID() string        { return e.ID }
func (e Listening) ExerciseID() string     { return e.ID }
func (e Matching) ExerciseID() string      { return e.ID }
func (e Order) ExerciseID() string         { return e.ID }
func (e Pronunciation) ExerciseID() string { return e.ID }

func (Flashcard) Kind() Kind     { return KindFlashcard }
func (MCQ) Kind() Kind           { return KindMCQ }
func (Typing) Kind() Kind        { return KindTyping }
func (Listening) Kind() Kind     { return KindListening }
func (Matching) Kind() Kind      { return KindMatching }
func (Order) Kind() Kind         { return KindOrder }
func (Pronunciation) Kind() Kind { return KindPronunciation }

// exerciseWire is the flat record every variant is exchanged as.
type exerciseWire struct {
	ID          string      `json:"id" yaml:"id"`
	Type        Kind        `json:"type" yaml:"type"`
	Prompt      string      `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Term        string      `json:"term,omitempty" yaml:"term,omitempty"`
	Translation string      `json:"translation,omitempty" yaml:"translation,omitempty"`
	AudioTextPT string      `json:"audioTextPt,omitempty" yaml:"audioTextPt,omitempty"`
	Options     []string    `json:"options,omitempty" yaml:"options,omitempty"`
	Correct     string      `json:"correct,omitempty" yaml:"correct,omitempty"`
	Pairs       []MatchPair `json:"pairs,omitempty" yaml:"pairs,omitempty"`
	Items       []string    `json:"items,omitempty" yaml:"items,omitempty"`
}

func (e Flashcard) toWire() exerciseWire {
	return exerciseWire{ID: e.ID, Type: KindFlashcard, Term: e.Term, Translation: e.Translation}
}

func (e MCQ) toWire() exerciseWire {
	return exerciseWire{ID: e.ID, Type: KindMCQ, Prompt: e.Prompt, Options: e.Options, Correct: e.Correct}
}

func (e Typing) toWire() exerciseWire {
	return exerciseWire{ID: e.ID, Type: KindTyping, Prompt: e.Prompt, Correct: e.Correct, Translation: e.Translation}
}

func (e Listening) toWire() exerciseWire {
	return exerciseWire{ID: e.ID, Type: KindListening, Prompt: e.Prompt, AudioTextPT: e.AudioTextPT, Options: e.Options, Correct: e.Correct}
}

func (e Matching) toWire() exerciseWire {
	return exerciseWire{ID: e.ID, Type: KindMatching, Prompt: e.Prompt, Pairs: e.Pairs}
}

func (e Order) toWire() exerciseWire {
	return exerciseWire{ID: e.ID, Type: KindOrder, Prompt: e.Prompt, Items: e.Items, Translation: e.Translation}
}

func (e Pronunciation) toWire() exerciseWire {
	return exerciseWire{ID: e.ID, Type: KindPronunciation, Prompt: e.Prompt, AudioTextPT: e.AudioTextPT, Translation: e.Translation}
}

// fromWire picks the variant named by w.Type. Fields that do not belong to
// the variant are dropped.
func fromWire(w exerciseWire) (Exercise, error) {
	switch w.Type {
	case KindFlashcard:
		return Flashcard{ID: w.ID, Term: w.Term, Translation: w.Translation}, nil
	case KindMCQ:
		return MCQ{ID: w.ID, Prompt: w.Prompt, Options: w.Options, Correct: w.Correct}, nil
	case KindTyping:
		return Typing{ID: w.ID, Prompt: w.Prompt, Correct: w.Correct, Translation: w.Translation}, nil
	case KindListening:
		return Listening{ID: w.ID, Prompt: w.Prompt, AudioTextPT: w.AudioTextPT, Options: w.Options, Correct: w.Correct}, nil
	case KindMatching:
		return Matching{ID: w.ID, Prompt: w.Prompt, Pairs: w.Pairs}, nil
	case KindOrder:
		return Order{ID: w.ID, Prompt: w.Prompt, Items: w.Items, Translation: w.Translation}, nil
	case KindPronunciation:
		return Pronunciation{ID: w.ID, Prompt: w.Prompt, AudioTextPT: w.AudioTextPT, Translation: w.Translation}, nil
	default:
		return nil, fmt.Errorf("exercise %q: %w: %q", w.ID, ErrUnknownKind, w.Type)
	}
}

// Find returns the exercise with the given id.
func (l ExerciseList) Find(id string) (Exercise, bool) {
	for _, e := range l {
		if e.ExerciseID() == id {
			return e, true
		}
	}
	return nil, false
}

// CountByKind tallies the list per exercise kind.
func (l ExerciseList) CountByKind() map[Kind]int {
	out := make(map[Kind]int, len(Kinds))
	for _, e := range l {
		out[e.Kind()]++
	}
	return out
}
