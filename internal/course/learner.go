package course

import "sort"

// ForLearner returns a copy of m in which every lesson is passed through
// Lesson.ForLearner.
func (m Module) ForLearner() Module {
	out := m
	out.Lessons = make([]Lesson, len(m.Lessons))
	for i, l := range m.Lessons {
		out.Lessons[i] = l.ForLearner()
	}
	return out
}

// ForLearner returns a copy of l with answers hidden: correct values are
// cleared, the right column of matching pairs is rotated by one and order
// items are sorted. Both rearrangements are deterministic so repeated requests see the
// same layout.
func (l Lesson) ForLearner() Lesson {
	out := l
	out.Exercises = make(ExerciseList, len(l.Exercises))
	for i, e := range l.Exercises {
		out.Exercises[i] = hideAnswer(e)
	}
	return out
}

func hideAnswer(e Exercise) Exercise {
	switch v := e.(type) {
	case MCQ:
		v.Options = append([]string(nil), v.Options...)
		v.Correct = ""
		return v
	case Typing:
		v.Correct = ""
		return v
	case Listening:
		v.Options = append([]string(nil), v.Options...)
		v.Correct = ""
		return v
	case Matching:
		// Rotation leaves no pair aligned once there are two or more.
		n := len(v.Pairs)
		pairs := make([]MatchPair, n)
		for i, p := range v.Pairs {
			pairs[i] = MatchPair{Left: p.Left, Right: v.Pairs[(i+1)%n].Right}
		}
		v.Pairs = pairs
		return v
	case Order:
		items := append([]string(nil), v.Items...)
		sort.Strings(items)
		v.Items = items
		return v
	default:
		return e
	}
}
