package course

// Constructors used to keep the content literals short. None of them
// validate; see Validate for shape checks.

func Ex(pt, en string) Example { return Example{PT: pt, EN: en} }

func ExNote(pt, en, note string) Example { return Example{PT: pt, EN: en, Note: note} }

func NewRuleBox(title string, rules ...string) *RuleBox {
	return &RuleBox{Title: title, Rules: rules}
}

func NewContrast(left, right Example, explanation string) ContrastPair {
	return ContrastPair{Left: left, Right: right, Explanation: explanation}
}

func NewPitfall(mistake, correction, explanation string) Pitfall {
	return Pitfall{Mistake: mistake, Correction: correction, Explanation: explanation}
}

func NewCulturalNote(title, content string) *CulturalNote {
	return &CulturalNote{Title: title, Content: content}
}

func NewMiniCheck(question, answer string, options ...string) *MiniCheck {
	return &MiniCheck{Question: question, Answer: answer, Options: options}
}

func NewPronunciation(sound, tip string, words ...string) *PronunciationGuide {
	return &PronunciationGuide{Sound: sound, Tip: tip, Words: words}
}

func NewCheatSheet(title string, rows ...CheatSheetRow) *CheatSheet {
	return &CheatSheet{Title: title, Rows: rows}
}

func Row(label, value string) CheatSheetRow { return CheatSheetRow{Label: label, Value: value} }

func NewWhyItMatters(text string, situations ...string) *WhyItMatters {
	return &WhyItMatters{Text: text, Situations: situations}
}

func NewFlashcard(id, term, translation string) Flashcard {
	return Flashcard{ID: id, Term: term, Translation: translation}
}

func NewMCQ(id, prompt, correct string, options ...string) MCQ {
	return MCQ{ID: id, Prompt: prompt, Options: options, Correct: correct}
}

func NewTyping(id, prompt, correct string) Typing {
	return Typing{ID: id, Prompt: prompt, Correct: correct}
}

func NewListening(id, audioTextPT, correct string, options ...string) Listening {
	return Listening{ID: id, AudioTextPT: audioTextPT, Options: options, Correct: correct}
}

func NewMatching(id, prompt string, pairs ...MatchPair) Matching {
	return Matching{ID: id, Prompt: prompt, Pairs: pairs}
}

func Pair(left, right string) MatchPair { return MatchPair{Left: left, Right: right} }

func NewOrder(id, translation string, items ...string) Order {
	return Order{ID: id, Items: items, Translation: translation}
}

func NewPronunciationDrill(id, audioTextPT, translation string) Pronunciation {
	return Pronunciation{ID: id, AudioTextPT: audioTextPT, Translation: translation}
}
