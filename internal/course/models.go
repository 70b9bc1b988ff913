package course

// Track groups the modules of one authoring file (a phase or the physical
// classes) in teaching order.
type Track struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Modules     []Module `json:"modules" yaml:"modules"`
}

type Module struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Lessons     []Lesson `json:"lessons" yaml:"lessons"`
}

type Lesson struct {
	ID        string        `json:"id" yaml:"id"`
	Title     string        `json:"title" yaml:"title"`
	XP        int           `json:"xp" yaml:"xp"`
	Content   LessonContent `json:"content" yaml:"content"`
	Exercises ExerciseList  `json:"exercises" yaml:"exercises"`
}

type LessonContent struct {
	Title        string        `json:"title" yaml:"title"`
	Sections     []Section     `json:"sections" yaml:"sections"`
	CheatSheet   *CheatSheet   `json:"cheatSheet,omitempty" yaml:"cheatSheet,omitempty"`
	WhyItMatters *WhyItMatters `json:"whyItMatters,omitempty" yaml:"whyItMatters,omitempty"`
}

// Section is one explanatory block of a lesson. Every enrichment field is
// optional.
type Section struct {
	Title         string              `json:"title" yaml:"title"`
	Explanation   string              `json:"explanation" yaml:"explanation"`
	Examples      []Example           `json:"examples,omitempty" yaml:"examples,omitempty"`
	KeyPoints     []string            `json:"keyPoints,omitempty" yaml:"keyPoints,omitempty"`
	RuleBox       *RuleBox            `json:"ruleBox,omitempty" yaml:"ruleBox,omitempty"`
	Contrasts     []ContrastPair      `json:"contrasts,omitempty" yaml:"contrasts,omitempty"`
	Pitfalls      []Pitfall           `json:"pitfalls,omitempty" yaml:"pitfalls,omitempty"`
	CulturalNote  *CulturalNote       `json:"culturalNote,omitempty" yaml:"culturalNote,omitempty"`
	MiniCheck     *MiniCheck          `json:"miniCheck,omitempty" yaml:"miniCheck,omitempty"`
	Pronunciation *PronunciationGuide `json:"pronunciation,omitempty" yaml:"pronunciation,omitempty"`
}

// Example pairs a Portuguese phrase with its English translation.
type Example struct {
	PT   string `json:"pt" yaml:"pt"`
	EN   string `json:"en" yaml:"en"`
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

type RuleBox struct {
	Title string   `json:"title" yaml:"title"`
	Rules []string `json:"rules" yaml:"rules"`
}

type ContrastPair struct {
	Left        Example `json:"left" yaml:"left"`
	Right       Example `json:"right" yaml:"right"`
	Explanation string  `json:"explanation" yaml:"explanation"`
}

type Pitfall struct {
	Mistake     string `json:"mistake" yaml:"mistake"`
	Correction  string `json:"correction" yaml:"correction"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

type CulturalNote struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

type MiniCheck struct {
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
}

type PronunciationGuide struct {
	Sound string   `json:"sound" yaml:"sound"`
	Tip   string   `json:"tip" yaml:"tip"`
	Words []string `json:"words,omitempty" yaml:"words,omitempty"`
}

type CheatSheet struct {
	Title string          `json:"title" yaml:"title"`
	Rows  []CheatSheetRow `json:"rows" yaml:"rows"`
}

type CheatSheetRow struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type WhyItMatters struct {
	Text       string   `json:"text" yaml:"text"`
	Situations []string `json:"situations,omitempty" yaml:"situations,omitempty"`
}

// ExerciseCount is the number of exercises across all lessons of m.
func (m Module) ExerciseCount() int {
	n := 0
	for _, l := range m.Lessons {
		n += len(l.Exercises)
	}
	return n
}

// TotalXP sums the xp of every lesson in m.
func (m Module) TotalXP() int {
	xp := 0
	for _, l := range m.Lessons {
		xp += l.XP
	}
	return xp
}
