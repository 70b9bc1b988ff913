// Package qti writes course modules as IMS QTI 2.1 content packages so an
// LMS can import the assessable exercises.
package qti

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"

	"github.com/mind-engage/pppcourse/internal/course"
)

const (
	nsItem     = "http://www.imsglobal.org/xsd/imsqti_v2p1"
	nsManifest = "http://www.imsglobal.org/xsd/imscp_v1p1"
	itemType   = "imsqti_item_xmlv2p1"
	rpMatch    = "http://www.imsglobal.org/question/qti_v2p1/rptemplates/match_correct"
)

// Assessable reports whether e has an answer an LMS can score. Flashcards
// and pronunciation drills are practice only.
func Assessable(e course.Exercise) bool {
	switch e.Kind() {
	case course.KindMCQ, course.KindTyping, course.KindListening, course.KindMatching, course.KindOrder:
		return true
	}
	return false
}

// ItemID is the QTI identifier of exercise e in lesson l of module m.
func ItemID(moduleID, lessonID, exerciseID string) string {
	return moduleID + "-" + lessonID + "-" + exerciseID
}

// BuildPackage zips imsmanifest.xml plus one item file per assessable
// exercise of m.
func BuildPackage(m course.Module) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	mf := imsManifest{Xmlns: nsManifest, Identifier: m.ID}
	for _, l := range m.Lessons {
		for _, e := range l.Exercises {
			if !Assessable(e) {
				continue
			}
			id := ItemID(m.ID, l.ID, e.ExerciseID())
			href := "items/" + id + ".xml"
			it, err := buildItem(id, l.Title, e)
			if err != nil {
				return nil, err
			}
			if err := writeXML(zw, href, it); err != nil {
				return nil, err
			}
			mf.Resources = append(mf.Resources, imsResource{
				Identifier: id,
				Type:       itemType,
				Href:       href,
				Files:      []imsFile{{Href: href}},
			})
		}
	}
	if err := writeXML(zw, "imsmanifest.xml", mf); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXML(zw *zip.Writer, name string, v any) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return enc.Close()
}

// Resource is one manifest entry.
type Resource struct {
	Identifier string
	Href       string
	Type       string
}

// ReadManifest lists the resources of a package built by BuildPackage.
func ReadManifest(pkg []byte) ([]Resource, error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, err
	}
	f, err := zr.Open("imsmanifest.xml")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var mf imsManifest
	if err := xml.NewDecoder(f).Decode(&mf); err != nil {
		return nil, fmt.Errorf("imsmanifest.xml: %w", err)
	}
	out := make([]Resource, 0, len(mf.Resources))
	for _, r := range mf.Resources {
		out = append(out, Resource{Identifier: r.Identifier, Href: r.Href, Type: r.Type})
	}
	return out, nil
}

// --- mini XML model for manifest ---
type imsManifest struct {
	XMLName    xml.Name      `xml:"manifest"`
	Xmlns      string        `xml:"xmlns,attr,omitempty"`
	Identifier string        `xml:"identifier,attr"`
	Resources  []imsResource `xml:"resources>resource"`
}
type imsResource struct {
	Identifier string    `xml:"identifier,attr"`
	Type       string    `xml:"type,attr"`
	Href       string    `xml:"href,attr"`
	Files      []imsFile `xml:"file"`
}
type imsFile struct {
	Href string `xml:"href,attr"`
}

// --- items ---
type assessmentItem struct {
	XMLName       xml.Name            `xml:"assessmentItem"`
	Xmlns         string              `xml:"xmlns,attr"`
	Identifier    string              `xml:"identifier,attr"`
	Title         string              `xml:"title,attr"`
	Adaptive      bool                `xml:"adaptive,attr"`
	TimeDependent bool                `xml:"timeDependent,attr"`
	Response      responseDeclaration `xml:"responseDeclaration"`
	Body          itemBody            `xml:"itemBody"`
	Processing    responseProcessing  `xml:"responseProcessing"`
}

type responseDeclaration struct {
	Identifier  string   `xml:"identifier,attr"`
	Cardinality string   `xml:"cardinality,attr"`
	BaseType    string   `xml:"baseType,attr"`
	Values      []string `xml:"correctResponse>value"`
}

type responseProcessing struct {
	Template string `xml:"template,attr"`
}

type itemBody struct {
	Paras  []para             `xml:"p"`
	Choice *choiceInteraction `xml:"choiceInteraction,omitempty"`
	Match  *matchInteraction  `xml:"matchInteraction,omitempty"`
	Order  *orderInteraction  `xml:"orderInteraction,omitempty"`
}

type para struct {
	Lang      string     `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Class     string     `xml:"class,attr,omitempty"`
	Text      string     `xml:",chardata"`
	TextEntry *textEntry `xml:"textEntryInteraction,omitempty"`
}

type textEntry struct {
	ResponseIdentifier string `xml:"responseIdentifier,attr"`
	ExpectedLength     int    `xml:"expectedLength,attr,omitempty"`
}

type simpleChoice struct {
	Identifier string `xml:"identifier,attr"`
	Text       string `xml:",chardata"`
}

type choiceInteraction struct {
	ResponseIdentifier string         `xml:"responseIdentifier,attr"`
	Shuffle            bool           `xml:"shuffle,attr"`
	MaxChoices         int            `xml:"maxChoices,attr"`
	Choices            []simpleChoice `xml:"simpleChoice"`
}

type associableChoice struct {
	Identifier string `xml:"identifier,attr"`
	MatchMax   int    `xml:"matchMax,attr"`
	Text       string `xml:",chardata"`
}

type matchSet struct {
	Choices []associableChoice `xml:"simpleAssociableChoice"`
}

type matchInteraction struct {
	ResponseIdentifier string     `xml:"responseIdentifier,attr"`
	Shuffle            bool       `xml:"shuffle,attr"`
	MaxAssociations    int        `xml:"maxAssociations,attr"`
	Sets               []matchSet `xml:"simpleMatchSet"`
}

type orderInteraction struct {
	ResponseIdentifier string         `xml:"responseIdentifier,attr"`
	Shuffle            bool           `xml:"shuffle,attr"`
	Choices            []simpleChoice `xml:"simpleChoice"`
}

const responseID = "RESPONSE"

func choiceID(i int) string { return fmt.Sprintf("C%d", i+1) }

func choices(options []string, correct string) ([]simpleChoice, string) {
	out := make([]simpleChoice, len(options))
	var key string
	for i, o := range options {
		out[i] = simpleChoice{Identifier: choiceID(i), Text: o}
		if o == correct {
			key = choiceID(i)
		}
	}
	return out, key
}

func buildItem(id, title string, e course.Exercise) (assessmentItem, error) {
	it := assessmentItem{
		Xmlns:      nsItem,
		Identifier: id,
		Title:      title,
		Processing: responseProcessing{Template: rpMatch},
	}
	switch v := e.(type) {
	case course.MCQ:
		cs, key := choices(v.Options, v.Correct)
		it.Response = responseDeclaration{Identifier: responseID, Cardinality: "single", BaseType: "identifier", Values: []string{key}}
		it.Body.Paras = []para{{Text: v.Prompt}}
		it.Body.Choice = &choiceInteraction{ResponseIdentifier: responseID, Shuffle: true, MaxChoices: 1, Choices: cs}
	case course.Typing:
		it.Response = responseDeclaration{Identifier: responseID, Cardinality: "single", BaseType: "string", Values: []string{v.Correct}}
		it.Body.Paras = []para{
			{Text: v.Prompt},
			{TextEntry: &textEntry{ResponseIdentifier: responseID, ExpectedLength: len([]rune(v.Correct))}},
		}
	case course.Listening:
		it.Body.Paras = []para{{Lang: "pt", Class: "audio-text", Text: v.AudioTextPT}}
		if v.Prompt != "" {
			it.Body.Paras = append(it.Body.Paras, para{Text: v.Prompt})
		}
		if len(v.Options) > 0 {
			cs, key := choices(v.Options, v.Correct)
			it.Response = responseDeclaration{Identifier: responseID, Cardinality: "single", BaseType: "identifier", Values: []string{key}}
			it.Body.Choice = &choiceInteraction{ResponseIdentifier: responseID, Shuffle: true, MaxChoices: 1, Choices: cs}
		} else {
			it.Response = responseDeclaration{Identifier: responseID, Cardinality: "single", BaseType: "string", Values: []string{v.Correct}}
			it.Body.Paras = append(it.Body.Paras, para{TextEntry: &textEntry{ResponseIdentifier: responseID}})
		}
	case course.Matching:
		left := make([]associableChoice, len(v.Pairs))
		right := make([]associableChoice, len(v.Pairs))
		values := make([]string, len(v.Pairs))
		for i, p := range v.Pairs {
			l, r := fmt.Sprintf("L%d", i+1), fmt.Sprintf("R%d", i+1)
			left[i] = associableChoice{Identifier: l, MatchMax: 1, Text: p.Left}
			right[i] = associableChoice{Identifier: r, MatchMax: 1, Text: p.Right}
			values[i] = l + " " + r
		}
		it.Response = responseDeclaration{Identifier: responseID, Cardinality: "multiple", BaseType: "directedPair", Values: values}
		it.Body.Paras = []para{{Text: v.Prompt}}
		it.Body.Match = &matchInteraction{ResponseIdentifier: responseID, Shuffle: true, MaxAssociations: len(v.Pairs), Sets: []matchSet{{left}, {right}}}
	case course.Order:
		cs := make([]simpleChoice, len(v.Items))
		values := make([]string, len(v.Items))
		for i, item := range v.Items {
			cs[i] = simpleChoice{Identifier: choiceID(i), Text: item}
			values[i] = choiceID(i)
		}
		// Present the items alphabetically, as learners see them.
		sort.SliceStable(cs, func(i, j int) bool { return cs[i].Text < cs[j].Text })
		it.Response = responseDeclaration{Identifier: responseID, Cardinality: "ordered", BaseType: "identifier", Values: values}
		prompt := v.Prompt
		if prompt == "" {
			prompt = v.Translation
		}
		it.Body.Paras = []para{{Text: prompt}}
		it.Body.Order = &orderInteraction{ResponseIdentifier: responseID, Shuffle: false, Choices: cs}
	default:
		return assessmentItem{}, fmt.Errorf("%s: %s exercises are not assessable", id, e.Kind())
	}
	return it, nil
}
