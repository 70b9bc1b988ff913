package curriculum

import "github.com/mind-engage/pppcourse/internal/course"

var phaseC = course.Track{
	Slug:        "phase-c",
	Title:       "Phase C: Grammar Core",
	Description: "The two verbs 'to be' and the regular present tense.",
	Modules:     []course.Module{moduleSerEstar, modulePresentTense},
}

var moduleSerEstar = course.Module{
	ID:          "m5",
	Title:       "Ser vs Estar",
	Description: "Two verbs for 'to be': identity versus state.",
	Lessons: []course.Lesson{
		{
			ID:    "m5l1",
			Title: "Ser: Who and What",
			XP:    20,
			Content: course.LessonContent{
				Title: "Permanent characteristics with ser",
				Sections: []course.Section{
					{
						Title:       "Conjugation",
						Explanation: "Ser is irregular. Learn the forms as a block.",
						Examples: []course.Example{
							course.Ex("eu sou", "I am"),
							course.ExNote("você / ele / ela é", "you are / he / she is", "Você takes third-person forms"),
							course.Ex("nós somos", "we are"),
							course.Ex("vocês / eles / elas são", "you (pl.) / they are"),
						},
					},
					{
						Title:       "When to use ser",
						Explanation: "Ser describes identity, origin, profession, nationality, time and inherent qualities.",
						Examples: []course.Example{
							course.Ex("Eu sou professora.", "I am a teacher."),
							course.Ex("Ele é brasileiro.", "He is Brazilian."),
							course.Ex("A casa é grande.", "The house is big."),
							course.Ex("Hoje é segunda-feira.", "Today is Monday."),
						},
						RuleBox: course.NewRuleBox("Ser checklist (DOCTOR)",
							"Description", "Occupation", "Characteristic", "Time", "Origin", "Relationship",
						),
						Pitfalls: []course.Pitfall{
							course.NewPitfall("Eu sou um professor.", "Eu sou professor.", "Professions after ser drop the article."),
						},
					},
				},
				WhyItMatters: course.NewWhyItMatters("Ser versus estar is the first grammar choice that changes meaning, not just correctness."),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "nós somos", "we are"),
				course.NewMCQ("e2", "Ele ___ brasileiro.", "é", "é", "está", "são"),
				course.NewMCQ("e3", "I am a teacher (f).", "Eu sou professora.", "Eu sou uma professora.", "Eu estou professora.", "Eu sou professora."),
				course.NewTyping("e4", "Conjugate ser for 'eles'", "são"),
				course.NewMatching("e5", "Match pronoun and form",
					course.Pair("eu", "sou"),
					course.Pair("nós", "somos"),
					course.Pair("elas", "são"),
				),
			},
		},
		{
			ID:    "m5l2",
			Title: "Estar: How and Where",
			XP:    20,
			Content: course.LessonContent{
				Title: "Temporary states and location with estar",
				Sections: []course.Section{
					{
						Title:       "Conjugation",
						Explanation: "Estar is irregular too; stress falls on the final syllable.",
						Examples: []course.Example{
							course.Ex("eu estou", "I am"),
							course.Ex("você / ele / ela está", "you are / he / she is"),
							course.Ex("nós estamos", "we are"),
							course.Ex("vocês / eles / elas estão", "you (pl.) / they are"),
						},
						Pronunciation: course.NewPronunciation("ão",
							"Estão ends in the nasal diphthong ão, like 'ow' through the nose.",
							"estão", "são", "pão",
						),
					},
					{
						Title:       "Same adjective, different meaning",
						Explanation: "Many adjectives change meaning depending on the verb.",
						Contrasts: []course.ContrastPair{
							course.NewContrast(course.Ex("Ele é chato.", "He is boring."), course.Ex("Ele está chato.", "He is being annoying."),
								"Ser gives the personality; estar the current mood."),
							course.NewContrast(course.Ex("A sopa é boa.", "The soup is good (a good recipe)."), course.Ex("A sopa está boa.", "The soup tastes good (right now)."),
								"Estar describes how it is today."),
						},
						MiniCheck: course.NewMiniCheck("Ana is tired today: Ana ___ cansada.", "está", "é", "está"),
					},
					{
						Title:       "Location",
						Explanation: "Use estar for where people and movable things are right now.",
						Examples: []course.Example{
							course.Ex("Estou em casa.", "I'm at home."),
							course.Ex("As chaves estão na mesa.", "The keys are on the table."),
						},
						Pitfalls: []course.Pitfall{
							course.NewPitfall("Eu sou cansado.", "Eu estou cansado.", "Tiredness is a state, so it takes estar."),
						},
					},
				},
				CheatSheet: course.NewCheatSheet("Ser or estar?",
					course.Row("Identity, origin, job", "ser"),
					course.Row("Mood, condition", "estar"),
					course.Row("Location of people/things", "estar"),
					course.Row("Location of events", "ser"),
				),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "nós estamos", "we are"),
				course.NewMCQ("e2", "Eu ___ cansado.", "estou", "sou", "estou", "é"),
				course.NewMCQ("e3", "Which means 'He is being annoying'?", "Ele está chato.", "Ele é chato.", "Ele está chato."),
				course.NewListening("e4", "As chaves estão na mesa.", "The keys are on the table."),
				course.NewTyping("e5", "Say 'I'm at home.'", "Estou em casa."),
				course.NewPronunciationDrill("e6", "Eles estão em casa.", "They are at home."),
			},
		},
	},
}

var modulePresentTense = course.Module{
	ID:          "m6",
	Title:       "The Present Tense",
	Description: "Regular -ar, -er and -ir verbs in the present.",
	Lessons: []course.Lesson{
		{
			ID:    "m6l1",
			Title: "-ar Verbs",
			XP:    20,
			Content: course.LessonContent{
				Title: "Falar, morar, trabalhar",
				Sections: []course.Section{
					{
						Title:       "Endings",
						Explanation: "Drop -ar and add -o, -a, -amos, -am.",
						Examples: []course.Example{
							course.Ex("eu falo", "I speak"),
							course.Ex("você fala", "you speak"),
							course.Ex("nós falamos", "we speak"),
							course.Ex("eles falam", "they speak"),
						},
						RuleBox: course.NewRuleBox("-ar endings", "eu -o", "você/ele/ela -a", "nós -amos", "vocês/eles/elas -am"),
					},
					{
						Title:       "In use",
						Explanation: "The present also covers habits and the near future.",
						Examples: []course.Example{
							course.Ex("Eu moro em Recife.", "I live in Recife."),
							course.Ex("Ela trabalha num hospital.", "She works in a hospital."),
							course.ExNote("Amanhã eu falo com ele.", "I'll talk to him tomorrow.", "Present for near future"),
						},
						KeyPoints: []string{"Subject pronouns are often dropped: Falo português."},
					},
				},
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "morar", "to live"),
				course.NewMCQ("e2", "Nós ___ português.", "falamos", "falam", "falamos", "falo"),
				course.NewTyping("e3", "Conjugate trabalhar for 'eu'", "trabalho"),
				course.Order{ID: "e4", Items: []string{"Ela", "trabalha", "num", "hospital"}, Translation: "She works in a hospital."},
				course.NewListening("e5", "Eu moro em Recife.", "I live in Recife."),
			},
		},
		{
			ID:    "m6l2",
			Title: "-er and -ir Verbs",
			XP:    25,
			Content: course.LessonContent{
				Title: "Comer, beber, partir, abrir",
				Sections: []course.Section{
					{
						Title:       "-er endings",
						Explanation: "Drop -er and add -o, -e, -emos, -em.",
						Examples: []course.Example{
							course.Ex("eu como", "I eat"),
							course.Ex("ela bebe", "she drinks"),
							course.Ex("nós comemos", "we eat"),
							course.Ex("eles bebem", "they drink"),
						},
					},
					{
						Title:       "-ir endings",
						Explanation: "-ir verbs match -er except in the nós form: -imos.",
						Examples: []course.Example{
							course.Ex("eu abro", "I open"),
							course.Ex("você parte", "you leave"),
							course.Ex("nós partimos", "we leave"),
							course.Ex("elas abrem", "they open"),
						},
						Contrasts: []course.ContrastPair{
							course.NewContrast(course.Ex("nós comemos", "we eat"), course.Ex("nós partimos", "we leave"),
								"Only the nós ending tells -er and -ir apart."),
						},
						Pitfalls: []course.Pitfall{
							course.NewPitfall("nós abremos", "nós abrimos", "-ir verbs take -imos."),
						},
					},
				},
				CheatSheet: course.NewCheatSheet("Present endings",
					course.Row("-ar", "-o, -a, -amos, -am"),
					course.Row("-er", "-o, -e, -emos, -em"),
					course.Row("-ir", "-o, -e, -imos, -em"),
				),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "beber", "to drink"),
				course.NewMCQ("e2", "Nós ___ a porta.", "abrimos", "abremos", "abrimos", "abrem"),
				course.NewMatching("e3", "Match verb and ending for 'nós'",
					course.Pair("comer", "comemos"),
					course.Pair("partir", "partimos"),
					course.Pair("falar", "falamos"),
				),
				course.NewTyping("e4", "Conjugate beber for 'eles'", "bebem"),
				course.NewPronunciationDrill("e5", "Nós comemos às oito.", "We eat at eight."),
			},
		},
	},
}
