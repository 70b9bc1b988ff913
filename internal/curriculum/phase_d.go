package curriculum

import "github.com/mind-engage/pppcourse/internal/course"

var phaseD = course.Track{
	Slug:        "phase-d",
	Title:       "Phase D: Telling Stories",
	Description: "Talk about what happened and what you are going to do.",
	Modules:     []course.Module{modulePast, modulePlans},
}

var modulePast = course.Module{
	ID:          "m7",
	Title:       "What Happened: Pretérito Perfeito",
	Description: "Completed actions in the past.",
	Lessons: []course.Lesson{
		{
			ID:    "m7l1",
			Title: "Regular Past",
			XP:    25,
			Content: course.LessonContent{
				Title: "Ontem eu falei…",
				Sections: []course.Section{
					{
						Title:       "Endings",
						Explanation: "The pretérito perfeito is the simple past for finished actions.",
						Examples: []course.Example{
							course.Ex("eu falei", "I spoke"),
							course.Ex("ela comeu", "she ate"),
							course.Ex("nós partimos", "we left"),
							course.Ex("eles falaram", "they spoke"),
						},
						RuleBox: course.NewRuleBox("Past endings",
							"-ar: -ei, -ou, -amos, -aram",
							"-er: -i, -eu, -emos, -eram",
							"-ir: -i, -iu, -imos, -iram",
						),
						KeyPoints: []string{
							"Nós forms of -ar and -ir look the same in present and past; context decides.",
						},
					},
					{
						Title:       "Time markers",
						Explanation: "Past markers make the tense obvious.",
						Examples: []course.Example{
							course.Ex("Ontem eu trabalhei muito.", "Yesterday I worked a lot."),
							course.Ex("Semana passada nós viajamos.", "Last week we travelled."),
							course.Ex("Ele chegou há duas horas.", "He arrived two hours ago."),
						},
						Pitfalls: []course.Pitfall{
							course.NewPitfall("Ele chegou a duas horas.", "Ele chegou há duas horas.", "'Ago' is há, from haver."),
						},
						MiniCheck: course.NewMiniCheck("Past of 'eu comer'?", "comi", "comei", "comi", "comeu"),
					},
				},
				WhyItMatters: course.NewWhyItMatters("Most conversations start with what you did: the weekend, the trip, the day.",
					"Small talk on Monday", "Describing a problem", "Telling a story"),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "ontem", "yesterday"),
				course.NewFlashcard("e2", "há duas horas", "two hours ago"),
				course.NewMCQ("e3", "Ontem eu ___ (falar) com a Ana.", "falei", "falou", "falei", "falo"),
				course.NewMatching("e4", "Match infinitive and 'ele' past form",
					course.Pair("falar", "falou"),
					course.Pair("comer", "comeu"),
					course.Pair("partir", "partiu"),
				),
				course.NewTyping("e5", "Past of 'eles trabalhar'", "trabalharam"),
				course.NewListening("e6", "Semana passada nós viajamos.", "Last week we travelled."),
			},
		},
		{
			ID:    "m7l2",
			Title: "Irregular Past",
			XP:    30,
			Content: course.LessonContent{
				Title: "Ser, ir, ter, fazer",
				Sections: []course.Section{
					{
						Title:       "Ser and ir share a past",
						Explanation: "Fui can mean 'I was' or 'I went'; the preposition usually decides.",
						Examples: []course.Example{
							course.Ex("Eu fui ao Porto.", "I went to Porto."),
							course.Ex("Foi incrível.", "It was incredible."),
							course.Ex("Nós fomos à praia.", "We went to the beach."),
						},
						Contrasts: []course.ContrastPair{
							course.NewContrast(course.Ex("Fui ao mercado.", "I went to the market."), course.Ex("Fui professor.", "I was a teacher."),
								"A destination after fui means ir; a description means ser."),
						},
					},
					{
						Title:       "Ter and fazer",
						Explanation: "Both change stem in the past: tive, fiz.",
						Examples: []course.Example{
							course.Ex("Eu tive uma ideia.", "I had an idea."),
							course.Ex("Ela fez o jantar.", "She made dinner."),
							course.Ex("O que você fez ontem?", "What did you do yesterday?"),
						},
						Pronunciation: course.NewPronunciation("final z",
							"A final z sounds like s in Brazil and sh in Portugal.",
							"fiz", "fez", "vez",
						),
					},
				},
				CheatSheet: course.NewCheatSheet("Irregular past (eu / ele)",
					course.Row("ser / ir", "fui / foi"),
					course.Row("ter", "tive / teve"),
					course.Row("fazer", "fiz / fez"),
					course.Row("estar", "estive / esteve"),
				),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "fui", "I went / I was"),
				course.NewMCQ("e2", "What did you do yesterday?", "O que você fez ontem?", "O que você fez ontem?", "O que você faz ontem?", "O que você fazeu ontem?"),
				course.NewTyping("e3", "Past of 'eu ter'", "tive"),
				course.Order{ID: "e4", Prompt: "Build the sentence", Items: []string{"Nós", "fomos", "à", "praia"}, Translation: "We went to the beach."},
				course.NewPronunciationDrill("e5", "Eu fiz o jantar.", "I made dinner."),
			},
		},
	},
}

var modulePlans = course.Module{
	ID:          "m8",
	Title:       "Making Plans",
	Description: "The near future with ir + infinitive and inviting people.",
	Lessons: []course.Lesson{
		{
			ID:    "m8l1",
			Title: "Going To",
			XP:    20,
			Content: course.LessonContent{
				Title: "Ir + infinitive",
				Sections: []course.Section{
					{
						Title:       "The everyday future",
						Explanation: "Conjugate ir in the present and add an infinitive. This is how most future plans are said aloud.",
						Examples: []course.Example{
							course.Ex("Eu vou viajar amanhã.", "I'm going to travel tomorrow."),
							course.Ex("Vamos jantar fora?", "Shall we eat out?"),
							course.Ex("Eles vão chegar tarde.", "They're going to arrive late."),
						},
						RuleBox: course.NewRuleBox("ir (present)", "eu vou", "você/ele/ela vai", "nós vamos", "vocês/eles/elas vão"),
					},
					{
						Title:       "Inviting and answering",
						Explanation: "Vamos + infinitive invites; bora is the casual Brazilian version.",
						Examples: []course.Example{
							course.Ex("Vamos ao cinema no sábado?", "Shall we go to the cinema on Saturday?"),
							course.ExNote("Bora!", "Let's go!", "Informal, Brazil"),
							course.Ex("Não posso, vou trabalhar.", "I can't, I'm going to work."),
							course.Ex("Combinado!", "Deal!"),
						},
						CulturalNote: course.NewCulturalNote("Flexible times",
							"Social plans in Brazil often run on loose timing; a party 'at eight' may start at ten. Work meetings are a different matter.",
						),
						Pitfalls: []course.Pitfall{
							course.NewPitfall("Eu vou a viajar.", "Eu vou viajar.", "No preposition between ir and the infinitive."),
						},
					},
				},
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "Combinado!", "Deal!"),
				course.NewMCQ("e2", "Nós ___ jantar fora.", "vamos", "vamos", "vão", "vou"),
				course.NewTyping("e3", "Say 'I'm going to travel tomorrow.'", "Eu vou viajar amanhã."),
				course.NewMatching("e4", "Match pronoun and form of ir",
					course.Pair("eu", "vou"),
					course.Pair("ela", "vai"),
					course.Pair("eles", "vão"),
				),
				course.NewListening("e5", "Vamos ao cinema no sábado?", "Shall we go to the cinema on Saturday?"),
				course.NewPronunciationDrill("e6", "Eles vão chegar tarde.", "They're going to arrive late."),
			},
		},
	},
}
