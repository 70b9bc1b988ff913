package curriculum

import "github.com/mind-engage/pppcourse/internal/course"

var phaseA = course.Track{
	Slug:        "phase-a",
	Title:       "Phase A: First Contact",
	Description: "Greetings, introductions, numbers and time: the survival layer.",
	Modules:     []course.Module{moduleGreetings, moduleNumbers},
}

var moduleGreetings = course.Module{
	ID:          "m1",
	Title:       "Greetings & Introductions",
	Description: "Say hello, say goodbye and tell people who you are.",
	Lessons: []course.Lesson{
		{
			ID:    "m1l1",
			Title: "Saying Hello",
			XP:    10,
			Content: course.LessonContent{
				Title: "Hello, goodbye and the time of day",
				Sections: []course.Section{
					{
						Title:       "Everyday greetings",
						Explanation: "Portuguese greetings change with the time of day. Olá is neutral and safe anywhere; Oi is the relaxed Brazilian hello.",
						Examples: []course.Example{
							course.Ex("Olá", "Hello"),
							course.ExNote("Oi", "Hi", "Informal, very common in Brazil"),
							course.Ex("Bom dia", "Good morning"),
							course.ExNote("Boa tarde", "Good afternoon", "From noon until it gets dark"),
							course.Ex("Boa noite", "Good evening / Good night"),
						},
						KeyPoints: []string{
							"Bom dia is masculine (o dia); boa tarde and boa noite are feminine.",
							"Boa noite works both as a greeting and as a goodbye.",
						},
						RuleBox: course.NewRuleBox("Bom or boa?",
							"bom goes with masculine nouns: bom dia",
							"boa goes with feminine nouns: boa tarde, boa noite",
						),
						Pronunciation: course.NewPronunciation("ão / om",
							"Nasal vowels are pushed through the nose; do not pronounce a clear final m in bom.",
							"bom", "bom dia", "então",
						),
					},
					{
						Title:       "Leaving",
						Explanation: "Tchau is the everyday goodbye. Até logo and até amanhã add when you expect to meet again.",
						Examples: []course.Example{
							course.ExNote("Tchau", "Bye", "From Italian ciao"),
							course.Ex("Até logo", "See you later"),
							course.Ex("Até amanhã", "See you tomorrow"),
						},
						CulturalNote: course.NewCulturalNote("Kisses on the cheek",
							"Friends and new acquaintances often greet with one kiss on the cheek in Brazil (two in Portugal). A handshake is normal in business settings.",
						),
						MiniCheck: course.NewMiniCheck("Which goodbye means 'see you tomorrow'?", "Até amanhã", "Até logo", "Até amanhã", "Tchau"),
					},
				},
				CheatSheet: course.NewCheatSheet("Greetings at a glance",
					course.Row("Hello", "Olá / Oi"),
					course.Row("Good morning", "Bom dia"),
					course.Row("Good afternoon", "Boa tarde"),
					course.Row("Good evening", "Boa noite"),
					course.Row("Bye", "Tchau"),
				),
				WhyItMatters: course.NewWhyItMatters(
					"A correct greeting for the time of day is the first thing anyone will hear from you.",
					"Entering a shop", "Answering the phone", "Meeting neighbours",
				),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "Olá", "Hello"),
				course.NewFlashcard("e2", "Tchau", "Bye"),
				course.NewFlashcard("e3", "Boa noite", "Good evening"),
				course.NewListening("e4", "Boa tarde", "Boa tarde", "Bom dia", "Boa tarde", "Boa noite"),
				course.NewMatching("e5", "Match the greeting to its meaning",
					course.Pair("Bom dia", "Good morning"),
					course.Pair("Boa tarde", "Good afternoon"),
					course.Pair("Boa noite", "Good evening"),
					course.Pair("Até logo", "See you later"),
				),
				course.NewMCQ("e6", "How do you say 'Good morning'?", "Bom dia", "Boa noite", "Bom dia", "Boa tarde", "Olá"),
				course.NewTyping("e7", "Type 'See you tomorrow' in Portuguese", "Até amanhã"),
				course.NewPronunciationDrill("e8", "Bom dia", "Good morning"),
			},
		},
		{
			ID:    "m1l2",
			Title: "Introducing Yourself",
			XP:    15,
			Content: course.LessonContent{
				Title: "Names, origins and being polite",
				Sections: []course.Section{
					{
						Title:       "What is your name?",
						Explanation: "Chamar-se (to be called) is the natural way to give your name. Meu nome é is also correct and a little more formal.",
						Examples: []course.Example{
							course.Ex("Como você se chama?", "What is your name?"),
							course.Ex("Eu me chamo Ana.", "My name is Ana."),
							course.Ex("Meu nome é Pedro.", "My name is Pedro."),
							course.ExNote("Muito prazer.", "Nice to meet you.", "Literally 'much pleasure'"),
						},
						Contrasts: []course.ContrastPair{
							course.NewContrast(
								course.ExNote("Me chamo Ana.", "My name is Ana.", "Brazil"),
								course.ExNote("Chamo-me Ana.", "My name is Ana.", "Portugal"),
								"Brazil puts the pronoun before the verb; Portugal attaches it after with a hyphen.",
							),
						},
					},
					{
						Title:       "Where are you from?",
						Explanation: "Use ser de + place for origin. De contracts with the article of the country: do Brasil, da Inglaterra, dos Estados Unidos.",
						Examples: []course.Example{
							course.Ex("De onde você é?", "Where are you from?"),
							course.Ex("Eu sou do Canadá.", "I am from Canada."),
							course.Ex("Ela é da Alemanha.", "She is from Germany."),
							course.ExNote("Sou de Lisboa.", "I am from Lisbon.", "Cities usually take no article"),
						},
						Pitfalls: []course.Pitfall{
							course.NewPitfall("Eu sou de o Brasil.", "Eu sou do Brasil.", "De + o always contracts to do."),
						},
					},
					{
						Title:       "Please and thank you",
						Explanation: "Obrigado agrees with the speaker, not the listener: men say obrigado, women say obrigada.",
						Examples: []course.Example{
							course.ExNote("Obrigado.", "Thank you.", "Said by a man"),
							course.ExNote("Obrigada.", "Thank you.", "Said by a woman"),
							course.Ex("Por favor.", "Please."),
							course.Ex("De nada.", "You're welcome."),
						},
						Pitfalls: []course.Pitfall{
							course.NewPitfall("A woman saying 'Obrigado'", "Obrigada", "The ending follows the speaker's gender."),
						},
					},
				},
				CheatSheet: course.NewCheatSheet("Introductions",
					course.Row("My name is…", "Eu me chamo… / Meu nome é…"),
					course.Row("Nice to meet you", "Muito prazer"),
					course.Row("I am from…", "Eu sou de/do/da…"),
					course.Row("Thank you", "Obrigado / Obrigada"),
				),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "Muito prazer", "Nice to meet you"),
				course.NewFlashcard("e2", "De nada", "You're welcome"),
				course.NewMCQ("e3", "A woman thanks you. What does she say?", "Obrigada", "Obrigado", "Obrigada", "Obrigados"),
				course.NewMCQ("e4", "Complete: Eu sou ___ Brasil.", "do", "de", "do", "da"),
				course.Order{ID: "e5", Prompt: "Put the words in order", Items: []string{"Eu", "me", "chamo", "Pedro"}, Translation: "My name is Pedro."},
				course.NewTyping("e6", "Ask 'Where are you from?' (você)", "De onde você é?"),
				course.NewListening("e7", "Muito prazer", "Nice to meet you"),
			},
		},
	},
}

var moduleNumbers = course.Module{
	ID:          "m2",
	Title:       "Numbers & Time",
	Description: "Count, give your phone number and tell the time.",
	Lessons: []course.Lesson{
		{
			ID:    "m2l1",
			Title: "Numbers 0–20",
			XP:    10,
			Content: course.LessonContent{
				Title: "Counting from zero to twenty",
				Sections: []course.Section{
					{
						Title:       "Zero to ten",
						Explanation: "Um and dois change to uma and duas before feminine nouns. The other numbers do not change.",
						Examples: []course.Example{
							course.Ex("zero", "0"),
							course.ExNote("um / uma", "1", "um café, uma água"),
							course.ExNote("dois / duas", "2", "dois cafés, duas águas"),
							course.Ex("três", "3"),
							course.Ex("quatro", "4"),
							course.Ex("cinco", "5"),
							course.ExNote("seis", "6", "Brazilians often say meia for 6 in phone numbers"),
							course.Ex("sete", "7"),
							course.Ex("oito", "8"),
							course.Ex("nove", "9"),
							course.Ex("dez", "10"),
						},
						RuleBox: course.NewRuleBox("Numbers with gender", "1 → um/uma", "2 → dois/duas", "all others are invariable"),
					},
					{
						Title:       "Eleven to twenty",
						Explanation: "Eleven to fifteen are single words to memorise; sixteen to nineteen are built as ten-and-six.",
						Examples: []course.Example{
							course.Ex("onze", "11"),
							course.Ex("doze", "12"),
							course.Ex("treze", "13"),
							course.ExNote("catorze", "14", "Also spelled quatorze"),
							course.Ex("quinze", "15"),
							course.Ex("dezesseis", "16"),
							course.Ex("dezessete", "17"),
							course.Ex("dezoito", "18"),
							course.Ex("dezenove", "19"),
							course.Ex("vinte", "20"),
						},
						CulturalNote: course.NewCulturalNote("Meia for six",
							"Reading out phone numbers, Brazilians replace seis with meia (from meia dúzia, half a dozen) so it is not confused with três.",
						),
					},
				},
				CheatSheet: course.NewCheatSheet("Tricky numbers",
					course.Row("14", "catorze / quatorze"),
					course.Row("16", "dezesseis (BR) / dezasseis (PT)"),
					course.Row("6 on the phone", "meia"),
				),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "quinze", "15"),
				course.NewFlashcard("e2", "dezoito", "18"),
				course.NewMCQ("e3", "Which is 'two coffees'?", "dois cafés", "duas cafés", "dois cafés", "dez cafés"),
				course.NewListening("e4", "treze", "13", "3", "13", "30"),
				course.NewMatching("e5", "Match the numbers",
					course.Pair("onze", "11"),
					course.Pair("doze", "12"),
					course.Pair("vinte", "20"),
				),
				course.NewTyping("e6", "Write 17 in words", "dezessete"),
			},
		},
		{
			ID:    "m2l2",
			Title: "Telling the Time",
			XP:    15,
			Content: course.LessonContent{
				Title: "Que horas são?",
				Sections: []course.Section{
					{
						Title:       "Asking and answering",
						Explanation: "Time uses ser in the plural (são) except for one o'clock, midday and midnight, which take é.",
						Examples: []course.Example{
							course.Ex("Que horas são?", "What time is it?"),
							course.Ex("É uma hora.", "It's one o'clock."),
							course.Ex("São duas horas.", "It's two o'clock."),
							course.Ex("São três e meia.", "It's half past three."),
							course.Ex("É meio-dia.", "It's midday."),
						},
						Contrasts: []course.ContrastPair{
							course.NewContrast(course.Ex("É uma hora.", "It's one o'clock."), course.Ex("São duas horas.", "It's two o'clock."),
								"Hora is feminine, so one o'clock is uma hora, and only singular hours take é."),
						},
						MiniCheck: course.NewMiniCheck("Complete: ___ cinco horas.", "São", "É", "São"),
					},
					{
						Title:       "At what time?",
						Explanation: "Use à / às (a + a / as) to say when something happens.",
						Examples: []course.Example{
							course.Ex("A aula é às nove.", "The class is at nine."),
							course.Ex("O filme começa à uma.", "The film starts at one."),
						},
						Pitfalls: []course.Pitfall{
							course.NewPitfall("A reunião é a duas.", "A reunião é às duas.", "Hours are feminine plural, so a + as = às."),
						},
					},
				},
				WhyItMatters: course.NewWhyItMatters("Appointments, trains and opening hours all depend on getting the time right."),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "Que horas são?", "What time is it?"),
				course.NewMCQ("e2", "It's one o'clock.", "É uma hora.", "São uma hora.", "É uma hora.", "É um hora."),
				course.NewMCQ("e3", "The class is ___ nove.", "às", "as", "às", "a"),
				course.Order{ID: "e4", Prompt: "Build the sentence", Items: []string{"São", "três", "e", "meia"}, Translation: "It's half past three."},
				course.NewListening("e5", "É meio-dia.", "It's midday."),
				course.NewPronunciationDrill("e6", "Que horas são?", "What time is it?"),
			},
		},
	},
}
