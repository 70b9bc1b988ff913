package curriculum

import "github.com/mind-engage/pppcourse/internal/course"

var phaseB = course.Track{
	Slug:        "phase-b",
	Title:       "Phase B: Everyday Life",
	Description: "Cafés, restaurants and finding your way around town.",
	Modules:     []course.Module{moduleFood, moduleGettingAround},
}

var moduleFood = course.Module{
	ID:          "m3",
	Title:       "Food & Café",
	Description: "Order drinks and meals and deal with the bill.",
	Lessons: []course.Lesson{
		{
			ID:    "m3l1",
			Title: "At the Café",
			XP:    15,
			Content: course.LessonContent{
				Title: "Ordering coffee and a snack",
				Sections: []course.Section{
					{
						Title:       "Asking for things",
						Explanation: "Queria (I would like) is the polite way to order. Me vê / me dá are casual Brazilian alternatives you will hear at the counter.",
						Examples: []course.Example{
							course.Ex("Queria um café, por favor.", "I'd like a coffee, please."),
							course.ExNote("Me vê um pão de queijo.", "Get me a cheese bread.", "Informal, Brazil"),
							course.Ex("Para viagem ou para comer aqui?", "To go or to eat here?"),
							course.Ex("Para comer aqui.", "To eat here."),
						},
						KeyPoints: []string{
							"Queria is technically past tense but works as a polite present.",
							"Add por favor at the end, not the start.",
						},
					},
					{
						Title:       "Coffee culture",
						Explanation: "A café in Portugal is a short espresso, called uma bica in Lisbon. In Brazil, cafezinho is a small sweet black coffee offered everywhere.",
						Examples: []course.Example{
							course.ExNote("Uma bica, por favor.", "An espresso, please.", "Lisbon"),
							course.ExNote("Um galão.", "A milky coffee in a glass.", "Portugal"),
							course.ExNote("Um cafezinho?", "A little coffee?", "Brazil, offered as hospitality"),
						},
						CulturalNote: course.NewCulturalNote("Cafezinho",
							"Being offered a cafezinho in a Brazilian office or home is a gesture of welcome; accepting it is polite even if you only take a sip.",
						),
					},
				},
				CheatSheet: course.NewCheatSheet("Café phrases",
					course.Row("I'd like…", "Queria…"),
					course.Row("To go", "Para viagem (BR) / Para levar (PT)"),
					course.Row("The bill, please", "A conta, por favor"),
				),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "Queria", "I would like"),
				course.NewFlashcard("e2", "Para viagem", "To go"),
				course.NewMCQ("e3", "What is a bica?", "An espresso", "A milky coffee", "An espresso", "A cheese bread"),
				course.Order{ID: "e4", Prompt: "Order politely", Items: []string{"Queria", "um", "café", "por", "favor"}, Translation: "I'd like a coffee, please."},
				course.NewListening("e5", "Para comer aqui.", "Para comer aqui.", "Para viagem.", "Para comer aqui.", "Para levar."),
				course.NewTyping("e6", "Say 'I'd like a coffee, please.'", "Queria um café, por favor."),
			},
		},
		{
			ID:    "m3l2",
			Title: "At the Restaurant",
			XP:    20,
			Content: course.LessonContent{
				Title: "Menus, dishes and paying",
				Sections: []course.Section{
					{
						Title:       "Reading the menu",
						Explanation: "Menus list entradas (starters), pratos principais (mains) and sobremesas (desserts). Prato do dia is the dish of the day.",
						Examples: []course.Example{
							course.Ex("O cardápio, por favor.", "The menu, please."),
							course.ExNote("A ementa, por favor.", "The menu, please.", "Portugal"),
							course.Ex("Qual é o prato do dia?", "What is the dish of the day?"),
							course.Ex("Eu vou querer o frango.", "I'll have the chicken."),
						},
						Contrasts: []course.ContrastPair{
							course.NewContrast(course.ExNote("cardápio", "menu", "Brazil"), course.ExNote("ementa", "menu", "Portugal"),
								"Same object, different word on each side of the Atlantic."),
						},
					},
					{
						Title:       "Paying",
						Explanation: "Ask for a conta when you are ready; waiters rarely bring it unasked. Service (10%) is often already included in Brazil.",
						Examples: []course.Example{
							course.Ex("A conta, por favor.", "The bill, please."),
							course.Ex("Posso pagar com cartão?", "Can I pay by card?"),
							course.Ex("O serviço está incluído?", "Is service included?"),
						},
						Pitfalls: []course.Pitfall{
							course.NewPitfall("Eu quero a conta!", "A conta, por favor.", "Quero sounds demanding; drop it and add por favor."),
						},
						MiniCheck: course.NewMiniCheck("How do you ask if you can pay by card?", "Posso pagar com cartão?"),
					},
				},
				WhyItMatters: course.NewWhyItMatters("Eating out is the situation where visitors speak Portuguese most often.",
					"Ordering", "Asking about ingredients", "Splitting the bill"),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "sobremesa", "dessert"),
				course.NewFlashcard("e2", "prato do dia", "dish of the day"),
				course.NewMatching("e3", "Match the menu sections",
					course.Pair("entradas", "starters"),
					course.Pair("pratos principais", "mains"),
					course.Pair("sobremesas", "desserts"),
				),
				course.NewMCQ("e4", "Which word for 'menu' would you hear in Lisbon?", "ementa", "cardápio", "ementa", "conta"),
				course.NewTyping("e5", "Ask for the bill", "A conta, por favor."),
				course.NewListening("e6", "Posso pagar com cartão?", "Can I pay by card?"),
				course.NewPronunciationDrill("e7", "Eu vou querer o frango.", "I'll have the chicken."),
			},
		},
	},
}

var moduleGettingAround = course.Module{
	ID:          "m4",
	Title:       "Getting Around",
	Description: "Ask for directions and use public transport.",
	Lessons: []course.Lesson{
		{
			ID:    "m4l1",
			Title: "Asking for Directions",
			XP:    15,
			Content: course.LessonContent{
				Title: "Onde fica…?",
				Sections: []course.Section{
					{
						Title:       "Where is it?",
						Explanation: "Onde fica is used for fixed locations like buildings and streets; onde está works for things that move.",
						Examples: []course.Example{
							course.Ex("Onde fica a estação?", "Where is the station?"),
							course.Ex("Com licença, onde fica o banheiro?", "Excuse me, where is the bathroom?"),
							course.ExNote("Onde fica a casa de banho?", "Where is the bathroom?", "Portugal"),
						},
						Contrasts: []course.ContrastPair{
							course.NewContrast(course.Ex("Onde fica o museu?", "Where is the museum?"), course.Ex("Onde está o Pedro?", "Where is Pedro?"),
								"Buildings stay put (ficar); people move (estar)."),
						},
					},
					{
						Title:       "Understanding the answer",
						Explanation: "Directions are given with imperatives: vire (turn), siga (follow), atravesse (cross).",
						Examples: []course.Example{
							course.Ex("Siga em frente.", "Go straight ahead."),
							course.Ex("Vire à direita.", "Turn right."),
							course.Ex("Vire à esquerda.", "Turn left."),
							course.Ex("Fica perto.", "It's close."),
							course.Ex("Fica longe.", "It's far."),
						},
						RuleBox: course.NewRuleBox("Direction words",
							"à direita = to the right",
							"à esquerda = to the left",
							"em frente = straight ahead",
						),
						Pronunciation: course.NewPronunciation("rr / initial r",
							"A double rr or a word-initial r is a throaty h-like sound in most of Brazil.",
							"direita", "rua", "carro",
						),
					},
				},
				CheatSheet: course.NewCheatSheet("Directions",
					course.Row("Left", "esquerda"),
					course.Row("Right", "direita"),
					course.Row("Straight on", "em frente"),
					course.Row("Near / far", "perto / longe"),
				),
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "esquerda", "left"),
				course.NewFlashcard("e2", "direita", "right"),
				course.NewMCQ("e3", "Where is the station?", "Onde fica a estação?", "Onde fica a estação?", "Onde está a estação?", "Como fica a estação?"),
				course.NewListening("e4", "Vire à esquerda.", "Turn left.", "Turn left.", "Turn right.", "Go straight ahead."),
				course.NewMatching("e5", "Match the directions",
					course.Pair("Siga em frente.", "Go straight ahead."),
					course.Pair("Vire à direita.", "Turn right."),
					course.Pair("Fica perto.", "It's close."),
				),
				course.NewPronunciationDrill("e6", "Vire à direita na rua principal.", "Turn right on the main street."),
			},
		},
		{
			ID:    "m4l2",
			Title: "Public Transport",
			XP:    20,
			Content: course.LessonContent{
				Title: "Buses, trains and tickets",
				Sections: []course.Section{
					{
						Title:       "Buying a ticket",
						Explanation: "Ask for a bilhete (PT) or passagem (BR). Ida is one way, ida e volta is a return.",
						Examples: []course.Example{
							course.Ex("Uma passagem para Santos, por favor.", "A ticket to Santos, please."),
							course.ExNote("Um bilhete de ida e volta.", "A return ticket.", "Portugal"),
							course.Ex("Quanto custa?", "How much is it?"),
						},
					},
					{
						Title:       "On the move",
						Explanation: "The verb pegar (BR) or apanhar (PT) means to catch a bus or train.",
						Examples: []course.Example{
							course.ExNote("Vou pegar o ônibus.", "I'm going to catch the bus.", "Brazil"),
							course.ExNote("Vou apanhar o autocarro.", "I'm going to catch the bus.", "Portugal"),
							course.Ex("Este trem vai para o centro?", "Does this train go to the centre?"),
							course.Ex("Qual é a próxima parada?", "What is the next stop?"),
						},
						Pitfalls: []course.Pitfall{
							course.NewPitfall("Vou pegar o autocarro.", "Vou pegar o ônibus. / Vou apanhar o autocarro.", "Keep the Brazilian or the Portuguese pair together."),
						},
						CulturalNote: course.NewCulturalNote("Bus vocabulary",
							"Ônibus in Brazil, autocarro in Portugal. Using the wrong one is understood but instantly marks where you learned.",
						),
					},
				},
			},
			Exercises: course.ExerciseList{
				course.NewFlashcard("e1", "ida e volta", "return (ticket)"),
				course.NewFlashcard("e2", "ônibus", "bus (BR)"),
				course.NewMCQ("e3", "Which verb means 'to catch' a bus in Portugal?", "apanhar", "pegar", "apanhar", "tomar conta"),
				course.NewTyping("e4", "Ask 'How much is it?'", "Quanto custa?"),
				course.Order{ID: "e5", Items: []string{"Qual", "é", "a", "próxima", "parada"}, Translation: "What is the next stop?"},
				course.NewListening("e6", "Este trem vai para o centro?", "Does this train go to the centre?"),
			},
		},
	},
}
