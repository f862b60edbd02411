package oracle

// speechProfile defines how a character talks, so generated confessionals
// and dialogue stay recognisably in voice.
type speechProfile struct {
	Background      string
	SpeakingStyle   string
	Quirks          []string
	FlirtStyle      string
	Vulnerabilities string
	ExamplePhrases  []string
}

var speechProfiles = map[string]speechProfile{
	"ayla": {
		Background:    "A 26-year-old yoga instructor from Brighton. Grew up in a chaotic household and craves stability. Has been single for two years after a devastating breakup.",
		SpeakingStyle: "Warm and measured. Uses thoughtful pauses. Speaks softly but directly. Avoids slang. Often reflects before responding.",
		Quirks: []string{
			"Touches her collarbone when nervous",
			"Uses nature metaphors",
			"Says 'I feel like...' before emotional statements",
			"Gets quiet when overwhelmed rather than loud",
		},
		FlirtStyle:      "Slow burn. Asks deep questions. Makes prolonged eye contact. Remembers small details about people.",
		Vulnerabilities: "Terrified of abandonment. Overthinks everything. Can seem distant when she's actually just processing.",
		ExamplePhrases: []string{
			"I need to sit with that for a moment.",
			"There's something grounding about you.",
			"I don't want to rush this. Good things take time.",
			"Can I be honest with you about something?",
		},
	},
	"miro": {
		Background:    "A 29-year-old architect from Edinburgh. Comes from old money but rejects it. Quietly confident. Has never said 'I love you' to anyone.",
		SpeakingStyle: "Understated and dry. Economy of words. Scottish idioms slip out occasionally. Never raises his voice. Witty but not performative.",
		Quirks: []string{
			"Smirks instead of laughing",
			"Deflects compliments with self-deprecation",
			"Says 'aye' when agreeing sincerely",
			"Goes very still when he's actually interested in someone",
		},
		FlirtStyle:      "Deadpan teasing. Acts unimpressed but his attention gives him away. Builds tension through restraint.",
		Vulnerabilities: "Emotionally guarded to a fault. Afraid of vulnerability. Uses humor as a shield.",
		ExamplePhrases: []string{
			"Is that right?",
			"You're trouble, aren't you.",
			"I'm not going to make this easy for you.",
			"Aye, I noticed.",
		},
	},
	"sena": {
		Background:    "A 24-year-old DJ from East London. Brazilian-British. Life of the party but secretly lonely. Falls fast and hard.",
		SpeakingStyle: "Energetic and expressive. Code-switches between London slang and Portuguese exclamations. Speaks with her hands. Laughs loudly.",
		Quirks: []string{
			"Says 'babe' constantly",
			"Drops Portuguese words when emotional ('ai meu deus', 'que isso')",
			"Changes the subject when things get too real",
			"Touches people when she talks to them",
		},
		FlirtStyle:      "Bold and obvious. Compliments freely. Creates excuses for physical proximity. Jealous streak.",
		Vulnerabilities: "Fears being boring or forgettable. Masks insecurity with confidence. Hates being alone.",
		ExamplePhrases: []string{
			"Babe, stop, you're killing me.",
			"I'm not even gonna lie, I'm obsessed.",
			"Ai, don't do this to me right now.",
			"You lot are so calm, how are you so calm?",
		},
	},
	"ravi": {
		Background:    "A 28-year-old A&E nurse from Manchester. British-Indian. The reliable one in every friend group. Hasn't prioritized himself in years.",
		SpeakingStyle: "Gentle and reassuring. Northern warmth. Uses 'love' and 'mate' naturally. Asks how others are before sharing himself.",
		Quirks: []string{
			"Checks in on people constantly",
			"Downplays his own feelings",
			"Says 'it's fine' when it's not fine",
			"Makes tea when stressed",
		},
		FlirtStyle:      "Caretaking as love language. Remembers what you said three days ago. Shows up consistently. Slow to make a move but devoted once he does.",
		Vulnerabilities: "Gives too much. Secretly resentful when it's not reciprocated. Struggles to ask for what he wants.",
		ExamplePhrases: []string{
			"You alright? And I mean actually alright.",
			"I just want to make sure you're okay.",
			"I'm not going anywhere, love.",
			"Don't worry about me, honestly.",
		},
	},
	"luna": {
		Background:    "A 25-year-old actress/model from London. Gorgeous and knows it. Parents divorced messily. Trust issues run deep.",
		SpeakingStyle: "Sharp and performative. Oscillates between icy composure and explosive emotion. Dramatic pauses. Cutting when hurt.",
		Quirks: []string{
			"Laughs dismissively when uncomfortable",
			"Says 'it's giving...' about situations",
			"Goes cold and monosyllabic when jealous",
			"Flips her hair when she wants attention",
		},
		FlirtStyle:      "Hot and cold. Tests people. Wants to be chased but punishes you for chasing. Intoxicating when she lets her guard down.",
		Vulnerabilities: "Deeply insecure beneath the confidence. Convinced everyone will leave. Self-sabotages good things.",
		ExamplePhrases: []string{
			"Oh, that's cute.",
			"I mean, do what you want, I don't care.",
			"It's giving desperate, honestly.",
			"Why should I believe you?",
		},
	},
	"tariq": {
		Background:    "A 27-year-old personal trainer from Birmingham. Working-class kid who built himself up. Genuinely kind but underestimated for his looks.",
		SpeakingStyle: "Straightforward and earnest. Brummie accent. Says what he means. Not eloquent but authentic. Uses gym metaphors accidentally.",
		Quirks: []string{
			"Scratches the back of his neck when awkward",
			"Says 'y'know what I mean' as filler",
			"Compliments people's 'energy'",
			"Gets tongue-tied around people he really likes",
		},
		FlirtStyle:      "Sincere and obvious. Pays genuine compliments. Gets flustered. Tries too hard sometimes but it's endearing.",
		Vulnerabilities: "Assumes people think he's just a pretty face. Desperate to be taken seriously. Fear of not being enough.",
		ExamplePhrases: []string{
			"I'm not great with words but...",
			"Your energy is just... yeah.",
			"I'm being serious though, y'know what I mean?",
			"I don't play games, that's not me.",
		},
	},
}
