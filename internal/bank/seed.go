package bank

// modules holds the full instrument definition. Item and option order is
// significant: option indices are persisted in responses, and catalog
// order drives first-eligible-wins cluster selection.
var modules = []Module{
	{
		ID:    ModuleA,
		Kind:  KindForcedChoice,
		Title: "What Draws You In",
		Items: []Item{
			{
				ID:     "a1",
				Prompt: "It's a free Saturday afternoon. Which would you most likely do?",
				Options: []Option{
					{Text: "Work through a puzzle, strategy game, or coding challenge", Domain: DomainAnalytical},
					{Text: "Sketch, write, compose, or edit a video", Domain: DomainCreative},
					{Text: "Hang out with friends or help someone with a problem", Domain: DomainSocial},
					{Text: "Play a sport, skate, dance, or build something with your hands", Domain: DomainPhysical},
				},
			},
			{
				ID:     "a2",
				Prompt: "Your class is running a charity fair. Which job do you volunteer for?",
				Options: []Option{
					{Text: "Plan the budget and track what each stall earns", Domain: DomainAnalytical},
					{Text: "Design the posters and decorate the stalls", Domain: DomainCreative},
					{Text: "Greet visitors and make sure everyone feels welcome", Domain: DomainSocial},
					{Text: "Set up the tables, carry equipment, run the games", Domain: DomainPhysical},
				},
			},
			{
				ID:     "a3",
				Prompt: "Which kind of video do you watch all the way to the end?",
				Options: []Option{
					{Text: "An explainer that breaks down how something really works", Domain: DomainAnalytical},
					{Text: "A behind-the-scenes look at how an artist made something", Domain: DomainCreative},
					{Text: "A story about people helping each other through a hard time", Domain: DomainSocial},
					{Text: "An athlete or maker pulling off something physically impressive", Domain: DomainPhysical},
				},
			},
			{
				ID:     "a4",
				Prompt: "A group project is falling apart the night before it's due. What's your instinct?",
				Options: []Option{
					{Text: "Make a checklist, split the remaining work logically", Domain: DomainAnalytical},
					{Text: "Rework the presentation so it looks better than it is", Domain: DomainCreative},
					{Text: "Calm everyone down and get the group talking again", Domain: DomainSocial},
					{Text: "Just start doing the unfinished pieces yourself", Domain: DomainPhysical},
				},
			},
			{
				ID:     "a5",
				Prompt: "If school added one new subject, which would you pick?",
				Options: []Option{
					{Text: "Logic, data, and how to spot bad arguments", Domain: DomainAnalytical},
					{Text: "Studio time: film, music production, or design", Domain: DomainCreative},
					{Text: "Psychology and how people work", Domain: DomainSocial},
					{Text: "Outdoor skills, workshop, or advanced PE", Domain: DomainPhysical},
				},
			},
		},
	},
	{
		ID:    ModuleB,
		Kind:  KindTimedChoice,
		Title: "Quick Thinking",
		Items: []Item{
			{
				ID:     "b1",
				Prompt: "2, 6, 18, 54, ... what comes next?",
				Options: []Option{
					{Text: "108", Domain: DomainAnalytical},
					{Text: "162", Domain: DomainAnalytical, Correct: true},
					{Text: "216", Domain: DomainAnalytical},
					{Text: "112", Domain: DomainAnalytical},
				},
			},
			{
				ID:     "b2",
				Prompt: "Which word could describe both a piece of music and a stretch of weather?",
				Options: []Option{
					{Text: "Sharp", Domain: DomainCreative},
					{Text: "Front", Domain: DomainCreative},
					{Text: "Movement", Domain: DomainCreative, Correct: true},
					{Text: "Degree", Domain: DomainCreative},
				},
			},
			{
				ID:     "b3",
				Prompt: "Your friend says \"I'm fine\" with crossed arms and no eye contact. What are they most likely feeling?",
				Options: []Option{
					{Text: "Genuinely fine", Domain: DomainSocial},
					{Text: "Upset but not ready to talk", Domain: DomainSocial, Correct: true},
					{Text: "Bored of the conversation", Domain: DomainSocial},
					{Text: "Distracted by something else", Domain: DomainSocial},
				},
			},
			{
				ID:     "b4",
				Prompt: "To move a heavy box up into a van by yourself, which helps most?",
				Options: []Option{
					{Text: "Push it up a ramp", Domain: DomainPhysical, Correct: true},
					{Text: "Lift it straight up quickly", Domain: DomainPhysical},
					{Text: "Tip it end over end", Domain: DomainPhysical},
					{Text: "Drag it with a rope over your shoulder", Domain: DomainPhysical},
				},
			},
			{
				ID:     "b5",
				Prompt: "All squibs are torfs. Some torfs are green. Which must be true?",
				Options: []Option{
					{Text: "All squibs are green", Domain: DomainAnalytical},
					{Text: "Some squibs are green", Domain: DomainAnalytical},
					{Text: "Every squib is a torf", Domain: DomainAnalytical, Correct: true},
					{Text: "No torf is a squib", Domain: DomainAnalytical},
				},
			},
		},
	},
	{
		ID:    ModuleC,
		Kind:  KindOpenEnded,
		Title: "In Your Own Words",
		Items: []Item{
			{
				ID:       "c1",
				Prompt:   "Describe a problem you figured out recently — at school, in a game, anywhere. Walk through how you cracked it, step by step.",
				Domain:   DomainAnalytical,
				MinWords: 20,
				MaxWords: 100,
			},
			{
				ID:       "c2",
				Prompt:   "Invent something that doesn't exist yet but should. Describe what it is, who it's for, and why it would matter.",
				Domain:   DomainCreative,
				MinWords: 20,
				MaxWords: 100,
			},
			{
				ID:       "c3",
				Prompt:   "A new student eats alone every day and seems to want it that way. What would you do, and why?",
				Domain:   DomainSocial,
				MinWords: 20,
				MaxWords: 100,
			},
			{
				ID:       "c4",
				Prompt:   "Think of a physical skill you've improved at — a sport, an instrument, cooking, anything hands-on. How did you get better?",
				Domain:   DomainPhysical,
				MinWords: 20,
				MaxWords: 100,
			},
		},
	},
	{
		ID:    ModuleD,
		Kind:  KindFriction,
		Title: "How It Feels",
		Items: []Item{
			{
				ID:     "d1",
				Prompt: "You have to present your work in front of the whole class tomorrow. How does that sit with you?",
				Options: []Option{
					{Text: "Honestly, I'd look forward to it", FrictionLevel: FrictionLow, Score: 2},
					{Text: "Nervous, but I'd manage", FrictionLevel: FrictionMedium, Score: 1},
					{Text: "I'd be dreading it all week", FrictionLevel: FrictionHigh, Score: 0},
				},
			},
			{
				ID:     "d2",
				Prompt: "You've been working on something hard for an hour and it still isn't working. What happens next?",
				Options: []Option{
					{Text: "I get more curious — I want to beat it", FrictionLevel: FrictionLow, Score: 2},
					{Text: "I take a break and come back later", FrictionLevel: FrictionMedium, Score: 1},
					{Text: "I feel drained and want to drop it", FrictionLevel: FrictionHigh, Score: 0},
				},
			},
			{
				ID:     "d3",
				Prompt: "A teacher hands back your work covered in corrections. How do you feel reading them?",
				Options: []Option{
					{Text: "Useful — now I know exactly what to fix", FrictionLevel: FrictionLow, Score: 2},
					{Text: "A bit stung, but I read them all", FrictionLevel: FrictionMedium, Score: 1},
					{Text: "Deflated; it's hard to look at", FrictionLevel: FrictionHigh, Score: 0},
				},
			},
			{
				ID:     "d4",
				Prompt: "You're asked to lead a team where you only know one person. Your honest reaction?",
				Options: []Option{
					{Text: "Sounds fun, I'd say yes right away", FrictionLevel: FrictionLow, Score: 2},
					{Text: "I'd say yes, then worry about it", FrictionLevel: FrictionMedium, Score: 1},
					{Text: "I'd look for a way out of it", FrictionLevel: FrictionHigh, Score: 0},
				},
			},
			{
				ID:     "d5",
				Prompt: "Something you tried in public didn't work out and people noticed. A week later, how much does it bother you?",
				Options: []Option{
					{Text: "Barely — everyone flops sometimes", FrictionLevel: FrictionLow, Score: 2},
					{Text: "It still crosses my mind", FrictionLevel: FrictionMedium, Score: 1},
					{Text: "I replay it constantly", FrictionLevel: FrictionHigh, Score: 0},
				},
			},
		},
	},
}
