package numerology

// Keyword tables keyed by the nine digits plus the three master numbers,
// one table per facet.

var lifePathKeywords = map[int]string{
	1:  "The Independent Pioneer",
	2:  "The Sensitive Diplomat",
	3:  "The Expressive Creator",
	4:  "The Steady Builder",
	5:  "The Restless Adventurer",
	6:  "The Devoted Caretaker",
	7:  "The Seeker of Truth",
	8:  "The Ambitious Executive",
	9:  "The Compassionate Humanitarian",
	11: "The Intuitive Illuminator",
	22: "The Master Builder",
	33: "The Master Teacher",
}

var expressionKeywords = map[int]string{
	1:  "Natural Leader",
	2:  "Cooperative Partner",
	3:  "Gifted Communicator",
	4:  "Disciplined Organizer",
	5:  "Versatile Free Spirit",
	6:  "Responsible Harmonizer",
	7:  "Analytical Specialist",
	8:  "Powerful Achiever",
	9:  "Universal Humanitarian",
	11: "Inspired Visionary",
	22: "Practical Idealist",
	33: "Selfless Nurturer",
}

var soulUrgeKeywords = map[int]string{
	1:  "Driven to Lead",
	2:  "Longing for Harmony",
	3:  "Hungry for Expression",
	4:  "Craving Order",
	5:  "Freedom Seeker",
	6:  "Called to Care",
	7:  "Thirst for Understanding",
	8:  "Desire for Mastery",
	9:  "Yearning to Give",
	11: "Pull Toward Illumination",
	22: "Urge to Build Big",
	33: "Need to Uplift",
}

var personalityKeywords = map[int]string{
	1:  "Confident and Direct",
	2:  "Gentle and Approachable",
	3:  "Charming and Animated",
	4:  "Dependable and Grounded",
	5:  "Magnetic and Dynamic",
	6:  "Warm and Protective",
	7:  "Reserved and Observant",
	8:  "Commanding and Capable",
	9:  "Gracious and Worldly",
	11: "Quietly Radiant",
	22: "Solidly Impressive",
	33: "Openly Loving",
}

var birthdayKeywords = map[int]string{
	1:  "Self-Starter",
	2:  "Mediator",
	3:  "Entertainer",
	4:  "Pragmatist",
	5:  "Explorer",
	6:  "Guardian",
	7:  "Thinker",
	8:  "Organizer",
	9:  "Idealist",
	11: "Illuminator",
	22: "Architect",
	33: "Healer",
}

func keywordFor(table map[int]string, n Number) string {
	return table[n.Int()]
}
