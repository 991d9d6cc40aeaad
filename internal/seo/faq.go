package seo

// FAQ is a single question and answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// faqTable holds canned Q&A pairs per topic. This is an authoring
// convenience, not a generative process; unknown topics yield nothing.
var faqTable = map[string][]FAQ{
	"retirement": {
		{
			Question: "When should I start saving for retirement?",
			Answer:   "As early as possible. Compound growth means money saved in your twenties and thirties works far harder than money saved later.",
		},
		{
			Question: "How much money do I need to retire?",
			Answer:   "A common starting point is 25 times your expected annual spending. Your own number depends on Social Security, pensions, and lifestyle.",
		},
		{
			Question: "What is the difference between a 401(k) and an IRA?",
			Answer:   "A 401(k) is offered through an employer and often includes matching contributions. An IRA is opened on your own and usually offers more investment choices.",
		},
	},
	"medicare": {
		{
			Question: "When can I enroll in Medicare?",
			Answer:   "Your initial enrollment period starts three months before the month you turn 65 and ends three months after it.",
		},
		{
			Question: "What is the difference between Medicare Part A and Part B?",
			Answer:   "Part A covers hospital stays and is usually free. Part B covers doctor visits and outpatient care and charges a monthly cost.",
		},
		{
			Question: "Do I need a Medigap or Medicare Advantage plan?",
			Answer:   "Original Medicare leaves gaps in coverage. Medigap fills those gaps; Medicare Advantage replaces Original Medicare with a private plan.",
		},
	},
	"estate-planning": {
		{
			Question: "Do I need a will if I don't have much money?",
			Answer:   "Yes. A will names who receives your property and who cares for minor children, regardless of how much you own.",
		},
		{
			Question: "What is the difference between a will and a trust?",
			Answer:   "A will takes effect after death and goes through court review. A trust can take effect immediately and usually avoids that process.",
		},
		{
			Question: "Who should I name as power of attorney?",
			Answer:   "Someone you trust to make financial or medical decisions if you cannot. Many people choose a spouse or adult child.",
		},
	},
}

// GenerateFAQ returns the canned FAQ entries for a topic, or an empty list
// for topics without entries.
func GenerateFAQ(topic string) []FAQ {
	faqs, ok := faqTable[topic]
	if !ok {
		return []FAQ{}
	}
	out := make([]FAQ, len(faqs))
	copy(out, faqs)
	return out
}

// topicClusters maps each category to its adjacent categories, used for
// related-content links.
var topicClusters = map[string][]string{
	"retirement-planning": {"investments", "taxes", "estate-planning"},
	"medicare":            {"insurance", "retirement-planning"},
	"estate-planning":     {"retirement-planning", "taxes", "insurance"},
	"insurance":           {"medicare", "estate-planning"},
	"housing":             {"retirement-planning", "taxes"},
	"taxes":               {"retirement-planning", "investments"},
	"investments":         {"retirement-planning", "taxes"},
}

// RelatedCategories returns adjacent categories in the topic cluster, or an
// empty list for unknown categories.
func RelatedCategories(category string) []string {
	related, ok := topicClusters[category]
	if !ok {
		return []string{}
	}
	out := make([]string, len(related))
	copy(out, related)
	return out
}
