package probe

import "github.com/Recognifygeneral/Psychometricist-AI/internal/domain"

// DefaultProbes is the built-in conversational probe pool. Each probe targets
// an everyday behavior informative about sociability, assertiveness, or
// energy, without mentioning assessment.
var DefaultProbes = []domain.Probe{
	{
		ID:             "social_weekend",
		Text:           "What does an ideal weekend look like for you?",
		TargetBehavior: "preference for social versus solitary leisure",
	},
	{
		ID:             "social_party",
		Text:           "Tell me about the last time you were at a gathering with a lot of people. How did it go for you?",
		TargetBehavior: "comfort and energy in large groups",
	},
	{
		ID:             "warmth_newpeople",
		Text:           "How do you usually get to know someone new?",
		TargetBehavior: "warmth and ease of forming connections",
	},
	{
		ID:             "warmth_catchup",
		Text:           "Who did you last catch up with, and what prompted it?",
		TargetBehavior: "initiative in maintaining relationships",
	},
	{
		ID:             "assert_disagree",
		Text:           "Think of a recent time you disagreed with someone about a plan. What happened?",
		TargetBehavior: "assertiveness in voicing opinions",
	},
	{
		ID:             "assert_lead",
		Text:           "When a group you're in has no clear direction, what do you tend to do?",
		TargetBehavior: "tendency to take charge",
	},
	{
		ID:             "energy_typicalday",
		Text:           "Walk me through a typical day for you. What parts feel the fastest?",
		TargetBehavior: "activity level and pace",
	},
	{
		ID:             "energy_freetime",
		Text:           "When you get a free evening with no obligations, what do you actually end up doing?",
		TargetBehavior: "restlessness versus quiet recharge",
	},
	{
		ID:             "excitement_plans",
		Text:           "Is there anything coming up that you're really looking forward to?",
		TargetBehavior: "excitement seeking and anticipation",
	},
	{
		ID:             "excitement_spontaneous",
		Text:           "Tell me about something spontaneous you did recently.",
		TargetBehavior: "appetite for stimulation and novelty",
	},
	{
		ID:             "positive_goodnews",
		Text:           "What's the best thing that happened to you lately?",
		TargetBehavior: "positive emotional expressiveness",
	},
	{
		ID:             "positive_laugh",
		Text:           "When was the last time you laughed really hard, and what was it about?",
		TargetBehavior: "cheerfulness and shared enjoyment",
	},
}
