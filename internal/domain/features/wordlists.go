package features

// Curated word lists for linguistic feature extraction. The lists are
// intentionally broad: false positives are acceptable because the ratio
// is what matters and noise averages out over a full transcript.

func newSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// positiveEmotion: high-E speakers use significantly more positive emotion language.
var positiveEmotion = newSet(
	// joy / happiness
	"happy", "happiness", "glad", "joyful", "joy", "delighted", "pleased",
	"cheerful", "merry", "blissful", "ecstatic", "elated", "euphoric",
	"thrilled", "overjoyed", "content", "satisfied", "fulfilled",
	// enthusiasm / energy
	"excited", "exciting", "excitement", "enthusiastic", "passionate",
	"eager", "energetic", "energized", "pumped", "stoked", "hyped",
	"inspired", "motivated", "driven", "alive", "vibrant", "dynamic",
	// positive evaluations
	"great", "amazing", "awesome", "fantastic", "wonderful", "brilliant",
	"excellent", "superb", "marvelous", "terrific", "incredible",
	"outstanding", "magnificent", "phenomenal", "spectacular", "glorious",
	"perfect", "beautiful", "gorgeous", "lovely", "nice", "good",
	"cool", "sweet", "neat", "rad", "sick",
	// affection / warmth
	"love", "loved", "loving", "adore", "cherish", "treasure",
	"care", "caring", "warm", "warmth", "kind", "tender", "fond",
	"affectionate", "compassionate", "generous", "gentle",
	// gratitude / optimism
	"grateful", "thankful", "blessed", "fortunate", "lucky",
	"optimistic", "hopeful", "positive", "upbeat", "bright",
	"promising", "encouraged", "confident", "proud",
	// fun / enjoyment
	"fun", "funny", "hilarious", "enjoy", "enjoying", "enjoyable",
	"entertaining", "amusing", "playful", "laugh", "laughing", "laughter",
	"humor", "humorous", "wit", "witty", "giggle", "smile", "smiling",
	"grin", "beam", "beaming", "celebrate", "celebration", "party",
)

// negativeEmotion: low-E / high-N speakers use more negative emotion language.
var negativeEmotion = newSet(
	// sadness
	"sad", "sadness", "unhappy", "miserable", "depressed", "depressing",
	"gloomy", "melancholy", "somber", "bleak", "desolate", "despair",
	"hopeless", "helpless", "heartbroken", "grief", "grieving",
	"mourning", "sorrowful", "dejected", "disheartened", "downcast",
	// anger / frustration
	"angry", "anger", "furious", "enraged", "irritated", "annoyed",
	"frustrated", "frustrating", "frustration", "mad", "livid",
	"outraged", "resentful", "bitter", "hostile", "aggravated",
	// anxiety / fear
	"anxious", "anxiety", "worried", "worry", "nervous", "scared",
	"afraid", "fearful", "terrified", "panicked", "dread", "dreading",
	"uneasy", "tense", "stressed", "stress", "stressful", "overwhelmed",
	"apprehensive", "insecure",
	// general negative
	"terrible", "awful", "horrible", "dreadful", "disgusting",
	"hate", "hated", "hatred", "loathe", "detest", "despise",
	"bored", "boring", "tedious", "monotonous", "dull",
	"lonely", "loneliness", "isolated", "alone",
	"tired", "exhausted", "drained", "fatigued", "weary",
	"disappointed", "disappointing", "disappointment",
	"embarrassed", "ashamed", "guilty", "regret", "regretful",
	"disgusted", "repulsed", "bothered", "troubled", "disturbed",
	"pessimistic", "cynical", "doubtful",
)

// socialReferences: extraverts reference social contexts, people, and
// group activities significantly more often.
var socialReferences = newSet(
	// people
	"people", "person", "someone", "everyone", "everybody", "anyone",
	"somebody", "nobody", "crowd", "audience", "public",
	// relationships
	"friend", "friends", "friendship", "buddy", "buddies", "pal", "pals",
	"mate", "mates", "companion", "companions", "acquaintance",
	"neighbor", "neighbors", "neighbour", "neighbours",
	"colleague", "colleagues", "coworker", "coworkers",
	"classmate", "classmates", "roommate", "roommates",
	"partner", "boyfriend", "girlfriend", "spouse", "husband", "wife",
	"family", "mom", "dad", "mother", "father", "brother", "sister",
	"son", "daughter", "kids", "children", "parents",
	// social activities
	"party", "parties", "gathering", "gatherings", "event", "events",
	"meetup", "hangout", "outing", "reunion", "barbecue", "dinner",
	"lunch", "brunch", "drinks", "clubbing", "dancing",
	"festival", "concert", "game", "games",
	// social verbs
	"meet", "meeting", "met", "socialize", "socializing", "mingle",
	"mingling", "chat", "chatting", "talk", "talking", "talked",
	"conversation", "conversations", "discuss", "discussing",
	"hang", "hanging", "invite", "invited", "join", "joined",
	"visit", "visiting", "visited", "host", "hosting", "hosted",
	"share", "sharing", "shared", "connect", "connecting",
	// group references
	"group", "groups", "team", "teams", "club", "clubs",
	"community", "communities", "organization", "society",
	"together", "company",
)

var firstPersonSingular = newSet(
	"i", "me", "my", "mine", "myself",
	"i'm", "i've", "i'll", "i'd",
)

// firstPersonPlural: we/us reflects group orientation.
var firstPersonPlural = newSet(
	"we", "us", "our", "ours", "ourselves",
	"we're", "we've", "we'll", "we'd",
)

// assertiveLanguage: confident, decisive wording (maps to the assertiveness facet).
var assertiveLanguage = newSet(
	// certainty markers
	"definitely", "certainly", "absolutely", "obviously", "clearly",
	"undoubtedly", "undeniably", "unquestionably", "surely", "indeed",
	"always", "never", "must", "shall", "will",
	// confidence
	"confident", "confidence", "sure", "certain", "convinced",
	"know", "believe", "assert", "insist", "declare", "state",
	"demand", "require", "decide", "decided", "determined",
	// leadership / initiative
	"lead", "leading", "leader", "initiative", "organize", "organized",
	"manage", "managed", "direct", "directed", "command", "charge",
	"responsibility", "responsible", "accountable",
	// strength
	"strong", "bold", "brave", "courageous", "fearless", "powerful",
	"capable", "competent", "skilled", "accomplished", "successful",
	"achieve", "achieved", "achievement", "accomplish", "win", "won",
	"victory", "triumph", "excel", "excelled",
)

// hedgingLanguage: tentative wording, inversely correlated with Extraversion.
var hedgingLanguage = newSet(
	// possibility / uncertainty
	"maybe", "perhaps", "possibly", "probably", "might", "could",
	"somewhat", "fairly", "rather", "quite",
	// qualifiers
	"sometimes", "occasionally", "rarely", "seldom", "hardly",
	"slightly", "barely", "almost", "nearly", "approximately",
	// softeners
	"guess", "suppose", "wonder", "seem", "seems", "seemed",
	"appear", "appears", "appeared", "tend", "tends", "tended",
	"likely", "unlikely", "uncertain", "unsure",
	// verbal hedges (multi-word handled separately)
	"kinda", "sorta",
	// tentativeness
	"hesitant", "tentative", "cautious", "careful", "wary",
	"reluctant", "doubtful", "skeptical", "sceptical",
	"honestly", "actually", "basically", "literally",
)

// excitementWords: adventure, risk, novelty, stimulation (excitement-seeking facet).
var excitementWords = newSet(
	"adventure", "adventurous", "thrill", "thrilling", "exciting",
	"excitement", "adrenaline", "rush", "exhilarating",
	"risk", "risky", "dare", "daring", "bold", "wild",
	"spontaneous", "spontaneity", "impulsive", "impulse",
	"explore", "exploring", "exploration", "discover", "discovery",
	"travel", "traveling", "travelling", "trip", "journey",
	"new", "novel", "novelty", "different", "unique", "unusual",
	"extreme", "intense", "intensity", "fast", "speed", "racing",
	"challenge", "challenging", "compete", "competition", "competitive",
)

// hedgePhrases are matched by case-insensitive substring count over the raw text.
var hedgePhrases = []string{
	"kind of", "sort of", "a little", "a bit",
	"i guess", "i think", "i suppose", "i wonder",
	"not sure", "not certain", "don't know", "don't really",
	"to be honest", "i mean", "you know",
	"more or less", "in a way", "so to speak",
}

var assertivePhrases = []string{
	"i know", "i believe", "without a doubt", "no question",
	"for sure", "of course", "no doubt", "make sure",
	"take charge", "step up", "speak up", "stand up",
	"right away", "let's go", "let's do",
}
