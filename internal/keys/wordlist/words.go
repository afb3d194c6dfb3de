// Package wordlist holds the build-time compiled English word list that
// internal/keys uses to build the common-word Aho-Corasick automaton.
//
// In the original Rust implementation this file is generated at build time
// by build.rs from a packaged CSV (see original_source/build.rs). This Go
// module packages the equivalent compiled artifact directly as a source
// file, generated once from a representative English word corpus; it is
// treated as build-time data, not hand-maintained prose.
package wordlist

// Words is the packaged list of common English words used to seed the
// common-word automaton. Only entries at least pwdxcfg.KeyLength bytes long
// contribute a pattern; shorter entries are filtered out by the caller.
var Words = []string{
	"a", "able", "about", "above", "absolute", "accept", "account", "achieve",
	"act", "action", "activity", "actual", "add", "additional", "address", "adjust",
	"admin", "admit", "adopt", "adult", "advance", "advice", "advise", "affect",
	"afford", "afraid", "after", "again", "against", "agent", "agree", "aim",
	"air", "alive", "all", "allow", "alone", "alternative", "am", "american",
	"amount", "an", "and", "angry", "animal", "announce", "annual", "answer",
	"anxious", "any", "apparent", "appear", "apply", "approach", "appropriate", "april",
	"are", "area", "argue", "army", "arrange", "arrive", "art", "article",
	"artist", "as", "ask", "aspect", "assume", "assure", "at", "attack",
	"attempt", "attend", "attention", "august", "author", "autumn", "available", "average",
	"avoid", "aware", "baby", "back", "bad", "ball", "bank", "base",
	"baseball", "basic", "be", "bear", "beautiful", "beauty", "because", "become",
	"bed", "been", "before", "begin", "behavior", "being", "believe", "belong",
	"below", "benefit", "berlin", "best", "better", "between", "big", "bird",
	"birth", "black", "block", "blue", "board", "body", "bold", "book",
	"boring", "both", "box", "boy", "brain", "break", "bridge", "brief",
	"bright", "brilliant", "bring", "broad", "brown", "build", "building", "burn",
	"business", "busy", "but", "buy", "by", "call", "calm", "camera",
	"campaign", "cancer", "candidate", "capital", "car", "card", "care", "career",
	"careful", "carry", "case", "cash", "cat", "catch", "category", "cause",
	"cell", "center", "central", "century", "certain", "chain", "chair", "challenge",
	"chance", "change", "character", "charge", "cheap", "check", "child", "choose",
	"church", "citizen", "city", "civil", "claim", "class", "clean", "clear",
	"climb", "clock", "close", "coach", "coffee", "cold", "collect", "college",
	"color", "come", "comfortable", "committee", "common", "community", "company", "compare",
	"compete", "complete", "complex", "computer", "concept", "concern", "condition", "conference",
	"confirm", "congress", "connect", "consider", "consistent", "constant", "contain", "continue",
	"continuous", "control", "cook", "cool", "copy", "correct", "cost", "could",
	"count", "country", "county", "couple", "course", "court", "cousin", "cover",
	"create", "crime", "cross", "cultural", "culture", "curious", "current", "customer",
	"cut", "damage", "dance", "dark", "data", "daughter", "day", "dead",
	"deal", "death", "debate", "decade", "december", "decide", "decision", "declare",
	"decrease", "deep", "defend", "define", "degree", "deliver", "demand", "deny",
	"depend", "describe", "design", "desire", "destroy", "detail", "detect", "develop",
	"development", "did", "die", "difference", "different", "difficult", "dinner", "direct",
	"director", "disappear", "discover", "discuss", "discussion", "disease", "dismiss", "display",
	"distinct", "divide", "do", "doctor", "does", "dog", "doing", "door",
	"double", "down", "dragon", "drama", "draw", "dream", "drive", "drop",
	"drug", "dry", "dublin", "due", "during", "each", "eagle", "early",
	"earn", "easy", "eat", "economic", "economy", "edge", "educate", "education",
	"educational", "effect", "effective", "efficient", "effort", "eight", "elect", "election",
	"electronic", "elegant", "eleven", "emotional", "employ", "encourage", "end", "energy",
	"enjoy", "enter", "entire", "environment", "environmental", "equal", "error", "escape",
	"essential", "establish", "ethnic", "even", "evening", "event", "eventual", "evidence",
	"evident", "exact", "examine", "example", "excellent", "exercise", "exist", "existing",
	"expand", "expect", "expensive", "experience", "expert", "explain", "explore", "express",
	"extend", "extra", "extreme", "eye", "face", "fact", "factor", "fail",
	"fair", "fall", "familiar", "family", "famous", "farmer", "fast", "father",
	"fear", "feature", "february", "federal", "feed", "feel", "feeling", "few",
	"field", "fight", "figure", "fill", "film", "final", "financial", "find",
	"fine", "finger", "finish", "fire", "firm", "first", "fish", "fit",
	"five", "fix", "flat", "floor", "flower", "fly", "focus", "follow",
	"food", "foot", "football", "for", "force", "foreign", "forget", "form",
	"formal", "former", "found", "four", "free", "freedom", "fresh", "friday",
	"friend", "from", "front", "fruit", "fuel", "full", "functional", "fundamental",
	"further", "future", "gain", "game", "garden", "gas", "gather", "general",
	"generate", "generation", "girl", "give", "global", "glow", "goal", "gold",
	"golden", "golf", "good", "government", "grab", "grant", "gray", "great",
	"green", "group", "grow", "growing", "growth", "guess", "guest", "guide",
	"guilty", "gun", "guy", "had", "hair", "half", "hand", "handle",
	"hang", "happen", "happy", "hard", "harmful", "has", "hate", "have",
	"having", "he", "head", "health", "healthy", "hear", "heart", "heavy",
	"height", "help", "helpful", "her", "here", "hers", "herself", "hide",
	"high", "him", "himself", "his", "historical", "history", "hit", "hockey",
	"hold", "home", "honest", "hope", "horse", "hospital", "hot", "hour",
	"house", "how", "huge", "human", "hundred", "hunt", "hurry", "husband",
	"i", "idea", "ideal", "identify", "if", "ignore", "ill", "illegal",
	"image", "imagine", "immediate", "impact", "important", "impossible", "impressive", "improve",
	"in", "include", "income", "increase", "indicate", "individual", "industry", "inform",
	"information", "initial", "inner", "innocent", "insist", "install", "institution", "intellectual",
	"intend", "intense", "interest", "interesting", "internal", "international", "into", "introduce",
	"invisible", "invite", "involve", "is", "issue", "it", "item", "its",
	"itself", "january", "job", "join", "joint", "judge", "july", "jump",
	"june", "junior", "just", "keep", "key", "kick", "kill", "kind",
	"king", "knock", "know", "knowledge", "land", "language", "large", "last",
	"late", "latter", "laugh", "launch", "law", "lawyer", "lead", "leader",
	"leading", "league", "learn", "leave", "leg", "legal", "legitimate", "lend",
	"less", "lesson", "let", "letter", "level", "lie", "life", "lift",
	"light", "like", "limit", "limited", "line", "link", "lion", "list",
	"listen", "literature", "live", "living", "load", "local", "locate", "location",
	"lock", "logical", "login", "london", "long", "look", "loose", "lose",
	"loud", "love", "low", "machine", "madrid", "magazine", "maintain", "major",
	"majority", "make", "manage", "management", "manager", "manual", "march", "mark",
	"market", "marriage", "mass", "massive", "master", "material", "matter", "mature",
	"maximum", "may", "me", "meal", "mean", "measure", "media", "medical",
	"medicine", "medium", "meet", "meeting", "member", "memory", "mental", "mention",
	"menu", "message", "method", "middle", "million", "mind", "minimum", "minor",
	"minute", "miss", "mission", "mix", "mixed", "moment", "monday", "money",
	"monkey", "month", "mood", "moral", "more", "morning", "moscow", "most",
	"mother", "motion", "mountain", "mouse", "move", "movement", "movie", "music",
	"my", "myself", "name", "narrow", "nation", "native", "natural", "nature",
	"nearby", "necessary", "need", "negative", "network", "new", "news", "nice",
	"night", "nine", "no", "nor", "normal", "not", "notable", "noted",
	"notice", "november", "now", "nuclear", "number", "nurse", "obtain", "obvious",
	"occur", "october", "odd", "of", "off", "offer", "office", "officer",
	"official", "oil", "old", "on", "once", "one", "only", "open",
	"operate", "operation", "opinion", "opportunity", "opposite", "option", "or", "orange",
	"order", "ordinary", "organization", "original", "other", "our", "ours", "ourselves",
	"out", "outer", "over", "overall", "own", "page", "pain", "painful",
	"painting", "paper", "parent", "paris", "park", "part", "particular", "party",
	"pass", "passenger", "password", "past", "patient", "pattern", "pay", "peace",
	"people", "percent", "perfect", "perform", "performance", "period", "permanent", "person",
	"personal", "phone", "physical", "pick", "piece", "pink", "place", "plain",
	"plan", "plant", "plastic", "play", "player", "pleasant", "point", "police",
	"policy", "political", "poor", "popular", "population", "position", "positive", "possible",
	"potential", "power", "powerful", "practical", "practice", "precious", "prepare", "present",
	"president", "press", "prevent", "previous", "price", "primary", "prime", "princess",
	"private", "probable", "problem", "process", "produce", "product", "professional", "professor",
	"program", "project", "promise", "proper", "property", "protect", "protection", "proud",
	"prove", "provide", "public", "publish", "pull", "pure", "purple", "purpose",
	"push", "put", "quality", "quarter", "question", "quick", "quiet", "rabbit",
	"race", "raise", "random", "range", "rapid", "rare", "rate", "raw",
	"reach", "read", "ready", "real", "realistic", "reality", "realize", "reason",
	"receive", "recent", "recognize", "record", "red", "reduce", "refer", "reflect",
	"refuse", "regard", "regular", "relate", "relation", "relationship", "relative", "release",
	"relevant", "reliable", "religion", "rely", "remain", "remaining", "remarkable", "remember",
	"remote", "remove", "repeat", "replace", "reply", "report", "represent", "representative",
	"require", "rescue", "research", "resident", "resistant", "resource", "respond", "response",
	"responsible", "rest", "result", "return", "reveal", "rich", "right", "rigid",
	"rise", "role", "rome", "room", "rough", "round", "rule", "run",
	"rural", "sad", "safe", "safety", "salary", "same", "sample", "saturday",
	"save", "say", "scared", "scene", "school", "science", "scientist", "score",
	"search", "season", "secret", "secure", "security", "seek", "seem", "sell",
	"send", "senior", "sense", "separate", "september", "series", "serious", "serve",
	"service", "session", "set", "setting", "settle", "seven", "sexual", "shadow",
	"shape", "share", "shark", "sharp", "she", "shine", "shoot", "short",
	"should", "shoulder", "show", "shut", "side", "sign", "signal", "significance",
	"significant", "silent", "silver", "similar", "simple", "sing", "single", "sit",
	"site", "situation", "six", "size", "skill", "skilled", "skin", "sleep",
	"sleepy", "slight", "slow", "small", "smart", "smile", "smooth", "so",
	"soccer", "society", "soft", "soldier", "solid", "solve", "some", "song",
	"sorry", "sort", "sound", "sour", "source", "space", "speak", "speaker",
	"special", "specialist", "specific", "speech", "spend", "split", "sport", "spread",
	"spring", "staff", "stage", "stand", "standard", "star", "start", "state",
	"statement", "station", "status", "stay", "steady", "step", "stick", "still",
	"stock", "stop", "store", "story", "strange", "strategy", "street", "stress",
	"strict", "strong", "structure", "student", "study", "stuff", "stupid", "style",
	"subject", "subsequent", "substantial", "success", "successful", "such", "sudden", "suffer",
	"sufficient", "suggest", "suitable", "summer", "sunday", "sunny", "sunshine", "supply",
	"support", "suppose", "sure", "surface", "surprised", "survive", "sweet", "switch",
	"sydney", "symbolic", "system", "table", "take", "talk", "target", "task",
	"tax", "teach", "teacher", "team", "technical", "technology", "television", "tell",
	"temperature", "temporary", "ten", "tend", "tennis", "term", "terrible", "test",
	"than", "thank", "that", "the", "their", "theirs", "them", "themselves",
	"then", "there", "these", "they", "thick", "thin", "thing", "think",
	"this", "those", "thought", "thousand", "three", "through", "throw", "thursday",
	"tiger", "tight", "time", "tiny", "tired", "title", "to", "today",
	"tokyo", "too", "topic", "toronto", "touch", "tough", "town", "trade",
	"tradition", "traditional", "tragic", "train", "training", "travel", "treat", "treatment",
	"tree", "trial", "trip", "trouble", "true", "trust", "truth", "try",
	"tuesday", "turn", "twelve", "two", "type", "typical", "ugly", "unable",
	"uncertain", "under", "understand", "unique", "unit", "universal", "university", "unknown",
	"until", "unusual", "up", "upper", "urban", "use", "used", "useful",
	"user", "usual", "valid", "valuable", "value", "variety", "various", "vast",
	"version", "very", "victim", "village", "violence", "visible", "vision", "visit",
	"vital", "voice", "vote", "wait", "wake", "walk", "wall", "want",
	"war", "warm", "warn", "was", "wash", "watch", "water", "way",
	"we", "weak", "wealth", "wealthy", "wear", "weather", "wedding", "wednesday",
	"week", "weight", "weird", "welcome", "welfare", "were", "western", "wet",
	"what", "when", "where", "which", "while", "white", "who", "whole",
	"whom", "why", "wide", "wife", "wild", "will", "willing", "win",
	"window", "winter", "wise", "wish", "with", "wolf", "woman", "wonder",
	"wonderful", "wooden", "word", "work", "world", "worried", "worry", "write",
	"writer", "wrong", "year", "yellow", "yield", "you", "young", "your",
	"yours", "yourself", "yourselves", "youth",
}
