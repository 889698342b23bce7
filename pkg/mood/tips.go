package mood

// DefaultTip is shown when a mood has no tips of its own.
const DefaultTip = "Discover new experiences today!"

var tips = map[string][]string{
	"cherry": {
		"Take a break today, you need energy, but don't burn out.",
		"Write down the thoughts swirling in your head, it's liberating.",
		"Go for a walk without your phone, just look around.",
		"Allow yourself not to react instantly, calmness is stronger.",
		"Text someone a kind message, it will calm both of you.",
	},
	"watermelon": {
		"Think of a small reward for yourself.",
		"Do something playful, even just a few dance moves.",
	},
	"orange": {
		"Use your energy for something you've been putting off.",
		"Make a short plan and feel the excitement of action.",
		"Come up with a micro-adventure for the day.",
		"Add a bright element to your outfit or space.",
		"Help someone, your drive can be useful right now.",
	},
	"pineapple": {
		"Do something unusual, even if it's small.",
		"Draw, write, change: let your brain stretch.",
		"Allow yourself to be weird, it's wonderful.",
		"Look at a familiar object from a different perspective.",
		"Listen to unusual music or a new genre.",
	},
	"grape": {
		"Enjoy slowness, there's no rush.",
		"Brew some tea, sit by the window and just do nothing.",
		"Listen to yourself: what exactly do you want right now?",
		"Spend time with nature, even just a few minutes.",
		"Gratitude heals: recall 3 things you are grateful for today.",
	},
}

// Tips returns a copy of the tips for the mood id.
func Tips(id string) []string {
	t := tips[id]
	out := make([]string, len(t))
	copy(out, t)
	return out
}

// PickTip chooses one tip for id using intn, which must behave like
// rand.IntN. Unknown ids and moods without tips get DefaultTip.
func PickTip(id string, intn func(int) int) string {
	t := tips[id]
	if len(t) == 0 || intn == nil {
		return DefaultTip
	}
	i := intn(len(t))
	if i < 0 || i >= len(t) {
		return DefaultTip
	}
	return t[i]
}
