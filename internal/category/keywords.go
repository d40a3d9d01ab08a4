package category

// KeywordRule maps a category to the keywords that select it.
type KeywordRule struct {
	Category string
	Keywords []string
}

// DefaultCategory is used when no keyword matches.
const DefaultCategory = "Symbols"

// KeywordRules is the ordered heuristic table used when no Unicode group is
// known. Rules are tested top to bottom against the lowercased display name;
// the first rule with a matching keyword wins.
//
//nolint:gochecknoglobals // Ordered lookup table
var KeywordRules = []KeywordRule{
	{
		Category: "Smileys & Emotions",
		Keywords: []string{"face", "smile", "grin", "laugh", "cry", "eye", "mouth"},
	},
	{
		Category: "Animals & Nature",
		Keywords: []string{
			"animal", "cat", "dog", "bird", "monkey", "bear", "panda", "fish", "bug",
			"butterfly", "lion", "tiger", "whale", "shark", "snake", "frog", "penguin",
		},
	},
	{
		Category: "Animals & Nature",
		Keywords: []string{"plant", "tree", "flower", "leaf", "mushroom", "cactus", "herb", "clover"},
	},
	{
		Category: "Food & Drink",
		Keywords: []string{
			"food", "fruit", "pizza", "burger", "rice", "bread", "apple", "orange", "banana",
			"watermelon", "grape", "strawberry", "meat", "cake", "candy", "coffee", "beer", "wine",
		},
	},
	{
		Category: "Travel & Places",
		Keywords: []string{
			"car", "train", "bus", "airplane", "rocket", "ship", "boat", "bicycle",
			"motorcycle", "taxi", "truck", "travel",
		},
	},
	{
		Category: "Flags",
		Keywords: []string{"flag", "country"},
	},
	{
		Category: "Symbols",
		Keywords: []string{
			"heart", "star", "diamond", "gem", "sparkle", "sun", "moon", "cloud", "fire",
			"water", "arrow", "check", "cross",
		},
	},
}
