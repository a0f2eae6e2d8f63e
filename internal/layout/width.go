package layout

// separatorBuffer is added after the 10% breathing-room multiplier so a menu
// is never exactly as wide as its longest line.
const separatorBuffer = 5

// levelMultipliers scale the context-aware separator by menu level, in
// percent. Levels not listed use 100.
var levelMultipliers = map[string]int{
	"main":      120,
	"config":    100,
	"templates": 100,
	"advanced":  110,
	"generate":  100,
	"help":      90,
}

// SeparatorLength sizes the header separator from content, clamped to the
// constraint bounds.
func SeparatorLength(m Measurements, c Constraints) int {
	content := max(m.TitleLength, m.LongestItemLength)
	return clampWidth(content*11/10+separatorBuffer, c)
}

// ContextSeparatorLength is the level-aware variant used for legacy menus:
// the content width is scaled by the level multiplier and widened by up to
// five characters for complex menus before clamping.
func ContextSeparatorLength(m Measurements, level string, c Constraints) int {
	content := max(m.TitleLength, m.LongestItemLength)
	raw := content*LevelMultiplier(level)/100 + complexityAdjustment(m)
	return clampWidth(raw, c)
}

// LevelMultiplier returns the percentage applied to a level's separator.
func LevelMultiplier(level string) int {
	if pct, ok := levelMultipliers[level]; ok {
		return pct
	}
	return 100
}

// Complexity scores content between 0 and 1 from its lengths, item count and
// section count.
func Complexity(m Measurements) float64 {
	score := float64(m.TitleLength+m.LongestItemLength)/200 +
		float64(m.TotalItems)/20 +
		float64(m.SectionCount)/5
	return min(1.0, score)
}

// complexityAdjustment is floor(Complexity*5), computed in integers:
// 5*score = ((title+longest) + 10*items + 40*sections) / 40.
func complexityAdjustment(m Measurements) int {
	num := m.TitleLength + m.LongestItemLength + 10*m.TotalItems + 40*m.SectionCount
	return min(5, num/40)
}

// clampWidth is the last step of every width calculation. When the bounds
// are inverted MinWidth wins.
func clampWidth(w int, c Constraints) int {
	if w > c.MaxWidth {
		w = c.MaxWidth
	}
	if w < c.MinWidth {
		w = c.MinWidth
	}
	return w
}
