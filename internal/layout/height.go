package layout

// HeightPlan splits the target height between content, padding and the
// textbox area.
type HeightPlan struct {
	TotalLines      int
	ContentLines    int
	PaddingNeeded   int
	NeedsTruncation bool
}

// PlanHeight applies the strategy named by c.
func PlanHeight(m Measurements, c Constraints) HeightPlan {
	if c.Strategy == StrategyFixedHeight {
		return planFixed(m, c)
	}
	return planMinimum(m, c)
}

// planMinimum pads short menus up to MinHeight and lets long menus grow.
// Content is never clipped.
func planMinimum(m Measurements, c Constraints) HeightPlan {
	minContent := c.MinHeight - c.TextboxLines - c.PaddingLines
	content := max(m.EstimatedLines, minContent)
	return HeightPlan{
		TotalLines:    content + c.TextboxLines + c.PaddingLines,
		ContentLines:  content,
		PaddingNeeded: max(0, minContent-m.EstimatedLines),
	}
}

// planFixed always totals FixedHeight lines, truncating when the estimate
// does not fit in the space left by the textbox and padding.
func planFixed(m Measurements, c Constraints) HeightPlan {
	available := max(0, c.FixedHeight-c.TextboxLines-c.PaddingLines)
	if m.EstimatedLines > available {
		return HeightPlan{
			TotalLines:      c.FixedHeight,
			ContentLines:    available,
			NeedsTruncation: true,
		}
	}
	return HeightPlan{
		TotalLines:    c.FixedHeight,
		ContentLines:  m.EstimatedLines,
		PaddingNeeded: available - m.EstimatedLines,
	}
}
