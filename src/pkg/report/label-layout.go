package report

import "sort"

// Badge geometry for the current-month value labels.
const (
	badgeHeight        = 18.0
	badgeGap           = 4.0
	badgeMinSeparation = badgeHeight + badgeGap // min distance between badge centers
	spreadMaxPasses    = 10
)

/*
valueBadge is one numeric label to place at the current-month column.
*/
type valueBadge struct {
	Y     float64
	Color string
	Text  string
}

/*
spreadLabels pushes overlapping badges apart until every adjacent pair (in
final Y order) is at least minSep apart, or the pass cap is hit.

Each pass walks the Y-sorted badges and, for every adjacent pair closer
than minSep, moves both by half the deficit plus a small margin, one up
and one down, so the set's centroid stays roughly where the true values
sit. With at most 3 badges the relaxation settles well inside the cap.
*/
func spreadLabels(badges []valueBadge, minSep float64) []valueBadge {
	if len(badges) <= 1 {
		return badges
	}

	sort.Slice(badges, func(firstIndex int, secondIndex int) bool {
		return badges[firstIndex].Y < badges[secondIndex].Y
	})

	for pass := 0; pass < spreadMaxPasses; pass += 1 {
		moved := false
		for index := 1; index < len(badges); index += 1 {
			gap := badges[index].Y - badges[index-1].Y
			if gap < minSep {
				push := (minSep-gap)/2 + 0.5
				badges[index-1].Y -= push
				badges[index].Y += push
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	return badges
}
