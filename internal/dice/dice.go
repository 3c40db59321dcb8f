package dice

import (
	"fmt"
	"sort"
	"strings"
)

// RollResult is the outcome of rolling an Expression
type RollResult struct {
	Expression string
	Rolls      []int // every die drawn, in draw order
	Kept       []int // dice counted towards the total
	Bonus      int
	Count      int
	Sides      int
	RawTotal   int // sum of kept dice
	Total      int // RawTotal + Bonus
}

// Evaluate applies an expression's keep rule and modifier to a set of
// drawn dice. len(rolls) must equal expr.Count.
func Evaluate(expr Expression, rolls []int) (*RollResult, error) {
	if len(rolls) != expr.Count {
		return nil, fmt.Errorf("dice: expected %d dice for %s, got %d", expr.Count, expr.String(), len(rolls))
	}
	for _, r := range rolls {
		if r < 1 || r > expr.Sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", r, expr.Sides)
		}
	}

	kept := make([]int, len(rolls))
	copy(kept, rolls)
	switch {
	case expr.KeepHighest > 0:
		sort.Sort(sort.Reverse(sort.IntSlice(kept)))
		kept = kept[:expr.KeepHighest]
	case expr.KeepLowest > 0:
		sort.Ints(kept)
		kept = kept[:expr.KeepLowest]
	}

	raw := 0
	for _, k := range kept {
		raw += k
	}

	drawn := make([]int, len(rolls))
	copy(drawn, rolls)

	return &RollResult{
		Expression: expr.String(),
		Rolls:      drawn,
		Kept:       kept,
		Bonus:      expr.Modifier,
		Count:      expr.Count,
		Sides:      expr.Sides,
		RawTotal:   raw,
		Total:      raw + expr.Modifier,
	}, nil
}

// String renders the result as "**total** : [rolls]"
func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}
