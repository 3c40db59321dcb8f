package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a parsed dice notation ready to be rolled.
// At most one of KeepHighest and KeepLowest is set.
type Expression struct {
	Raw         string // original input string
	Count       int    // number of dice
	Sides       int    // faces per die
	Modifier    int    // flat modifier, may be negative
	KeepHighest int    // if > 0, keep only the N highest dice (2d10kh1)
	KeepLowest  int    // if > 0, keep only the N lowest dice (3d10kl1)
}

// Parse parses dice notation into an Expression.
// Supported forms: "d6", "1d10", "1d6+2", "2d10kh1", "3d10kl1-1".
func Parse(notation string) (Expression, error) {
	raw := notation
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(notation)), " ", "")
	if s == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", raw)
	}

	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	rest := s[dIdx+1:]

	// Split off the modifier first; a sign can only appear after the sides
	// or the keep count.
	modifier := 0
	if modIdx := strings.IndexAny(rest, "+-"); modIdx >= 0 {
		m, err := strconv.Atoi(rest[modIdx:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
		modifier = m
		rest = rest[:modIdx]
	}

	var keepHighest, keepLowest int
	for _, rule := range []string{"kh", "kl"} {
		idx := strings.Index(rest, rule)
		if idx < 0 {
			continue
		}
		keep, err := strconv.Atoi(rest[idx+2:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid %s value in %q: %w", rule, raw, err)
		}
		if keep <= 0 || keep > count {
			return Expression{}, fmt.Errorf("dice: %s value %d must be > 0 and <= count %d in %q", rule, keep, count, raw)
		}
		if rule == "kh" {
			keepHighest = keep
		} else {
			keepLowest = keep
		}
		rest = rest[:idx]
	}

	sides, err := strconv.Atoi(rest)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}

	return Expression{
		Raw:         raw,
		Count:       count,
		Sides:       sides,
		Modifier:    modifier,
		KeepHighest: keepHighest,
		KeepLowest:  keepLowest,
	}, nil
}

// MustParse parses notation and panics on error. Useful for package-level values.
func MustParse(notation string) Expression {
	e, err := Parse(notation)
	if err != nil {
		panic("dice: MustParse failed for expression " + notation + ": " + err.Error())
	}
	return e
}

// WithModifier returns a copy of the expression with an extra flat modifier.
func (e Expression) WithModifier(mod int) Expression {
	e.Modifier += mod
	e.Raw = e.String()
	return e
}

// String renders the expression back to canonical notation
func (e Expression) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dd%d", e.Count, e.Sides)
	switch {
	case e.KeepHighest > 0:
		fmt.Fprintf(&b, "kh%d", e.KeepHighest)
	case e.KeepLowest > 0:
		fmt.Fprintf(&b, "kl%d", e.KeepLowest)
	}
	if e.Modifier > 0 {
		fmt.Fprintf(&b, "+%d", e.Modifier)
	} else if e.Modifier < 0 {
		fmt.Fprintf(&b, "%d", e.Modifier)
	}
	return b.String()
}
