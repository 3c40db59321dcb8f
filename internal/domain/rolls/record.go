package rolls

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// RerollMode is one of the three ways a roll can be rewritten
type RerollMode string

const (
	RerollFree     RerollMode = "free"
	RerollMomentum RerollMode = "momentum"
	RerollFireWill RerollMode = "fireWill"
)

// IsValid reports whether m is a known reroll mode
func (m RerollMode) IsValid() bool {
	switch m {
	case RerollFree, RerollMomentum, RerollFireWill:
		return true
	}
	return false
}

// ParseRerollMode parses the mode carried on a reroll button
func ParseRerollMode(s string) (RerollMode, error) {
	m := RerollMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown reroll mode %q", s)
	}
	return m, nil
}

// RerollState records the reroll that made a record terminal
type RerollState struct {
	Mode     RerollMode `json:"mode"`
	ActorID  string     `json:"actor_id"`
	At       time.Time  `json:"at"`
	Previous Outcome    `json:"previous"`
	ClearedA bool       `json:"cleared_a,omitempty"`
	ClearedB bool       `json:"cleared_b,omitempty"`
}

// Adjustment is an arbiter's manual change to the totals of a roll
type Adjustment struct {
	ActorID    string    `json:"actor_id"`
	Action     int       `json:"action"`
	ChallengeA int       `json:"challenge_a"`
	ChallengeB int       `json:"challenge_b"`
	At         time.Time `json:"at"`
}

// Record is the persisted state of one move roll. The chat message showing
// it is edited in place whenever the record changes.
type Record struct {
	ID             string           `json:"id"`
	GuildID        string           `json:"guild_id"`
	ChannelID      string           `json:"channel_id"`
	MessageID      string           `json:"message_id,omitempty"`
	CharacterID    string           `json:"character_id"`
	CharacterName  string           `json:"character_name"`
	OwnerID        string           `json:"owner_id"`
	MoveID         string           `json:"move_id"`
	MoveName       string           `json:"move_name"`
	Attribute      shared.Attribute `json:"attribute"`
	AttributeValue int              `json:"attribute_value"`
	Tier           Tier             `json:"tier"`
	AdvantageLevel *int             `json:"advantage_level,omitempty"`
	FlatModifier   int              `json:"flat_modifier"`
	ConditionBonus int              `json:"condition_bonus"`

	ActionDice     []int `json:"action_dice"`
	ChallengeADice []int `json:"challenge_a_dice"`
	ChallengeBDice []int `json:"challenge_b_dice"`

	Outcome     Outcome      `json:"outcome"`
	Reroll      *RerollState `json:"reroll,omitempty"`
	Adjustments []Adjustment `json:"adjustments,omitempty"`
	Notes       []string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Terminal reports whether the record has already been rerolled
func (r *Record) Terminal() bool {
	return r.Reroll != nil
}

// ActionBonus is everything added to the action die
func (r *Record) ActionBonus() int {
	return r.AttributeValue + r.ConditionBonus + r.FlatModifier
}

// AddNote appends an audit line shown under the roll
func (r *Record) AddNote(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// ApplyReroll stores the new dice and outcome and makes the record terminal
func (r *Record) ApplyReroll(state RerollState, outcome Outcome, action, challengeA, challengeB []int) {
	state.Previous = r.Outcome
	r.Reroll = &state
	r.Outcome = outcome
	if action != nil {
		r.ActionDice = action
	}
	if challengeA != nil {
		r.ChallengeADice = challengeA
	}
	if challengeB != nil {
		r.ChallengeBDice = challengeB
	}
	r.UpdatedAt = state.At
}

// ApplyAdjustment reclassifies the current totals with the given modifiers.
// Dice cleared by a momentum burn stay cleared.
func (r *Record) ApplyAdjustment(adj Adjustment) {
	var clearedA, clearedB bool
	if r.Reroll != nil {
		clearedA, clearedB = r.Reroll.ClearedA, r.Reroll.ClearedB
	}
	r.Outcome = r.Outcome.adjust(adj.Action, adj.ChallengeA, adj.ChallengeB, clearedA, clearedB)
	r.Adjustments = append(r.Adjustments, adj)
	r.UpdatedAt = adj.At
}

// Clone returns a deep copy so callers can compute changes before saving
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.ActionDice = append([]int(nil), r.ActionDice...)
	c.ChallengeADice = append([]int(nil), r.ChallengeADice...)
	c.ChallengeBDice = append([]int(nil), r.ChallengeBDice...)
	c.Adjustments = append([]Adjustment(nil), r.Adjustments...)
	c.Notes = append([]string(nil), r.Notes...)
	if r.Reroll != nil {
		s := *r.Reroll
		c.Reroll = &s
	}
	if r.AdvantageLevel != nil {
		l := *r.AdvantageLevel
		c.AdvantageLevel = &l
	}
	return &c
}

// ParseModifier reads a signed modifier typed by a player, such as "+2",
// "-1" or "3". Blank input is zero.
func ParseModifier(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}
