package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/naruto2d6-discord/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// Every die drawn consumes one queued value, so a 3d10kl1 challenge die
// consumes three.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll appends the next roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// Used returns how many queued rolls have been consumed
func (m *ManualMockRoller) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rollIndex
}

func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	return m.RollExpression(dice.Expression{Count: count, Sides: sides, Modifier: bonus})
}

// RollExpression implements dice.Roller.RollExpression
func (m *ManualMockRoller) RollExpression(expr dice.Expression) (*dice.RollResult, error) {
	rolls := make([]int, expr.Count)
	for i := range rolls {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}
	return dice.Evaluate(expr, rolls)
}
