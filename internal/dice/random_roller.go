package dice

import (
	"fmt"

	"go.uber.org/zap"
)

// randomRoller implements Roller on top of a Source and logs every roll
type randomRoller struct {
	src    Source
	logger *zap.Logger
}

// NewRandomRoller creates a new random dice roller that does not log
func NewRandomRoller() Roller {
	return NewLoggedRoller(NewCryptoSource(), zap.NewNop())
}

// NewLoggedRoller creates a Roller that draws from src and logs each roll
// at debug level.
func NewLoggedRoller(src Source, logger *zap.Logger) Roller {
	if src == nil {
		src = NewCryptoSource()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &randomRoller{src: src, logger: logger}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return r.RollExpression(Expression{Count: count, Sides: sides, Modifier: bonus})
}

// RollExpression implements Roller.RollExpression
func (r *randomRoller) RollExpression(expr Expression) (*RollResult, error) {
	if expr.Count < 1 {
		return nil, fmt.Errorf("invalid dice count")
	}
	if expr.Sides < 2 {
		return nil, fmt.Errorf("invalid dice size")
	}

	rolls := make([]int, expr.Count)
	for i := range rolls {
		rolls[i] = r.src.Intn(expr.Sides) + 1
	}

	result, err := Evaluate(expr, rolls)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Rolls),
		zap.Ints("kept", result.Kept),
		zap.Int("modifier", result.Bonus),
		zap.Int("total", result.Total),
	)
	return result, nil
}
