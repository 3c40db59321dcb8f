package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollExpression rolls a parsed expression, honouring keep-highest and
	// keep-lowest rules
	RollExpression(expr Expression) (*RollResult, error)
}

// RollNotation parses notation and rolls it with roller
func RollNotation(roller Roller, notation string) (*RollResult, error) {
	expr, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	return roller.RollExpression(expr)
}
