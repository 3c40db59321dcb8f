package resource

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// Field names a pool attribute that can be set from the sheet
type Field string

const (
	FieldName          Field = "name"
	FieldValue         Field = "value"
	FieldValuePerLevel Field = "valuePerLevel"
	FieldDefaultValue  Field = "defaultValue"
	FieldShow          Field = "show"
)

// Fields lists the settable fields
var Fields = []Field{FieldName, FieldValue, FieldValuePerLevel, FieldDefaultValue, FieldShow}

// Pool is a named numeric resource owned by an ability, such as a stock of
// kunai or seals. Its maximum grows with the ability level.
type Pool struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Value         Int    `json:"value" yaml:"value"`
	MaxValue      Int    `json:"maxValue" yaml:"max_value"`
	ValuePerLevel Int    `json:"valuePerLevel" yaml:"value_per_level"`
	DefaultValue  Int    `json:"defaultValue" yaml:"default_value"`
	Show          bool   `json:"show" yaml:"show"`
}

// MaxFor is level*perLevel + base. A level of zero or less counts as 1 and
// the result never drops below zero.
func MaxFor(level, perLevel, base int) int {
	if level <= 0 {
		level = 1
	}
	m := level*perLevel + base
	if m < 0 {
		return 0
	}
	return m
}

// Recalculate recomputes the maximum for level and clamps the value down
func (p *Pool) Recalculate(level int) {
	p.MaxValue = Int(MaxFor(level, int(p.ValuePerLevel), int(p.DefaultValue)))
	p.clamp()
}

// Increase adds amount up to the maximum. A pool already at its maximum is
// left untouched and the returned notice says so.
func (p *Pool) Increase(amount int) *shared.Notice {
	if p.Value >= p.MaxValue {
		return shared.Info("%s is already at maximum", p.Name)
	}
	p.Value += Int(amount)
	p.clamp()
	return nil
}

// Decrease removes amount down to zero. A pool already empty is left
// untouched and the returned notice says so.
func (p *Pool) Decrease(amount int) *shared.Notice {
	if p.Value <= 0 {
		return shared.Info("%s is already at minimum", p.Name)
	}
	p.Value -= Int(amount)
	p.clamp()
	return nil
}

// SetToMax fills the pool
func (p *Pool) SetToMax() {
	p.Value = p.MaxValue
}

// SetToZero empties the pool
func (p *Pool) SetToZero() {
	p.Value = 0
}

// SetField assigns raw to field. Numeric fields are coerced from text and
// changing the per-level rate or the base recomputes the maximum for level.
// Bad input is reported as a notice and leaves the pool untouched.
func (p *Pool) SetField(field Field, raw string, level int) *shared.Notice {
	switch field {
	case FieldName:
		name := strings.TrimSpace(raw)
		if name == "" {
			return shared.Warn("resource name cannot be empty")
		}
		p.Name = name
		return nil
	case FieldShow:
		show, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return shared.Warn("%q is not true or false", raw)
		}
		p.Show = show
		return nil
	}

	n, err := ParseInt(raw)
	if err != nil {
		return shared.Warn("%s", err.Error())
	}

	switch field {
	case FieldValue:
		p.Value = Int(n)
		p.clamp()
	case FieldValuePerLevel:
		p.ValuePerLevel = Int(n)
		p.Recalculate(level)
	case FieldDefaultValue:
		p.DefaultValue = Int(n)
		p.Recalculate(level)
	default:
		return shared.Warn("unknown resource field %q", string(field))
	}
	return nil
}

func (p *Pool) clamp() {
	if p.MaxValue < 0 {
		p.MaxValue = 0
	}
	if p.Value > p.MaxValue {
		p.Value = p.MaxValue
	}
	if p.Value < 0 {
		p.Value = 0
	}
}
