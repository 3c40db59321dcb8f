package shared

// Meter is a character-level pool with a floor of zero, such as momentum,
// Will of Fire or chakra.
type Meter struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// Set assigns value clamped to [0, Max] and returns the stored value
func (m *Meter) Set(value int) int {
	m.Value = clamp(value, 0, m.Max)
	return m.Value
}

// Spend removes amount if the meter holds at least that much
func (m *Meter) Spend(amount int) bool {
	if amount < 0 || m.Value < amount {
		return false
	}
	m.Value -= amount
	return true
}

// Gain adds amount up to Max and returns how much was actually added
func (m *Meter) Gain(amount int) int {
	if amount <= 0 || m.Value >= m.Max {
		return 0
	}

	old := m.Value
	m.Value = clamp(m.Value+amount, 0, m.Max)
	return m.Value - old
}

// Reset drops the meter to its floor
func (m *Meter) Reset() {
	m.Value = 0
}

// Scale is a signed value bounded on both sides, used for the advantage
// level ("NV").
type Scale struct {
	Value int `json:"value"`
	Min   int `json:"min"`
	Max   int `json:"max"`
}

// Set assigns value clamped to [Min, Max] and returns the stored value
func (s *Scale) Set(value int) int {
	s.Value = clamp(value, s.Min, s.Max)
	return s.Value
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
