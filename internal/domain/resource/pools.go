package resource

// Pools is the ordered list of pools owned by one ability
type Pools []Pool

// Find returns the pool with id
func (ps Pools) Find(id string) (*Pool, bool) {
	for i := range ps {
		if ps[i].ID == id {
			return &ps[i], true
		}
	}
	return nil, false
}

// New builds an empty pool with its maximum computed for level
func New(id, name string, perLevel, base int, show bool, level int) Pool {
	p := Pool{
		ID:            id,
		Name:          name,
		ValuePerLevel: Int(perLevel),
		DefaultValue:  Int(base),
		Show:          show,
	}
	p.Recalculate(level)
	return p
}

// Remove drops the pool with id and reports whether it existed
func (ps *Pools) Remove(id string) bool {
	for i := range *ps {
		if (*ps)[i].ID == id {
			*ps = append((*ps)[:i], (*ps)[i+1:]...)
			return true
		}
	}
	return false
}

// RecalculateAll recomputes every maximum for level. Running it twice in a
// row leaves the pools unchanged.
func (ps Pools) RecalculateAll(level int) {
	for i := range ps {
		ps[i].Recalculate(level)
	}
}

// Clone returns an independent copy
func (ps Pools) Clone() Pools {
	if ps == nil {
		return nil
	}
	out := make(Pools, len(ps))
	copy(out, ps)
	return out
}
