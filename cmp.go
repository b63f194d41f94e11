package layered

// Eq returns true, if both values represent the same number.
// As every number has a single representation, this is the same as d == other.
func (d Decimal) Eq(other Decimal) bool {
	return d == other
}

// Neq returns d != other.
func (d Decimal) Neq(other Decimal) bool {
	return !d.Eq(other)
}

// Lt returns d < other.
func (d Decimal) Lt(other Decimal) bool {
	if d.neg != other.neg {
		return d.neg
	}
	if d.neg {
		return other.Abs().Lt(d.Abs())
	}
	if d.layer != other.layer {
		return d.layer < other.layer
	}
	return d.mag < other.mag
}

// Lte returns d <= other.
func (d Decimal) Lte(other Decimal) bool {
	return d.Lt(other) || d.Eq(other)
}

// Gt returns d > other.
func (d Decimal) Gt(other Decimal) bool {
	return !d.Lte(other)
}

// Gte returns d >= other.
func (d Decimal) Gte(other Decimal) bool {
	return !d.Lt(other)
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (d Decimal) Cmp(other Decimal) int {
	switch {
	case d.Eq(other):
		return 0
	case d.Lt(other):
		return -1
	default:
		return 1
	}
}

// Min returns the smaller of a and b.
func Min(a, b Decimal) Decimal {
	if a.Lt(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Decimal) Decimal {
	if a.Gt(b) {
		return a
	}
	return b
}

// Clamp returns d limited to the [lo, hi] range.
func (d Decimal) Clamp(lo, hi Decimal) Decimal {
	return Min(Max(d, lo), hi)
}
