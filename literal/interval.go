package literal

import (
	"fmt"
	"math"
	"sort"

	"github.com/fabll/core/internal/value"
)

// Range is a single closed interval [Min, Max] within a
// Quantity_Interval_Disjoint. Min <= Max always holds for a well-formed
// Range.
type Range struct {
	Min, Max float64
}

func (r Range) isEmpty() bool {
	return r.Min > r.Max
}

func (r Range) overlapsOrTouches(o Range) bool {
	return r.Min <= o.Max && o.Min <= r.Max
}

// QuantityIntervalDisjoint is a set of real numbers in a given unit,
// represented as a sorted, non-overlapping, non-touching list of closed
// intervals (spec §3 Quantity_Interval_Disjoint). The empty set is the
// zero value's natural state once constructed with no ranges.
type QuantityIntervalDisjoint struct {
	unit   Unit
	ranges []Range
}

// NewQuantityInterval builds a disjoint interval set from the given
// ranges, normalizing overlaps and touching ranges by merging them.
func NewQuantityInterval(unit Unit, ranges ...Range) QuantityIntervalDisjoint {
	return QuantityIntervalDisjoint{unit: unit, ranges: normalizeRanges(ranges)}
}

// Single returns the single-point interval {v} in unit.
func Single(unit Unit, v float64) QuantityIntervalDisjoint {
	return NewQuantityInterval(unit, Range{Min: v, Max: v})
}

// EmptyQuantityInterval returns the empty set in unit.
func EmptyQuantityInterval(unit Unit) QuantityIntervalDisjoint {
	return QuantityIntervalDisjoint{unit: unit}
}

func normalizeRanges(in []Range) []Range {
	filtered := make([]Range, 0, len(in))
	for _, r := range in {
		if !r.isEmpty() {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	sort.Slice(filtered, func(i, j int) bool {
		return value.Float64Compare(filtered[i].Min, filtered[j].Min) < 0
	})
	merged := []Range{filtered[0]}
	for _, r := range filtered[1:] {
		last := &merged[len(merged)-1]
		if r.Min <= last.Max {
			if r.Max > last.Max {
				last.Max = r.Max
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Unit returns the interval set's unit.
func (q QuantityIntervalDisjoint) Unit() Unit {
	return q.unit
}

// Ranges returns the set's disjoint, sorted ranges. The caller must not
// mutate the returned slice.
func (q QuantityIntervalDisjoint) Ranges() []Range {
	return q.ranges
}

// IsEmpty reports whether the set contains no values.
func (q QuantityIntervalDisjoint) IsEmpty() bool {
	return len(q.ranges) == 0
}

// IsSingleton reports whether the set contains exactly one value.
func (q QuantityIntervalDisjoint) IsSingleton() bool {
	return len(q.ranges) == 1 && q.ranges[0].Min == q.ranges[0].Max
}

func (q QuantityIntervalDisjoint) requireSameUnit(o QuantityIntervalDisjoint) error {
	if !q.unit.Equal(o.unit) {
		return fmt.Errorf("%w: %s vs %s", ErrUnitMismatch, q.unit, o.unit)
	}
	return nil
}

// MinElem returns the smallest value in the set. Undefined if IsEmpty.
func (q QuantityIntervalDisjoint) MinElem() float64 {
	return q.ranges[0].Min
}

// MaxElem returns the largest value in the set. Undefined if IsEmpty.
func (q QuantityIntervalDisjoint) MaxElem() float64 {
	return q.ranges[len(q.ranges)-1].Max
}

// AsCenterTuple returns the set's overall (min, max) envelope as a
// center and tolerance: center is the arithmetic midpoint, and relative
// selects whether the tolerance is expressed as a fraction of center
// (relative=true) or in absolute units (relative=false). Undefined if
// IsEmpty.
func (q QuantityIntervalDisjoint) AsCenterTuple(relative bool) (center, tolerance float64) {
	lo, hi := q.MinElem(), q.MaxElem()
	center = (lo + hi) / 2
	abs := (hi - lo) / 2
	if !relative || center == 0 {
		return center, abs
	}
	return center, abs / math.Abs(center)
}

// Intersect returns the set-intersection of q and o. Units must match.
func (q QuantityIntervalDisjoint) Intersect(o QuantityIntervalDisjoint) (QuantityIntervalDisjoint, error) {
	if err := q.requireSameUnit(o); err != nil {
		return QuantityIntervalDisjoint{}, err
	}
	var out []Range
	i, j := 0, 0
	for i < len(q.ranges) && j < len(o.ranges) {
		a, b := q.ranges[i], o.ranges[j]
		lo := math.Max(a.Min, b.Min)
		hi := math.Min(a.Max, b.Max)
		if lo <= hi {
			out = append(out, Range{Min: lo, Max: hi})
		}
		if a.Max < b.Max {
			i++
		} else {
			j++
		}
	}
	return QuantityIntervalDisjoint{unit: q.unit, ranges: normalizeRanges(out)}, nil
}

// Union returns the set-union of q and o. Units must match.
func (q QuantityIntervalDisjoint) Union(o QuantityIntervalDisjoint) (QuantityIntervalDisjoint, error) {
	if err := q.requireSameUnit(o); err != nil {
		return QuantityIntervalDisjoint{}, err
	}
	combined := make([]Range, 0, len(q.ranges)+len(o.ranges))
	combined = append(combined, q.ranges...)
	combined = append(combined, o.ranges...)
	return QuantityIntervalDisjoint{unit: q.unit, ranges: normalizeRanges(combined)}, nil
}

// OpAdd returns the Minkowski sum of q and o: the set of all x+y for x in
// q, y in o. Units must match; the result carries the same unit.
func (q QuantityIntervalDisjoint) OpAdd(o QuantityIntervalDisjoint) (QuantityIntervalDisjoint, error) {
	if err := q.requireSameUnit(o); err != nil {
		return QuantityIntervalDisjoint{}, err
	}
	out := make([]Range, 0, len(q.ranges)*len(o.ranges))
	for _, a := range q.ranges {
		for _, b := range o.ranges {
			out = append(out, Range{Min: a.Min + b.Min, Max: a.Max + b.Max})
		}
	}
	return QuantityIntervalDisjoint{unit: q.unit, ranges: normalizeRanges(out)}, nil
}

// OpMul returns the set of all x*y for x in q, y in o. At least one
// operand must be dimensionless: the result takes the other operand's
// unit, and if neither is dimensionless OpMul returns an error wrapping
// ErrUnitMismatch.
func (q QuantityIntervalDisjoint) OpMul(o QuantityIntervalDisjoint) (QuantityIntervalDisjoint, error) {
	unit := q.unit
	switch {
	case q.unit.IsDimensionless():
		unit = o.unit
	case o.unit.IsDimensionless():
		unit = q.unit
	default:
		return QuantityIntervalDisjoint{}, fmt.Errorf("%w: cannot multiply %s by %s", ErrUnitMismatch, q.unit, o.unit)
	}
	out := make([]Range, 0, len(q.ranges)*len(o.ranges))
	for _, a := range q.ranges {
		for _, b := range o.ranges {
			corners := [4]float64{a.Min * b.Min, a.Min * b.Max, a.Max * b.Min, a.Max * b.Max}
			lo, hi := corners[0], corners[0]
			for _, c := range corners[1:] {
				lo = math.Min(lo, c)
				hi = math.Max(hi, c)
			}
			out = append(out, Range{Min: lo, Max: hi})
		}
	}
	return QuantityIntervalDisjoint{unit: unit, ranges: normalizeRanges(out)}, nil
}

// Contains reports whether v is a member of the set.
func (q QuantityIntervalDisjoint) Contains(v float64) bool {
	for _, r := range q.ranges {
		if v >= r.Min && v <= r.Max {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every value in q is also in o. Units must
// match.
func (q QuantityIntervalDisjoint) IsSubsetOf(o QuantityIntervalDisjoint) (bool, error) {
	inter, err := q.Intersect(o)
	if err != nil {
		return false, err
	}
	return rangesEqual(inter.ranges, q.ranges), nil
}

func rangesEqual(a, b []Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal reports whether q and o denote the same set of values in the
// same unit.
func (q QuantityIntervalDisjoint) Equal(o QuantityIntervalDisjoint) bool {
	return q.unit.Equal(o.unit) && rangesEqual(q.ranges, o.ranges)
}

// String renders the interval set using the notation "[min, max] unit"
// per range, joined by " | ".
func (q QuantityIntervalDisjoint) String() string {
	if q.IsEmpty() {
		return "{}"
	}
	s := ""
	for i, r := range q.ranges {
		if i > 0 {
			s += " | "
		}
		if r.Min == r.Max {
			s += fmt.Sprintf("%v%s", r.Min, q.unit)
			continue
		}
		s += fmt.Sprintf("[%v, %v]%s", r.Min, r.Max, q.unit)
	}
	return s
}
