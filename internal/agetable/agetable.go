// Package agetable implements the piecewise-constant per-sex annual rate
// lookup that drives every stochastic life event: mortality, fertility,
// marriage eligibility, and remarriage.
package agetable

import (
	"errors"
	"fmt"

	"github.com/talgya/households/internal/identity"
)

// Sentinel construction errors. Callers compare with errors.Is.
var (
	ErrAgesNotIncreasing = errors.New("agetable: ages must be strictly increasing")
	ErrRateLengthMismatch = errors.New("agetable: rates length must equal len(ages)-1")
	ErrRateOutOfUnitRange = errors.New("agetable: rates must lie in [0,1]")
	ErrTooFewAges         = errors.New("agetable: need at least two age bounds")
)

// OutOfRangeError reports that rate() was queried outside the table's
// defined age span. It is a boundary error per the error taxonomy, not an
// invariant violation: callers are expected to check ages against real
// population bounds, not treat every age as in range.
type OutOfRangeError struct {
	Sex identity.Sex
	Age int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("agetable: age %d out of range for sex %s", e.Age, e.Sex.Adjective)
}

// AgeTable holds strictly increasing age bounds plus one rate sequence per
// sex. ages has length N+1 and covers N intervals; interval i covers
// ages[i] <= age < ages[i+1]. Each rates slice has length N.
type AgeTable struct {
	ages        []int
	ratesMale   []float64
	ratesFemale []float64
	isNull      bool
}

// New validates and builds an AgeTable from parallel sequences. ages must
// be strictly increasing and have at least two elements (one interval).
// ratesMale and ratesFemale must each have length len(ages)-1, with every
// value in [0,1].
func New(ages []int, ratesMale, ratesFemale []float64) (*AgeTable, error) {
	if len(ages) < 2 {
		return nil, ErrTooFewAges
	}
	for i := 1; i < len(ages); i++ {
		if ages[i] <= ages[i-1] {
			return nil, fmt.Errorf("%w: ages[%d]=%d <= ages[%d]=%d", ErrAgesNotIncreasing, i, ages[i], i-1, ages[i-1])
		}
	}
	nIntervals := len(ages) - 1
	for name, rates := range map[string][]float64{"male": ratesMale, "female": ratesFemale} {
		if len(rates) != nIntervals {
			return nil, fmt.Errorf("%w: %s rates has length %d, want %d", ErrRateLengthMismatch, name, len(rates), nIntervals)
		}
		for _, r := range rates {
			if r < 0 || r > 1 {
				return nil, fmt.Errorf("%w: %s rate %v", ErrRateOutOfUnitRange, name, r)
			}
		}
	}
	t := &AgeTable{
		ages:        append([]int(nil), ages...),
		ratesMale:   append([]float64(nil), ratesMale...),
		ratesFemale: append([]float64(nil), ratesFemale...),
	}
	return t, nil
}

// Null returns an AgeTable that returns 0 for any sex/age and never errors,
// regardless of the age queried.
func Null() *AgeTable {
	return &AgeTable{isNull: true}
}

// Rate returns the rate for sex at age. Returns an *OutOfRangeError if age
// falls outside the table's defined span, unless the table is the null
// table, which always returns 0.
func (t *AgeTable) Rate(sex identity.Sex, age int) (float64, error) {
	if t.isNull {
		return 0, nil
	}
	if age < t.ages[0] || age >= t.ages[len(t.ages)-1] {
		return 0, &OutOfRangeError{Sex: sex, Age: age}
	}
	rates := t.ratesFor(sex)
	// Bounded linear search; interval counts are small (a handful of age
	// brackets), so a binary search would only add complexity for no
	// measurable benefit.
	for i := 0; i < len(t.ages)-1; i++ {
		if age >= t.ages[i] && age < t.ages[i+1] {
			return rates[i], nil
		}
	}
	return 0, &OutOfRangeError{Sex: sex, Age: age}
}

func (t *AgeTable) ratesFor(sex identity.Sex) []float64 {
	if sex == identity.Male {
		return t.ratesMale
	}
	return t.ratesFemale
}
