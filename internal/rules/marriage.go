// Package rules implements the four pluggable behavior-rule families —
// MarriageRule, InheritanceRule, MobilityRule, BirthRule — as composable
// values built from small predicate/selector/action functions, following
// the design note that these should be plain data records holding
// function-valued fields rather than a class hierarchy. Each family's
// building blocks (eligibility filters, pickers, localities,
// heir finders, limiters, who-leaves resolvers, destinations) are provided
// here as ordinary functions so callers can mix and match or write their
// own without touching the rule types themselves.
package rules

import (
	"errors"
	"fmt"

	"github.com/talgya/households/internal/agetable"
	"github.com/talgya/households/internal/household"
	"github.com/talgya/households/internal/identity"
	"github.com/talgya/households/internal/rng"
)

// ErrWrongAgeTable is returned by rule constructors when an AgeTable
// argument is nil, standing in for the "rule component wrong arity/kind"
// construction-error category.
var ErrWrongAgeTable = errors.New("rules: age table must not be nil")

// GetEligible returns the candidate pool for a Person seeking marriage.
type GetEligible func(p *household.Person) []*household.Person

// PickSpouse chooses one candidate from a non-empty pool.
type PickSpouse func(candidates []*household.Person) *household.Person

// Locality decides where a newly married couple resides, returning whether
// the preferred locality (as opposed to its neolocality fallback) was
// achieved.
type Locality func(husband, wife *household.Person) bool

// MarriageRule implements household.MarriageRule: eligibility promotion,
// remarriage promotion, and the eligible/mutual/pick/marry/relocate
// pipeline described in the spec for an unmarried Person.
type MarriageRule struct {
	EligibilityTable *agetable.AgeTable
	GetEligible      GetEligible
	PickSpouse       PickSpouse
	Locality         Locality
	RemarriageTable  *agetable.AgeTable
}

// NewMarriageRule validates its arguments and returns an assembled rule.
func NewMarriageRule(eligibility *agetable.AgeTable, getEligible GetEligible, pick PickSpouse, locality Locality, remarriage *agetable.AgeTable) (*MarriageRule, error) {
	if eligibility == nil || remarriage == nil {
		return nil, ErrWrongAgeTable
	}
	if getEligible == nil || pick == nil || locality == nil {
		return nil, fmt.Errorf("%w: marriage rule requires get_eligible, pick_spouse, and locality", ErrMissingComponent)
	}
	return &MarriageRule{
		EligibilityTable: eligibility,
		GetEligible:      getEligible,
		PickSpouse:       pick,
		Locality:         locality,
		RemarriageTable:  remarriage,
	}, nil
}

// Apply runs the per-status marriage logic for p.
func (r *MarriageRule) Apply(p *household.Person) (bool, error) {
	world := p.Community.World
	switch p.MarriageStatus {
	case identity.Ineligible:
		rate, err := r.EligibilityTable.Rate(p.Sex, p.Age)
		if err != nil {
			return false, nil // out of the table's span: stay ineligible this year
		}
		if world.RNG.Bool(rate) {
			p.MarriageStatus = identity.Unmarried
		}
		return false, nil

	case identity.Widowed:
		rate, err := r.RemarriageTable.Rate(p.Sex, p.Age)
		if err != nil {
			return false, nil
		}
		if world.RNG.Bool(rate) {
			p.MarriageStatus = identity.Unmarried
		}
		return false, nil

	case identity.Unmarried:
		return r.tryMarry(p)

	default: // Married
		return false, nil
	}
}

func (r *MarriageRule) tryMarry(p *household.Person) (bool, error) {
	candidates := r.GetEligible(p)
	var reciprocal []*household.Person
	for _, c := range candidates {
		cRule, ok := c.MarriageRule.(*MarriageRule)
		if !ok || cRule.GetEligible == nil {
			continue
		}
		if containsPerson(cRule.GetEligible(c), p) {
			reciprocal = append(reciprocal, c)
		}
	}
	if len(reciprocal) == 0 {
		return false, nil
	}
	spouse := r.PickSpouse(reciprocal)
	husband, wife := orderBySex(p, spouse)
	husband.MarriageStatus = identity.Married
	wife.MarriageStatus = identity.Married
	husband.Spouse = wife
	wife.Spouse = husband

	year := p.Community.World.Year
	husband.Diary.Append(household.Event{Year: year, House: husband.House, Person: husband, Kind: household.EventMarriage, Detail: wife.Name})
	wife.Diary.Append(household.Event{Year: year, House: wife.House, Person: wife, Kind: household.EventMarriage, Detail: husband.Name})

	r.Locality(husband, wife) // bool result is about locality achieved, not whether marriage happened
	return true, nil
}

func orderBySex(a, b *household.Person) (husband, wife *household.Person) {
	if a.Sex == identity.Male {
		return a, b
	}
	return b, a
}

func containsPerson(list []*household.Person, p *household.Person) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

// GetEligibleAllOppositeSex returns every unmarried Person of the opposite
// sex in p's community, with no incest prohibition.
func GetEligibleAllOppositeSex(p *household.Person) []*household.Person {
	var out []*household.Person
	for _, q := range p.Community.Living {
		if q.Sex != p.Sex && q.MarriageStatus == identity.Unmarried {
			out = append(out, q)
		}
	}
	return out
}

// GetEligibleExcludingSiblings is GetEligibleAllOppositeSex with an incest
// prohibition against full/half siblings.
func GetEligibleExcludingSiblings(p *household.Person) []*household.Person {
	siblings := household.Siblings(p)
	siblingSet := make(map[*household.Person]bool, len(siblings))
	for _, s := range siblings {
		siblingSet[s] = true
	}
	var out []*household.Person
	for _, q := range p.Community.Living {
		if q.Sex != p.Sex && q.MarriageStatus == identity.Unmarried && !siblingSet[q] {
			out = append(out, q)
		}
	}
	return out
}

// PickSpouseRandom uniformly selects one candidate using that candidate's
// own community's World RNG.
func PickSpouseRandom(candidates []*household.Person) *household.Person {
	rngSrc := candidates[0].Community.World.RNG
	return rng.Choice(rngSrc, candidates)
}
