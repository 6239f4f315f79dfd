package rules

import (
	"sort"

	"github.com/talgya/households/internal/household"
	"github.com/talgya/households/internal/identity"
)

// HeirGroup is an ordered set of candidate heirs ranked within a single
// axis (e.g. one brother's sons). HeirsNested is an ordered sequence of
// such groups, e.g. grouped by sibling branch; a finder with no grouping
// concept simply returns a single group.
type HeirGroup = []*household.Person
type HeirsNested = []HeirGroup

// HasProperty reports whether p has anything to pass on.
type HasProperty func(p *household.Person) bool

// FindHeirs ranks candidate heirs for p, in priority order.
type FindHeirs func(p *household.Person) HeirsNested

// Limiter filters or reorders a heir ranking.
type Limiter func(heirs HeirsNested) HeirsNested

// Distributor assigns property to the chosen heir(s) once a non-empty
// ranking survives limiting.
type Distributor func(p *household.Person, heirs HeirsNested) bool

// Failure runs when no heir survives limiting (or the simple rule's action
// itself reports failure).
type Failure func(p *household.Person) bool

// HasAnyProperty is the built-in has_property predicate: true if p owns a
// share of at least one House in their Community.
func HasAnyProperty(p *household.Person) bool {
	return p.Community.OwnsAnyHouse(p)
}

// SimpleInheritanceRule implements household.InheritanceRule with the
// two-step has_property/rule/failure shape: an action attempts to dispose
// of the property, and the fallback runs only if the action fails.
type SimpleInheritanceRule struct {
	HasProperty HasProperty
	Rule        func(p *household.Person) bool
	Failure     Failure
}

// Apply runs the simple inheritance pipeline for p.
func (r *SimpleInheritanceRule) Apply(p *household.Person) (bool, error) {
	if !r.HasProperty(p) {
		return false, nil
	}
	if !r.Rule(p) {
		r.Failure(p)
	}
	return true, nil
}

// ComplexInheritanceRule implements household.InheritanceRule with the
// five-stage pipeline: has_property -> find_heirs -> limit_heirs ->
// distribute_property, falling back to failure when limiting leaves no
// candidate.
type ComplexInheritanceRule struct {
	HasProperty HasProperty
	FindHeirs   FindHeirs
	LimitHeirs  Limiter
	Distribute  Distributor
	Failure     Failure
}

// Apply runs the complex inheritance pipeline for p.
func (r *ComplexInheritanceRule) Apply(p *household.Person) (bool, error) {
	if !r.HasProperty(p) {
		return false, nil
	}
	heirs := r.FindHeirs(p)
	if r.LimitHeirs != nil {
		heirs = r.LimitHeirs(heirs)
	}
	if countHeirs(heirs) == 0 {
		r.Failure(p)
		return true, nil
	}
	r.Distribute(p, heirs)
	return true, nil
}

func countHeirs(heirs HeirsNested) int {
	n := 0
	for _, g := range heirs {
		n += len(g)
	}
	return n
}

func firstHeir(heirs HeirsNested) *household.Person {
	for _, g := range heirs {
		for _, candidate := range g {
			if candidate.IsAlive() {
				return candidate
			}
		}
	}
	return nil
}

func byAgeDescending(people []*household.Person) []*household.Person {
	out := append([]*household.Person(nil), people...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Age > out[j].Age })
	return out
}

// FindHeirsMultiple concatenates the normalized outputs of several finders
// in order, letting a caller compose e.g. "sons, then brothers' second
// sons" as a single ranked pipeline.
func FindHeirsMultiple(finders ...FindHeirs) FindHeirs {
	return func(p *household.Person) HeirsNested {
		var combined HeirsNested
		for _, f := range finders {
			combined = append(combined, f(p)...)
		}
		return combined
	}
}

// FindChildren returns p's living children, age-descending, optionally
// filtered to one sex. Pass identity.Sex{} (the zero value) for no filter.
// A predeceased child is never a candidate heir: Person.Kill does not strip
// the dead from their parent's Children slice, so this filter is what keeps
// a dead Person from being named an heir.
func FindChildren(sexFilter identity.Sex) FindHeirs {
	return func(p *household.Person) HeirsNested {
		children := filterAlive(household.Children(p))
		if sexFilter != (identity.Sex{}) {
			children = filterBySex(children, sexFilter)
		}
		return HeirsNested{byAgeDescending(children)}
	}
}

// FindSons returns p's sons, age-descending.
func FindSons(p *household.Person) HeirsNested {
	return FindChildren(identity.Male)(p)
}

// FindDaughters returns p's daughters, age-descending.
func FindDaughters(p *household.Person) HeirsNested {
	return FindChildren(identity.Female)(p)
}

// FindSiblingsChildren returns p's siblings' children, grouped by sibling
// (siblings ordered oldest-first, each sibling's children age-descending),
// optionally filtered to one sex.
func FindSiblingsChildren(sexFilter identity.Sex) FindHeirs {
	return func(p *household.Person) HeirsNested {
		siblings := byAgeDescending(household.Siblings(p))
		var nested HeirsNested
		for _, sib := range siblings {
			children := filterAlive(household.Children(sib))
			if sexFilter != (identity.Sex{}) {
				children = filterBySex(children, sexFilter)
			}
			nested = append(nested, byAgeDescending(children))
		}
		return nested
	}
}

// FindBrothersSecondSons implements the canonical "brothers' sons" rule:
// the second-oldest living son of each brother, in brother-age order,
// reserving each brother's eldest living son for his own estate. A brother
// with fewer than two living sons contributes none.
func FindBrothersSecondSons(p *household.Person) HeirsNested {
	brothers := byAgeDescending(filterBySex(household.Siblings(p), identity.Male))
	group := make(HeirGroup, 0, len(brothers))
	for _, brother := range brothers {
		sons := byAgeDescending(filterAlive(filterBySex(household.Children(brother), identity.Male)))
		if len(sons) < 2 {
			continue
		}
		group = append(group, sons[1])
	}
	return HeirsNested{group}
}

func filterBySex(people []*household.Person, sex identity.Sex) []*household.Person {
	var out []*household.Person
	for _, p := range people {
		if p.Sex == sex {
			out = append(out, p)
		}
	}
	return out
}

// filterAlive restricts a candidate-heir list to living Persons. A dead
// child is never removed from its parent's Children slice, so every heir
// finder walks it through this filter before ranking.
func filterAlive(people []*household.Person) []*household.Person {
	var out []*household.Person
	for _, p := range people {
		if p.IsAlive() {
			out = append(out, p)
		}
	}
	return out
}

// NoLimit is the identity limiter.
func NoLimit(heirs HeirsNested) HeirsNested { return heirs }

// ExcludeCurrentOwners filters out any candidate who already owns a share
// of some House in their community, modeling the preference to pass
// property to someone not already provided for.
func ExcludeCurrentOwners(heirs HeirsNested) HeirsNested {
	return mapGroups(heirs, func(p *household.Person) bool {
		return !p.Community.OwnsAnyHouse(p)
	})
}

// ExcludeBelowMajority filters out candidates younger than majorityAge.
func ExcludeBelowMajority(majorityAge int) Limiter {
	return func(heirs HeirsNested) HeirsNested {
		return mapGroups(heirs, func(p *household.Person) bool {
			return p.Age >= majorityAge
		})
	}
}

// ChainLimiters composes limiters in sequence, left to right.
func ChainLimiters(limiters ...Limiter) Limiter {
	return func(heirs HeirsNested) HeirsNested {
		for _, l := range limiters {
			heirs = l(heirs)
		}
		return heirs
	}
}

func mapGroups(heirs HeirsNested, keep func(*household.Person) bool) HeirsNested {
	out := make(HeirsNested, 0, len(heirs))
	for _, g := range heirs {
		var filtered HeirGroup
		for _, p := range g {
			if keep(p) {
				filtered = append(filtered, p)
			}
		}
		out = append(out, filtered)
	}
	return out
}

// FirstHeirAndMoveHousehold is the built-in distributor: the first surviving
// candidate in ranking order receives full ownership of every House p
// owned, and the living members of their nuclear family relocate into the
// (last of the) transferred House(s).
func FirstHeirAndMoveHousehold(p *household.Person, heirs HeirsNested) bool {
	heir := firstHeir(heirs)
	if heir == nil {
		return false
	}
	owned := p.Community.HousesOwnedBy(p)
	for _, h := range owned {
		h.TransferAllShares(p, heir)
		h.MoveOccupants(filterAlive(household.Family(heir)))
	}
	return true
}

// NoOwner is the built-in failure: p's share is removed from every House
// they owned, leaving each unowned.
func NoOwner(p *household.Person) bool {
	for _, h := range p.Community.HousesOwnedBy(p) {
		h.RemoveShare(p)
	}
	return true
}
