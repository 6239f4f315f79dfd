package rules

import (
	"github.com/talgya/households/internal/household"
	"github.com/talgya/households/internal/identity"
	"github.com/talgya/households/internal/rng"
)

// Check decides whether p feels pressure to leave this year.
type Check func(p *household.Person) bool

// WhoLeaves computes the group that would leave together with p, or nil
// if nobody should.
type WhoLeaves func(p *household.Person) []*household.Person

// Destination picks a House for the leaving group, or nil if none exists.
type Destination func(house *household.House, leavers []*household.Person) *household.House

// MobilityRule implements household.MobilityRule.
type MobilityRule struct {
	Check       Check
	WhoLeaves   WhoLeaves
	Destination Destination
}

// NewMobilityRule validates its arguments and returns an assembled rule.
func NewMobilityRule(check Check, whoLeaves WhoLeaves, destination Destination) (*MobilityRule, error) {
	if check == nil || whoLeaves == nil || destination == nil {
		return nil, ErrMissingComponent
	}
	return &MobilityRule{Check: check, WhoLeaves: whoLeaves, Destination: destination}, nil
}

// Apply runs the mobility pipeline for p.
func (r *MobilityRule) Apply(p *household.Person) (bool, error) {
	if p.House == nil {
		return false, nil
	}
	if !r.Check(p) {
		return false, nil
	}
	leavers := r.WhoLeaves(p)
	if len(leavers) == 0 {
		return false, nil
	}
	dest := r.Destination(p.House, leavers)
	if dest == nil {
		return false, nil
	}
	owner := leavers[0]
	dest.AddShare(owner, 1)
	dest.MoveOccupants(leavers)
	return true, nil
}

// CheckNever never triggers mobility.
func CheckNever(*household.Person) bool { return false }

// CheckOvercrowded triggers when the House holds more occupants than its
// capacity.
func CheckOvercrowded(p *household.Person) bool {
	return p.House != nil && len(p.House.Occupants) > p.House.MaxPeople
}

// CheckYoungerBrotherDisinherited triggers for a male p who has reached
// majority age and whose House is owned by one of his siblings (rather
// than by himself or a parent).
func CheckYoungerBrotherDisinherited(majorityAge int) Check {
	return func(p *household.Person) bool {
		if p.Sex != identity.Male || p.Age < majorityAge || p.House == nil {
			return false
		}
		siblings := household.Siblings(p)
		for _, owner := range p.House.Owners() {
			for _, sib := range siblings {
				if owner == sib {
					return true
				}
			}
		}
		return false
	}
}

// WhoLeavesNobody always returns an empty group.
func WhoLeavesNobody(*household.Person) []*household.Person { return nil }

// WhoLeavesEntireFamily returns p's nuclear family as household.Family
// defines it: p, spouse and children, or p alone when p has no spouse.
func WhoLeavesEntireFamily(p *household.Person) []*household.Person {
	return household.Family(p)
}

// WhoLeavesIsolated returns every occupant of p's House, p included, who
// has no co-resident kin at all: a person qualifies if none of their
// parents, children, or spouse currently share their House. p is not in
// the result when p has co-resident kin. Unwired by any preset; not
// exercised by the scenario tests.
func WhoLeavesIsolated(p *household.Person) []*household.Person {
	if p.House == nil {
		return nil
	}
	var isolated []*household.Person
	for _, occupant := range p.House.Occupants {
		if hasNoCoResidentKin(occupant) {
			isolated = append(isolated, occupant)
		}
	}
	return isolated
}

// hasNoCoResidentKin reports whether none of p's spouse, children, or
// parents share p's House. Children are checked separately from
// household.Family, which leaves them out when p has no spouse.
func hasNoCoResidentKin(p *household.Person) bool {
	house := p.House
	if house == nil {
		return false
	}
	for _, kin := range household.Family(p) {
		if kin == p {
			continue
		}
		if kin.House == house {
			return false
		}
	}
	for _, child := range household.Children(p) {
		if child.House == house {
			return false
		}
	}
	for _, parent := range household.Parents(p) {
		if parent.House == house {
			return false
		}
	}
	return true
}

// WhoLeavesYoungerBrotherWithFamily returns p (the disinherited younger
// brother) together with p's own nuclear family, per the "brother loses
// out" mobility path. It performs no check of its own: whether p is a
// sibling of the House's owner, rather than the owner, is decided by
// CheckYoungerBrotherDisinherited before this runs.
func WhoLeavesYoungerBrotherWithFamily(p *household.Person) []*household.Person {
	return household.Family(p)
}

// DestinationRandomEmptyHouse picks a uniformly random empty, unowned
// House in the leaving group's community.
func DestinationRandomEmptyHouse(house *household.House, leavers []*household.Person) *household.House {
	comm := house.Community
	empty := comm.EmptyUnownedHouses()
	if len(empty) == 0 {
		return nil
	}
	return rng.Choice(comm.World.RNG, empty)
}
