package household

import (
	"github.com/talgya/households/internal/identity"
)

// Person is an agent in the simulation. Spouse, Parents, Children, House,
// and Community are weak (non-owning) references: the owning Community
// holds every Person reachable from its Living/Dead slices, and these
// fields merely point back into that population. Go's garbage collector
// makes a dangling pointer impossible by construction, which is what the
// generational-index arena described for the original design exists to
// guarantee in languages without automatic memory management; the
// remaining invariant — that a dereferenced weak reference to a dead
// Person must read as "dead", not silently vanish — is preserved by
// checking LifeStatus at the read site rather than by never reusing a slot.
type Person struct {
	Sex            identity.Sex
	Name           string
	Age            int
	LifeStatus     identity.LifeStatus
	MarriageStatus identity.MarriageStatus

	Spouse    *Person
	Parents   []*Person
	Children  []*Person
	House     *House
	Community *Community

	BirthYear int
	Diary     *Diary

	MarriageRule    MarriageRule
	InheritanceRule InheritanceRule
	MobilityRule    MobilityRule
	BirthRule       BirthRule
}

// NewPerson constructs a living Person with the given identity, inheriting
// the four behavior rules from the provided template (typically the
// Community's defaults at bootstrap, or a mother's rules at birth).
func NewPerson(name string, sex identity.Sex, age int, birthYear int, rules RuleSet) *Person {
	return &Person{
		Sex:             sex,
		Name:            name,
		Age:             age,
		LifeStatus:      identity.Alive,
		MarriageStatus:  identity.Ineligible,
		BirthYear:       birthYear,
		Diary:           NewDiary(),
		MarriageRule:    rules.Marriage,
		InheritanceRule: rules.Inheritance,
		MobilityRule:    rules.Mobility,
		BirthRule:       rules.Birth,
	}
}

// RuleSet bundles the four behavior rules so they can be passed and
// inherited as a single value, matching the spec's "per-agent references to
// its four behavior rules" requirement.
type RuleSet struct {
	Marriage    MarriageRule
	Inheritance InheritanceRule
	Mobility    MobilityRule
	Birth       BirthRule
}

// Rules returns this Person's current rule set, for handing to children at
// birth.
func (p *Person) Rules() RuleSet {
	return RuleSet{
		Marriage:    p.MarriageRule,
		Inheritance: p.InheritanceRule,
		Mobility:    p.MobilityRule,
		Birth:       p.BirthRule,
	}
}

// IsAlive reports whether the Person is currently alive. Defensive callers
// should check this before trusting any weak reference to a Person whose
// liveness they have not otherwise established this year.
func (p *Person) IsAlive() bool {
	return p != nil && p.LifeStatus == identity.Alive
}

// Die runs the mortality check for p and, on death, the full death
// sequence described in the life-events design: mark dead, widow the
// spouse, run inheritance, vacate any house, move from living to dead,
// append a death event. Returns true if p died this year.
func (p *Person) Die() (bool, error) {
	if !p.IsAlive() {
		return false, nil
	}
	comm := p.Community
	rate, err := comm.Mortality.Rate(p.Sex, p.Age)
	if err != nil {
		// Out of table range: treat conservatively as certain death, since
		// a population outliving its mortality schedule is a modeling
		// error the researcher should see reflected, not silently ignored.
		rate = 1
	}
	if !comm.World.RNG.Bool(rate) {
		p.Age++
		return false, nil
	}
	return true, p.Kill()
}

// Kill runs the unconditional death sequence for p, bypassing the
// mortality-table sample: mark dead, widow the spouse, run inheritance,
// vacate any house, move from living to dead, append a death event. Used
// both by Die (after a mortality roll succeeds) and by events that cause
// certain death outright, such as maternal mortality and infanticide.
func (p *Person) Kill() error {
	if !p.IsAlive() {
		return nil
	}
	comm := p.Community
	p.LifeStatus = identity.Dead
	if p.MarriageStatus == identity.Married && p.Spouse != nil {
		p.Spouse.MarriageStatus = identity.Widowed
	}
	if p.InheritanceRule != nil {
		if _, err := p.InheritanceRule.Apply(p); err != nil {
			return err
		}
	}
	if p.House != nil {
		p.House.Remove(p)
	}
	comm.moveToDead(p)
	p.Diary.Append(Event{Year: comm.World.Year, House: p.House, Person: p, Kind: EventDeath})
	return nil
}

// Marry delegates to p's marriage rule, a no-op if p has none.
func (p *Person) Marry() (bool, error) {
	if !p.IsAlive() || p.MarriageRule == nil {
		return false, nil
	}
	return p.MarriageRule.Apply(p)
}

// GiveBirth delegates to p's birth rule, a no-op if p has none.
func (p *Person) GiveBirth() (bool, error) {
	if !p.IsAlive() || p.BirthRule == nil {
		return false, nil
	}
	return p.BirthRule.Apply(p)
}

// LeaveHome delegates to p's mobility rule, a no-op if p has none.
func (p *Person) LeaveHome() (bool, error) {
	if !p.IsAlive() || p.MobilityRule == nil {
		return false, nil
	}
	return p.MobilityRule.Apply(p)
}
