package household

import (
	"github.com/google/uuid"

	"github.com/talgya/households/internal/agetable"
)

// Community is a named coresidential group within a World. It holds the
// shared rate tables and default behavior rules new Persons are bootstrapped
// with, plus the living/dead Person membership and the ordered House list.
type Community struct {
	ID   uuid.UUID
	Name string

	Mortality *agetable.AgeTable
	Fertility *agetable.AgeTable

	DefaultRules RuleSet

	Living []*Person
	Dead   []*Person
	Houses []*House

	World *World

	// Cached per-year statistics, refreshed by World.Advance after every
	// phase cascade completes.
	Population        int
	HousingCapacity   int // sum of MaxPeople across all Houses
	OccupiedHouses    int
	BirthsThisYear    int
	DeathsThisYear    int
	MarriagesThisYear int
	MovesThisYear     int
}

// NewCommunity constructs an empty Community with no Persons or Houses.
// Bootstrap populates it afterward via AddHouse/AddPerson.
func NewCommunity(name string, mortality, fertility *agetable.AgeTable, rules RuleSet) *Community {
	return &Community{
		ID:           uuid.New(),
		Name:         name,
		Mortality:    mortality,
		Fertility:    fertility,
		DefaultRules: rules,
	}
}

// AddHouse appends an empty House to the Community and sets its back
// reference.
func (c *Community) AddHouse(h *House) {
	h.Community = c
	c.Houses = append(c.Houses, h)
}

// AddPerson inserts a newly constructed, living Person into the Community's
// living set and registers their Diary with the World's library.
func (c *Community) AddPerson(p *Person) {
	p.Community = c
	c.Living = append(c.Living, p)
	if c.World != nil {
		c.World.registerDiary("person", p.Diary)
		p.Diary.Append(Event{Year: c.World.Year, Person: p, Kind: EventBorn})
	}
}

// moveToDead removes p from Living and appends it to Dead. It is the
// caller's responsibility (Person.Kill) to have already set LifeStatus and
// vacated any House.
func (c *Community) moveToDead(p *Person) {
	for i, q := range c.Living {
		if q == p {
			c.Living = append(c.Living[:i], c.Living[i+1:]...)
			break
		}
	}
	c.Dead = append(c.Dead, p)
}

// LivingSnapshot returns a stable copy of the current living population,
// used by the Scheduler to iterate a phase without being perturbed by
// deaths/births that occur mid-phase.
func (c *Community) LivingSnapshot() []*Person {
	snap := make([]*Person, len(c.Living))
	copy(snap, c.Living)
	return snap
}

// HousesOwnedBy returns every House in the Community where p holds a
// positive ownership share, in House list order.
func (c *Community) HousesOwnedBy(p *Person) []*House {
	var owned []*House
	for _, h := range c.Houses {
		if h.Shares[p] > 0 {
			owned = append(owned, h)
		}
	}
	return owned
}

// OwnsAnyHouse reports whether p holds a share in at least one House in
// their Community.
func (c *Community) OwnsAnyHouse(p *Person) bool {
	return len(c.HousesOwnedBy(p)) > 0
}

// EmptyUnownedHouses returns Houses with no occupants and no owners, the
// pool neolocality and "random empty house" destinations draw from.
func (c *Community) EmptyUnownedHouses() []*House {
	var result []*House
	for _, h := range c.Houses {
		if len(h.Occupants) == 0 && len(h.Shares) == 0 {
			result = append(result, h)
		}
	}
	return result
}

// refreshStats recomputes the cached per-year statistics from current
// state. Births/deaths/marriages/moves counters are accumulated by the
// Scheduler during the phase cascade and reset at the start of each year;
// this only recomputes the state-derived figures (population, housing
// capacity, occupied houses).
func (c *Community) refreshStats() {
	c.Population = len(c.Living)
	capacity, occupied := 0, 0
	for _, h := range c.Houses {
		capacity += h.MaxPeople
		if len(h.Occupants) > 0 {
			occupied++
		}
	}
	c.HousingCapacity = capacity
	c.OccupiedHouses = occupied
}
