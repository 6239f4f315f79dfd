// Package bootstrap constructs a World and its Communities with an initial
// population and house stock, the way a researcher sets up a simulation
// run before calling World.Advance in a loop.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/talgya/households/internal/agetable"
	"github.com/talgya/households/internal/household"
	"github.com/talgya/households/internal/identity"
	"github.com/talgya/households/internal/rng"
)

// CommunitySpec describes one Community to seed: its rate tables, default
// rule set, initial population count, starting age for every initial
// Person, and the number of empty houses to create.
type CommunitySpec struct {
	Name         string
	Mortality    *agetable.AgeTable
	Fertility    *agetable.AgeTable
	DefaultRules household.RuleSet
	Population   int
	StartAge     int
	Area         int // number of empty houses
	HouseCapacity int
	HouseRooms    int
}

// Spawner creates the initial population and house stock for a Community,
// drawing names from static pools the way the teacher's agent spawner
// draws from maleNames/femaleNames/lastNames — affecting display only,
// never behavior.
type Spawner struct {
	nameCounter    int
	addressCounter int
}

// NewSpawner returns a Spawner. Names and addresses are taken from the
// pools in a fixed order by the Spawner's own counters; only each Person's
// sex is drawn from the World's RNG, so the whole bootstrap sequence
// remains reproducible under one seed.
func NewSpawner() *Spawner {
	return &Spawner{}
}

// BuildWorld constructs a World with one Community per spec, wired to a
// single seeded RNG.
func BuildWorld(seed int64, specs []CommunitySpec, logger *slog.Logger) (*household.World, error) {
	world := household.New(rng.New(seed), logger)
	spawner := NewSpawner()
	for _, spec := range specs {
		comm, err := spawner.BuildCommunity(world, spec)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: community %q: %w", spec.Name, err)
		}
		world.AddCommunity(comm)
	}
	return world, nil
}

// BuildCommunity constructs one Community from spec: area houses, created
// empty, and pop Persons with random sex and the configured starting age.
// Persons are placed into the houses round-robin (a Person whose house is
// full stays without one), and the first occupant of each house is given
// a single ownership share in it.
func (s *Spawner) BuildCommunity(world *household.World, spec CommunitySpec) (*household.Community, error) {
	if spec.Population < 0 || spec.Area < 0 {
		return nil, fmt.Errorf("bootstrap: population and area must be non-negative")
	}
	comm := household.NewCommunity(spec.Name, spec.Mortality, spec.Fertility, spec.DefaultRules)
	comm.World = world // needed before AddPerson so Diary registration and birth-year stamping work

	capacity := spec.HouseCapacity
	if capacity <= 0 {
		capacity = 6
	}
	rooms := spec.HouseRooms
	if rooms <= 0 {
		rooms = 2
	}
	houses := make([]*household.House, 0, spec.Area)
	for i := 0; i < spec.Area; i++ {
		h := household.NewHouse(s.nextAddress(), capacity, rooms, comm)
		comm.AddHouse(h)
		houses = append(houses, h)
	}

	for i := 0; i < spec.Population; i++ {
		sex := identity.Male
		if world.RNG.Bool(0.5) {
			sex = identity.Female
		}
		p := household.NewPerson(s.nextName(sex), sex, spec.StartAge, world.Year, comm.DefaultRules)
		comm.AddPerson(p)
		if len(houses) > 0 {
			house := houses[i%len(houses)]
			if !house.IsFull() {
				house.Add(p)
				if len(house.Shares) == 0 {
					house.AddShare(p, 1)
				}
			}
		}
	}
	return comm, nil
}

func (s *Spawner) nextName(sex identity.Sex) string {
	var pool []string
	if sex == identity.Male {
		pool = maleNames
	} else {
		pool = femaleNames
	}
	first := pool[s.nameCounter%len(pool)]
	last := lastNames[(s.nameCounter/len(pool))%len(lastNames)]
	s.nameCounter++
	return first + " " + last
}

func (s *Spawner) nextAddress() string {
	addr := addressPool[s.addressCounter%len(addressPool)]
	s.addressCounter++
	return addr
}
