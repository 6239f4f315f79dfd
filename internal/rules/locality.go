package rules

import (
	"github.com/talgya/households/internal/household"
	"github.com/talgya/households/internal/identity"
	"github.com/talgya/households/internal/rng"
)

// Patrilocality has newlyweds live at the husband's house if he has one
// with room, falling back to neolocality (husband as titular owner)
// otherwise.
func Patrilocality(husband, wife *household.Person) bool {
	if husband.House == nil || husband.House.IsFull() {
		Neolocality(identity.Male)(husband, wife)
		return false
	}
	husband.House.MoveOccupants([]*household.Person{wife})
	return true
}

// Matrilocality is Patrilocality with husband and wife swapped.
func Matrilocality(husband, wife *household.Person) bool {
	if wife.House == nil || wife.House.IsFull() {
		Neolocality(identity.Female)(husband, wife)
		return false
	}
	wife.House.MoveOccupants([]*household.Person{husband})
	return true
}

// Neolocality returns a Locality that moves the couple into a random empty
// unowned house in primary's community, with primary becoming sole
// titular owner. Returns false with no relocation if no empty house exists.
func Neolocality(primary identity.Sex) Locality {
	return func(husband, wife *household.Person) bool {
		owner := wife
		if husband.Sex == primary {
			owner = husband
		}
		empty := owner.Community.EmptyUnownedHouses()
		if len(empty) == 0 {
			return false
		}
		house := rng.Choice(owner.Community.World.RNG, empty)
		house.MoveOccupants([]*household.Person{husband, wife})
		house.AddShare(owner, 1)
		return true
	}
}
