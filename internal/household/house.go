package household

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNoShareHeld is returned by ChangeOwner when the source Person holds no
// share in the House to transfer.
var ErrNoShareHeld = errors.New("household: person holds no share in house")

// House is an environmental object owned by a Community. Occupants and
// owner shares are weak references to Persons belonging to the same
// Community, never owned by the House itself.
type House struct {
	ID        uuid.UUID
	MaxPeople int
	Rooms     int
	Address   string
	Community *Community

	Occupants []*Person
	Shares    map[*Person]int

	Diary *Diary
}

// NewHouse constructs an empty, unowned House belonging to comm.
func NewHouse(address string, maxPeople, rooms int, comm *Community) *House {
	return &House{
		ID:        uuid.New(),
		MaxPeople: maxPeople,
		Rooms:     rooms,
		Address:   address,
		Community: comm,
		Shares:    make(map[*Person]int),
		Diary:     NewDiary(),
	}
}

// IsFull reports whether adding one more occupant would meet or exceed
// capacity, the same threshold patrilocality/matrilocality use to decide
// whether to fall back to neolocality.
func (h *House) IsFull() bool {
	return len(h.Occupants)+1 >= h.MaxPeople
}

// Add appends person to the House's occupants, sets their House
// back-reference, and logs an enter-house event on both diaries.
func (h *House) Add(person *Person) {
	h.Occupants = append(h.Occupants, person)
	person.House = h
	year := 0
	if h.Community != nil && h.Community.World != nil {
		year = h.Community.World.Year
	}
	evt := Event{Year: year, House: h, Person: person, Kind: EventEnterHouse, Detail: h.Address}
	h.Diary.Append(evt)
	person.Diary.Append(evt)
}

// Remove detaches person from the House in both directions and logs a
// leave-house event on both diaries. A no-op if person is not an occupant.
func (h *House) Remove(person *Person) {
	idx := -1
	for i, p := range h.Occupants {
		if p == person {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	h.Occupants = append(h.Occupants[:idx], h.Occupants[idx+1:]...)
	if person.House == h {
		person.House = nil
	}
	year := 0
	if h.Community != nil && h.Community.World != nil {
		year = h.Community.World.Year
	}
	evt := Event{Year: year, House: h, Person: person, Kind: EventLeaveHouse, Detail: h.Address}
	h.Diary.Append(evt)
	person.Diary.Append(evt)
}

// ChangeOwner moves one ownership share from "from" to "to". Returns
// ErrNoShareHeld if "from" holds no share.
func (h *House) ChangeOwner(from, to *Person) error {
	if h.Shares[from] <= 0 {
		return fmt.Errorf("%w: %s", ErrNoShareHeld, from.Name)
	}
	h.Shares[from]--
	if h.Shares[from] == 0 {
		delete(h.Shares, from)
	}
	h.Shares[to]++
	year := 0
	if h.Community != nil && h.Community.World != nil {
		year = h.Community.World.Year
	}
	h.Diary.Append(Event{Year: year, House: h, Person: to, Kind: EventChangeOwner})
	return nil
}

// TransferAllShares moves every share "from" holds in h to "to" in a single
// step, leaving "from" with no remaining ownership. Used by inheritance
// distribution, which transfers a deceased owner's full stake to their heir
// rather than one share at a time.
func (h *House) TransferAllShares(from, to *Person) {
	n := h.Shares[from]
	if n <= 0 {
		return
	}
	delete(h.Shares, from)
	if h.Shares == nil {
		h.Shares = make(map[*Person]int)
	}
	h.Shares[to] += n
	year := 0
	if h.Community != nil && h.Community.World != nil {
		year = h.Community.World.Year
	}
	h.Diary.Append(Event{Year: year, House: h, Person: to, Kind: EventChangeOwner})
}

// AddShare increments person's ownership share count by n.
func (h *House) AddShare(person *Person, n int) {
	if h.Shares == nil {
		h.Shares = make(map[*Person]int)
	}
	h.Shares[person] += n
}

// RemoveShare deletes person's ownership entirely, leaving the house
// unowned by them.
func (h *House) RemoveShare(person *Person) {
	delete(h.Shares, person)
}

// Owners returns the Persons holding a positive share, in no particular
// order.
func (h *House) Owners() []*Person {
	owners := make([]*Person, 0, len(h.Shares))
	for p := range h.Shares {
		owners = append(owners, p)
	}
	return owners
}

// ShareEntry pairs an owner with their share count.
type ShareEntry struct {
	Person *Person
	Shares int
}

// SharesList returns owner/share pairs, in no particular order.
func (h *House) SharesList() []ShareEntry {
	entries := make([]ShareEntry, 0, len(h.Shares))
	for p, n := range h.Shares {
		entries = append(entries, ShareEntry{Person: p, Shares: n})
	}
	return entries
}

// MoveOccupants relocates every person in people from their current house
// (if any) to h, appending move events. Used by locality rules and
// mobility "who leaves" resolution, which must move a whole household
// together rather than person by person.
func (h *House) MoveOccupants(people []*Person) {
	year := 0
	if h.Community != nil && h.Community.World != nil {
		year = h.Community.World.Year
	}
	for _, p := range people {
		prior := ""
		if p.House != nil {
			prior = p.House.Address
			p.House.Remove(p)
		}
		h.Add(p)
		p.Diary.Append(Event{Year: year, House: h, Person: p, Kind: EventMove, Detail: prior})
	}
}
