package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/households/internal/household"
	"github.com/talgya/households/internal/identity"
	"github.com/talgya/households/internal/rules"
)

func TestHasAnyPropertyReflectsShares(t *testing.T) {
	_, c := newTestWorld(t)
	house := household.NewHouse("1 St", 4, 2, c)
	c.AddHouse(house)
	owner := household.NewPerson("Owner", identity.Male, 40, 0, household.RuleSet{})
	c.AddPerson(owner)

	assert.False(t, rules.HasAnyProperty(owner))
	house.AddShare(owner, 1)
	assert.True(t, rules.HasAnyProperty(owner))
}

func TestFindSonsOrdersAgeDescending(t *testing.T) {
	_, c := newTestWorld(t)
	father := household.NewPerson("F", identity.Male, 50, 0, household.RuleSet{})
	c.AddPerson(father)
	younger := household.NewPerson("Younger", identity.Male, 15, 0, household.RuleSet{})
	older := household.NewPerson("Older", identity.Male, 25, 0, household.RuleSet{})
	daughter := household.NewPerson("Daughter", identity.Female, 20, 0, household.RuleSet{})
	for _, child := range []*household.Person{younger, older, daughter} {
		c.AddPerson(child)
		child.Parents = []*household.Person{father}
		father.Children = append(father.Children, child)
	}

	heirs := rules.FindSons(father)
	require.Len(t, heirs, 1)
	assert.Equal(t, []*household.Person{older, younger}, heirs[0])
}

func TestFindBrothersSecondSonsSkipsBrothersWithFewerThanTwoSons(t *testing.T) {
	_, c := newTestWorld(t)
	grandfather := household.NewPerson("GF", identity.Male, 70, 0, household.RuleSet{})
	c.AddPerson(grandfather)

	brotherA := household.NewPerson("BrotherA", identity.Male, 50, 0, household.RuleSet{})
	brotherB := household.NewPerson("BrotherB", identity.Male, 48, 0, household.RuleSet{})
	focal := household.NewPerson("Focal", identity.Male, 45, 0, household.RuleSet{})
	for _, sib := range []*household.Person{brotherA, brotherB, focal} {
		c.AddPerson(sib)
		sib.Parents = []*household.Person{grandfather}
		grandfather.Children = append(grandfather.Children, sib)
	}

	aSon1 := household.NewPerson("A1", identity.Male, 25, 0, household.RuleSet{})
	aSon2 := household.NewPerson("A2", identity.Male, 22, 0, household.RuleSet{})
	for _, s := range []*household.Person{aSon1, aSon2} {
		c.AddPerson(s)
		s.Parents = []*household.Person{brotherA}
		brotherA.Children = append(brotherA.Children, s)
	}
	bSonOnly := household.NewPerson("B1", identity.Male, 20, 0, household.RuleSet{})
	c.AddPerson(bSonOnly)
	bSonOnly.Parents = []*household.Person{brotherB}
	brotherB.Children = append(brotherB.Children, bSonOnly)

	heirs := rules.FindBrothersSecondSons(focal)
	require.Len(t, heirs, 1)
	assert.Equal(t, []*household.Person{aSon2}, heirs[0])
}

func TestExcludeCurrentOwnersFiltersOwners(t *testing.T) {
	_, c := newTestWorld(t)
	house := household.NewHouse("1 St", 4, 2, c)
	c.AddHouse(house)
	owner := household.NewPerson("Owner", identity.Male, 30, 0, household.RuleSet{})
	nonOwner := household.NewPerson("NonOwner", identity.Male, 28, 0, household.RuleSet{})
	c.AddPerson(owner)
	c.AddPerson(nonOwner)
	house.AddShare(owner, 1)

	heirs := rules.ExcludeCurrentOwners(rules.HeirsNested{{owner, nonOwner}})
	require.Len(t, heirs, 1)
	assert.Equal(t, []*household.Person{nonOwner}, heirs[0])
}

func TestFirstHeirAndMoveHouseholdTransfersAllShares(t *testing.T) {
	_, c := newTestWorld(t)
	house := household.NewHouse("1 St", 4, 2, c)
	c.AddHouse(house)
	owner := household.NewPerson("Owner", identity.Male, 60, 0, household.RuleSet{})
	heir := household.NewPerson("Heir", identity.Male, 30, 0, household.RuleSet{})
	c.AddPerson(owner)
	c.AddPerson(heir)
	house.AddShare(owner, 3)
	house.Add(owner)

	ok := rules.FirstHeirAndMoveHousehold(owner, rules.HeirsNested{{heir}})
	require.True(t, ok)
	assert.Equal(t, 0, house.Shares[owner])
	assert.Equal(t, 3, house.Shares[heir])
	assert.Contains(t, house.Occupants, heir)
}

func TestNoOwnerRemovesAllShares(t *testing.T) {
	_, c := newTestWorld(t)
	house := household.NewHouse("1 St", 4, 2, c)
	c.AddHouse(house)
	owner := household.NewPerson("Owner", identity.Male, 60, 0, household.RuleSet{})
	c.AddPerson(owner)
	house.AddShare(owner, 1)

	ok := rules.NoOwner(owner)
	assert.True(t, ok)
	assert.Equal(t, 0, house.Shares[owner])
}
