package rules

import (
	"fmt"

	"github.com/talgya/households/internal/agetable"
	"github.com/talgya/households/internal/household"
	"github.com/talgya/households/internal/identity"
)

// MaternalDeath decides whether giving birth kills the mother.
type MaternalDeath func(mother *household.Person) bool

// Infanticide decides whether the newborn is killed immediately.
type Infanticide func(mother, child *household.Person) bool

// BirthRule implements household.BirthRule.
type BirthRule struct {
	MarriedTable   *agetable.AgeTable
	UnmarriedTable *agetable.AgeTable
	FemaleSexRatio float64
	MaternalDeath  MaternalDeath
	Infanticide    Infanticide

	maleNamePool   []string
	femaleNamePool []string
	nameCounter    int
}

// NewBirthRule validates its arguments. Per the construction-error
// taxonomy, female_sex_ratio must lie in [0,1] and both tables' male rates
// must be zero, since male pregnancy has no meaning in this model. The male
// rates are probed at ages 0, 10, 20, 40 and 60 only: a non-zero male rate
// in an age bracket that contains none of those ages is not rejected.
// maleNamePool/femaleNamePool supply display names for newborns of each
// sex; either may be nil, in which case a placeholder name is generated.
func NewBirthRule(married, unmarried *agetable.AgeTable, femaleSexRatio float64, maternalDeath MaternalDeath, infanticide Infanticide, maleNamePool, femaleNamePool []string) (*BirthRule, error) {
	if married == nil || unmarried == nil {
		return nil, ErrMissingComponent
	}
	if femaleSexRatio < 0 || femaleSexRatio > 1 {
		return nil, fmt.Errorf("rules: female_sex_ratio %v outside [0,1]", femaleSexRatio)
	}
	for _, age := range []int{0, 10, 20, 40, 60} {
		for _, table := range []*agetable.AgeTable{married, unmarried} {
			if rate, err := table.Rate(identity.Male, age); err == nil && rate != 0 {
				return nil, fmt.Errorf("rules: male fertility rate must be zero, got %v at age %d", rate, age)
			}
		}
	}
	if maternalDeath == nil {
		maternalDeath = func(*household.Person) bool { return false }
	}
	if infanticide == nil {
		infanticide = func(*household.Person, *household.Person) bool { return false }
	}
	return &BirthRule{
		MarriedTable:   married,
		UnmarriedTable: unmarried,
		FemaleSexRatio: femaleSexRatio,
		MaternalDeath:  maternalDeath,
		Infanticide:    infanticide,
		maleNamePool:   maleNamePool,
		femaleNamePool: femaleNamePool,
	}, nil
}

// Apply runs the birth pipeline for p.
func (r *BirthRule) Apply(p *household.Person) (bool, error) {
	if p.Sex != identity.Female {
		return false, nil
	}
	table := r.UnmarriedTable
	if p.MarriageStatus == identity.Married && p.Spouse.IsAlive() {
		table = r.MarriedTable
	}
	rate, err := table.Rate(p.Sex, p.Age)
	if err != nil {
		return false, nil
	}
	world := p.Community.World
	if !world.RNG.Bool(rate) {
		return false, nil
	}

	childSex := identity.Male
	if world.RNG.Bool(r.FemaleSexRatio) {
		childSex = identity.Female
	}
	child := household.NewPerson(r.nextName(childSex), childSex, 0, world.Year, p.Rules())
	child.Parents = []*household.Person{p}
	if p.Spouse.IsAlive() {
		child.Parents = append(child.Parents, p.Spouse)
		p.Spouse.Children = append(p.Spouse.Children, child)
	}
	p.Children = append(p.Children, child)
	p.Community.AddPerson(child)
	if p.House != nil {
		p.House.Add(child)
	}
	p.Diary.Append(household.Event{Year: world.Year, House: p.House, Person: p, Kind: household.EventBirth, Detail: child.Name})

	if r.MaternalDeath(p) {
		_ = p.Kill()
	}
	if r.Infanticide(p, child) {
		_ = child.Kill()
	}
	return true, nil
}

func (r *BirthRule) nextName(sex identity.Sex) string {
	pool := r.maleNamePool
	if sex == identity.Female {
		pool = r.femaleNamePool
	}
	r.nameCounter++
	if len(pool) == 0 {
		return fmt.Sprintf("Child-%d", r.nameCounter)
	}
	return pool[r.nameCounter%len(pool)]
}
