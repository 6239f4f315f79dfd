// Package identity defines the small categorical types Persons are
// identified and discriminated by: sex, life status, and marriage status.
// Each carries the display attributes (adjective, noun, possessive) the
// narrative layer needs, so identity is a prerequisite for almost every
// other package.
package identity

// Sex distinguishes male and female Persons. It is immutable once a Person
// is created.
type Sex struct {
	Adjective  string
	Noun       string
	Possessive string
}

var (
	Male   = Sex{Adjective: "male", Noun: "man", Possessive: "his"}
	Female = Sex{Adjective: "female", Noun: "woman", Possessive: "her"}
)

// Opposite returns the other sex. Used by eligibility filters.
func (s Sex) Opposite() Sex {
	if s == Male {
		return Female
	}
	return Male
}

// LifeStatus distinguishes living from dead Persons.
type LifeStatus struct {
	Adjective string
}

var (
	Alive = LifeStatus{Adjective: "living"}
	Dead  = LifeStatus{Adjective: "dead"}
)

// MarriageStatus distinguishes the four marriage states a Person can be in.
type MarriageStatus struct {
	Adjective string
}

var (
	Ineligible = MarriageStatus{Adjective: "ineligible"}
	Unmarried  = MarriageStatus{Adjective: "unmarried"}
	Married    = MarriageStatus{Adjective: "married"}
	Widowed    = MarriageStatus{Adjective: "widowed"}
)
