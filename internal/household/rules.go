package household

// The four behavior-rule families are declared here as interfaces rather
// than concrete types so that Person and Community can hold them as plain
// fields without creating an import cycle with the rules package, which
// implements these interfaces and needs access to Person/House/Community
// internals to do so. This follows the "accept interfaces, return structs"
// idiom: household defines the contract, rules provides the composable
// building blocks described in the behavior-rules design.
//
// Each rule's Apply method returns (bool, error): the bool is the
// "did it happen" signal from the error taxonomy's category 4 (expected
// nothing-happened outcomes are not errors); the error is reserved for
// invariant violations the rule detects in its own inputs.

// MarriageRule decides, for a single unmarried/widowed/ineligible Person,
// whether they become eligible, remarry, or marry this year.
type MarriageRule interface {
	Apply(p *Person) (bool, error)
}

// InheritanceRule runs when a property-holding Person dies, choosing an
// heir (or running a fallback) for every House they own a share of.
type InheritanceRule interface {
	Apply(p *Person) (bool, error)
}

// MobilityRule decides whether a Person (and possibly their household)
// relocates this year for reasons other than marriage or inheritance.
type MobilityRule interface {
	Apply(p *Person) (bool, error)
}

// BirthRule decides whether a female Person gives birth this year.
type BirthRule interface {
	Apply(p *Person) (bool, error)
}
