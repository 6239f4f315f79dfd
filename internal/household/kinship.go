package household

// Kinship queries are pure functions over the entity graph: none of them
// mutate state, and all return defensive copies so callers may reorder or
// filter the result without side effects on the underlying Person.

// Spouse returns p's spouse, or nil if unmarried/widowed/ineligible.
func Spouse(p *Person) *Person {
	return p.Spouse
}

// Parents returns a copy of p's parents (0-2 elements).
func Parents(p *Person) []*Person {
	out := make([]*Person, len(p.Parents))
	copy(out, p.Parents)
	return out
}

// Children returns a copy of p's children, oldest first.
func Children(p *Person) []*Person {
	out := make([]*Person, len(p.Children))
	copy(out, p.Children)
	return out
}

// Siblings returns the children of either parent, excluding p itself,
// preserving birth order and de-duplicated (a full sibling sharing both
// parents is listed once).
func Siblings(p *Person) []*Person {
	parents := Parents(p)
	if len(parents) == 0 {
		return nil
	}
	seen := make(map[*Person]bool)
	var out []*Person
	for _, parent := range parents {
		for _, child := range parent.Children {
			if child == p || seen[child] {
				continue
			}
			seen[child] = true
			out = append(out, child)
		}
	}
	return out
}

// Family returns p's nuclear family: p, their spouse (if any), and their
// children. If p has no spouse, only p is returned — per the original
// definition, childless-of-spouse is a contradiction the source never
// allows (children require a birth, which requires marriage's consequence),
// so absence of a spouse short-circuits to just the focal Person.
func Family(p *Person) []*Person {
	spouse := Spouse(p)
	if spouse == nil {
		return []*Person{p}
	}
	family := []*Person{p, spouse}
	family = append(family, Children(p)...)
	return family
}
