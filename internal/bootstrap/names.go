package bootstrap

// Name and address pools are static string lists consumed at bootstrap.
// They affect only display, never behavior, per the narrative surface
// contract.
var maleNames = []string{
	"Aldric", "Bram", "Cedric", "Doran", "Erik", "Finn", "Gareth",
	"Halvard", "Ivan", "Jasper", "Kael", "Leif", "Magnus", "Nils",
	"Oswin", "Per", "Quinn", "Rowan", "Stellan", "Theron", "Ulric",
}

var femaleNames = []string{
	"Astrid", "Brenna", "Calla", "Daria", "Elara", "Freya", "Greta",
	"Helene", "Iris", "Juno", "Kira", "Lena", "Mira", "Nessa",
	"Olwen", "Petra", "Runa", "Senna", "Thea", "Una", "Vera",
}

var lastNames = []string{
	"Voss", "Thornwood", "Blackwood", "Ashford", "Ironhand", "Dunmore",
	"Greenvale", "Stormcrow", "Frostborn", "Hearthstone", "Millward",
	"Copperfield", "Ravenmoor", "Silverdale", "Wolfsbane", "Stoneheart",
}

var addressPool = []string{
	"1 Mill Lane", "2 Mill Lane", "3 Mill Lane", "1 Church Row", "2 Church Row",
	"1 High Street", "2 High Street", "3 High Street", "4 High Street",
	"1 Back Lane", "2 Back Lane", "1 Orchard Close", "2 Orchard Close",
	"1 Riverside", "2 Riverside", "3 Riverside", "1 Forge Yard", "2 Forge Yard",
}

// MaleNames, FemaleNames, and LastNames expose the bootstrap name pools so
// callers assembling a BirthRule can hand newborns the same pools the
// initial population draws from.
func MaleNames() []string   { return maleNames }
func FemaleNames() []string { return femaleNames }
func LastNames() []string   { return lastNames }
