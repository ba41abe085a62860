package catalog

import "strings"

// BeerStyle enumerates the recognized beer styles
type BeerStyle string

const (
	StyleLager   BeerStyle = "LAGER"
	StylePilsner BeerStyle = "PILSNER"
	StyleStout   BeerStyle = "STOUT"
	StyleGose    BeerStyle = "GOSE"
	StylePorter  BeerStyle = "PORTER"
	StyleAle     BeerStyle = "ALE"
	StyleWheat   BeerStyle = "WHEAT"
	StyleIPA     BeerStyle = "IPA"
	StylePaleAle BeerStyle = "PALE_ALE"
	StyleSaison  BeerStyle = "SAISON"
)

var beerStyles = map[BeerStyle]struct{}{
	StyleLager:   {},
	StylePilsner: {},
	StyleStout:   {},
	StyleGose:    {},
	StylePorter:  {},
	StyleAle:     {},
	StyleWheat:   {},
	StyleIPA:     {},
	StylePaleAle: {},
	StyleSaison:  {},
}

// IsValid reports whether the style is one of the recognized values
func (s BeerStyle) IsValid() bool {
	_, ok := beerStyles[s]
	return ok
}

// String returns the wire representation of the style
func (s BeerStyle) String() string {
	return string(s)
}

// ParseBeerStyle maps a raw string onto a BeerStyle, case-insensitively
func ParseBeerStyle(raw string) (BeerStyle, bool) {
	s := BeerStyle(strings.ToUpper(strings.TrimSpace(raw)))
	if s.IsValid() {
		return s, true
	}
	return "", false
}
