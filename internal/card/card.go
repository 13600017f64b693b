package card

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownCard is returned when a card reference cannot be resolved.
var ErrUnknownCard = errors.New("unknown card")

// Sheet positions of the two card backs.
const (
	AlternateBackIndex = 55
	FeatherBackIndex   = 56
)

// FaceCount is the number of card faces on a sheet.
const FaceCount = 52

// Nudge is a per-suit correction, in unscaled pixels, applied to the corner
// symbol. Right moves the symbol left, away from the card's right edge.
type Nudge struct {
	Right int
	Top   int
}

// Suit is one of the four fixed suits.
type Suit struct {
	Letter          string
	Name            string
	Symbol          string
	Colour          color.RGBA
	Art             string // bird illustration file name
	SymbolSizeDelta int    // unscaled points added to the symbol font size
	Nudge           Nudge
}

// Suits holds the suit table in sheet order. Clubs and hearts glyphs render
// heavier than spades and diamonds at the same size, hence the nudges.
var Suits = [4]Suit{
	{
		Letter: "c", Name: "clubs", Symbol: "♣",
		Colour: color.RGBA{90, 90, 90, 255}, Art: "crow.png",
		SymbolSizeDelta: -2, Nudge: Nudge{Right: 3, Top: 1},
	},
	{
		Letter: "d", Name: "diamonds", Symbol: "♦",
		Colour: color.RGBA{237, 74, 123, 255}, Art: "red-kite-3.png",
	},
	{
		Letter: "h", Name: "hearts", Symbol: "♥",
		Colour: color.RGBA{255, 15, 15, 255}, Art: "eagle.png",
		SymbolSizeDelta: -2, Nudge: Nudge{Right: 2, Top: 1},
	},
	{
		Letter: "s", Name: "spades", Symbol: "♠",
		Colour: color.RGBA{20, 20, 20, 255}, Art: "owl_1a.png",
		Nudge: Nudge{Top: -1},
	},
}

// Ranks lists the rank labels in sheet order.
var Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var rankNames = map[string]string{
	"A": "ace", "2": "two", "3": "three", "4": "four", "5": "five",
	"6": "six", "7": "seven", "8": "eight", "9": "nine", "10": "ten",
	"J": "jack", "Q": "queen", "K": "king",
}

var backNames = map[string]int{
	"alternate": AlternateBackIndex,
	"feather":   FeatherBackIndex,
}

// Card is a face on the sheet.
type Card struct {
	Index int
	Suit  Suit
	Rank  string
}

// Code returns the short form of the card, e.g. "Ac" or "10h".
func (c Card) Code() string {
	return c.Rank + c.Suit.Letter
}

// Name returns the display name, e.g. "Queen of Hearts".
func (c Card) Name() string {
	title := cases.Title(language.English)
	return title.String(rankNames[c.Rank]) + " of " + title.String(c.Suit.Name)
}

// Faces returns the 52 faces in sheet order using the given suit table.
func Faces(suits [4]Suit) []Card {
	cards := make([]Card, 0, FaceCount)
	for _, s := range suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Index: len(cards), Suit: s, Rank: r})
		}
	}
	return cards
}

// WithColours returns a copy of the suit table with colours replaced for the
// suits named in overrides. Keys are suit names ("clubs") or letters ("c").
func WithColours(overrides map[string]color.RGBA) [4]Suit {
	suits := Suits
	for i := range suits {
		if c, ok := overrides[suits[i].Name]; ok {
			suits[i].Colour = c
		} else if c, ok := overrides[suits[i].Letter]; ok {
			suits[i].Colour = c
		}
	}
	return suits
}

// Label describes what occupies a sheet index.
func Label(index int) string {
	switch {
	case index >= 0 && index < FaceCount:
		return Faces(Suits)[index].Name()
	case index == AlternateBackIndex:
		return "Alternate Back"
	case index == FeatherBackIndex:
		return "Feather Back"
	default:
		return fmt.Sprintf("Slot %d", index)
	}
}

// Parse resolves a card reference to a sheet index. It accepts a decimal
// index, a card code ("Qh", "10s", with "T" as an alias for ten) or the name
// of a back ("feather", "alternate").
func Parse(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative index %d", ErrUnknownCard, n)
		}
		return n, nil
	}

	key := strings.ToLower(ref)
	if idx, ok := backNames[key]; ok {
		return idx, nil
	}
	if strings.HasPrefix(key, "t") && len(key) == 2 {
		key = "10" + key[1:]
	}
	for _, c := range Faces(Suits) {
		if strings.ToLower(c.Code()) == key {
			return c.Index, nil
		}
	}

	if s := suggest(key); s != "" {
		return 0, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownCard, ref, s)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCard, ref)
}

// suggest returns the closest known reference, or "" when nothing is close.
func suggest(key string) string {
	candidates := make([]string, 0, FaceCount+len(backNames))
	for _, c := range Faces(Suits) {
		candidates = append(candidates, c.Code())
	}
	candidates = append(candidates, "alternate", "feather")

	best, bestDist := "", len(key)/2+2
	for _, cand := range candidates {
		d := levenshtein.ComputeDistance(key, strings.ToLower(cand))
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}
