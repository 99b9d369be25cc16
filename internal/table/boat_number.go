package table

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/regatta/internal/models"
)

// BoatNumberField is the column key that switches sorting to the boat
// number comparator.
const BoatNumberField = models.KeyBoatNumber

// unknownPrefixRank is shared by every prefix outside prefixRanks, so two
// unknown prefixes only differ by order and sequence.
const unknownPrefixRank = 999

var prefixRanks = map[string]int{
	models.EventMen:          1,
	models.EventSeniorMixed:  2,
	models.EventVeteranMixed: 3,
}

// BoatNumber is a parsed "PREFIX.ORDER.SEQ" identifier such as "SM.2.3".
type BoatNumber struct {
	Prefix string
	Order  int
	Seq    int
}

// ParseBoatNumber never fails: malformed input yields the zero BoatNumber.
func ParseBoatNumber(s string) BoatNumber {
	bn, err := parseBoatNumberStrict(s)
	if err != nil {
		return BoatNumber{}
	}
	return bn
}

// ValidateBoatNumber reports whether s is well formed. Used on input
// paths (the registration form) where the error is worth showing.
func ValidateBoatNumber(s string) error {
	_, err := parseBoatNumberStrict(s)
	return err
}

func parseBoatNumberStrict(s string) (BoatNumber, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return BoatNumber{}, fmt.Errorf("%w: %q must have 3 dot-separated parts", models.ErrInvalidBoatNumber, s)
	}
	order, err := strconv.Atoi(parts[1])
	if err != nil {
		return BoatNumber{}, fmt.Errorf("%w: %q has a non-numeric order", models.ErrInvalidBoatNumber, s)
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return BoatNumber{}, fmt.Errorf("%w: %q has a non-numeric sequence", models.ErrInvalidBoatNumber, s)
	}
	return BoatNumber{Prefix: parts[0], Order: order, Seq: seq}, nil
}

// Rank is the position of the prefix in race order.
func (b BoatNumber) Rank() int {
	if rank, ok := prefixRanks[b.Prefix]; ok {
		return rank
	}
	return unknownPrefixRank
}

// String formats the boat number back to its wire form.
func (b BoatNumber) String() string {
	return fmt.Sprintf("%s.%d.%d", b.Prefix, b.Order, b.Seq)
}

// CompareBoatNumbers orders by prefix rank, then order, then sequence.
func CompareBoatNumbers(a, b string, dir Direction) int {
	x, y := ParseBoatNumber(a), ParseBoatNumber(b)

	c := cmp.Compare(x.Rank(), y.Rank())
	if c == 0 {
		c = cmp.Compare(x.Order, y.Order)
	}
	if c == 0 {
		c = cmp.Compare(x.Seq, y.Seq)
	}
	return applyDirection(c, dir)
}

// compareBoatCells adapts CompareBoatNumbers to row cells. Null is the
// greatest value, as in CompareValues; other non-string cells parse as
// malformed.
func compareBoatCells(a, b models.Value, dir Direction) int {
	if a.IsNull() || b.IsNull() {
		return CompareValues(a, b, dir)
	}
	return CompareBoatNumbers(a.Str(), b.Str(), dir)
}
