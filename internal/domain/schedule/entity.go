package schedule

import "time"

type PairType string

const (
	PairTypeRegular PairType = "regular"
	PairTypeOther   PairType = "other"
)

var PairTypeValues = []string{string(PairTypeRegular), string(PairTypeOther)}

const (
	MinPairNumber   = 1
	MaxPairNumber   = 5
	MaxPairsPerDate = 4
)

// Hours is the absence weight of one pair of this type.
func (t PairType) Hours() int {
	if t == PairTypeRegular {
		return 2
	}
	return 1
}

func (t PairType) Valid() bool {
	return t == PairTypeRegular || t == PairTypeOther
}

type Pair struct {
	Number int
	Type   PairType
}

// Schedule is the ordered set of pairs for one date.
type Schedule struct {
	Date  time.Time
	Pairs []Pair
}

// Pair returns the pair with the given number.
func (s Schedule) Pair(number int) (Pair, bool) {
	for _, p := range s.Pairs {
		if p.Number == number {
			return p, true
		}
	}
	return Pair{}, false
}
