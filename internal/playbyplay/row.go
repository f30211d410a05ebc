package playbyplay

import (
	"strings"
)

// RowKind tags a play-by-play table row
type RowKind int

const (
	Normal RowKind = iota
	Header
	Quarter1
	Quarter2
	Quarter3
	Quarter4
	Overtime
	EndOfPeriod
)

// rowMarkers are checked in order; the first substring found decides the kind.
// "End" precedes "Overtime" so that an end-of-overtime row is an EndOfPeriod.
var rowMarkers = []struct {
	marker string
	kind   RowKind
}{
	{"Quarter Time Down", Header},
	{"1st Quarter", Quarter1},
	{"2nd Quarter", Quarter2},
	{"3rd Quarter", Quarter3},
	{"4th Quarter", Quarter4},
	{"End", EndOfPeriod},
	{"Overtime", Overtime},
}

// Classify returns the kind of a whitespace-normalized row. Any row without a
// marker is Normal.
func Classify(row string) RowKind {
	for _, m := range rowMarkers {
		if strings.Contains(row, m.marker) {
			return m.kind
		}
	}
	return Normal
}

// Code returns the legacy integer code: -1 header, 0 normal, 1-4 quarters,
// 5 new overtime, 6 end of game or overtime
func (k RowKind) Code() int {
	switch k {
	case Header:
		return -1
	case Quarter1:
		return 1
	case Quarter2:
		return 2
	case Quarter3:
		return 3
	case Quarter4:
		return 4
	case Overtime:
		return 5
	case EndOfPeriod:
		return 6
	default:
		return 0
	}
}

// Quarter returns the quarter number for Quarter1-4, else 0
func (k RowKind) Quarter() int {
	if k >= Quarter1 && k <= Quarter4 {
		return int(k-Quarter1) + 1
	}
	return 0
}

func (k RowKind) String() string {
	switch k {
	case Header:
		return "header"
	case Quarter1:
		return "quarter_1"
	case Quarter2:
		return "quarter_2"
	case Quarter3:
		return "quarter_3"
	case Quarter4:
		return "quarter_4"
	case Overtime:
		return "overtime"
	case EndOfPeriod:
		return "end_of_period"
	default:
		return "normal"
	}
}

// MarshalText encodes the kind by name
func (k RowKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
