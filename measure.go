package justify

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Mode selects how character positions and line widths are counted.
type Mode int

const (
	// Runes counts every Unicode code point as one unit of width 1.
	// This is the default.
	Runes Mode = iota
	// Graphemes counts every grapheme cluster as one unit of width 1, so
	// user-perceived characters such as flag or family emoji are never
	// broken apart by a mid-word split.
	Graphemes
	// Cells counts grapheme clusters at their monospace display width:
	// East Asian wide characters occupy two columns, combining marks none.
	Cells
)

// unit is an atomic piece of text the splitter never breaks apart. start and
// end are byte offsets into the paragraph being split, so chunks can be cut
// out of the original string without copying.
type unit struct {
	start, end int
	width      int
	space      bool
}

// units decomposes a cleaned paragraph into atomic units for the configured
// measure.
func (j *Justifier) units(s string) []unit {
	switch j.measure {
	case Graphemes, Cells:
		return graphemeUnits(s, j.measure == Cells)
	default:
		return runeUnits(s)
	}
}

func runeUnits(s string) []unit {
	us := make([]unit, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		us = append(us, unit{start: i, end: i + size, width: 1, space: r == ' '})
		i += size
	}
	return us
}

func graphemeUnits(s string, cells bool) []unit {
	us := make([]unit, 0, utf8.RuneCountInString(s))
	offset := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := 1
		if cells {
			w = runewidth.StringWidth(cluster)
		}
		us = append(us, unit{start: offset, end: offset + len(cluster), width: w, space: cluster == " "})
		offset += len(cluster)
	}
	return us
}

func totalWidth(units []unit) int {
	total := 0
	for _, u := range units {
		total += u.width
	}
	return total
}

// Width reports how long s measures under the justifier's measure mode, the
// same counting Format applies to its lines.
func (j *Justifier) Width(s string) int {
	if j.measure == Runes {
		return utf8.RuneCountInString(s)
	}
	return totalWidth(j.units(s))
}
