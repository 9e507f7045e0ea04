package justify

import "strings"

// splitChunks breaks a cleaned paragraph into line-sized chunks. Every chunk
// measures at most width, except forced word breaks, whose marker may push a
// chunk one marker past it.
func (j *Justifier) splitChunks(text string, units []unit, width, maxSpace int) []string {
	// Prefix sums make every width-of-range query during the scan O(1).
	pre := make([]int, len(units)+1)
	for i, u := range units {
		pre[i+1] = pre[i] + u.width
	}

	// breakWord splits mid-word: the longest prefix measuring at most
	// width-1, followed by the word-break marker. It always consumes at
	// least one unit so the caller advances even at width 1 or when a
	// single unit is wider than the whole line. The marker signals a
	// continuation, so a break that exhausts the text carries none.
	breakWord := func(lo int) (string, int) {
		hi := lo + 1
		for hi < len(units) && pre[hi+1]-pre[lo] <= width-1 {
			hi++
		}
		chunk := cut(text, units, lo, hi)
		if hi < len(units) {
			chunk += j.wordBreak
		}
		return chunk, hi
	}

	var chunks []string
	for lo := 0; lo < len(units); {
		// Everything left fits on one line; it becomes the final chunk.
		if pre[len(units)]-pre[lo] <= width {
			chunks = append(chunks, cut(text, units, lo, len(units)))
			break
		}

		// Rightmost space whose preceding text still fits the width.
		p := -1
		for i := lo; i < len(units) && pre[i]-pre[lo] <= width; i++ {
			if units[i].space {
				p = i
			}
		}

		if p < 0 {
			chunk, next := breakWord(lo)
			chunks = append(chunks, chunk)
			lo = next
			continue
		}

		a, b := trimRange(units, lo, p)
		gaps := 0
		for i := a; i < b; i++ {
			if units[i].space {
				gaps++
			}
		}

		// Smallest maximum gap the candidate would need once stretched to
		// the full width. A single word has no gaps to stretch, so the
		// whole shortfall would land in the trailing margin.
		gap := width - (pre[p] - pre[lo])
		if gaps > 0 {
			need := gaps + width - (pre[b] - pre[a])
			gap = (need + gaps - 1) / gaps
		}

		// Breaking here would stretch the line too thin; force a mid-word
		// break instead, ignoring the space.
		if maxSpace > 0 && gap > maxSpace {
			chunk, next := breakWord(lo)
			chunks = append(chunks, chunk)
			lo = next
			continue
		}

		chunks = append(chunks, cut(text, units, a, b))
		lo = p + 1
		for lo < len(units) && units[lo].space {
			lo++
		}
	}
	return chunks
}

// justifyChunk stretches the gaps of a chunk until it measures exactly
// width. Extra spaces are distributed left to right, so when they do not
// divide evenly the leftmost gaps end up one space wider. Chunks without
// gaps, or already at the width, come back unchanged.
func (j *Justifier) justifyChunk(chunk string, width int) string {
	units := j.units(chunk)
	length := 0
	gaps := 0
	for _, u := range units {
		length += u.width
		if u.space {
			gaps++
		}
	}
	if length >= width || gaps < 1 {
		return chunk
	}

	needed := width - (length - gaps)
	base := needed / gaps
	extra := needed % gaps

	var b strings.Builder
	b.Grow(len(chunk) + needed)
	// Word boundaries are space units, so a space that clustered with a
	// combining mark stays inside its word.
	seg := 0
	start := 0
	for i := 0; i <= len(units); i++ {
		if i < len(units) && !units[i].space {
			continue
		}
		if seg > 0 {
			n := base
			if seg <= extra {
				n++
			}
			for ; n > 0; n-- {
				b.WriteByte(' ')
			}
		}
		b.WriteString(cut(chunk, units, start, i))
		seg++
		start = i + 1
	}
	return b.String()
}

// padChunk right-pads the final chunk of a paragraph with plain spaces so it
// reaches the full width.
func (j *Justifier) padChunk(chunk string, width int) string {
	length := j.Width(chunk)
	if length >= width {
		return chunk
	}
	var b strings.Builder
	b.Grow(len(chunk) + width - length)
	b.WriteString(chunk)
	for i := length; i < width; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}

// cut slices the text covered by units[a:b] out of the original string.
func cut(text string, units []unit, a, b int) string {
	if a >= b {
		return ""
	}
	return text[units[a].start:units[b-1].end]
}

// trimRange shrinks a unit range until neither end is a space.
func trimRange(units []unit, a, b int) (int, int) {
	for a < b && units[a].space {
		a++
	}
	for b > a && units[b-1].space {
		b--
	}
	return a, b
}
