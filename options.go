package justify

// Option configures a Justifier. Options carrying an out-of-range value are
// silently ignored, leaving the default in place.
type Option func(*Justifier)

// WithLineSeparator sets the string joining the lines of a justified
// paragraph. The default is the platform line break.
func WithLineSeparator(s string) Option {
	return func(j *Justifier) {
		j.lineSep = s
	}
}

// WithWordBreak sets the marker appended to a line when a word is split
// mid-word. It may be empty to break words silently. The default is
// DefaultWordBreak.
func WithWordBreak(s string) Option {
	return func(j *Justifier) {
		j.wordBreak = s
	}
}

// WithParagraphSeparator sets the string that delimits paragraphs, which are
// justified independently. Setting it to the empty string disables paragraph
// splitting, so the whole input is treated as a single paragraph and any
// line breaks inside it count as ordinary characters. The default is the
// platform line break doubled.
func WithParagraphSeparator(s string) Option {
	return func(j *Justifier) {
		j.paraSep = s
	}
}

// WithWidth sets the line width used when Format is called with a width
// below 1. Values below 1 are ignored. The default is DefaultWidth.
func WithWidth(n int) Option {
	return func(j *Justifier) {
		if n > 0 {
			j.width = n
		}
	}
}

// WithMaxSpace sets the gap cap used when Format is called with a maxSpace
// below 0. 0 disables the cap; negative values are ignored. The default is
// DefaultMaxSpace.
func WithMaxSpace(n int) Option {
	return func(j *Justifier) {
		if n >= 0 {
			j.maxSpace = n
		}
	}
}

// WithMeasure sets how widths are counted; see Mode. Unknown values are
// ignored. The default is Runes.
func WithMeasure(m Mode) Option {
	return func(j *Justifier) {
		switch m {
		case Runes, Graphemes, Cells:
			j.measure = m
		}
	}
}
