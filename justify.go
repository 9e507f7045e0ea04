package justify

import "strings"

// Defaults applied by New and used by Format when a call passes an
// out-of-range width or maxSpace.
const (
	DefaultWidth     = 32
	DefaultMaxSpace  = 3
	DefaultWordBreak = "-"
)

// Justifier rewraps text into lines of a fixed width, stretching the gaps
// between words so both margins line up. A Justifier holds no mutable state
// and is safe for concurrent use; configure one with New and the With
// options.
type Justifier struct {
	lineSep   string
	wordBreak string
	paraSep   string
	width     int
	maxSpace  int
	measure   Mode
}

// New returns a Justifier with the platform line break as line separator, a
// doubled line break as paragraph separator, "-" as the word-break marker,
// and DefaultWidth and DefaultMaxSpace as call defaults, counting code
// points. Options override individual settings.
func New(opts ...Option) *Justifier {
	j := &Justifier{
		lineSep:   defaultLineBreak,
		wordBreak: DefaultWordBreak,
		paraSep:   defaultLineBreak + defaultLineBreak,
		width:     DefaultWidth,
		maxSpace:  DefaultMaxSpace,
		measure:   Runes,
	}
	for _, o := range opts {
		o(j)
	}
	return j
}

// Format justifies text into lines measuring exactly width, except the last
// line of each paragraph, which is right-padded with spaces instead of
// stretched. maxSpace caps the average gap a line may be stretched to before
// the splitter prefers breaking a word mid-word; 0 lifts the cap. A width
// below 1 or a maxSpace below 0 falls back to the justifier's configured
// default for that call only.
//
// Paragraphs are justified independently and rejoined with the paragraph
// separator, so the input's paragraph structure survives untouched.
func (j *Justifier) Format(text string, width, maxSpace int) string {
	if width < 1 {
		width = j.width
	}
	if maxSpace < 0 {
		maxSpace = j.maxSpace
	}
	if j.paraSep == "" {
		return j.justifyParagraph(text, width, maxSpace)
	}
	paragraphs := strings.Split(text, j.paraSep)
	for i, p := range paragraphs {
		paragraphs[i] = j.justifyParagraph(p, width, maxSpace)
	}
	return strings.Join(paragraphs, j.paraSep)
}

// justifyParagraph cleans a single paragraph and justifies it to width.
// Paragraphs that already fit on one line come back cleaned but otherwise
// untouched.
func (j *Justifier) justifyParagraph(text string, width, maxSpace int) string {
	cleaned := collapseSpaces(strings.TrimSpace(text))
	if cleaned == "" {
		return cleaned
	}
	units := j.units(cleaned)
	if totalWidth(units) <= width {
		return cleaned
	}

	chunks := j.splitChunks(cleaned, units, width, maxSpace)
	last := len(chunks) - 1
	for i, c := range chunks[:last] {
		chunks[i] = j.justifyChunk(c, width)
	}
	chunks[last] = j.padChunk(chunks[last], width)
	return strings.Join(chunks, j.lineSep)
}

// collapseSpaces folds every run of plain spaces into a single space. Other
// whitespace is left alone; it either separates paragraphs, in which case
// Format splits on it first, or it belongs to the text.
func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

var defaultJustifier = New()

// Format justifies text with a package-level Justifier built entirely from
// defaults. It is shorthand for New().Format(text, width, maxSpace); see
// Justifier.Format for the parameter semantics.
func Format(text string, width, maxSpace int) string {
	return defaultJustifier.Format(text, width, maxSpace)
}
