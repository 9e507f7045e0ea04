// Package justify rewraps blocks of text into lines of a fixed width,
// stretching the spacing between words so the left and right margins both
// line up. The last line of every paragraph is right-padded with plain
// spaces instead of stretched, and words longer than a line are split with a
// configurable word-break marker.
//
// Widths are counted per character, never per byte, so multi-byte text is
// handled correctly by default. The Graphemes and Cells modes extend the
// counting to user-perceived characters and monospace terminal columns.
//
// A Justifier holds no mutable state, so one instance can be shared freely
// across goroutines:
//
//	j := justify.New(justify.WithWidth(60))
//	fmt.Println(j.Format(text, 0, -1))
package justify
