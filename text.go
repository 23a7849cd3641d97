package strip

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// Alignment positions text within the width it is printed into.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the box (x, y, maxWidth, 1). The
// screen's background is kept. It returns the number of bytes printed and
// the width they occupy.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return end - start, width
}

// PrintStyled works like [Print] but takes a full style, background included.
func PrintStyled(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, style, false)
	return end - start, width
}

// printWithStyle prints text at (x, y) into at most maxWidth cells, skipping
// the first skipWidth cells of text. It returns the start and end byte
// indices of the printed part and its width. If maintainBackground is set,
// the background already on screen is kept.
func printWithStyle(screen tcell.Screen, text string, x, y, skipWidth, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, end, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0, 0
	}
	if maintainBackground {
		style = style.Background(tcell.ColorDefault)
	}

	for skipWidth > 0 && len(text) > 0 {
		cluster, rest, width := nextCluster(text)
		skipWidth -= width
		start += len(cluster)
		text = rest
	}
	textWidth := StringWidth(text)

	// Reduce all alignments to AlignmentLeft.
	switch alignment {
	case AlignmentRight:
		for len(text) > 0 && textWidth > maxWidth {
			cluster, rest, width := nextCluster(text)
			textWidth -= width
			start += len(cluster)
			text = rest
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		for excess := (textWidth - maxWidth) / 2; len(text) > 0 && excess > 0; {
			cluster, rest, width := nextCluster(text)
			excess -= width
			textWidth -= width
			start += len(cluster)
			text = rest
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	end = start
	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		cluster, rest, width := nextCluster(text)
		if x+width > rightBorder {
			break
		}
		if width > 0 {
			cellStyle := style
			if maintainBackground {
				_, existing, _ := screen.Get(x, y)
				cellStyle = cellStyle.Background(existing.GetBackground())
			}
			screen.Put(x, y, cluster, cellStyle)
			// Populate the trailing cells of wide clusters too.
			for offset := 1; offset < width; offset++ {
				screen.Put(x+offset, y, " ", cellStyle)
			}
		}
		x += width
		end += len(cluster)
		printedWidth += width
		text = rest
	}
	return
}

// nextCluster splits off the first grapheme cluster of text.
func nextCluster(text string) (cluster, rest string, width int) {
	cluster, rest, boundaries, _ := uniseg.StepString(text, -1)
	return cluster, rest, boundaries >> uniseg.ShiftWidth
}

// StringWidth returns the number of cells text occupies on screen.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate shortens text to at most width cells, ending it with an ellipsis
// if anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(text) <= width {
		return text
	}
	var b strings.Builder
	used := 0
	for len(text) > 0 {
		cluster, rest, w := nextCluster(text)
		if used+w > width-1 {
			break
		}
		b.WriteString(cluster)
		used += w
		text = rest
	}
	b.WriteString(horizontalEllipsis)
	return b.String()
}

// WordWrap splits text such that each resulting line does not exceed the
// given screen width. Lines are broken at the last break opportunity that
// fits, or mid-word if there is none.
func WordWrap(text string, width int) (lines []string) {
	if width <= 0 {
		return
	}

	var (
		state                                              = -1
		lineWidth, lineLength, lastOption, lastOptionWidth int
	)
	str := text
	for len(str) > 0 {
		var (
			cluster    string
			boundaries int
		)
		cluster, str, boundaries, state = uniseg.StepString(str, state)
		cWidth := boundaries >> uniseg.ShiftWidth

		if lineWidth+cWidth > width {
			if lastOptionWidth == 0 {
				lines = append(lines, text[:lineLength])
				text = text[lineLength:]
				lineWidth, lineLength, lastOption, lastOptionWidth = 0, 0, 0, 0
			} else {
				lines = append(lines, strings.TrimRight(text[:lastOption], " "))
				text = text[lastOption:]
				lineWidth -= lastOptionWidth
				lineLength -= lastOption
				lastOption, lastOptionWidth = 0, 0
			}
		}

		lineWidth += cWidth
		lineLength += len(cluster)

		switch boundaries & uniseg.MaskLine {
		case uniseg.LineCanBreak:
			if len(str) > 0 {
				lastOption = lineLength
				lastOptionWidth = lineWidth
			}
		case uniseg.LineMustBreak:
			if len(str) > 0 || uniseg.HasTrailingLineBreakInString(cluster) {
				lines = append(lines, strings.TrimRight(text[:lineLength], "\n\r"))
				text = text[lineLength:]
				lineWidth, lineLength, lastOption, lastOptionWidth = 0, 0, 0, 0
			}
		}
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}
	return
}
