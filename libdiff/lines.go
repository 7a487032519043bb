package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs from and to line by line.  Each diff's text holds whole
// lines, newlines included.
func Lines(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

type line struct {
	op   diffpatch.Operation
	text string
}

func split(diffs []diffpatch.Diff) []line {
	var res []line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, line{op: d.Type, text: ln})
		}
	}
	return res
}

// Unified renders the line diff of from and to with context unchanged
// lines around each change, or "" when the texts are equal.
func Unified(fromName, toName, from, to string, context int) string {
	lines := split(Lines(from, to))
	keep := make([]bool, len(lines))
	changed := false
	for i, ln := range lines {
		if ln.op == diffpatch.DiffEqual {
			continue
		}
		changed = true
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	if !changed {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", fromName, toName)
	fromLine, toLine := 1, 1
	for i := 0; i < len(lines); {
		if !keep[i] {
			fromLine, toLine = advance(lines[i], fromLine, toLine)
			i++
			continue
		}
		j := i
		for j < len(lines) && keep[j] {
			j++
		}
		fmt.Fprintf(&b, "@@ -%d +%d @@\n", fromLine, toLine)
		for ; i < j; i++ {
			ln := lines[i]
			switch ln.op {
			case diffpatch.DiffInsert:
				b.WriteString("+")
			case diffpatch.DiffDelete:
				b.WriteString("-")
			default:
				b.WriteString(" ")
			}
			b.WriteString(ln.text)
			b.WriteString("\n")
			fromLine, toLine = advance(ln, fromLine, toLine)
		}
	}
	return b.String()
}

func advance(ln line, from, to int) (int, int) {
	switch ln.op {
	case diffpatch.DiffInsert:
		return from, to + 1
	case diffpatch.DiffDelete:
		return from + 1, to
	default:
		return from + 1, to + 1
	}
}
