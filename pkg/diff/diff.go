package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	contextLines    = 3
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type lineOp struct {
	kind byte
	text string
}

// Summary counts changed lines.
type Summary struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Summary) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Summarize counts the lines added and removed between expected and actual.
func Summarize(expected, actual []byte) Summary {
	var s Summary
	for _, op := range lineDiff(expected, actual) {
		switch op.kind {
		case '+':
			s.Added++
		case '-':
			s.Removed++
		}
	}
	return s
}

// GenerateUnifiedDiff generates a unified diff comparing expected and actual content
// with three lines of context around each change.
// Returns empty string if content is identical.
// Truncates diffs exceeding 10,000 lines with a truncation marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	ops := lineDiff(expected, actual)

	// oldAt[i] and newAt[i] count the lines preceding ops[i] on each side.
	oldAt := make([]int, len(ops)+1)
	newAt := make([]int, len(ops)+1)
	for i, op := range ops {
		oldAt[i+1], newAt[i+1] = oldAt[i], newAt[i]
		if op.kind != '+' {
			oldAt[i+1]++
		}
		if op.kind != '-' {
			newAt[i+1]++
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	for i := 0; i < len(ops); {
		if ops[i].kind == ' ' {
			i++
			continue
		}

		start := max(i-contextLines, 0)
		last := i
		for j := i; j < len(ops); j++ {
			if ops[j].kind != ' ' {
				last = j
			} else if j-last > 2*contextLines {
				break
			}
		}
		stop := min(last+contextLines+1, len(ops))

		oldCount := oldAt[stop] - oldAt[start]
		newCount := newAt[stop] - newAt[start]
		fmt.Fprintf(&buf, "@@ -%s +%s @@\n", hunkRange(oldAt[start], oldCount), hunkRange(newAt[start], newCount))
		for _, op := range ops[start:stop] {
			buf.WriteByte(op.kind)
			buf.WriteString(op.text)
			buf.WriteByte('\n')
		}

		i = stop
	}

	// Check line count and truncate if necessary
	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

func hunkRange(before, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", before)
	}
	return fmt.Sprintf("%d,%d", before+1, count)
}

// lineDiff diffs whole lines: each line is mapped to a rune so the
// character diff never splits a line.
func lineDiff(expected, actual []byte) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var ops []lineOp
	for _, d := range diffs {
		kind := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = '-'
		case diffmatchpatch.DiffInsert:
			kind = '+'
		}

		if d.Text == "" {
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			ops = append(ops, lineOp{kind: kind, text: line})
		}
	}
	return ops
}
