// SPDX-License-Identifier: MIT
// Package: matrix
//
// Diagnostic text rendering of *Dense.
//
//   - String: compact bracketed block, values rounded to 6 decimals, at most
//     DefaultToStringRows × DefaultToStringCols cells; hidden rows/columns are
//     marked with "..".
//   - Summary / Content: indexed grid ("[j]" headers, "[i]" labels) at full
//     precision. A dimension above its budget shows its first budget-2 indices,
//     a "..." marker and its last two indices.
//   - FullContent: the indexed grid with every cell.
//
// Headers and labels are right-aligned, cells left-aligned, every column padded
// to its widest entry. Numbers use the shortest plain decimal form that
// round-trips; integral values print without a fraction.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	markToString = ".."
	markGrid     = "..."
)

// formatValue renders v in the shortest plain (non-exponent) form.
func formatValue(v float64) string {
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatShort renders v with at most 6 decimals, trailing zeros trimmed.
func formatShort(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}

	return s
}

// String renders m as "Dense{rowCount:R, colCount:C, values:\n[\n [ ... ], \n...]}".
func (m *Dense) String() string {
	r, c := m.rows.n, m.cols.n
	showR, showC := min(r, DefaultToStringRows), min(c, DefaultToStringCols)
	moreR, moreC := r > showR, c > showC

	// One width for the whole block.
	width := 1
	if moreR || moreC {
		width = len(markToString)
	}
	cells := make([][]string, showR)
	for i := 0; i < showR; i++ {
		cells[i] = make([]string, showC)
		for j := 0; j < showC; j++ {
			cells[i][j] = formatShort(m.get(i, j))
			width = max(width, len(cells[i][j]))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense{rowCount:%d, colCount:%d, values:\n[\n", r, c)
	writeRow := func(vals []string, tail bool) {
		sb.WriteString(" [ ")
		for _, v := range vals {
			sb.WriteString(padRight(v, width))
			sb.WriteByte(' ')
		}
		if tail {
			sb.WriteString(padRight(markToString, width))
			sb.WriteByte(' ')
		}
		sb.WriteString("], \n")
	}
	for i := 0; i < showR; i++ {
		writeRow(cells[i], moreC)
	}
	if moreR {
		marks := make([]string, showC)
		for j := range marks {
			marks[j] = markToString
		}
		writeRow(marks, moreC)
	}
	sb.WriteString("]}")

	return sb.String()
}

// Summary renders the truncated indexed grid (see WithDisplay for the budgets).
func (m *Dense) Summary() string { return m.Content() }

// Content renders the truncated indexed grid.
func (m *Dense) Content() string {
	o := m.st.opts

	return m.grid(shownIndices(m.rows.n, o.summaryRows), shownIndices(m.cols.n, o.summaryCols))
}

// FullContent renders every cell.
func (m *Dense) FullContent() string {
	return m.grid(shownIndices(m.rows.n, m.rows.n), shownIndices(m.cols.n, m.cols.n))
}

// shownIndices returns the indices to display out of n under budget; -1 marks
// the ellipsis slot.
func shownIndices(n, budget int) []int {
	if n <= budget {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, budget+1)
	for i := 0; i < budget-2; i++ {
		out = append(out, i)
	}

	return append(out, -1, n-2, n-1)
}

func (m *Dense) grid(rows, cols []int) string {
	label := func(i int) string {
		if i < 0 {
			return markGrid
		}
		return "[" + strconv.Itoa(i) + "]"
	}

	labelW := 0
	for _, i := range rows {
		labelW = max(labelW, len(label(i)))
	}
	colW := make([]int, len(cols))
	cells := make([][]string, len(rows))
	for ri, i := range rows {
		cells[ri] = make([]string, len(cols))
		for ci, j := range cols {
			s := markGrid
			if i >= 0 && j >= 0 {
				s = formatValue(m.get(i, j))
			}
			cells[ri][ci] = s
			colW[ci] = max(colW[ci], len(s))
		}
	}
	for ci, j := range cols {
		colW[ci] = max(colW[ci], len(label(j)))
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", labelW))
	sb.WriteByte(' ')
	for ci, j := range cols {
		sb.WriteString(padLeft(label(j), colW[ci]))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for ri, i := range rows {
		sb.WriteString(padLeft(label(i), labelW))
		sb.WriteByte(' ')
		for ci := range cols {
			sb.WriteString(padRight(cells[ri][ci], colW[ci]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}

	return strings.Repeat(" ", w-len(s)) + s
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}

	return s + strings.Repeat(" ", w-len(s))
}
