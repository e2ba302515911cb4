package styles

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/ciricc/go-lifebench/internal/timing"
)

type Kind string

const (
	Default Kind = ""
	Error   Kind = "error"
	Success Kind = "success"
	Info    Kind = "info"
)

var defaultStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4"))

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F45E6E"))

var successStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6EF4A1"))

var infoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6EC4F4"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1).
	Foreground(lipgloss.Color("#7D56F4"))

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func style(kind Kind) lipgloss.Style {
	switch kind {
	case Error:
		return errorStyle
	case Success:
		return successStyle
	case Info:
		return infoStyle
	default:
		return defaultStyle
	}
}

func Sprintf(kind Kind, format string, a ...any) string {
	return style(kind).Render(fmt.Sprintf(format, a...))
}

func Fprintf(w io.Writer, kind Kind, format string, a ...any) {
	_, _ = fmt.Fprintln(w, Sprintf(kind, format, a...))
}

// Table renders rows under a bold header with rounded borders.
func Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(defaultStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// CandidateRows formats ranked candidates, one row per configuration. The
// first row of every size is marked as the winner.
func CandidateRows(bySize map[int][]timing.Candidate) [][]string {
	sizes := lo.Keys(bySize)
	slices.Sort(sizes)

	var rows [][]string
	for _, size := range sizes {
		for rank, c := range bySize[size] {
			degree := "-"
			if c.Key.Grouped() {
				degree = strconv.Itoa(c.Key.Degree)
			}
			withIO := "yes"
			if c.NoIO {
				withIO = "no"
			}
			rows = append(rows, []string{
				strconv.Itoa(size),
				strconv.Itoa(rank + 1),
				c.Table,
				string(c.Mode),
				degree,
				withIO,
				strconv.FormatFloat(c.Seconds, 'f', 6, 64),
			})
		}
	}
	return rows
}

var CandidateHeaders = []string{"size", "rank", "table", "mode", "degree", "io", "seconds"}
