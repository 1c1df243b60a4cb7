// Package printers renders diary and checklist views to a terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pup/pkg/checklist"
	"tableflip.dev/pup/pkg/entry"
)

// PrettyPrint renders tables with color to Out (color.Output by default).
type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Render satisfies diary.Renderer: the full diary view, title included.
func (pp *PrettyPrint) Render(entries []*entry.Entry) {
	pp.Title("Training Diary")
	pp.Diary(entries...)
}

// Diary prints the entry table, most recent first. An empty collection
// prints the placeholder instead.
func (pp *PrettyPrint) Diary(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no entries yet\n\n")
		return
	}

	focus := color.New(color.FgHiYellow, color.Italic)
	id := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		date, f, text := e.Row()
		if pp.ShowID {
			tbl.AddRow(id.Sprint(e.ID), date, focus.Sprint(f), Sanitize(text))
		} else {
			tbl.AddRow(date, focus.Sprint(f), Sanitize(text))
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Checklist prints the supply kit with a mark for acquired items.
func (pp *PrettyPrint) Checklist(sel *checklist.Selection) {
	done := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, item := range checklist.Catalog() {
		mark := "☐"
		if sel.Checked(item.ID) {
			mark = done.Sprint("☑")
		}
		tbl.AddRow(mark, item.Label, faint.Sprint(item.ID))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Sanitize strips control characters from user text before it reaches the
// terminal, keeping newlines and tabs.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, s)
}
