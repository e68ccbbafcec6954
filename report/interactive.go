package report

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Browser is a scrollable results screen for a batch run: a list of
// every source on the left (succeeded or failed), its detail on the
// right, styled after the teacher's debugger TUI panel layout but with
// a single list/detail pair instead of source/registers/memory/stack.
type Browser struct {
	App    *tview.Application
	Pages  *tview.Pages
	List   *tview.List
	Detail *tview.TextView
}

// NewBrowser builds the interactive results screen for batch.
func NewBrowser(batch *Batch) *Browser {
	b := &Browser{
		App:    tview.NewApplication(),
		Pages:  tview.NewPages(),
		List:   tview.NewList().ShowSecondaryText(false),
		Detail: tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true),
	}

	b.List.SetBorder(true).SetTitle(" Sources ")
	b.Detail.SetBorder(true).SetTitle(" Detail ")

	rows := entries(batch)
	for i, row := range rows {
		idx := i
		b.List.AddItem(row.label, "", 0, func() {
			b.Detail.SetText(rows[idx].detail)
		})
	}
	if len(rows) > 0 {
		b.Detail.SetText(rows[0].detail)
	}

	layout := tview.NewFlex().
		AddItem(b.List, 0, 1, true).
		AddItem(b.Detail, 0, 2, false)

	b.Pages.AddPage("main", layout, true, true)

	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		}
		if event.Rune() == 'q' {
			b.App.Stop()
			return nil
		}
		return event
	})

	return b
}

// Run starts the interactive event loop; it blocks until the user
// quits ('q', Esc, or Ctrl-C).
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).SetFocus(b.List).Run()
}
