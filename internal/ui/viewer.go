package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tcrun/internal/domain"
	"tcrun/internal/storage"
)

// ResultViewer displays the non-passing results of the last run in an
// interactive TUI: a list on the left, captured output and error on the right.
type ResultViewer struct {
	storage storage.Storage
}

// NewResultViewer creates a new ResultViewer
func NewResultViewer(st storage.Storage) *ResultViewer {
	return &ResultViewer{storage: st}
}

// View opens the TUI over the given report. Pressing R marks a result as
// reviewed; the mark is written back into the report file so it survives
// closing the viewer (but not the next run, which replaces the report).
func (v *ResultViewer) View(report *domain.RunReport) error {
	// Indexes into report.Results for everything that did not pass
	var failing []int
	for i, r := range report.Results {
		if !r.Passed() {
			failing = append(failing, i)
		}
	}

	if len(failing) == 0 {
		color.Green("✓ All tests passed in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(pos int) string {
		r := report.Results[failing[pos]]
		marker := ""
		if r.Reviewed {
			marker = "[gray]✓ "
		}
		return fmt.Sprintf("%s[yellow]%d.[white] %s [%s]%s[white]",
			marker, pos+1, r.TestName, statusColor(r.Status), r.Status)
	}

	for pos := range failing {
		list.AddItem(itemText(pos), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	unreviewed := func() int {
		n := 0
		for _, idx := range failing {
			if !report.Results[idx].Reviewed {
				n++
			}
		}
		return n
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failing tests (%d total, %d unreviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, Ctrl+C exit ",
			len(failing), unreviewed()))
	}

	updateDetails := func() {
		pos := list.GetCurrentItem()
		if pos < 0 || pos >= len(failing) {
			return
		}
		r := report.Results[failing[pos]]
		statsView.SetText(fmt.Sprintf("[cyan]test:[white] [yellow]%s[white]  [cyan]id:[white] %s", r.TestName, r.TestID))
		detailsView.SetText(formatResultDetails(r))
	}

	updateHeader()
	updateDetails()

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				pos := list.GetCurrentItem()
				if pos >= 0 && pos < len(failing) {
					idx := failing[pos]
					report.Results[idx].Reviewed = !report.Results[idx].Reviewed
					list.SetItemText(pos, itemText(pos), "")
					updateHeader()
					// A failed save is not worth tearing the TUI down for
					_ = v.storage.Save(report)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// formatResultDetails renders one result using tview color tags.
func formatResultDetails(r domain.TestResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s]✗ %s: %s[white]\n\n", statusColor(r.Status), r.TestName, r.Status)
	fmt.Fprintf(&b, "[cyan]Duration:[white] %.2fs\n\n", r.Duration)

	if r.Output != "" {
		fmt.Fprintf(&b, "[yellow]Output:[white]\n%s\n\n", tview.Escape(r.Output))
	}
	if r.Error != "" {
		fmt.Fprintf(&b, "[yellow]Error:[white]\n%s\n", tview.Escape(r.Error))
	}
	return b.String()
}

func statusColor(status domain.Status) string {
	switch status {
	case domain.StatusTimeout:
		return "yellow"
	case domain.StatusError:
		return "fuchsia"
	default:
		return "red"
	}
}
