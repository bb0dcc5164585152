// Package ui is the tview host of the allocation file browser.
package ui

import (
	"fmt"
	"strings"

	"github.com/filetug/allocfs/pkg/browse"
	"github.com/filetug/allocfs/pkg/chroma2tcell"
	"github.com/filetug/allocfs/pkg/classify"
	"github.com/filetug/allocfs/pkg/files"
	"github.com/filetug/allocfs/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const modTimeLayout = "2006-01-02 15:04"

// Controller is the subset of browse.Controller driven by key presses.
type Controller interface {
	SelectFile(entry files.FileEntry)
	CloseFile()
	Back()
	Refresh()
	NavigateCrumb(i int)
}

type browserOptions struct {
	downloadDir string
	setFocus    func(tview.Primitive)
	saveText    func(dir, name, text string) (string, error)
}

type BrowserOption func(*browserOptions)

// WithDownloadDir sets where the previewed file is saved on Ctrl-S.
func WithDownloadDir(dir string) BrowserOption {
	return func(o *browserOptions) {
		o.downloadDir = dir
	}
}

func WithFocusSetter(setFocus func(tview.Primitive)) BrowserOption {
	return func(o *browserOptions) {
		o.setFocus = setFocus
	}
}

// Browser renders browse.State and turns key presses into controller events.
type Browser struct {
	*tview.Flex
	o    browserOptions
	ctrl Controller

	crumbs      *tview.TextView
	table       *tview.Table
	preview     *tview.TextView
	status      *tview.TextView
	filterInput *tview.InputField

	filter      Filter
	state       browse.State
	rows        []files.FileEntry
	listingPath string
	notice      string
}

func NewBrowser(o ...BrowserOption) *Browser {
	b := &Browser{
		o: browserOptions{
			downloadDir: ".",
			saveText:    fsutils.SaveText,
		},
		crumbs:      tview.NewTextView(),
		table:       tview.NewTable(),
		preview:     tview.NewTextView(),
		status:      tview.NewTextView(),
		filterInput: tview.NewInputField(),
	}
	for _, opt := range o {
		opt(&b.o)
	}
	b.crumbs.SetDynamicColors(true)
	b.crumbs.SetRegions(true)
	b.crumbs.SetHighlightedFunc(b.onCrumbHighlighted)

	b.table.SetBorder(true)
	b.table.SetFixed(1, 0)
	b.table.SetSelectable(true, false)
	b.table.SetSelectedFunc(func(row, _ int) {
		b.selectRow(row)
	})
	b.table.SetInputCapture(b.tableInputCapture)

	b.preview.SetBorder(true)
	b.preview.SetTitle(" Preview ")
	b.preview.SetDynamicColors(true)
	b.preview.SetScrollable(true)
	b.preview.SetWrap(false)
	b.preview.SetInputCapture(b.previewInputCapture)

	b.status.SetDynamicColors(true)

	b.filterInput.SetLabel("Filter: ")
	b.filterInput.SetDoneFunc(b.onFilterDone)

	columns := tview.NewFlex()
	columns.AddItem(b.table, 0, 1, true)
	columns.AddItem(b.preview, 0, 1, false)

	b.Flex = tview.NewFlex()
	b.Flex.SetDirection(tview.FlexRow)
	b.Flex.AddItem(b.crumbs, 1, 0, false)
	b.Flex.AddItem(columns, 0, 1, true)
	b.Flex.AddItem(b.filterInput, 1, 0, false)
	b.Flex.AddItem(b.status, 1, 0, false)
	return b
}

// SetController binds the controller receiving key events.
func (b *Browser) SetController(ctrl Controller) {
	b.ctrl = ctrl
}

// Render draws state. It must be called on the tview event loop.
func (b *Browser) Render(state browse.State) {
	b.state = state
	b.renderCrumbs()
	b.renderTable()
	b.renderPreview()
	b.renderStatus()
}

func (b *Browser) renderCrumbs() {
	var sb strings.Builder
	last := len(b.state.Breadcrumbs) - 1
	for i, crumb := range b.state.Breadcrumbs {
		if i > 1 {
			sb.WriteString("[gray]/[-]")
		}
		label := tview.Escape(crumb.Label)
		if i == last {
			label = "[::b]" + label + "[::-]"
		}
		fmt.Fprintf(&sb, `["%d"]%s[""]`, i, label)
	}
	b.crumbs.SetText(sb.String())
}

func (b *Browser) onCrumbHighlighted(added, _, _ []string) {
	if len(added) == 0 || b.ctrl == nil {
		return
	}
	var i int
	if _, err := fmt.Sscanf(added[0], "%d", &i); err != nil {
		return
	}
	b.crumbs.Highlight()
	b.ctrl.NavigateCrumb(i)
}

func (b *Browser) renderTable() {
	var selectedName string
	if row, _ := b.table.GetSelection(); row > 0 && row <= len(b.rows) {
		selectedName = b.rows[row-1].Name
	}
	b.table.Clear()
	b.rows = nil
	b.table.SetTitle(" " + tview.Escape(b.state.CurrentPath) + " ")

	for col, title := range []string{"Name", "Size", "Mode", "Modified"} {
		header := tview.NewTableCell(title)
		header.SetTextColor(headerColor)
		header.SetSelectable(false)
		if col > 0 {
			header.SetAlign(tview.AlignRight)
		}
		b.table.SetCell(0, col, header)
	}

	switch {
	case b.state.ListingStatus == browse.ListingError:
		b.setMessageRow("Error: "+b.state.ErrorMessage, errorColor)
		return
	case b.state.Listing == nil:
		if b.state.ListingStatus == browse.ListingLoading {
			b.setMessageRow("Loading...", mutedColor)
		}
		return
	}

	b.rows = b.filter.Apply(b.state.Listing.Entries)
	if len(b.rows) == 0 {
		b.setMessageRow("(empty)", mutedColor)
		return
	}
	selectedRow := 1
	for i, entry := range b.rows {
		row := i + 1
		c := classify.Classify(entry)
		color := iconColor(c)
		name := tview.NewTableCell(iconGlyph(c.Icon) + " " + tview.Escape(entry.Name))
		name.SetTextColor(color)
		name.SetExpansion(1)
		b.table.SetCell(row, 0, name)

		size := "<dir>"
		if !entry.IsDir {
			size = fsutils.GetSizeShortText(entry.Size)
		}
		b.table.SetCell(row, 1, tview.NewTableCell(size).SetAlign(tview.AlignRight).SetTextColor(color))
		b.table.SetCell(row, 2, tview.NewTableCell(entry.Mode).SetAlign(tview.AlignRight).SetTextColor(mutedColor))
		modified := ""
		if !entry.ModifiedAt.IsZero() {
			modified = entry.ModifiedAt.Local().Format(modTimeLayout)
		}
		b.table.SetCell(row, 3, tview.NewTableCell(modified).SetAlign(tview.AlignRight).SetTextColor(mutedColor))

		if b.state.Listing.Path == b.listingPath && entry.Name == selectedName {
			selectedRow = row
		}
	}
	b.listingPath = b.state.Listing.Path
	b.table.Select(selectedRow, 0)
}

func (b *Browser) setMessageRow(text string, color tcell.Color) {
	cell := tview.NewTableCell(tview.Escape(text))
	cell.SetTextColor(color)
	cell.SetSelectable(false)
	b.table.SetCell(1, 0, cell)
}

func (b *Browser) renderPreview() {
	entry := b.state.SelectedEntry
	if entry == nil {
		b.preview.SetTitle(" Preview ")
		b.preview.SetText("")
		return
	}
	b.preview.SetTitle(fmt.Sprintf(" %s (%s) ", tview.Escape(entry.Name), fsutils.GetSizeShortText(entry.Size)))
	b.preview.SetTextColor(tcell.ColorWhiteSmoke)
	switch b.state.ContentStatus {
	case browse.ContentLoading:
		b.preview.SetText("[gray]Loading...[-]")
	case browse.ContentError:
		b.preview.SetTextColor(errorColor)
		b.preview.SetText(tview.Escape(b.state.ContentErrorMessage))
	case browse.ContentReady:
		text := ""
		if b.state.Content != nil {
			text = *b.state.Content
		}
		tag := classify.Classify(*entry).LanguageTag
		colorized, _, err := chroma2tcell.ColorizeLanguage(text, tag)
		if err != nil {
			colorized = tview.Escape(text)
		}
		b.preview.SetText(colorized)
		b.preview.ScrollToBeginning()
	default:
		b.preview.SetText("")
	}
}

func (b *Browser) renderStatus() {
	var sb strings.Builder
	if listing := b.state.Listing; listing != nil && b.state.ListingStatus == browse.ListingReady {
		dirs := listing.Dirs()
		fmt.Fprintf(&sb, "%d dirs, %d files", dirs, len(listing.Entries)-dirs)
	} else {
		sb.WriteString(b.state.ListingStatus.String())
	}
	if !b.filter.IsEmpty() {
		fmt.Fprintf(&sb, " | filter: %s", tview.Escape(b.filter.Pattern))
	}
	if b.notice != "" {
		fmt.Fprintf(&sb, " | %s", tview.Escape(b.notice))
	}
	sb.WriteString(" [gray]| Enter open · ⌫ back · Esc close · ^R refresh · ^S save · / filter[-]")
	b.status.SetText(sb.String())
}

func (b *Browser) selectRow(row int) {
	if b.ctrl == nil || row < 1 || row > len(b.rows) {
		return
	}
	b.ctrl.SelectFile(b.rows[row-1])
}

func (b *Browser) tableInputCapture(event *tcell.EventKey) *tcell.EventKey {
	if b.ctrl == nil {
		return event
	}
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
		b.ctrl.Back()
		return nil
	case tcell.KeyEscape:
		b.ctrl.CloseFile()
		return nil
	case tcell.KeyCtrlR:
		b.ctrl.Refresh()
		return nil
	case tcell.KeyCtrlS:
		b.saveContent()
		return nil
	case tcell.KeyTab:
		b.focus(b.preview)
		return nil
	case tcell.KeyRune:
		if event.Rune() == '/' {
			b.focus(b.filterInput)
			return nil
		}
	}
	return event
}

func (b *Browser) previewInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if b.ctrl != nil {
			b.ctrl.CloseFile()
		}
		b.focus(b.table)
		return nil
	case tcell.KeyTab, tcell.KeyBacktab:
		b.focus(b.table)
		return nil
	case tcell.KeyCtrlS:
		b.saveContent()
		return nil
	}
	return event
}

func (b *Browser) onFilterDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		filter, err := NewFilter(b.filterInput.GetText())
		if err != nil {
			b.notice = err.Error()
		} else {
			b.filter = filter
			b.notice = ""
		}
	case tcell.KeyEscape:
		b.filterInput.SetText("")
		b.filter = Filter{}
		b.notice = ""
	}
	b.Render(b.state)
	b.focus(b.table)
}

// saveContent writes the previewed content to the download directory.
func (b *Browser) saveContent() {
	entry := b.state.SelectedEntry
	if entry == nil || b.state.ContentStatus != browse.ContentReady || b.state.Content == nil {
		b.notice = "nothing to save"
	} else if target, err := b.o.saveText(b.o.downloadDir, entry.Name, *b.state.Content); err != nil {
		b.notice = err.Error()
	} else {
		b.notice = "saved " + target
	}
	b.renderStatus()
}

func (b *Browser) focus(p tview.Primitive) {
	if b.o.setFocus != nil {
		b.o.setFocus(p)
	}
}
