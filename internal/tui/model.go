package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roach88/shelf/internal/catalog"
	"github.com/roach88/shelf/internal/session"
)

// mode is the browser's input mode.
type mode int

const (
	modeBrowse  mode = iota // list navigation
	modeSearch              // typing into the search input
	modeForm                // add/edit form
	modeConfirm             // delete confirmation
)

// Model is the bubbletea model for the catalog browser.
//
// The session is the single writer; the model only translates key events
// into session calls and renders the resulting view. The cursor indexes
// into the currently visible page, never into the full collection.
type Model struct {
	sess   *session.Session
	styles Styles

	mode   mode
	cursor int
	search textinput.Model
	form   formModel
	status string
	errMsg string

	width  int
	height int
}

// NewModel creates a browser over sess.
func NewModel(sess *session.Session) Model {
	search := textinput.New()
	search.Placeholder = "title contains..."
	search.Prompt = "/ "
	search.CharLimit = 64

	return Model{
		sess:   sess,
		styles: DefaultStyles(),
		search: search,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""
	view := m.sess.View()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(view.Records)-1 {
			m.cursor++
		}

	case "left", "h":
		if m.sess.Page() > 1 {
			m.sess.SetPage(m.sess.Page() - 1)
			m.cursor = 0
		}

	case "right", "l":
		if m.sess.Page() < view.TotalPages {
			m.sess.SetPage(m.sess.Page() + 1)
			m.cursor = 0
		}

	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.sess.SearchTerm())
		m.search.CursorEnd()
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		// Drop the search filter (which also resets the page).
		m.search.SetValue("")
		m.sess.SetSearchTerm("")
		m.cursor = 0

	case "a":
		m.form = newAddForm()
		m.mode = modeForm
		return m, textinput.Blink

	case "e":
		rec, ok := m.selected(view)
		if !ok {
			m.errMsg = "nothing selected to edit"
			return m, nil
		}
		m.form = newEditForm(rec)
		m.mode = modeForm
		return m, textinput.Blink

	case "d":
		if _, ok := m.selected(view); !ok {
			m.errMsg = "nothing selected to delete"
			return m, nil
		}
		m.mode = modeConfirm
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.search.Blur()
		m.mode = modeBrowse
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Incremental: every keystroke narrows the view and pulls the page
	// back to 1 (the session's term-change policy).
	m.sess.SetSearchTerm(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		view := m.sess.View()
		if rec, ok := m.selected(view); ok {
			m.sess.Dispatch(context.Background(), catalog.Delete{ID: rec.ID})
			m.status = fmt.Sprintf("deleted %q", rec.Title)
			m.afterMutation()
		}
		m.mode = modeBrowse
	case "n", "esc", "q":
		m.mode = modeBrowse
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// selected returns the record under the cursor on the visible page.
func (m Model) selected(view catalog.View) (catalog.BookRecord, bool) {
	if m.cursor < 0 || m.cursor >= len(view.Records) {
		return catalog.BookRecord{}, false
	}
	return view.Records[m.cursor], true
}

// afterMutation re-clamps page and cursor after the collection changed,
// e.g. when deleting the last record of the last page.
func (m *Model) afterMutation() {
	view := m.sess.View()
	if view.TotalPages > 0 && m.sess.Page() > view.TotalPages {
		m.sess.SetPage(view.TotalPages)
		view = m.sess.View()
	}
	if m.cursor >= len(view.Records) {
		m.cursor = len(view.Records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("shelf"))
	b.WriteString("\n\n")

	view := m.sess.View()

	if m.mode == modeForm {
		b.WriteString(m.form.render(m.styles))
		if m.errMsg != "" {
			b.WriteString("\n" + m.styles.ErrorMsg.Render(m.errMsg))
		}
		b.WriteString("\n\n" + m.styles.Help.Render("tab: next field  enter: save  esc: cancel"))
		return b.String()
	}

	// Search line
	if m.mode == modeSearch {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	} else if term := m.sess.SearchTerm(); term != "" {
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf("filter: %q (esc to clear)", term)))
		b.WriteString("\n\n")
	}

	// Page body
	if len(view.Records) == 0 {
		if view.Matches == 0 && m.sess.SearchTerm() == "" {
			b.WriteString(m.styles.Dim.Render("The catalog is empty. Press 'a' to add a book."))
		} else {
			b.WriteString(m.styles.Dim.Render("Nothing on this page."))
		}
		b.WriteString("\n")
	}
	for i, rec := range view.Records {
		line := fmt.Sprintf("%s by %s (%s)", rec.Title, rec.Author, rec.Year)
		if i == m.cursor && m.mode != modeConfirm {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else if i == m.cursor {
			b.WriteString(m.styles.ErrorMsg.Render("> " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render(footerLine(view)))
	b.WriteString("\n")

	if m.mode == modeConfirm {
		if rec, ok := m.selected(view); ok {
			b.WriteString(m.styles.ErrorMsg.Render(fmt.Sprintf("delete %q? (y/n)", rec.Title)))
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.styles.ErrorMsg.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("↑/↓ select  ←/→ page  / search  a add  e edit  d delete  q quit"))
	return b.String()
}

func footerLine(view catalog.View) string {
	if view.Matches == 0 {
		return "no entries"
	}
	return fmt.Sprintf("page %d/%d · %d entries", view.Page, view.TotalPages, view.Matches)
}
