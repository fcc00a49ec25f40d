package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roach88/shelf/internal/catalog"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldYear
	fieldCount
)

// formModel is the add/edit sub-form inside the browser. editID is empty
// for an add form and carries the record's ID for an edit form.
type formModel struct {
	editID string
	inputs [fieldCount]textinput.Model
	focus  int
}

func newForm() formModel {
	var f formModel
	labels := [fieldCount]string{"Title", "Author", "Year"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.Prompt = "  "
		in.CharLimit = 128
		f.inputs[i] = in
	}
	f.inputs[fieldYear].CharLimit = 16
	f.inputs[fieldTitle].Focus()
	return f
}

func newAddForm() formModel {
	return newForm()
}

func newEditForm(rec catalog.BookRecord) formModel {
	f := newForm()
	f.editID = rec.ID
	f.inputs[fieldTitle].SetValue(rec.Title)
	f.inputs[fieldAuthor].SetValue(rec.Author)
	f.inputs[fieldYear].SetValue(rec.Year)
	f.inputs[fieldTitle].CursorEnd()
	return f
}

func (f *formModel) setFocus(i int) tea.Cmd {
	f.focus = i
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

// record collects the trimmed field values.
func (f formModel) record() catalog.BookRecord {
	return catalog.BookRecord{
		ID:     f.editID,
		Title:  strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Author: strings.TrimSpace(f.inputs[fieldAuthor].Value()),
		Year:   strings.TrimSpace(f.inputs[fieldYear].Value()),
	}
}

func (f formModel) render(s Styles) string {
	var b strings.Builder
	if f.editID == "" {
		b.WriteString(s.Prompt.Render("Add a book"))
	} else {
		b.WriteString(s.Prompt.Render("Edit book"))
	}
	b.WriteString("\n\n")
	for i := range f.inputs {
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.mode = modeBrowse
		m.errMsg = ""
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		cmd := m.form.setFocus((m.form.focus + 1) % fieldCount)
		return m, cmd

	case tea.KeyShiftTab, tea.KeyUp:
		cmd := m.form.setFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, cmd

	case tea.KeyEnter:
		if m.form.focus < fieldCount-1 {
			cmd := m.form.setFocus(m.form.focus + 1)
			return m, cmd
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	rec := m.form.record()
	if rec.Title == "" || rec.Author == "" || rec.Year == "" {
		m.errMsg = "all fields are required"
		return m, nil
	}

	ctx := context.Background()
	if m.form.editID == "" {
		m.sess.AddRecord(ctx, rec)
		m.status = fmt.Sprintf("added %q", rec.Title)
	} else {
		m.sess.Dispatch(ctx, catalog.Edit{ID: m.form.editID, Record: rec})
		m.status = fmt.Sprintf("updated %q", rec.Title)
	}
	m.mode = modeBrowse
	m.errMsg = ""
	m.afterMutation()
	return m, nil
}
