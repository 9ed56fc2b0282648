package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const listNameWidth = 28

type listModel struct {
	// items is the filtered view of the vault in display order.
	items models.Vault
	idx   int

	search    textinput.Model
	searching bool

	// typeFilter is 0 for all records, otherwise an index into
	// models.RecordTypes() plus one.
	typeFilter int

	status string
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search name, username or URL"
	search.Prompt = "/ "
	search.Width = 40
	return listModel{search: search}
}

// filterType returns the selected record type or "" for all.
func (m listModel) filterType() models.RecordType {
	types := models.RecordTypes()
	if m.typeFilter <= 0 || m.typeFilter > len(types) {
		return ""
	}
	return types[m.typeFilter-1]
}

func (m listModel) filterLabel() string {
	if t := m.filterType(); t != "" {
		return t.String()
	}
	return "All"
}

func (m listModel) cycleFilter() listModel {
	m.typeFilter = (m.typeFilter + 1) % (len(models.RecordTypes()) + 1)
	return m
}

// refresh recomputes the visible records from vault and keeps the cursor
// inside the result.
func (m listModel) refresh(vault models.Vault) listModel {
	m.items = vault.Filter(m.search.Value(), m.filterType())
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) current() (models.CredentialRecord, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.CredentialRecord{}, false
	}
	return m.items[m.idx], true
}

func listIcon(t models.RecordType) string {
	switch t {
	case models.RecordTypeGeneral:
		return "[G]"
	case models.RecordTypeWebsite:
		return "[W]"
	case models.RecordTypeHostingVPS:
		return "[H]"
	default:
		return "[?]"
	}
}

// View renders the list. header carries the account name, the unsaved
// marker and the spinner; total is the unfiltered record count.
func (m listModel) View(header string, total int) string {
	var b strings.Builder

	b.WriteString(header + "\n\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}
	b.WriteString(fmt.Sprintf("Type: %s   (%d of %d)\n\n", m.filterLabel(), len(m.items), total))

	switch {
	case total == 0:
		b.WriteString("The vault is empty. Press n to add a record.\n")
	case len(m.items) == 0:
		b.WriteString("No records match.\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			line := fmt.Sprintf("%s %-*s %s", listIcon(item.Type), listNameWidth, fitText(item.Name, listNameWidth), fitText(item.Username, 30))
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "enter: open │ n: new │ e: edit │ d: delete │ /: search │ t: type │ s: save │ r: refresh │ l: logout │ q: quit"
	if m.searching {
		hotKeys = "type to filter │ enter / esc: done"
	}

	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}
