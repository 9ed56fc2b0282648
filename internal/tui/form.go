package tui

import (
	"strings"

	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// Form field order. fieldType is the record type selector, the rest are
// text inputs at index field-1.
const (
	fieldType = iota
	fieldName
	fieldUsername
	fieldPassword
	fieldLoginURL
	fieldCount
)

// recordFormModel creates or edits one record.
type recordFormModel struct {
	inputs  []textinput.Model
	typeIdx int
	focus   int

	// editingID is the id of the record being edited; empty when adding.
	editingID string
}

func newRecordFormModel(item *models.CredentialRecord) recordFormModel {
	inputs := make([]textinput.Model, fieldCount-1)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldName-1].Placeholder = "Mail"
	inputs[fieldUsername-1].Placeholder = "alice@example.com"
	inputs[fieldPassword-1].EchoMode = textinput.EchoPassword
	inputs[fieldPassword-1].EchoCharacter = '*'
	inputs[fieldLoginURL-1].Placeholder = "https://example.com/login"

	m := recordFormModel{inputs: inputs, focus: fieldName}
	m.inputs[fieldName-1].Focus()
	if item == nil {
		return m
	}

	m.editingID = item.ID
	for i, t := range models.RecordTypes() {
		if t == item.Type {
			m.typeIdx = i
		}
	}
	m.inputs[fieldName-1].SetValue(item.Name)
	m.inputs[fieldUsername-1].SetValue(item.Username)
	m.inputs[fieldPassword-1].SetValue(item.Password)
	m.inputs[fieldLoginURL-1].SetValue(item.LoginURL)
	return m
}

func (m recordFormModel) editing() bool {
	return m.editingID != ""
}

func (m recordFormModel) recordType() models.RecordType {
	return models.RecordTypes()[m.typeIdx]
}

func (m recordFormModel) value(field int) string {
	return m.inputs[field-1].Value()
}

// record builds the record from the inputs. The id is empty for a new
// record and gets assigned by the client.
func (m recordFormModel) record() models.CredentialRecord {
	return models.CredentialRecord{
		ID:       m.editingID,
		Type:     m.recordType(),
		Name:     strings.TrimSpace(m.value(fieldName)),
		Username: strings.TrimSpace(m.value(fieldUsername)),
		Password: m.value(fieldPassword),
		LoginURL: strings.TrimSpace(m.value(fieldLoginURL)),
	}
}

func (m recordFormModel) setFocus(field int) recordFormModel {
	if m.focus != fieldType {
		m.inputs[m.focus-1].Blur()
	}
	m.focus = field
	if m.focus != fieldType {
		m.inputs[m.focus-1].Focus()
	}
	return m
}

func (m recordFormModel) focusNext() recordFormModel {
	return m.setFocus((m.focus + 1) % fieldCount)
}

func (m recordFormModel) focusPrev() recordFormModel {
	return m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
}

func (m recordFormModel) cycleType(step int) recordFormModel {
	n := len(models.RecordTypes())
	m.typeIdx = (m.typeIdx + step + n) % n
	return m
}

func (m recordFormModel) View() string {
	title := "NEW RECORD"
	if m.editing() {
		title = "EDIT: " + m.value(fieldName)
	}

	typeLine := "  " + m.recordType().Label() + "  "
	if m.focus == fieldType {
		typeLine = "< " + m.recordType().Label() + " >"
	}

	out := "Type:      " + typeLine + "\n"
	out += "Name:      [" + m.inputs[fieldName-1].View() + "]\n"
	out += "Username:  [" + m.inputs[fieldUsername-1].View() + "]\n"
	out += "Password:  [" + m.inputs[fieldPassword-1].View() + "]\n"
	out += "Login URL: [" + m.inputs[fieldLoginURL-1].View() + "]\n"

	return renderPage(title, out, "tab: next field │ ←/→: change type │ enter: save │ esc: cancel")
}
