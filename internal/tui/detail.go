package tui

import (
	"fmt"

	"github.com/MKhiriev/go-vault-sync/models"
)

type detailModel struct {
	item     models.CredentialRecord
	revealed bool
	status   string
}

func newDetailModel(item models.CredentialRecord) detailModel {
	return detailModel{item: item}
}

func (m detailModel) password() string {
	if m.revealed {
		return valueOrDash(m.item.Password)
	}
	if m.item.Password == "" {
		return "-"
	}
	return maskedSecret
}

func (m detailModel) View() string {
	out := fmt.Sprintf("%s  [%s]\n\n", m.item.Name, m.item.Type.Label())
	out += fmt.Sprintf("Username:  %s\n", valueOrDash(m.item.Username))
	out += fmt.Sprintf("Password:  %s\n", m.password())
	out += fmt.Sprintf("Login URL: %s\n", valueOrDash(m.item.LoginURL))

	if m.status != "" {
		out += "\n" + m.status
	}

	reveal := "space: show password"
	if m.revealed {
		reveal = "space: hide password"
	}

	return renderPage("RECORD", out, reveal+" │ c: copy password │ u: copy username │ e: edit │ d: delete │ esc: back")
}
