// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	usernameCharLimit = 64
	secretCharLimit   = 256
)

// authFormModel is the username / master secret form shared by the login and
// register screens. The register screen adds a confirmation input.
type authFormModel struct {
	title      string
	submitText string
	inputs     []textinput.Model
	labels     []string
	focus      int
	submitting bool
}

func newUsernameInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "username"
	in.CharLimit = usernameCharLimit
	in.Width = 40
	return in
}

func newSecretInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = secretCharLimit
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// newLoginModel creates the login form. The username field receives focus
// immediately; the master secret uses masked echo.
func newLoginModel() authFormModel {
	m := authFormModel{
		title:      "LOG IN",
		submitText: "Log in",
		inputs:     []textinput.Model{newUsernameInput(), newSecretInput("master secret")},
		labels:     []string{"Username", "Secret"},
	}
	m.inputs[0].Focus()
	return m
}

func (m authFormModel) username() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m authFormModel) secret() string {
	return m.inputs[1].Value()
}

// confirmation is the repeated secret on the register screen.
func (m authFormModel) confirmation() string {
	if len(m.inputs) < 3 {
		return m.secret()
	}
	return m.inputs[2].Value()
}

// clearSecrets empties every masked input. The username stays.
func (m authFormModel) clearSecrets() authFormModel {
	for i := 1; i < len(m.inputs); i++ {
		m.inputs[i].Reset()
	}
	return m
}

func (m authFormModel) focusNext() authFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m authFormModel) focusPrev() authFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// View renders the form as a two-column table. spinnerView is shown next to
// the submit button while the request and key derivation run.
func (m authFormModel) View(spinnerView string) string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, in := range m.inputs {
		b.WriteString(padRight(m.labels[i], 9))
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[" + m.submitText + "...] " + spinnerView + "\n")
	} else {
		b.WriteString("\n[" + m.submitText + "]\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
