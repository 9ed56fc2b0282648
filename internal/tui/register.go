package tui

import "github.com/charmbracelet/bubbles/textinput"

// newRegisterModel creates the registration form: username, master secret
// and its confirmation.
func newRegisterModel() authFormModel {
	m := authFormModel{
		title:      "REGISTER",
		submitText: "Create account",
		inputs: []textinput.Model{
			newUsernameInput(),
			newSecretInput("master secret"),
			newSecretInput("repeat master secret"),
		},
		labels: []string{"Username", "Secret", "Repeat"},
	}
	m.inputs[0].Focus()
	return m
}
