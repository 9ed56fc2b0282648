package tui

import (
	"github.com/MKhiriev/go-vault-sync/models"
)

type loginDoneMsg struct {
	err error
}

// registerDoneMsg reports the account creation and the login that follows
// it. registered is true when only the login failed.
type registerDoneMsg struct {
	registered bool
	err        error
}

type vaultFetchedMsg struct {
	vault models.Vault
	err   error
}

type vaultSavedMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
