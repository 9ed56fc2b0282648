package tui

import (
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 3 * time.Second

// clipboardWriteAll is the system clipboard writer.
var clipboardWriteAll = clipboard.WriteAll

// cmdLogin runs the login, including key derivation, off the UI loop.
func (m appModel) cmdLogin(username, secret string) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		return loginDoneMsg{err: client.Login(ctx, username, secret)}
	}
}

// cmdRegister creates the account and logs straight into it.
func (m appModel) cmdRegister(username, secret string) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		if err := client.Register(ctx, username, secret); err != nil {
			return registerDoneMsg{err: err}
		}
		return registerDoneMsg{registered: true, err: client.Login(ctx, username, secret)}
	}
}

func (m appModel) cmdFetch() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		vault, err := client.FetchVault(ctx)
		return vaultFetchedMsg{vault: vault, err: err}
	}
}

func (m appModel) cmdSave(vault models.Vault) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		return vaultSavedMsg{err: client.SaveVault(ctx, vault)}
	}
}

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboardWriteAll(value)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
