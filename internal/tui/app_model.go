package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
)

const errVaultNotLoaded = "The vault is not loaded yet. Press r to load it again."

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx       context.Context
	client    service.VaultSyncClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mode          appMode
	currentScreen screen

	welcome  welcomeModel
	login    authFormModel
	register authFormModel
	list     listModel
	detail   detailModel
	form     recordFormModel

	// busy is set while a login, fetch or save command runs. Input is
	// ignored until it finishes.
	spinner spinner.Model
	busy    bool

	username string
	vault    models.Vault
	unsaved  bool

	// loaded is false until the first fetch succeeds. Saving before that
	// would overwrite the server copy with a partial vault.
	loaded bool

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool

	quitByUser    bool
	loggedIn      bool
	logout        bool
	sessionEnded  bool
	sessionNotice string
}

func newBaseModel(ctx context.Context, client service.VaultSyncClient, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		client:    client,
		buildInfo: buildInfo,
		logger:    logger,
		welcome:   newWelcomeModel(),
		login:     newLoginModel(),
		register:  newRegisterModel(),
		list:      newListModel(),
		spinner:   s,
	}
}

// newLoginAppModel opens the welcome screen. notice is shown above the menu,
// e.g. why the previous session ended.
func newLoginAppModel(ctx context.Context, client service.VaultSyncClient, buildInfo models.AppBuildInfo, logger *logger.Logger, notice string) appModel {
	m := newBaseModel(ctx, client, buildInfo, logger)
	m.mode = modeLogin
	m.currentScreen = screenWelcome
	m.welcome.notice = notice
	return m
}

// newMainAppModel opens the vault list and fetches the vault on Init.
func newMainAppModel(ctx context.Context, client service.VaultSyncClient, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	m := newBaseModel(ctx, client, buildInfo, logger)
	m.mode = modeMain
	m.currentScreen = screenList
	m.username = client.Username()
	m.busy = true
	m.list.status = "Loading vault..."
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.spinner.Tick, m.cmdFetch())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.busy {
			return m, nil
		}
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case registerDoneMsg:
		return m.handleRegisterDone(msg)
	case vaultFetchedMsg:
		return m.handleVaultFetched(msg)
	case vaultSavedMsg:
		return m.handleVaultSaved(msg)
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("what", msg.what).Msg("clipboard write failed")
			m.detail.status = "Clipboard is not available: " + msg.err.Error()
		} else {
			m.detail.status = "Copied " + msg.what + " to the clipboard"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View(m.spinner.View())
	case screenRegister:
		body = m.register.View(m.spinner.View())
	case screenList:
		body = m.list.View(m.listHeader(), len(m.vault))
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) listHeader() string {
	header := "Logged in as " + m.username
	if m.unsaved {
		header += "  " + unsavedStyle.Render("● unsaved changes")
	}
	if m.busy {
		header += "  " + m.spinner.View()
	}
	return header
}

func (m *appModel) showErrorf(format string, args ...any) {
	m.showError = true
	m.errorOverlay.message = fmt.Sprintf(format, args...)
}

func (m *appModel) askConfirm(action confirmAction, message, recordID string) {
	m.showConfirm = true
	m.confirm = confirmModel{message: message, action: action, recordID: recordID}
}

// ── login mode ───────────────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.welcome.notice = ""
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login = m.login.clearSecrets()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username, secret := m.login.username(), m.login.secret()
			if username == "" || secret == "" {
				m.showErrorf("Username and master secret are required")
				return m, nil
			}
			m.busy = true
			m.login.submitting = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLogin(username, secret))
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.register = m.register.clearSecrets()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username, secret := m.register.username(), m.register.secret()
			if username == "" || secret == "" {
				m.showErrorf("Username and master secret are required")
				return m, nil
			}
			if secret != m.register.confirmation() {
				m.register = m.register.clearSecrets()
				m.showErrorf("Master secrets do not match")
				return m, nil
			}
			m.busy = true
			m.register.submitting = true
			return m, tea.Batch(m.spinner.Tick, m.cmdRegister(username, secret))
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.login.submitting = false

	if msg.err != nil {
		m.logger.Warn().Err(msg.err).Msg("login failed")
		m.login = m.login.clearSecrets()
		m.showErrorf("%s", humanizeError(msg.err))
		return m, nil
	}

	m.loggedIn = true
	return m, tea.Quit
}

func (m appModel) handleRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.register.submitting = false

	if msg.err != nil {
		m.logger.Warn().Err(msg.err).Bool("registered", msg.registered).Msg("registration flow failed")
		if msg.registered {
			// account exists, let the user retry the login alone
			m.login.inputs[0].SetValue(m.register.username())
			m.currentScreen = screenLogin
		}
		m.register = m.register.clearSecrets()
		m.showErrorf("%s", humanizeError(msg.err))
		return m, nil
	}

	m.loggedIn = true
	return m, tea.Quit
}

// ── main mode ────────────────────────────────────────────────────────────────

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && (key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc)) {
			m.list.searching = false
			m.list.search.Blur()
			if key.Matches(keyMsg, keys.esc) {
				m.list.search.Reset()
			}
			m.list = m.list.refresh(m.vault)
			return m, nil
		}

		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		m.list = m.list.refresh(m.vault)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if item, ok := m.list.current(); ok {
			m.detail = newDetailModel(item)
			m.currentScreen = screenDetail
		}
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(keyMsg, keys.typeFilter):
		m.list = m.list.cycleFilter().refresh(m.vault)
	case key.Matches(keyMsg, keys.newItem):
		if !m.loaded {
			m.showErrorf("%s", errVaultNotLoaded)
			return m, nil
		}
		m.form = newRecordFormModel(nil)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if item, ok := m.list.current(); ok {
			m.form = newRecordFormModel(&item)
			m.currentScreen = screenForm
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if item, ok := m.list.current(); ok {
			m.askConfirm(confirmDelete, fmt.Sprintf("Delete %q?", item.Name), item.ID)
		}
	case key.Matches(keyMsg, keys.save):
		return m.startSave()
	case key.Matches(keyMsg, keys.refresh):
		if m.unsaved {
			m.askConfirm(confirmRefresh, "Discard unsaved changes and reload the vault?", "")
			return m, nil
		}
		return m.startFetch()
	case key.Matches(keyMsg, keys.logout):
		if m.unsaved {
			m.askConfirm(confirmLogout, "There are unsaved changes. Log out anyway?", "")
			return m, nil
		}
		return m.doLogout()
	case key.Matches(keyMsg, keys.quit):
		if m.unsaved {
			m.askConfirm(confirmQuit, "There are unsaved changes. Quit anyway?", "")
			return m, nil
		}
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	item := m.detail.item
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.reveal):
		m.detail.revealed = !m.detail.revealed
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy("password", item.Password)
	case key.Matches(keyMsg, keys.copyUser):
		return m, cmdCopy("username", item.Username)
	case key.Matches(keyMsg, keys.edit):
		m.form = newRecordFormModel(&item)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		m.askConfirm(confirmDelete, fmt.Sprintf("Delete %q?", item.Name), item.ID)
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form = recordFormModel{}
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitForm()
		}

		if m.form.focus == fieldType {
			switch {
			case key.Matches(keyMsg, keys.left):
				m.form = m.form.cycleType(-1)
			case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.reveal):
				m.form = m.form.cycleType(1)
			}
			return m, nil
		}
	}

	if m.form.focus == fieldType {
		return m, nil
	}

	var cmd tea.Cmd
	idx := m.form.focus - 1
	m.form.inputs[idx], cmd = m.form.inputs[idx].Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		c := m.confirm
		m.showConfirm = false
		m.confirm = confirmModel{}

		switch c.action {
		case confirmDelete:
			return m.applyMutation(models.Mutation{Kind: models.MutationRemove, ID: c.recordID})
		case confirmRefresh:
			return m.startFetch()
		case confirmLogout:
			return m.doLogout()
		case confirmQuit:
			m.quitByUser = true
			return m, tea.Quit
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	rec := m.form.record()
	if m.form.editing() {
		return m.applyMutation(models.Mutation{Kind: models.MutationReplace, Record: rec})
	}

	rec = m.client.NewRecord(rec.Type, rec.Name, rec.Username, rec.Password, rec.LoginURL)
	return m.applyMutation(models.Mutation{Kind: models.MutationAdd, Record: rec})
}

// applyMutation applies mu to the local vault and saves the result. The
// local vault keeps the change even if the save fails.
func (m appModel) applyMutation(mu models.Mutation) (tea.Model, tea.Cmd) {
	if !m.loaded {
		m.showErrorf("%s", errVaultNotLoaded)
		return m, nil
	}

	next, err := m.client.Mutate(m.ctx, m.vault, mu)
	if err != nil {
		m.showErrorf("%s", humanizeError(err))
		return m, nil
	}

	m.vault = next
	m.list = m.list.refresh(next)
	if mu.Kind != models.MutationRemove {
		for i, r := range m.list.items {
			if r.ID == mu.Record.ID {
				m.list.idx = i
			}
		}
	}
	if mu.Kind == models.MutationReplace && m.detail.item.ID == mu.Record.ID {
		m.detail.item = mu.Record
	}

	m.form = recordFormModel{}
	m.currentScreen = screenList
	return m.startSave()
}

func (m appModel) startSave() (tea.Model, tea.Cmd) {
	if !m.loaded {
		m.showErrorf("%s", errVaultNotLoaded)
		return m, nil
	}

	m.busy = true
	m.unsaved = m.client.HasUnsavedChanges(m.vault)
	m.list.status = "Saving..."
	return m, tea.Batch(m.spinner.Tick, m.cmdSave(m.vault.Clone()))
}

func (m appModel) startFetch() (tea.Model, tea.Cmd) {
	m.busy = true
	m.list.status = "Loading vault..."
	return m, tea.Batch(m.spinner.Tick, m.cmdFetch())
}

func (m appModel) doLogout() (tea.Model, tea.Cmd) {
	m.client.Logout()
	m.vault = nil
	m.logout = true
	return m, tea.Quit
}

// endSession leaves the main loop because the client dropped the session.
func (m appModel) endSession(err error) (tea.Model, tea.Cmd) {
	m.logger.Warn().Err(err).Msg("session ended")
	m.vault = nil
	m.sessionEnded = true
	m.sessionNotice = humanizeError(err)
	return m, tea.Quit
}

func (m appModel) handleVaultFetched(msg vaultFetchedMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		if endsSession(msg.err) {
			return m.endSession(msg.err)
		}
		m.list.status = ""
		m.showErrorf("Loading the vault failed: %s", humanizeError(msg.err))
		return m, nil
	}

	m.vault = msg.vault
	m.loaded = true
	m.unsaved = false
	m.list = m.list.refresh(m.vault)
	m.list.status = fmt.Sprintf("Loaded %d record%s", len(m.vault), plural(len(m.vault)))
	return m, cmdClearStatus()
}

func (m appModel) handleVaultSaved(msg vaultSavedMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		if endsSession(msg.err) {
			return m.endSession(msg.err)
		}
		m.unsaved = true
		m.list.status = ""
		m.showErrorf("Saving failed: %s\nYour changes are kept locally. Press s to try again.", humanizeError(msg.err))
		return m, nil
	}

	m.unsaved = m.client.HasUnsavedChanges(m.vault)
	m.list.status = "Vault saved"
	return m, cmdClearStatus()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
