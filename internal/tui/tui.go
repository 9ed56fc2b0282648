// Package tui is the terminal user interface of the vault client.
//
// The UI runs in two phases, each as its own Bubble Tea program: the login
// flow (welcome, login and register screens) and the main loop (vault list,
// record detail and the record form). Network calls and key derivation run
// as tea.Cmd functions so the screen keeps redrawing while they are in
// flight.
package tui

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	client    service.VaultSyncClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	options []tea.ProgramOption
}

// MainLoopResult tells the caller why the main loop ended. All fields false
// means the user quit.
type MainLoopResult struct {
	Logout bool

	// SessionEnded is set when the server rejected the session or the vault
	// did not decrypt. Notice explains it to the user.
	SessionEnded bool
	Notice       string
}

// New creates the UI. Without options the programs use the alternate screen.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.VaultSyncClient == nil {
		return nil, errNoClientServices
	}
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}

	return &TUI{
		client:    services.VaultSyncClient,
		buildInfo: buildInfo,
		logger:    logger,
		options:   opts,
	}, nil
}

// LoginFlow blocks until the user has logged in or registered. It returns
// [ErrUserQuit] if the user left instead.
func (t *TUI) LoginFlow(ctx context.Context, notice string) error {
	model := newLoginAppModel(ctx, t.client, t.buildInfo, t.logger, notice)
	finalModel, err := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the vault screens for the logged-in session.
func (t *TUI) MainLoop(ctx context.Context) (MainLoopResult, error) {
	model := newMainAppModel(ctx, t.client, t.buildInfo, t.logger)
	finalModel, err := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if err != nil {
		return MainLoopResult{}, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return MainLoopResult{}, tea.ErrProgramKilled
	}

	return MainLoopResult{
		Logout:       result.logout,
		SessionEnded: result.sessionEnded,
		Notice:       result.sessionNotice,
	}, nil
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := make([]tea.ProgramOption, 0, len(t.options)+1)
	opts = append(opts, tea.WithContext(ctx))
	return append(opts, t.options...)
}
