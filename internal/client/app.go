package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/tui"
)

var errNoUI = errors.New("no user interface is configured")

type App struct {
	client service.VaultSyncClient
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.VaultSyncClient == nil {
		return nil, errors.New("client services are not configured")
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{
		client: services.VaultSyncClient,
		ui:     ui,
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	return a.run(context.Background())
}

// run alternates between the login flow and the main loop until the user
// quits. The session is always cleared before returning.
func (a *App) run(ctx context.Context) error {
	defer a.client.Logout()

	notice := ""
	for {
		if err := a.ui.LoginFlow(ctx, notice); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				a.logger.Info().Msg("user quit before logging in")
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		a.logger.Info().Str("username", a.client.Username()).Msg("session started")

		result, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}

		switch {
		case result.SessionEnded:
			a.logger.Warn().Str("notice", result.Notice).Msg("session ended")
			a.client.Logout()
			notice = result.Notice
		case result.Logout:
			a.logger.Info().Msg("logged out")
			notice = ""
		default:
			a.logger.Info().Msg("user quit")
			return nil
		}
	}
}
