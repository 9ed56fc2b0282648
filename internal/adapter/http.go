package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath = "/api/register"
	loginPath    = "/api/login"
	accountsPath = "/api/accounts"
	healthPath   = "/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and applies
// cfg.RequestTimeout to every call. No request is retried.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. It POSTs creds to /api/register and
// expects 201.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post(registerPath)
	if err != nil {
		return h.transportError("Register", err)
	}

	h.logResponse("Register", resp)
	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs creds to /api/login and returns
// the token from the {"token": "..."} body.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return "", h.transportError("Login", err)
	}

	h.logResponse("Login", resp)
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decode login response: %w", ErrUnexpectedResponse, err)
	}
	if strings.TrimSpace(body.Token) == "" {
		return "", fmt.Errorf("%w: empty token", ErrUnexpectedResponse)
	}

	return body.Token, nil
}

// GetVault implements [ServerAdapter]. A JSON null encrypted_vault is
// returned as nil.
func (h *httpServerAdapter) GetVault(ctx context.Context, token string) (*string, error) {
	resp, err := h.authedRequest(ctx, token).Get(accountsPath)
	if err != nil {
		return nil, h.transportError("GetVault", err)
	}

	h.logResponse("GetVault", resp)
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.VaultPayload
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode vault response: %w", ErrUnexpectedResponse, err)
	}

	return body.EncryptedVault, nil
}

// SaveVault implements [ServerAdapter]. The envelope replaces whatever the
// server holds; there is no version check.
func (h *httpServerAdapter) SaveVault(ctx context.Context, token string, envelope string) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(models.VaultPayload{EncryptedVault: &envelope}).
		Post(accountsPath)
	if err != nil {
		return h.transportError("SaveVault", err)
	}

	h.logResponse("SaveVault", resp)
	return mapHTTPError(resp)
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return h.transportError("Health", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: health status %d", ErrServerUnavailable, resp.StatusCode())
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) transportError(fn string, err error) error {
	h.logger.Err(err).Str("func", fn).Msg("request to server failed")
	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}

func (h *httpServerAdapter) logResponse(fn string, resp *resty.Response) {
	h.logger.Debug().
		Str("func", fn).
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Body())).
		Dur("duration", resp.Time()).
		Msg("server response")
}
