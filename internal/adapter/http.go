package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of the request body when a hash
// key is configured.
const HashHeader = utils.BodyHashHeader

const userAgent = "go-offline-sync-client"

// defaultPageSize bounds a single fetch-since response.
const defaultPageSize = 500

type httpRemoteBackend struct {
	client *utils.HTTPClient

	pageSize int
	now      func() time.Time

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteBackend constructs an HTTP/REST implementation of
// [RemoteBackend]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and initialises the shared HMAC
// body signer used for integrity headers.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteBackend(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteBackend, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: userAgent,
		Signer:    utils.NewBodySigner(appCfg.HashKey),
	})

	return &httpRemoteBackend{
		client:   client,
		pageSize: defaultPageSize,
		now:      time.Now,
		logger:   logger,
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

func (h *httpRemoteBackend) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteBackend) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// AuthenticatedUser reads the subject of the stored token without verifying
// its signature; the server does that on every request.
func (h *httpRemoteBackend) AuthenticatedUser() (int64, bool) {
	token := h.Token()
	if token == "" {
		return 0, false
	}
	session, err := utils.ParseSessionFromJWT(token)
	if err != nil {
		return 0, false
	}
	if !session.Valid(h.now()) {
		return 0, false
	}
	return session.UserID, true
}

// Register POSTs the credentials to /api/auth/register. The token is taken
// from the Authorization response header.
func (h *httpRemoteBackend) Register(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", "register", user)
}

// Login POSTs the credentials to /api/auth/login.
func (h *httpRemoteBackend) Login(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", "login", user)
}

func (h *httpRemoteBackend) authenticate(ctx context.Context, path, op string, user models.User) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s request: %w: %w", op, ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%s parse bearer token: %w", op, err)
	}
	session, err := utils.ParseSessionFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s parse session: %w", op, err)
	}

	h.SetToken(token)
	return session, nil
}

// Upsert PUTs the record to /api/records/{type}/{id}.
func (h *httpRemoteBackend) Upsert(ctx context.Context, record models.RemoteRecord) (models.RemoteRecord, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("encode record %s/%s: %w", record.Type, record.ID, err)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.RemoteRecord{}, err
	}

	var saved models.RemoteRecord
	resp, err := h.withBody(req, body).
		SetPathParams(recordPath(record.Type, record.ID)).
		SetResult(&saved).
		Put("/api/records/{type}/{id}")
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("upsert request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	return saved, nil
}

// Delete sends DELETE /api/records/{type}/{id}.
func (h *httpRemoteBackend) Delete(ctx context.Context, entityType models.EntityType, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(recordPath(entityType, id)).
		Delete("/api/records/{type}/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Fetch sends GET /api/records/{type}/{id}.
func (h *httpRemoteBackend) Fetch(ctx context.Context, entityType models.EntityType, id string) (models.RemoteRecord, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.RemoteRecord{}, err
	}

	var record models.RemoteRecord
	resp, err := req.
		SetPathParams(recordPath(entityType, id)).
		SetResult(&record).
		Get("/api/records/{type}/{id}")
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("fetch request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	return record, nil
}

// FetchSince pages through GET /api/records/{type}?since=&limit= until a
// short page is returned. The server assigns strictly increasing versions
// per type, so the last UpdatedAt of a page is a safe cursor.
func (h *httpRemoteBackend) FetchSince(ctx context.Context, entityType models.EntityType, since time.Time) ([]models.RemoteRecord, error) {
	var all []models.RemoteRecord
	cursor := since

	for {
		page, err := h.fetchPage(ctx, entityType, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Records...)

		if len(page.Records) < h.pageSize {
			return all, nil
		}

		next := page.Records[len(page.Records)-1].UpdatedAt
		if !next.After(cursor) {
			return nil, fmt.Errorf("fetch %s since %s: cursor did not advance", entityType, cursor.Format(time.RFC3339Nano))
		}
		cursor = next
	}
}

func (h *httpRemoteBackend) fetchPage(ctx context.Context, entityType models.EntityType, since time.Time) (models.RecordsPage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.RecordsPage{}, err
	}

	var page models.RecordsPage
	resp, err := req.
		SetPathParam("type", string(entityType)).
		SetQueryParam("since", since.UTC().Format(time.RFC3339Nano)).
		SetQueryParam("limit", strconv.Itoa(h.pageSize)).
		SetResult(&page).
		Get("/api/records/{type}")
	if err != nil {
		return models.RecordsPage{}, fmt.Errorf("fetch since request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecordsPage{}, err
	}

	return page, nil
}

// Ping sends GET /api/health.
func (h *httpRemoteBackend) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("ping: %w: %w", ErrTransport, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteBackend) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func (h *httpRemoteBackend) withBody(req *resty.Request, body []byte) *resty.Request {
	return req.SetHeader("Content-Type", "application/json").SetBody(body)
}

func recordPath(entityType models.EntityType, id string) map[string]string {
	return map[string]string{"type": string(entityType), "id": id}
}
