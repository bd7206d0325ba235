package pitchtalk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/PitchBot_Go/internal/domain"
	"github.com/osse101/PitchBot_Go/internal/logger"
	"github.com/osse101/PitchBot_Go/internal/metrics"
)

// Client is the subset of the PitchTalk API used by the farming and referral jobs
type Client interface {
	Authenticate(ctx context.Context, identity domain.Identity) (*domain.AuthData, error)
	GetFarming(ctx context.Context, token string) (*domain.FarmingState, error)
	ClaimFarming(ctx context.Context, token string) (*domain.FarmingState, error)
	ReferralCount(ctx context.Context, token string) (int, error)
	ClaimReferral(ctx context.Context, token string) (*domain.FarmingState, error)
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: API returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: API returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// APIClient handles communication with the PitchTalk API
type APIClient struct {
	BaseURL string
	Origin  string
	Client  *http.Client
}

// NewAPIClient creates a new API client using the given HTTP client
func NewAPIClient(baseURL, origin string, client *http.Client) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Origin:  origin,
		Client:  client,
	}
}

type authRequest struct {
	TelegramID string `json:"telegramId"`
	Username   string `json:"username"`
	Hash       string `json:"hash"`
}

// Authenticate exchanges the identity's query id for a bearer token
func (c *APIClient) Authenticate(ctx context.Context, identity domain.Identity) (*domain.AuthData, error) {
	req := authRequest{
		TelegramID: strconv.FormatInt(identity.TelegramID, 10),
		Username:   identity.Username,
		Hash:       identity.QueryID,
	}

	body, err := c.doRequest(ctx, EndpointAuth, http.MethodPost, PathAuth, "", req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFailed, err)
	}

	var auth domain.AuthData
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, fmt.Errorf("%w: failed to decode auth data: %w", domain.ErrAuthFailed, err)
	}
	if auth.AccessToken == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFailed, domain.ErrEmptyAccessToken)
	}

	return &auth, nil
}

// GetFarming fetches the current farming state
func (c *APIClient) GetFarming(ctx context.Context, token string) (*domain.FarmingState, error) {
	body, err := c.doRequest(ctx, EndpointFarmings, http.MethodGet, PathFarmings, token, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	state, err := decodeState(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	return state, nil
}

// ClaimFarming claims the matured farming reward and starts a new cycle
func (c *APIClient) ClaimFarming(ctx context.Context, token string) (*domain.FarmingState, error) {
	body, err := c.doRequest(ctx, EndpointClaimFarming, http.MethodPost, PathClaimFarming, token, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrClaimFailed, err)
	}

	state, err := decodeState(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrClaimFailed, err)
	}
	return state, nil
}

// ReferralCount returns how many referral rewards are waiting to be claimed
func (c *APIClient) ReferralCount(ctx context.Context, token string) (int, error) {
	body, err := c.doRequest(ctx, EndpointReferralCount, http.MethodGet, PathReferralCount, token, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid referral count %q", domain.ErrFetchFailed, excerpt(body))
	}
	return count, nil
}

// ClaimReferral claims pending referral rewards
func (c *APIClient) ClaimReferral(ctx context.Context, token string) (*domain.FarmingState, error) {
	body, err := c.doRequest(ctx, EndpointClaimReferral, http.MethodPost, PathClaimReferral, token, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrClaimFailed, err)
	}

	state, err := decodeState(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrClaimFailed, err)
	}
	return state, nil
}

// doRequest performs one HTTP request and returns the body of a 2xx response.
// There is no retry: callers decide what a failure means.
func (c *APIClient) doRequest(ctx context.Context, endpoint, method, path, token string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(HeaderAccept, ContentTypeJSON)
	if body != nil {
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}
	if token != "" {
		req.Header.Set(HeaderAuthorization, BearerPrefix+token)
		req.Header.Set(HeaderOrigin, c.Origin)
		req.Header.Set(HeaderReferer, c.Origin)
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		metrics.ObserveAPIRequest(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveAPIRequest(endpoint, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	logger.FromContext(ctx).Debug("API response", "endpoint", endpoint, "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: excerpt(data)}
	}

	return data, nil
}

func decodeState(body []byte) (*domain.FarmingState, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, domain.ErrNoFarmingState
	}

	var state domain.FarmingState
	if err := json.Unmarshal(trimmed, &state); err != nil {
		return nil, fmt.Errorf("failed to decode farming state: %w", err)
	}
	return &state, nil
}

// excerpt trims body to at most maxBodyExcerpt bytes without splitting a rune
func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= maxBodyExcerpt {
		return s
	}
	cut := maxBodyExcerpt
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
