package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danakir/planvite/internal/common"
	"github.com/danakir/planvite/internal/logging"
	"github.com/danakir/planvite/internal/models"
)

// RESTClient is the HTTP/JSON implementation of Client.
type RESTClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewRESTClient builds a client for the backend at baseURL. The token source
// is wired separately via SetTokenSource: the session manager needs the
// client to log in, so it cannot exist before the client does.
func NewRESTClient(baseURL string, timeout time.Duration, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// SetTokenSource wires the session as the bearer-token supplier. Until it is
// set, requests go out unauthenticated.
func (c *RESTClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// do performs one round trip and returns the raw response body on 2xx.
// Everything else becomes a *RequestError.
func (c *RESTClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "transport failure", "method", method, "path", path, "error", err)
		return nil, &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{StatusCode: resp.StatusCode, Message: serverMessage(data, resp.StatusCode)}
		c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return nil, reqErr
	}

	return data, nil
}

// serverMessage extracts the backend's {"message": ...} payload when present,
// falling back to the standard status text.
func serverMessage(body []byte, statusCode int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(statusCode)
}

func (c *RESTClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/login", creds)
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("decode login response: %w", common.ErrInvalidToken)
	}
	return resp.Token, nil
}

func (c *RESTClient) Register(ctx context.Context, creds models.Credentials) error {
	_, err := c.do(ctx, http.MethodPost, "/register", creds)
	return err
}

// FetchEvents accepts both response shapes the backend has been seen to
// produce: {"events": [...]} and a bare array.
func (c *RESTClient) FetchEvents(ctx context.Context) ([]models.EventSummary, error) {
	data, err := c.do(ctx, http.MethodGet, "/events", nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var events []models.EventSummary
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, fmt.Errorf("decode events list: %w", err)
		}
		return events, nil
	}

	var resp struct {
		Events []models.EventSummary `json:"events"`
	}
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("decode events list: %w", err)
	}
	return resp.Events, nil
}

func (c *RESTClient) GenerateEvent(ctx context.Context, prompt string) (json.RawMessage, error) {
	body := struct {
		Prompt string `json:"prompt"`
	}{Prompt: prompt}

	data, err := c.do(ctx, http.MethodPost, "/generate-event", body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (c *RESTClient) CreateEvent(ctx context.Context, draft json.RawMessage) (*models.Event, error) {
	data, err := c.do(ctx, http.MethodPost, "/events", draft)
	if err != nil {
		return nil, err
	}

	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("decode created event: %w", err)
	}
	return &event, nil
}

// FetchEvent folds the {event, guests} response into one entity. A flat
// event body (older backend revisions) is accepted as well.
func (c *RESTClient) FetchEvent(ctx context.Context, id int64) (*models.Event, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Event  *models.Event  `json:"event"`
		Guests []models.Guest `json:"guests"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	if resp.Event == nil {
		var event models.Event
		if err := json.Unmarshal(data, &event); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		return &event, nil
	}

	if resp.Guests != nil {
		resp.Event.Guests = resp.Guests
	}
	return resp.Event, nil
}

func (c *RESTClient) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", event.ID), event)
	if err != nil {
		return nil, err
	}

	var updated models.Event
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("decode updated event: %w", err)
	}
	return &updated, nil
}

func (c *RESTClient) DeleteEvent(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil)
	return err
}

func (c *RESTClient) AddGuest(ctx context.Context, eventID int64, name, phone string) (*models.Guest, error) {
	body := struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}{Name: name, Phone: phone}

	data, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/guests", eventID), body)
	if err != nil {
		return nil, err
	}

	var guest models.Guest
	if err := json.Unmarshal(data, &guest); err != nil {
		return nil, fmt.Errorf("decode created guest: %w", err)
	}
	return &guest, nil
}

func (c *RESTClient) DeleteGuest(ctx context.Context, guestID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/guests/%d", guestID), nil)
	return err
}
