// Package client is a typed HTTP client for the RondaFlow REST API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/gps"
)

// Actor is the identity returned by login and /me.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// Session is the login response.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Actor     `json:"user"`
}

// Answer is one checklist item of a round.
type Answer struct {
	ID          uuid.UUID `json:"id"`
	SectorName  string    `json:"sectorName"`
	Title       string    `json:"title"`
	ItemOrder   int       `json:"itemOrder"`
	Status      string    `json:"status"`
	Observation string    `json:"observation"`
}

// Round is the subset of a round the CLI works with.
type Round struct {
	ID              uuid.UUID  `json:"id"`
	TemplateName    string     `json:"templateName"`
	TemplateVersion int        `json:"templateVersion"`
	Status          string     `json:"status"`
	AnalystName     string     `json:"analystName"`
	StartedAt       time.Time  `json:"startedAt"`
	FinishedAt      *time.Time `json:"finishedAt"`
	Answers         []Answer   `json:"answers"`
}

// Ping is an accepted location sample.
type Ping struct {
	ID          uuid.UUID `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CollectedAt time.Time `json:"collectedAt"`
	Source      string    `json:"source"`
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client talks to one RondaFlow server. It is safe for concurrent use once
// logged in.
type Client struct {
	http *resty.Client
}

// New creates a client for baseURL, e.g. http://localhost:8080.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		SetHeader("Accept", "application/json").
		SetError(&APIError{})

	// Transport failures and 5xx are retried. A retried ping may duplicate.
	c.AddRetryCondition(func(r *resty.Response, err error) bool {
		return err != nil || r.StatusCode() >= http.StatusInternalServerError
	})

	return &Client{http: c}
}

// SetToken authenticates later calls with a bearer token.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// Login opens a session and keeps its token for later calls.
func (c *Client) Login(ctx context.Context, username string, role domain.Role, password string) (*Session, error) {
	var out Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"role":     string(role),
		"password": password,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Logout revokes the current session.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// StartOrContinue returns the analyst's open round, opening one if needed.
func (c *Client) StartOrContinue(ctx context.Context) (*Round, error) {
	var out Round
	if err := c.do(ctx, http.MethodPost, "/api/rounds", nil, &out); err != nil {
		return nil, fmt.Errorf("start round: %w", err)
	}
	return &out, nil
}

// AnswerItem marks an item ok or incident. A nil observation keeps the stored one.
func (c *Client) AnswerItem(ctx context.Context, roundID, itemID uuid.UUID, status domain.AnswerStatus, observation *string) (*Round, error) {
	body := map[string]any{"itemAnswerId": itemID, "status": string(status)}
	if observation != nil {
		body["observation"] = *observation
	}

	var out Round
	if err := c.do(ctx, http.MethodPost, "/api/rounds/"+roundID.String()+"/answers", body, &out); err != nil {
		return nil, fmt.Errorf("answer item: %w", err)
	}
	return &out, nil
}

// RecordLocation appends one location sample to the round.
func (c *Client) RecordLocation(ctx context.Context, roundID uuid.UUID, r gps.Reading, source domain.LocationSource) (*Ping, error) {
	body := map[string]any{
		"latitude":  r.Latitude,
		"longitude": r.Longitude,
		"source":    string(source),
	}
	if r.AccuracyMeters != nil {
		body["accuracyMeters"] = *r.AccuracyMeters
	}

	var out Ping
	if err := c.do(ctx, http.MethodPost, "/api/rounds/"+roundID.String()+"/locations", body, &out); err != nil {
		return nil, fmt.Errorf("record location: %w", err)
	}
	return &out, nil
}

// Finalize closes the round. Repeating it is harmless.
func (c *Client) Finalize(ctx context.Context, roundID uuid.UUID) (*Round, error) {
	var out Round
	if err := c.do(ctx, http.MethodPost, "/api/rounds/"+roundID.String()+"/finalize", nil, &out); err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}
	return &out, nil
}

// ExportXLSX downloads the dashboard workbook for day (YYYY-MM-DD, empty for today).
func (c *Client) ExportXLSX(ctx context.Context, day string) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if day != "" {
		req.SetQueryParam("day", day)
	}
	resp, err := req.Get("/api/dashboard/export.xlsx")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if err := apiError(resp); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return resp.Body(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	return apiError(resp)
}

func apiError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	var parsed *APIError
	if e, ok := resp.Error().(*APIError); ok && e != nil {
		parsed = e
	}
	if parsed != nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	return apiErr
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// RoundSender delivers sampler readings to one round.
type RoundSender struct {
	Client  *Client
	RoundID uuid.UUID
}

var _ gps.Sender = RoundSender{}

// Send implements gps.Sender.
func (s RoundSender) Send(ctx context.Context, r gps.Reading, source domain.LocationSource) error {
	_, err := s.Client.RecordLocation(ctx, s.RoundID, r, source)
	return err
}
