package planner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the nailBook API over JSON/HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

// Logout drops the session token; later calls go out unauthenticated. JWTs
// are stateless, so there is nothing to invalidate server-side.
func (c *Client) Logout() {
	c.token = ""
}

// --------- Auth ---------

type authResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

func (c *Client) Register(ctx context.Context, fullName, email, password string) error {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"full_name": fullName,
		"email":     email,
		"password":  password,
	}, &out)
	if err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out struct {
		User Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// --------- Reads ---------

type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func (c *Client) ListDay(ctx context.Context, date string) ([]Booking, error) {
	var out listEnvelope[Booking]
	path := "/api/me/appointments?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) ClientHistory(ctx context.Context, clientName string) ([]Booking, error) {
	var out listEnvelope[Booking]
	path := "/api/me/appointments/history?client=" + url.QueryEscape(clientName)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) BusyDates(ctx context.Context) ([]string, error) {
	var out listEnvelope[string]
	if err := c.do(ctx, http.MethodGet, "/api/me/busy-dates", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) RevenueWindow(ctx context.Context, from, to string) (*Window, error) {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	path := "/api/me/revenue"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out Window
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --------- Mutations ---------

func (c *Client) CreateBooking(ctx context.Context, in BookingInput) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPost, "/api/me/appointments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/me/appointments/%d", id), nil, nil)
}

func (c *Client) CreateIncome(ctx context.Context, in IncomeInput) (*Income, error) {
	var out Income
	if err := c.do(ctx, http.MethodPost, "/api/me/income-records", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/me/uploads", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", decodeError(resp)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// --------- Realtime ---------

// Events opens the SSE stream and emits one tick per change notification.
// The channel closes when ctx is cancelled or the server hangs up; callers
// that outlive a watched date must cancel and resubscribe so no stale
// subscription is retained.
func (c *Client) Events(ctx context.Context) (<-chan struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/me/events", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			if !strings.HasPrefix(scanner.Text(), "data:") {
				continue
			}
			select {
			case ch <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// --------- Plumbing ---------

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Error     string `json:"error"`
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &payload)

	switch {
	case payload.Message != "":
		return fmt.Errorf("%s", payload.Message)
	case payload.Error != "":
		return fmt.Errorf("%s", payload.Error)
	case payload.ErrorCode != "":
		return fmt.Errorf("%s", payload.ErrorCode)
	}
	return fmt.Errorf("request failed: %s", resp.Status)
}
