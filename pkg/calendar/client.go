// Package calendar is a thin Google Calendar v3 REST client scoped to the
// primary calendar. Tokens are supplied per call via an oauth2.TokenSource so
// each user's refresh token drives their own requests.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const baseURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events"

// ErrAuthExpired marks a 401/403 from Google, meaning the stored grant no
// longer works and the user must reconnect their account.
var ErrAuthExpired = errors.New("Calendar authorization expired")

// ErrNotFound marks a 404 for an event id, typically one deleted from the
// Google Calendar UI directly.
var ErrNotFound = errors.New("Calendar event not found")

// Google color ids per activity category.
var categoryColors = map[string]string{
	"workout": "4",  // flamingo
	"meal":    "10", // basil
	"water":   "7",  // peacock
	"other":   "8",  // graphite
}

// ColorFor maps an activity category to a Google event color id.
func ColorFor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return categoryColors["other"]
}

// EventTime is a dateTime bound of an event.
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// ReminderOverride is a single popup or email reminder.
type ReminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// Reminders disables defaults and sets explicit overrides.
type Reminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []ReminderOverride `json:"overrides,omitempty"`
}

// Event is the subset of the Calendar v3 event resource this app writes.
type Event struct {
	Id          string     `json:"id,omitempty"`
	Summary     string     `json:"summary"`
	Description string     `json:"description,omitempty"`
	Start       EventTime  `json:"start"`
	End         EventTime  `json:"end"`
	ColorId     string     `json:"colorId,omitempty"`
	Reminders   *Reminders `json:"reminders,omitempty"`
}

// NewEvent builds an event for an activity. Popup and email reminders are
// attached for any minute value greater than zero.
func NewEvent(title, description, category string, start, end time.Time, popupMinutes, emailMinutes int) Event {
	var overrides []ReminderOverride
	if popupMinutes > 0 {
		overrides = append(overrides, ReminderOverride{Method: "popup", Minutes: popupMinutes})
	}
	if emailMinutes > 0 {
		overrides = append(overrides, ReminderOverride{Method: "email", Minutes: emailMinutes})
	}
	return Event{
		Summary:     title,
		Description: description,
		Start:       EventTime{DateTime: start.Format(time.RFC3339), TimeZone: start.Location().String()},
		End:         EventTime{DateTime: end.Format(time.RFC3339), TimeZone: end.Location().String()},
		ColorId:     ColorFor(category),
		Reminders: &Reminders{
			UseDefault: false,
			Overrides:  overrides,
		},
	}
}

// Client calls the Calendar API. The zero value is not usable; construct with
// NewClient.
type Client struct {
	http *http.Client
	base string
}

func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: 15 * time.Second}, base: baseURL}
}

// NewClientWithBase targets a different endpoint, used by tests.
func NewClientWithBase(base string) *Client {
	return &Client{http: &http.Client{Timeout: 15 * time.Second}, base: base}
}

func (c *Client) do(ctx context.Context, ts oauth2.TokenSource, method, u string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("calendar: encode request: %w", err)
		}
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("calendar: build request: %w", err)
	}
	tok, err := ts.Token()
	if err != nil {
		// refresh failures mean the grant was revoked or expired
		return nil, ErrAuthExpired
	}
	tok.SetAuthHeader(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, ErrAuthExpired
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("calendar: google returned %d: %s", resp.StatusCode, string(data))
	}
	return data, nil
}

// Insert creates the event and returns the Google-assigned event id.
func (c *Client) Insert(ctx context.Context, ts oauth2.TokenSource, ev Event) (string, error) {
	data, err := c.do(ctx, ts, http.MethodPost, c.base, ev)
	if err != nil {
		return "", err
	}
	var created Event
	if err := json.Unmarshal(data, &created); err != nil {
		return "", fmt.Errorf("calendar: decode insert response: %w", err)
	}
	return created.Id, nil
}

// Update replaces the event with the given id.
func (c *Client) Update(ctx context.Context, ts oauth2.TokenSource, eventId string, ev Event) error {
	u := c.base + "/" + url.PathEscape(eventId)
	_, err := c.do(ctx, ts, http.MethodPut, u, ev)
	return err
}

// Delete removes the event. A missing event is not an error; the goal state
// is already reached.
func (c *Client) Delete(ctx context.Context, ts oauth2.TokenSource, eventId string) error {
	u := c.base + "/" + url.PathEscape(eventId)
	_, err := c.do(ctx, ts, http.MethodDelete, u, nil)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
