package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/resetbot/internal/dailies"
	"github.com/osse101/resetbot/internal/reminder"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

type capturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// TestContext is a Discord session whose REST calls never leave the process.
type TestContext struct {
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu       sync.Mutex
	requests []capturedRequest
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{Session: session}
	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.capture(req)
			return jsonResponse(http.StatusOK, "{}"), nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}
	return ctx
}

func (c *TestContext) capture(req *http.Request) capturedRequest {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	r := capturedRequest{Method: req.Method, Path: req.URL.Path, Body: body}

	c.mu.Lock()
	c.requests = append(c.requests, r)
	c.mu.Unlock()
	return r
}

// Requests returns the captured requests whose path ends with suffix.
func (c *TestContext) Requests(suffix string) []capturedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []capturedRequest
	for _, r := range c.requests {
		if strings.HasSuffix(r.Path, suffix) {
			out = append(out, r)
		}
	}
	return out
}

// Replies decodes the content of every interaction callback sent so far.
func (c *TestContext) Replies(t *testing.T) []string {
	t.Helper()

	var out []string
	for _, r := range c.Requests("/callback") {
		var body struct {
			Type int `json:"type"`
			Data struct {
				Content string `json:"content"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(r.Body, &body))
		out = append(out, body.Data.Content)
	}
	return out
}

func jsonResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     header,
	}
}

func newInteraction(command, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-" + command,
			Token: "token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: command,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "Tester"},
			},
		},
	}
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

// newTestTracker builds a stopped tracker at 2024-06-04 01:47:15 UTC with
// the reset at 04:00.
func newTestTracker(t *testing.T, seed ...string) dailies.Service {
	t.Helper()

	cfg := dailies.Config{
		ResetHourUTC:   4,
		ResetMinuteUTC: 0,
		GameName:       "Genshin",
		ServerRegion:   "NA",
	}
	clock := fixedClock(time.Date(2024, 6, 4, 1, 47, 15, 0, time.UTC))
	tracker, err := dailies.NewService(cfg, reminder.NewRegistry(seed...),
		&dailies.MockNotifier{}, &dailies.MockPresence{}, dailies.WithClock(clock))
	require.NoError(t, err)
	return tracker
}
