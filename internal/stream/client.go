package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kettle31/spyglass/internal/diag"
	"github.com/kettle31/spyglass/internal/record"
)

// Sink receives the outcome of each inbound stream payload.
type Sink interface {
	Append(record.Record)
	NoteMalformed()
}

// State is the connection lifecycle phase.
type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "live"
	default:
		return "disconnected"
	}
}

const (
	defaultReconnectDelay = 3 * time.Second
	defaultUserAgent      = "spyglass/0.1"
)

// Options configure the stream client.
type Options struct {
	ServerURL      string        // base URL or host:port of the log server
	Password       string        // optional; attached URL-encoded when non-empty
	ReconnectDelay time.Duration // zero uses the 3 s default
	HTTPClient     *http.Client  // optional; the default has no timeout, the stream is long-lived
	Diag           *slog.Logger  // optional diagnostic sink
}

// Client maintains the single long-lived connection to the log stream. It
// dials, decodes each server-sent event into a record, and on any failure
// waits a fixed delay and dials again, forever. Context cancellation is the
// only exit.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	sink      Sink
	delay     time.Duration
	diag      *slog.Logger
	userAgent string
	state     atomic.Int32
}

// New builds a stream client delivering records to sink.
func New(sink Sink, opts Options) (*Client, error) {
	if sink == nil {
		return nil, fmt.Errorf("sink is required")
	}
	base, err := parseBaseURL(opts.ServerURL)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("history", "true")
	if opts.Password != "" {
		values.Set("password", opts.Password)
	}
	rel := &url.URL{Path: "/api/logs/stream", RawQuery: values.Encode()}

	delay := opts.ReconnectDelay
	if delay <= 0 {
		delay = defaultReconnectDelay
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := opts.Diag
	if logger == nil {
		logger = diag.Discard()
	}

	return &Client{
		endpoint:  base.ResolveReference(rel),
		http:      httpClient,
		sink:      sink,
		delay:     delay,
		diag:      logger,
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the fully built stream URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// State returns the current connection phase.
func (c *Client) State() State {
	return State(c.state.Load())
}

func (c *Client) setState(s State) {
	c.state.Store(int32(s))
}

// Start launches the connect loop in a goroutine bound to ctx. It returns
// immediately. The loop runs until ctx is cancelled; connection failures are
// never terminal.
func (c *Client) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Client) run(ctx context.Context) {
	defer c.setState(Disconnected)

	for {
		c.setState(Connecting)
		connID := uuid.NewString()
		err := c.stream(ctx, connID)
		c.setState(Disconnected)

		if ctx.Err() != nil {
			return
		}
		c.diag.Warn("stream disconnected", "conn", connID, "error", err, "retry_in", c.delay)

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.delay):
		}
	}
}

// stream runs one connection to completion. The response body is closed
// before the caller redials, so at most one connection is ever live.
func (c *Client) stream(ctx context.Context, connID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dial stream: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream returned status %d", resp.StatusCode)
	}

	c.setState(Connected)
	// The endpoint query may carry the password, so only the host is logged.
	c.diag.Info("stream connected", "conn", connID, "host", c.endpoint.Host)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var data []string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			// Blank line dispatches the accumulated event.
			if len(data) > 0 {
				c.dispatch(strings.Join(data, "\n"), connID)
				data = data[:0]
			}
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		default:
			// event:, id:, retry:, and comment lines carry nothing we use.
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return io.EOF
}

func (c *Client) dispatch(payload, connID string) {
	r, err := record.Decode([]byte(payload))
	if err != nil {
		// Malformed payloads are dropped; the stream stays open.
		c.sink.NoteMalformed()
		c.diag.Debug("dropped malformed payload", "conn", connID, "error", err)
		return
	}
	c.sink.Append(r)
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		return nil, fmt.Errorf("server url is required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
