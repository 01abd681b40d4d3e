package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const maxErrorBody = 1 << 20

// Client is the single HTTP wrapper every component goes through. It owns
// the bearer token, attaches it to every request, and maps responses onto
// the error taxonomy. A 401 from any endpoint clears the token and fires
// the unauthorized hook, so session invalidation happens in exactly one
// place instead of per caller.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger

	mu        sync.Mutex
	token     string
	tokenType string

	onUnauthorized func()
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// OnUnauthorized registers the hook invoked whenever any request comes back
// 401. The session store uses it to drop its state.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) SetToken(token, tokenType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	if tokenType == "" {
		tokenType = "Bearer"
	}
	c.tokenType = tokenType
}

func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.tokenType = ""
}

func (c *Client) HasToken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

// --------- Verbs ---------

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, nil)
}

func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	contentType, body, err := form.encode()
	if err != nil {
		return &RequestError{Message: "could not encode form: " + err.Error()}
	}
	return c.do(ctx, http.MethodPost, path, nil, contentType, body, out)
}

func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	contentType, body, err := form.encode()
	if err != nil {
		return &RequestError{Message: "could not encode form: " + err.Error()}
	}
	return c.do(ctx, http.MethodPut, path, nil, contentType, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return &RequestError{Message: "could not encode request: " + err.Error()}
	}
	return c.do(ctx, method, path, nil, "application/json", bytes.NewReader(raw), out)
}

// --------- Transport & error mapping ---------

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &RequestError{Message: "could not build request: " + err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	c.mu.Lock()
	if c.token != "" {
		req.Header.Set("Authorization", c.tokenType+" "+c.token)
	}
	hook := c.onUnauthorized
	c.mu.Unlock()

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &RequestError{Message: "could not reach the server, please try again"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &RequestError{Message: "could not read response: " + err.Error()}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return &RequestError{StatusCode: resp.StatusCode, Message: "unexpected response format"}
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		c.ClearToken()
		if hook != nil {
			hook()
		}
		code, msg := decodeError(raw)
		c.log.Info("session rejected", zap.String("path", path), zap.String("code", code))
		return &AuthError{Message: msg}

	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Path: path}

	default:
		code, msg := decodeError(raw)
		c.log.Warn("server rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", code),
		)
		return &RequestError{StatusCode: resp.StatusCode, Code: code, Message: msg}
	}
}

func decodeError(raw []byte) (code, message string) {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", ""
	}
	msg := payload.Message
	if msg == "" {
		msg = payload.Details
	}
	return payload.Error, msg
}
