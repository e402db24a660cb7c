// Package apiclient fala com a API de apontamentos via HTTP.
// *Client satisfaz workflow.Submitter, então o fluxo horário pode gravar direto no servidor.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/storage"
)

// Error é uma resposta não-2xx da API.
type Error struct {
	StatusCode int
	Message    string
	Details    string
	Fields     map[string]string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Level    int    `json:"level"`
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient troca o http.Client (testes, proxies).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login autentica e guarda o token para as próximas chamadas.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	const op = "apiclient.Login"

	var s Session
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &s); err != nil {
		return Session{}, fmt.Errorf("%s: %w", op, err)
	}

	c.SetToken(s.Token)

	return s, nil
}

func (c *Client) CreateReading(ctx context.Context, r storage.Reading) (storage.Reading, error) {
	const op = "apiclient.CreateReading"

	var created storage.Reading
	if err := c.do(ctx, http.MethodPost, "/api/apontamentos/injetora", nil, r, &created); err != nil {
		return storage.Reading{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (c *Client) ListReadings(ctx context.Context, f storage.ReadingFilter) ([]storage.Reading, error) {
	const op = "apiclient.ListReadings"

	q := url.Values{}
	for k, v := range map[string]string{
		"dataApontamento": f.DataApontamento,
		"dataInicio":      f.DataInicio,
		"dataFim":         f.DataFim,
		"turno":           f.Turno,
		"maquina":         f.Maquina,
		"codigoPeca":      f.CodigoPeca,
		"tipoInjetora":    f.TipoInjetora,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}

	var readings []storage.Reading
	if err := c.do(ctx, http.MethodGet, "/api/apontamentos/injetora", q, nil, &readings); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return readings, nil
}

func (c *Client) DailyTarget(ctx context.Context) (storage.DailyTarget, error) {
	const op = "apiclient.DailyTarget"

	var target storage.DailyTarget
	if err := c.do(ctx, http.MethodGet, "/api/meta-producao", nil, nil, &target); err != nil {
		return storage.DailyTarget{}, fmt.Errorf("%s: %w", op, err)
	}

	return target, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

		var envelope api.Response
		if err := render.DecodeJSON(resp.Body, &envelope); err == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Details = envelope.Details
			apiErr.Fields = envelope.Fields
		}

		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := render.DecodeJSON(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
