// Package growthapi es el cliente HTTP del API de crecimiento (lo usa growthctl
// en modo remoto).
package growthapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 10 * time.Second

// maxBody limita lo que se lee de una respuesta.
const maxBody = 1 << 20

type Client struct {
	http    *http.Client
	baseURL string
}

// New valida baseURL (p.ej. http://localhost:8080). Si hc es nil se usa uno con DefaultTimeout.
func New(baseURL string, hc *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// HTTPError representa una respuesta no-2xx. El cuerpo es el texto de http.Error.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// IsStatus indica si err es un HTTPError con ese status.
func IsStatus(err error, status int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == status
}

type Record struct {
	ID     string  `json:"id"`
	Metric string  `json:"metric"`
	Date   string  `json:"date"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

type Status struct {
	Metric     string  `json:"metric"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Date       string  `json:"date"`
	AgeMonths  int     `json:"age_months"`
	Band       string  `json:"band"`
	ShortLabel string  `json:"short_label"`
	Severity   string  `json:"severity"`
	FromBirth  bool    `json:"from_birth"`
}

type Summary struct {
	AgeMonths int    `json:"age_months"`
	Weight    Status `json:"weight"`
	Height    Status `json:"height"`
}

func (c *Client) Status(ctx context.Context, metric string) (Status, error) {
	var out Status
	err := c.do(ctx, http.MethodGet, "/growth/"+url.PathEscape(metric)+"/status", nil, &out)
	return out, err
}

func (c *Client) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	err := c.do(ctx, http.MethodGet, "/growth/summary", nil, &out)
	return out, err
}

// List devuelve el historial en orden cronológico (o inverso con desc).
func (c *Client) List(ctx context.Context, metric string, desc bool) ([]Record, error) {
	path := "/growth/" + url.PathEscape(metric)
	if desc {
		path += "?order=desc"
	}
	var out []Record
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Add registra una medición. id vacío = lo genera el servidor.
func (c *Client) Add(ctx context.Context, metric, id, date string, value float64) (Record, error) {
	in := map[string]any{"date": date, "value": value}
	if id != "" {
		in["id"] = id
	}
	var out Record
	err := c.do(ctx, http.MethodPost, "/growth/"+url.PathEscape(metric), in, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, metric, id string) error {
	return c.do(ctx, http.MethodDelete, "/growth/"+url.PathEscape(metric)+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("growthapi: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("growthapi: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("growthapi: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("growthapi: unmarshal json: %w", err)
	}
	return nil
}
