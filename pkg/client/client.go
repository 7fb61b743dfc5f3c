// Package client es el cliente HTTP de la API de estoque: sesión por cookie,
// caché de consultas por recurso e invalidación tras cada escritura.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// ErrNotJSON la respuesta no es JSON (proxy, página de error HTML, etc.).
var ErrNotJSON = errors.New("client: respuesta no es JSON")

// APIError respuesta no 2xx de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsStatus indica si err es un *APIError con el status dado.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client cliente de la API. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *QueryCache
}

// New construye el cliente con un cookie jar propio para la cookie de sesión.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		cache: NewQueryCache(),
	}, nil
}

// Cache expone la caché de consultas.
func (c *Client) Cache() *QueryCache { return c.cache }

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("client: serializar request: %w", err)
		}
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, nil, fmt.Errorf("client: crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("client: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Body: raw}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Code, apiErr.Message = eb.Code, eb.Message
		}
		return resp, raw, apiErr
	}
	return resp, raw, nil
}

// Do ejecuta la petición y decodifica el JSON en out (si out != nil).
// Un 204 no requiere cuerpo; cualquier otro 2xx debe ser JSON.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	resp, raw, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return ErrNotJSON
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: decodificar %s: %w", path, err)
	}
	return nil
}

// cachedGet devuelve el valor de la caché o lo pide y lo guarda bajo key.
func cachedGet[T any](ctx context.Context, c *Client, key string) (T, error) {
	if v, ok := c.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	var out T
	if err := c.Do(ctx, http.MethodGet, key, nil, &out); err != nil {
		return out, err
	}
	c.cache.Set(key, out)
	return out, nil
}
