// Package api implementa el cliente tipado del backend REST (órdenes,
// clientes, productos, bodega). Normaliza en el borde las dos formas de
// respuesta del backend y traduce sus errores a errores de dominio; nada
// más adentro vuelve a mirar la forma cruda.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/moda-backoffice/pkg/logger"
)

// TokenSource provee el bearer token de la sesión y permite descartarla.
type TokenSource interface {
	Token() string
	Clear()
}

// Client cliente HTTP del backend remoto.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	log            *logger.Logger
	onUnauthorized func() // se invoca ante un 401 (limpiar caché, redirigir a login)
}

// ClientOption opción de construcción.
type ClientOption func(*Client)

// WithHTTPClient reemplaza el http.Client (tests con httptest).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger inyecta el logger.
func WithLogger(log *logger.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// WithUnauthorizedHook registra el callback global de 401.
func WithUnauthorizedHook(fn func()) ClientOption {
	return func(c *Client) { c.onUnauthorized = fn }
}

// NewClient construye el cliente con timeout de red.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, opts ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do ejecuta una petición y devuelve el cuerpo crudo. Adjunta el bearer token
// y un id de correlación por petición. Ante un 401 limpia la sesión local y
// dispara el hook global una sola vez por llamada.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("fallo de red")
		return nil, fmt.Errorf("petición %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta %s %s: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("petición al backend")

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

// get ejecuta un GET y decodifica el cuerpo en out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// post ejecuta un POST con cuerpo JSON y decodifica la respuesta en out (si out != nil).
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// put ejecuta un PUT con cuerpo JSON y decodifica la respuesta en out (si out != nil).
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	raw, err := c.do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
