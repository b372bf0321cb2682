package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-classifieds-discussion/internal/config"
	"github.com/pribylovaa/go-classifieds-discussion/internal/remote/transport"
)

// HTTPClient — реализация Discussion поверх net/http.
// Транспорт собирается цепочкой metadata -> logging (internal/remote/transport).
type HTTPClient struct {
	base *url.URL
	http *http.Client
}

var _ Discussion = (*HTTPClient)(nil)

// NewHTTPClient создаёт клиент по конфигурации апстрима.
func NewHTTPClient(cfg config.UpstreamConfig, l *slog.Logger) (*HTTPClient, error) {
	const op = "remote/client/NewHTTPClient"

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s: base url %q: scheme and host are required", op, cfg.BaseURL)
	}

	return &HTTPClient{
		base: base,
		http: &http.Client{
			Transport: transport.Chain(nil, cfg.UserAgent, l),
			Timeout:   cfg.Timeout,
		},
	}, nil
}

// do — единая точка исходящего вызова: сериализация тела, проверка статуса,
// декодирование ответа в out (если out != nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromStatus(resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrInternal, err)
		}
	}

	return nil
}

// errorFromStatus — маппинг HTTP-статуса апстрима в сентинелы пакета.
func errorFromStatus(code int) error {
	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: upstream status %d", ErrNotFound, code)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: upstream status %d", ErrUnauthenticated, code)
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: upstream status %d", ErrInvalidArgument, code)
	case code >= 500:
		return fmt.Errorf("%w: upstream status %d", ErrUnavailable, code)
	default:
		return fmt.Errorf("%w: unexpected upstream status %d", ErrInternal, code)
	}
}
