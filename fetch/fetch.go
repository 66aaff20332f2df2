// Package fetch acquires HTML source text from a URL or a local file,
// decoding HTTP responses to UTF-8 along the way.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/html/charset"
)

// URL performs an HTTP GET against u and returns the response body decoded
// to UTF-8 per its Content-Type/meta-charset. logger may be nil, in which
// case slog.Default() is used.
func URL(ctx context.Context, u string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		logger.Error("fetch: build request failed", "url", u, "err", err)
		return "", fmt.Errorf("Failed to make HTTP request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Error("fetch: request failed", "url", u, "err", err)
		return "", fmt.Errorf("Failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		logger.Error("fetch: charset detection failed", "url", u, "err", err)
		return "", fmt.Errorf("Failed to make HTTP request: %w", err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		logger.Error("fetch: reading body failed", "url", u, "err", err)
		return "", fmt.Errorf("Failed to make HTTP request: %w", err)
	}

	logger.Info("fetch: retrieved URL", "url", u, "bytes", len(body))
	return string(body), nil
}

// File reads path from the local filesystem.
func File(path string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	body, err := os.ReadFile(path)
	if err != nil {
		logger.Error("fetch: reading file failed", "path", path, "err", err)
		return "", fmt.Errorf("Failed to read file: %w", err)
	}

	logger.Info("fetch: read file", "path", path, "bytes", len(body))
	return string(body), nil
}

// Exists reports whether path names a file reachable on the local
// filesystem, without reading it.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
