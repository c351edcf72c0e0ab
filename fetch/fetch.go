/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fetch reads the file behind a specifier, from node_modules when it
// is installed and from a CDN otherwise.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"bennypowers.dev/uripath/fs"
	"bennypowers.dev/uripath/internal/logger"
	"bennypowers.dev/uripath/internal/version"
	"bennypowers.dev/uripath/specifier"
)

const (
	// DefaultTimeout is the maximum time to wait for a network fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed response size (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

var (
	// ErrLocalResolution wraps the reason a specifier could not be read locally.
	ErrLocalResolution = errors.New("local resolution failed")

	// ErrNetworkFallback wraps the reason the CDN fallback failed.
	ErrNetworkFallback = errors.New("network fallback failed")
)

// Fetcher fetches content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches content over HTTP with size limiting.
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the given maximum response size.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{
		maxSize: maxSize,
		client:  &http.Client{},
	}
}

// Fetch fetches content from the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "uripath/"+version.Get())

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if int64(len(content)) > f.maxSize {
		return nil, fmt.Errorf("response from %s exceeds maximum size of %d bytes", url, f.maxSize)
	}
	return content, nil
}

// Options configures Content.
type Options struct {
	// Root is the directory local lookups start from. Must be absolute.
	Root string

	// FS reads local files. Defaults to the OS filesystem.
	FS fs.FileSystem

	// Fetcher is used for the CDN fallback. Nil disables the network.
	Fetcher Fetcher

	// Timeout bounds the CDN fetch. Defaults to DefaultTimeout.
	Timeout time.Duration

	// CDN selects the fallback provider. The zero value means unpkg.
	CDN specifier.CDN
}

// Result is the content behind a specifier and where it came from.
type Result struct {
	Specifier string `json:"specifier" yaml:"specifier"`
	Source    string `json:"source" yaml:"source"`
	Content   []byte `json:"-" yaml:"-"`
}

// Content reads the file a specifier points to. Local resolution is tried
// first; package specifiers fall back to the CDN when a Fetcher is set.
func Content(ctx context.Context, spec string, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	res, err := specifier.NewDefaultResolver(filesystem, opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	resolved, err := res.Resolve(spec)
	if err != nil {
		return fromCDN(ctx, spec, opts, err)
	}

	path := resolved.Path
	if resolved.Kind == specifier.KindLocal && !filepath.IsAbs(path) {
		path = filepath.Join(opts.Root, path)
	}

	content, readErr := filesystem.ReadFile(path)
	if readErr != nil {
		return fromCDN(ctx, spec, opts, fmt.Errorf("failed to read %s: %w", path, readErr))
	}
	return &Result{Specifier: spec, Source: path, Content: content}, nil
}

// fromCDN returns localErr unchanged when there is no fetcher or the
// specifier has no URL on the chosen CDN.
func fromCDN(ctx context.Context, spec string, opts Options, localErr error) (*Result, error) {
	if opts.Fetcher == nil {
		return nil, localErr
	}
	cdnURL, ok := specifier.CDNURL(spec, opts.CDN)
	if !ok {
		return nil, localErr
	}
	logger.Debug("%s not available locally, fetching %s", spec, cdnURL)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := opts.Fetcher.Fetch(ctx, cdnURL)
	if err != nil {
		return nil, fmt.Errorf("%w (%w), %w: %w", ErrLocalResolution, localErr, ErrNetworkFallback, err)
	}
	return &Result{Specifier: spec, Source: cdnURL, Content: content}, nil
}
