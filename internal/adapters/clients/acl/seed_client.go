package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/clients/acl/seed"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

var (
	_ ports.SeedSource    = (*SeedClient)(nil)
	_ ports.HealthChecker = (*SeedClient)(nil)
)

const seedListsPath = "/api/v1/seed-lists"

// SeedClient fetches starter lists from the seed catalogue. The last
// catalogue is kept with its ETag and revalidated with If-None-Match, so an
// unchanged catalogue costs a 304 per new session.
type SeedClient struct {
	http   *httpclient.Client
	logger *slog.Logger

	mu    sync.Mutex
	etag  string
	cache []todolist.Seed
}

// NewSeedClient returns a SeedClient sending through client.
func NewSeedClient(client *httpclient.Client, logger *slog.Logger) *SeedClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SeedClient{http: client, logger: logger}
}

// Seeds returns the catalogue's starter lists. Transport failures and an
// open breaker wrap domain.ErrUnavailable; other replies are mapped by
// FromResponse.
func (c *SeedClient) Seeds(ctx context.Context) ([]todolist.Seed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.http.BaseURL()+seedListsPath, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.mu.Lock()
	etag, cached := c.etag, c.cache
	c.mu.Unlock()
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer closeReply(resp)
	}
	switch {
	case resp != nil && resp.StatusCode == http.StatusNotModified && cached != nil:
		c.logger.DebugContext(ctx, "seed catalogue unchanged", slog.Int("lists", len(cached)))
		return slices.Clone(cached), nil
	case resp != nil && resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetching seed lists: %w", FromResponse(resp))
	case err != nil:
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching seed lists: %w: %w", domain.ErrUnavailable, err)
	}

	var body seed.CatalogueDTO
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding seed lists: %w", err)
	}
	seeds := seed.ToDomainSeeds(body)

	if tag := resp.Header.Get("ETag"); tag != "" {
		c.mu.Lock()
		c.etag, c.cache = tag, seeds
		c.mu.Unlock()
	}

	c.logger.DebugContext(ctx, "fetched seed lists", slog.Int("lists", len(seeds)))
	return slices.Clone(seeds), nil
}

// Name implements ports.HealthChecker.
func (c *SeedClient) Name() string {
	return "seed-catalogue"
}

// HealthCheck reads the client's breaker state. Any problem is reported as
// degraded: without the catalogue new sessions simply start empty.
func (c *SeedClient) HealthCheck(ctx context.Context) error {
	err := c.http.HealthCheck(ctx)
	if err == nil || errors.Is(err, ports.ErrDegraded) {
		return err
	}
	return fmt.Errorf("%w: %w", ports.ErrDegraded, err)
}

// closeReply drains what is left of the body so the connection is reused.
func closeReply(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxReplyBytes))
	_ = resp.Body.Close()
}
