package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/catalog-feed-api/internal/config"
	"github.com/catalog-feed-api/internal/models"
)

// Client replicates feed mutations to the external relational mirror.
// The local feed stays authoritative: every call is best effort with a
// fixed short timeout, is never retried, and swallows failures after
// logging them. Update and delete calls carry the actor so the remote
// side re-derives the same permission decision.
type Client struct {
	cfg  config.MirrorConfig
	http *http.Client
	log  zerolog.Logger
}

// New creates the mirror client
func New(cfg config.MirrorConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With().Str("client", "mirror").Logger(),
	}
}

// UpsertItem replicates one feed item
func (c *Client) UpsertItem(ctx context.Context, item models.CatalogItem) {
	c.post(ctx, "/api/ads/upsert/", item)
}

// UpsertItems replicates a freshly imported batch
func (c *Client) UpsertItems(ctx context.Context, items []models.CatalogItem) {
	if len(items) == 0 {
		return
	}
	c.post(ctx, "/api/ads/bulk-upsert/", map[string]interface{}{"items": items})
}

// UpdateItemWithActor replicates an item update together with the
// acting user's id and role
func (c *Client) UpdateItemWithActor(ctx context.Context, item models.CatalogItem, actor models.Actor) {
	c.post(ctx, "/api/ads/update/", map[string]interface{}{
		"ad_id":      item.ID,
		"actor_id":   actor.ID,
		"actor_role": actor.Role,
		"item":       item,
	})
}

// DeleteItemWithActor replicates an item deletion together with the
// acting user's id and role
func (c *Client) DeleteItemWithActor(ctx context.Context, id string, actor models.Actor) {
	c.post(ctx, "/api/ads/delete/", map[string]interface{}{
		"ad_id":      id,
		"actor_id":   actor.ID,
		"actor_role": actor.Role,
	})
}

// post performs one best-effort mirror call. All failure modes end
// here: logged at warn level, never surfaced to the caller.
func (c *Client) post(ctx context.Context, path string, payload interface{}) {
	if !c.cfg.Enabled {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("Mirror payload marshal failed")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("Mirror request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("X-API-Key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("Mirror sync failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		c.log.Warn().
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", string(snippet)).
			Msg("Mirror sync rejected")
	}
}
