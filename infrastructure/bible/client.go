package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"leavn/domain/scripture"
	apperrors "leavn/pkg/errors"
	"leavn/pkg/extensions"
)

// Client retrieves passages from a bible-api.com style HTTP endpoint,
// caching responses with a TTL. Search and any failed remote lookup fall
// back to the embedded translation so the reading surface keeps working
// when the upstream is unreachable.
type Client struct {
	baseURL     string
	translation scripture.Translation
	httpClient  *http.Client
	cache       *passageCache
	fallback    *MemoryService
	hooks       *extensions.HookManager
	logger      *zap.Logger
}

// ClientOptions configures the remote client.
type ClientOptions struct {
	BaseURL     string
	Translation scripture.Translation
	Timeout     time.Duration
	CacheTTL    time.Duration
	Hooks       *extensions.HookManager
}

// NewClient creates a remote Bible API client.
func NewClient(opts ClientOptions, logger *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.Translation == "" {
		opts.Translation = scripture.TranslationWEB
	}
	if opts.Hooks == nil {
		opts.Hooks = extensions.NewHookManager()
	}
	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		translation: opts.Translation,
		httpClient:  &http.Client{Timeout: opts.Timeout},
		cache:       newPassageCache(opts.CacheTTL),
		fallback:    NewMemoryService(),
		hooks:       opts.Hooks,
		logger:      logger,
	}
}

// Translation identifies the translation the remote endpoint serves.
func (c *Client) Translation() scripture.Translation {
	return c.translation
}

// apiResponse mirrors the bible-api.com JSON shape.
type apiResponse struct {
	Reference string `json:"reference"`
	Verses    []struct {
		BookName string `json:"book_name"`
		Chapter  int    `json:"chapter"`
		Verse    int    `json:"verse"`
		Text     string `json:"text"`
	} `json:"verses"`
}

// GetPassage fetches a passage from the remote API, consulting the cache
// first and degrading to the embedded text on failure.
func (c *Client) GetPassage(ctx context.Context, ref scripture.Reference) (scripture.Passage, error) {
	if err := ref.Validate(); err != nil {
		return scripture.Passage{}, apperrors.NewValidationError(err.Error())
	}

	key := ref.String()
	if cached, ok := c.cache.get(key); ok {
		c.hooks.ExecuteAsync(ctx, extensions.HookCacheHit, extensions.HookData{Key: key})
		return cached.(scripture.Passage), nil
	}
	c.hooks.ExecuteAsync(ctx, extensions.HookCacheMiss, extensions.HookData{Key: key})

	passage, err := c.fetch(ctx, key)
	if err != nil {
		c.logger.Warn("remote passage lookup failed, using embedded text",
			zap.String("reference", key), zap.Error(err))
		c.hooks.ExecuteAsync(ctx, extensions.HookFetchFailed, extensions.HookData{
			Key:      key,
			Metadata: map[string]interface{}{"error": err.Error()},
		})
		return c.fallback.GetPassage(ctx, ref)
	}
	passage.Ref = ref
	c.cache.set(key, passage)
	c.hooks.ExecuteAsync(ctx, extensions.HookFetchSucceeded, extensions.HookData{Key: key})
	return passage, nil
}

// GetChapter fetches a whole chapter from the remote API, with the same
// fallback behavior as GetPassage.
func (c *Client) GetChapter(ctx context.Context, book string, chapter int) ([]scripture.Verse, error) {
	key := fmt.Sprintf("%s %d", book, chapter)
	if cached, ok := c.cache.get(key); ok {
		c.hooks.ExecuteAsync(ctx, extensions.HookCacheHit, extensions.HookData{Key: key})
		return cached.([]scripture.Verse), nil
	}
	c.hooks.ExecuteAsync(ctx, extensions.HookCacheMiss, extensions.HookData{Key: key})

	passage, err := c.fetch(ctx, key)
	if err != nil {
		c.logger.Warn("remote chapter lookup failed, using embedded text",
			zap.String("chapter", key), zap.Error(err))
		c.hooks.ExecuteAsync(ctx, extensions.HookFetchFailed, extensions.HookData{
			Key:      key,
			Metadata: map[string]interface{}{"error": err.Error()},
		})
		return c.fallback.GetChapter(ctx, book, chapter)
	}
	c.cache.set(key, passage.Verses)
	c.hooks.ExecuteAsync(ctx, extensions.HookFetchSucceeded, extensions.HookData{Key: key})
	return passage.Verses, nil
}

// Search is served from the embedded translation; the remote endpoint has
// no search surface.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]scripture.Verse, error) {
	return c.fallback.Search(ctx, query, limit)
}

// Close releases the cache's background resources.
func (c *Client) Close() error {
	c.cache.close()
	return nil
}

func (c *Client) fetch(ctx context.Context, citation string) (scripture.Passage, error) {
	endpoint := fmt.Sprintf("%s/%s?translation=%s",
		c.baseURL, url.PathEscape(citation), url.QueryEscape(strings.ToLower(string(c.translation))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return scripture.Passage{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return scripture.Passage{}, apperrors.NewExternalError("bible api unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return scripture.Passage{}, apperrors.NewNotFoundError("passage " + citation)
	}
	if resp.StatusCode != http.StatusOK {
		return scripture.Passage{}, apperrors.NewExternalError(
			fmt.Sprintf("bible api returned status %d", resp.StatusCode), nil)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return scripture.Passage{}, apperrors.NewExternalError("decoding bible api response", err)
	}

	verses := make([]scripture.Verse, 0, len(body.Verses))
	for _, v := range body.Verses {
		verses = append(verses, scripture.Verse{
			Book:    v.BookName,
			Chapter: v.Chapter,
			Number:  v.Verse,
			Text:    strings.TrimSpace(v.Text),
		})
	}
	if len(verses) == 0 {
		return scripture.Passage{}, apperrors.NewNotFoundError("passage " + citation)
	}
	return scripture.Passage{Translation: c.translation, Verses: verses}, nil
}
