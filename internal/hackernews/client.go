package hackernews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

var ErrItemMissing = errors.New("item missing")

// Story is an item exactly as the API returned it.
type Story map[string]any

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// Client talks to the Hacker News Firebase API.
type Client struct {
	http *resty.Client
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)
	client.AddRetryCondition(retryCondition)
	return &Client{http: client}
}

// retryCondition retries network errors and 5xx responses.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	return r.StatusCode() >= http.StatusInternalServerError
}

// TopStoryIDs returns the current front page ids in ranking order.
func (c *Client) TopStoryIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&ids).
		Get("/topstories.json")
	if err != nil {
		return nil, fmt.Errorf("fetching top stories: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching top stories: unexpected status %d", resp.StatusCode())
	}
	return ids, nil
}

// Item returns a single item. Deleted or unknown ids yield ErrItemMissing.
func (c *Client) Item(ctx context.Context, id int64) (Story, error) {
	var story Story
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&story).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/item/{id}.json")
	if err != nil {
		return nil, fmt.Errorf("fetching item %d: %w", id, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching item %d: unexpected status %d", id, resp.StatusCode())
	}
	if story == nil {
		return nil, fmt.Errorf("item %d: %w", id, ErrItemMissing)
	}
	return story, nil
}
