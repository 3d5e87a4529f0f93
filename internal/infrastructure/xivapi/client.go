package xivapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"emotebot/internal/domain/entities"
	"emotebot/internal/ports/output"
)

const (
	DefaultBaseURL = "https://xivapi.com"
	// RequestLimit caps the number of pages fetched by one LoadEmotes call.
	// The emote sheet only spans a handful of pages.
	RequestLimit = 15

	columns = "LogMessageTargeted,LogMessageUntargeted,Name,TextCommand,ID"
)

// ErrRequestLimit is returned when pagination did not end within RequestLimit requests.
var ErrRequestLimit = errors.New("xivapi: request limit reached, wait before trying again")

var _ output.EmoteLoader = (*Client)(nil)

type Client struct {
	baseURL    string
	privateKey string
	limit      int
	http       *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithPrivateKey sends key as private_key with every request.
func WithPrivateKey(key string) Option {
	return func(c *Client) {
		c.privateKey = key
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithRequestLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limit = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		limit:   RequestLimit,
		http:    &http.Client{Timeout: 20 * time.Second},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

type response struct {
	Pagination struct {
		PageNext *int `json:"page_next"`
	} `json:"pagination"`
	Results []emoteData `json:"results"`
}

type emoteData struct {
	ID                   *uint           `json:"id"`
	Name                 *string         `json:"name"`
	LogMessageTargeted   *logMessageData `json:"log_message_targeted"`
	LogMessageUntargeted *logMessageData `json:"log_message_untargeted"`
	TextCommand          *textCommand    `json:"text_command"`
}

type logMessageData struct {
	TextEn string `json:"text_en"`
	TextJa string `json:"text_ja"`
}

type textCommand struct {
	AliasEn   *string `json:"alias_en"`
	AliasJa   *string `json:"alias_ja"`
	CommandEn *string `json:"command_en"`
	CommandJa *string `json:"command_ja"`
}

// LoadEmotes fetches every page of the emote sheet. Entries missing any
// field are skipped.
func (c *Client) LoadEmotes(ctx context.Context) ([]entities.Emote, error) {
	var emotes []entities.Emote
	for page := 1; ; page++ {
		if page >= c.limit {
			return nil, ErrRequestLimit
		}
		res, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		for _, d := range res.Results {
			e, ok := d.toEmote()
			if !ok {
				c.logger.Debug("ignoring incomplete emote data", "page", page, "id", d.ID)
				continue
			}
			emotes = append(emotes, e)
		}
		if res.Pagination.PageNext == nil {
			break
		}
	}
	return emotes, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) (*response, error) {
	q := url.Values{}
	q.Set("snake_case", "1")
	q.Set("columns", columns)
	if c.privateKey != "" {
		q.Set("private_key", c.privateKey)
	}
	q.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/emote?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("loading emote page", "page", page)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get emote page %d: %w", page, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get emote page %d: unexpected status %s", page, resp.Status)
	}

	var res response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode emote page %d: %w", page, err)
	}
	return &res, nil
}

func (d emoteData) toEmote() (entities.Emote, bool) {
	if d.ID == nil || d.Name == nil || d.LogMessageTargeted == nil || d.LogMessageUntargeted == nil || d.TextCommand == nil {
		return entities.Emote{}, false
	}
	var cmds []string
	for _, c := range []*string{d.TextCommand.AliasEn, d.TextCommand.AliasJa, d.TextCommand.CommandEn, d.TextCommand.CommandJa} {
		if c != nil && *c != "" {
			cmds = append(cmds, *c)
		}
	}
	return entities.Emote{
		ID:       *d.ID,
		Name:     *d.Name,
		Commands: cmds,
		En: entities.LogMessagePair{
			Targeted:   d.LogMessageTargeted.TextEn,
			Untargeted: d.LogMessageUntargeted.TextEn,
		},
		Ja: entities.LogMessagePair{
			Targeted:   d.LogMessageTargeted.TextJa,
			Untargeted: d.LogMessageUntargeted.TextJa,
		},
	}, true
}
