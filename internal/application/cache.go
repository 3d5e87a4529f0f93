package application

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"emotebot/internal/logmessage"
)

// reductionCache memoizes logmessage.Reduce per markup. Failed reductions
// are not cached.
type reductionCache struct {
	mu     sync.RWMutex
	items  map[string]logmessage.ConditionTexts
	group  singleflight.Group
	logger *slog.Logger
}

func newReductionCache(logger *slog.Logger) *reductionCache {
	return &reductionCache{
		items:  make(map[string]logmessage.ConditionTexts),
		logger: logger,
	}
}

func (c *reductionCache) lookup(markup string) (logmessage.ConditionTexts, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	texts, ok := c.items[markup]
	return texts, ok
}

func (c *reductionCache) get(markup string) (logmessage.ConditionTexts, error) {
	if texts, ok := c.lookup(markup); ok {
		c.logger.Debug("reduction cache hit", "markup_len", len(markup))
		return texts, nil
	}
	v, err, shared := c.group.Do(markup, func() (any, error) {
		if texts, ok := c.lookup(markup); ok {
			return texts, nil
		}
		texts, err := logmessage.Reduce(markup)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.items[markup] = texts
		c.mu.Unlock()
		c.logger.Debug("reduced log message", "markup_len", len(markup), "texts", texts.Len())
		return texts, nil
	})
	if err != nil {
		return logmessage.ConditionTexts{}, err
	}
	if shared {
		c.logger.Debug("reduction shared with concurrent caller", "markup_len", len(markup))
	}
	return v.(logmessage.ConditionTexts), nil
}

func (c *reductionCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *reductionCache) reset() {
	c.mu.Lock()
	c.items = make(map[string]logmessage.ConditionTexts)
	c.mu.Unlock()
}
