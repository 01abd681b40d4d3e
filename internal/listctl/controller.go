package listctl

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/api"
	"github.com/glowdesk/medspa-console/internal/httpresp"
)

// Resource describes one listable record type: where it lives and how its
// rows expose text, status and provider for filtering.
type Resource[T any] struct {
	Path  string
	Query url.Values

	// SearchText returns the fields matched against the search term.
	SearchText func(T) []string
	// Status returns the record's status, or "" if the type has none.
	Status func(T) string
	// Provider returns the provider name, or "" if the type has none.
	Provider func(T) string
}

// Controller loads one collection and derives filtered and aggregated views
// from it. Visible rows are always a pure function of (loaded collection,
// search term, status filter, provider filter).
type Controller[T any] struct {
	api *api.Client
	res Resource[T]
	log *zap.Logger

	mu      sync.Mutex
	seq     uint64
	loading bool
	loadErr string
	items   []T
	loaded  bool
}

func New[T any](client *api.Client, res Resource[T], log *zap.Logger) *Controller[T] {
	return &Controller[T]{api: client, res: res, log: log}
}

// Load replaces the collection from the backend. The loading flag is set for
// the whole call and reset on every exit path. Each call takes a monotonic
// sequence number; a response that resolves after a newer Load started is
// discarded, so a stale response can never overwrite a newer one.
//
// Failure policy: 401 invalidates the session (client-wide) and reports
// "please log in"; 404 is benign and yields an empty collection; anything
// else keeps the previous collection and reports a retry message.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	var raw json.RawMessage
	err := c.api.Get(ctx, c.res.Path, c.res.Query, &raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq == c.seq {
		c.loading = false
	}

	if err != nil {
		switch {
		case api.IsAuth(err):
			c.apply(seq, nil, err.Error())
		case api.IsNotFound(err):
			// Backend has nothing for us; that's an empty list, not an error.
			c.apply(seq, []T{}, "")
			return nil
		default:
			c.log.Warn("load failed", zap.String("path", c.res.Path), zap.Error(err))
			c.applyError(seq, "could not load records, please try again")
		}
		return err
	}

	items, err := decodeCollection[T](raw)
	if err != nil {
		c.log.Warn("undecodable collection", zap.String("path", c.res.Path), zap.Error(err))
		c.applyError(seq, "could not load records, please try again")
		return &api.RequestError{Message: "unexpected response format"}
	}

	c.apply(seq, items, "")
	return nil
}

// apply installs a result only if no newer load has been issued since.
func (c *Controller[T]) apply(seq uint64, items []T, errMsg string) {
	if seq != c.seq {
		return
	}
	if items != nil {
		c.items = items
		c.loaded = true
	}
	c.loadErr = errMsg
}

// applyError records a failure but leaves the previous collection visible.
func (c *Controller[T]) applyError(seq uint64, msg string) {
	if seq != c.seq {
		return
	}
	c.loadErr = msg
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

func (c *Controller[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Items returns a copy of the full loaded collection in server order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// FilteredView derives the visible row set. Pure with respect to its inputs
// and the loaded collection; never reorders.
func (c *Controller[T]) FilteredView(search, status, provider string) []T {
	return Filter(c.Items(), c.res, search, status, provider)
}

// decodeCollection accepts either the {"data": [...]} envelope or a bare
// JSON array, since not every backend wraps its lists.
func decodeCollection[T any](raw json.RawMessage) ([]T, error) {
	trimmed := firstByte(raw)
	if trimmed == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope httpresp.ListResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		envelope.Data = []T{}
	}
	return envelope.Data, nil
}

func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
