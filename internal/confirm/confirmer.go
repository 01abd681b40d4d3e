package confirm

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/api"
)

// State machine: Idle -> Confirming -> {Deleting -> Idle, Idle}.
type State int

const (
	Idle State = iota
	Confirming
	Deleting
)

func (s State) String() string {
	switch s {
	case Confirming:
		return "confirming"
	case Deleting:
		return "deleting"
	default:
		return "idle"
	}
}

// Target carries the identifying fields shown before a delete can be
// confirmed. The display step is the anti-accidental-deletion gate.
type Target struct {
	Kind  string
	ID    string
	Date  string
	Owner string
}

// Confirmer wraps delete submission in a two-step confirmation.
type Confirmer struct {
	api  *api.Client
	path string
	log  *zap.Logger

	mu      sync.Mutex
	state   State
	target  Target
	lastErr string

	onDeleted func(id string)
}

// New builds a confirmer for one collection path, e.g. "/treatments".
func New(client *api.Client, path string, log *zap.Logger) *Confirmer {
	return &Confirmer{api: client, path: path, log: log}
}

// OnDeleted registers the reload callback fired after a successful delete.
func (c *Confirmer) OnDeleted(fn func(id string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDeleted = fn
}

// Request moves Idle -> Confirming for the given target. A request while a
// confirmation or deletion is already underway is ignored.
func (c *Confirmer) Request(t Target) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Idle {
		return false
	}
	c.state = Confirming
	c.target = t
	c.lastErr = ""
	return true
}

// Cancel returns Confirming -> Idle. No network call.
func (c *Confirmer) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Confirming {
		return
	}
	c.state = Idle
	c.target = Target{}
}

// Target exposes the pending record's identifying fields while confirming.
func (c *Confirmer) Target() (Target, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target, c.state == Confirming
}

// Confirm issues the DELETE. Success lands back in Idle and fires OnDeleted
// so the owning list reloads; failure lands in Idle with the error recorded
// and the record untouched on the server, so retrying is safe.
func (c *Confirmer) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Confirming {
		c.mu.Unlock()
		return errors.New("nothing to confirm")
	}
	c.state = Deleting
	target := c.target
	deleted := c.onDeleted
	c.mu.Unlock()

	err := c.api.Delete(ctx, c.path+"/"+target.ID)

	c.mu.Lock()
	c.state = Idle
	c.target = Target{}
	if err != nil {
		c.lastErr = "could not delete " + target.Kind + ", please try again"
		if api.IsAuth(err) {
			c.lastErr = err.Error()
		}
	} else {
		c.lastErr = ""
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Warn("delete failed", zap.String("path", c.path), zap.String("id", target.ID), zap.Error(err))
		return err
	}

	if deleted != nil {
		deleted(target.ID)
	}
	return nil
}

func (c *Confirmer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Confirmer) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
