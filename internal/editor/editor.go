package editor

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/api"
	"github.com/glowdesk/medspa-console/internal/dto"
)

// Spec describes how one record type is edited: its endpoint, its form
// fields, and its validation rules.
type Spec[T any] struct {
	Path string

	// Defaults seeds the draft for a new record.
	Defaults func() map[string]string
	// FromRecord copies an existing record into draft fields. The copy is
	// the point: edits never touch the list's item until a save succeeds.
	FromRecord func(T) map[string]string
	// RecordID extracts the id used for PUT /path/:id.
	RecordID func(T) string
	// Validate returns field -> message; an empty map means valid.
	Validate func(fields map[string]string, creating bool) map[string]string

	// Multipart switches the submission body from JSON to multipart form
	// (treatments, which may carry photo attachments).
	Multipart bool
	// Payload builds the JSON body for non-multipart types.
	Payload func(fields map[string]string) any
	// PhotoFields names the attachment slots this type accepts.
	PhotoFields []string
}

// Editor owns a mutable draft of one record and drives create/update
// submission. Validation failures never reach the network; submission
// failures keep the editor open with the draft intact.
type Editor[T any] struct {
	api  *api.Client
	spec Spec[T]
	log  *zap.Logger

	mu       sync.Mutex
	open     bool
	creating bool
	recordID string
	fields   map[string]string
	errors   map[string]string
	photos   map[string]api.Attachment

	onSaved func(id string)
}

func New[T any](client *api.Client, spec Spec[T], log *zap.Logger) *Editor[T] {
	return &Editor[T]{
		api:  client,
		spec: spec,
		log:  log,
	}
}

// OnSaved registers the callback fired with the saved record's id. The
// owning list controller reloads from it.
func (e *Editor[T]) OnSaved(fn func(id string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onSaved = fn
}

func (e *Editor[T]) OpenForCreate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = true
	e.creating = true
	e.recordID = ""
	e.fields = e.defaults()
	e.errors = make(map[string]string)
	e.photos = make(map[string]api.Attachment)
}

func (e *Editor[T]) OpenForEdit(record T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = true
	e.creating = false
	e.recordID = e.spec.RecordID(record)
	e.fields = copyFields(e.spec.FromRecord(record))
	e.errors = make(map[string]string)
	e.photos = make(map[string]api.Attachment)
}

func (e *Editor[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Editor[T]) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

// SetField mutates the draft and clears any stale validation error for that
// field.
func (e *Editor[T]) SetField(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fields == nil {
		return
	}
	e.fields[name] = value
	delete(e.errors, name)
}

func (e *Editor[T]) Field(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fields[name]
}

func (e *Editor[T]) Errors() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyFields(e.errors)
}

// Validate runs the record type's rules against the current draft and
// records the result.
func (e *Editor[T]) Validate() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	errs := e.spec.Validate(copyFields(e.fields), e.creating)
	if errs == nil {
		errs = map[string]string{}
	}
	e.errors = copyFields(errs)
	return errs
}

// Submit validates, then issues POST (create) or PUT (update). On success
// the editor closes, the draft resets and OnSaved fires with the record id.
// On any failure the draft stays put so the user can retry.
func (e *Editor[T]) Submit(ctx context.Context) (string, error) {
	if errs := e.Validate(); len(errs) > 0 {
		return "", &api.ValidationError{Fields: errs}
	}

	e.mu.Lock()
	creating := e.creating
	recordID := e.recordID
	fields := copyFields(e.fields)
	photos := make([]api.Attachment, 0, len(e.photos))
	for _, a := range e.photos {
		photos = append(photos, a)
	}
	saved := e.onSaved
	e.mu.Unlock()

	var resp dto.SavedResponse
	var err error
	if e.spec.Multipart {
		form := api.NewForm()
		for name, value := range fields {
			form.Set(name, value)
		}
		for _, a := range photos {
			form.Attach(a)
		}
		if creating {
			err = e.api.PostForm(ctx, e.spec.Path, form, &resp)
		} else {
			err = e.api.PutForm(ctx, e.spec.Path+"/"+recordID, form, &resp)
		}
	} else {
		body := e.spec.Payload(fields)
		if creating {
			err = e.api.Post(ctx, e.spec.Path, body, &resp)
		} else {
			err = e.api.Put(ctx, e.spec.Path+"/"+recordID, body, &resp)
		}
	}

	if err != nil {
		e.log.Warn("save failed", zap.String("path", e.spec.Path), zap.Bool("creating", creating), zap.Error(err))
		return "", saveError(err)
	}

	id := resp.ID
	if id == "" {
		id = recordID
	}

	e.mu.Lock()
	e.reset()
	e.mu.Unlock()

	if saved != nil {
		saved(id)
	}
	return id, nil
}

func (e *Editor[T]) reset() {
	e.open = false
	e.creating = false
	e.recordID = ""
	e.fields = nil
	e.errors = nil
	e.photos = nil
}

func (e *Editor[T]) defaults() map[string]string {
	if e.spec.Defaults == nil {
		return map[string]string{}
	}
	return copyFields(e.spec.Defaults())
}

// saveError keeps the server's message when it has one and falls back to a
// generic retry message otherwise.
func saveError(err error) error {
	var re *api.RequestError
	if errors.As(err, &re) && re.Message == "" {
		re.Message = "failed to save, please try again"
	}
	return err
}

func copyFields(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
