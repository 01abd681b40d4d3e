package editor

import (
	"fmt"
	"net/http"

	"github.com/glowdesk/medspa-console/internal/api"
)

// MaxPhotoBytes caps before/after photo attachments at 5 MiB.
const MaxPhotoBytes = 5 << 20

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// AttachPhoto validates a photo and stages it on the draft. The content type
// is sniffed from the bytes, not taken from the filename, so a renamed file
// cannot sneak through. Rejections are field-scoped validation errors and
// never reach the network.
func (e *Editor[T]) AttachPhoto(field, filename string, data []byte) error {
	if !e.photoFieldAllowed(field) {
		return &api.ValidationError{Fields: map[string]string{
			field: "this record does not accept a photo here",
		}}
	}
	if len(data) == 0 {
		return &api.ValidationError{Fields: map[string]string{
			field: "photo file is empty",
		}}
	}
	if len(data) > MaxPhotoBytes {
		return &api.ValidationError{Fields: map[string]string{
			field: fmt.Sprintf("photo must be %dMB or smaller", MaxPhotoBytes>>20),
		}}
	}

	contentType := http.DetectContentType(data)
	if !allowedPhotoTypes[contentType] {
		return &api.ValidationError{Fields: map[string]string{
			field: "photo must be a JPEG or PNG image",
		}}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.photos == nil {
		return &api.ValidationError{Fields: map[string]string{
			field: "open the editor before attaching a photo",
		}}
	}
	e.photos[field] = api.Attachment{
		Field:       field,
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}
	delete(e.errors, field)
	return nil
}

func (e *Editor[T]) RemovePhoto(field string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.photos, field)
}

func (e *Editor[T]) photoFieldAllowed(field string) bool {
	for _, f := range e.spec.PhotoFields {
		if f == field {
			return true
		}
	}
	return false
}
