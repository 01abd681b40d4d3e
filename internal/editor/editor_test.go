package editor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/api"
	"github.com/glowdesk/medspa-console/internal/models"
)

// pngHeader is a minimal valid PNG signature; DetectContentType only needs
// the first bytes.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

var jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func newTestEditor(t *testing.T, spec Spec[models.TreatmentRecord], handler http.Handler) (*Editor[models.TreatmentRecord], *int64) {
	t.Helper()
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, zap.NewNop())
	return New(client, spec, zap.NewNop()), &hits
}

func TestSubmitWithValidationErrorsNeverHitsNetwork(t *testing.T) {
	ed, hits := newTestEditor(t, TreatmentSpec(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ed.OpenForCreate()
	ed.SetField("notes", "   ") // whitespace only

	_, err := ed.Submit(context.Background())
	fields, ok := api.IsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if fields["notes"] == "" {
		t.Error("expected a field-scoped message for notes")
	}
	if atomic.LoadInt64(hits) != 0 {
		t.Error("validation failure must not issue a network call")
	}
	if !ed.IsOpen() {
		t.Error("editor must stay open after a validation failure")
	}
}

func TestSetFieldClearsFieldError(t *testing.T) {
	ed, _ := newTestEditor(t, TreatmentSpec(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ed.OpenForCreate()
	errs := ed.Validate()
	if errs["notes"] == "" {
		t.Fatal("expected notes to be invalid before edit")
	}

	ed.SetField("notes", "chemical peel, light")
	if ed.Errors()["notes"] != "" {
		t.Error("setting a field must clear its validation error")
	}
}

func TestAttachPhotoRejectsOversize(t *testing.T) {
	ed, hits := newTestEditor(t, TreatmentSpec(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ed.OpenForCreate()

	big := make([]byte, MaxPhotoBytes+1)
	copy(big, pngHeader)

	err := ed.AttachPhoto("before_photo", "huge.png", big)
	fields, ok := api.IsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if fields["before_photo"] == "" {
		t.Error("expected a message for before_photo")
	}
	if atomic.LoadInt64(hits) != 0 {
		t.Error("photo rejection must happen before any network call")
	}
}

func TestAttachPhotoRejectsWrongType(t *testing.T) {
	ed, _ := newTestEditor(t, TreatmentSpec(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ed.OpenForCreate()

	gif := append([]byte("GIF89a"), make([]byte, 64)...)
	err := ed.AttachPhoto("after_photo", "animation.gif", gif)
	if _, ok := api.IsValidation(err); !ok {
		t.Fatalf("expected ValidationError for a GIF, got %v", err)
	}
}

func TestAttachPhotoAcceptsJPEGAndPNG(t *testing.T) {
	ed, _ := newTestEditor(t, TreatmentSpec(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ed.OpenForCreate()

	if err := ed.AttachPhoto("before_photo", "before.png", append(pngHeader, make([]byte, 64)...)); err != nil {
		t.Errorf("valid PNG rejected: %v", err)
	}
	if err := ed.AttachPhoto("after_photo", "after.jpg", append(jpegHeader, make([]byte, 64)...)); err != nil {
		t.Errorf("valid JPEG rejected: %v", err)
	}
}

func TestSubmitCreatePostsMultipartAndSignalsSaved(t *testing.T) {
	var gotMethod, gotNotes, gotPhotoName string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("body is not multipart: %v", err)
		}
		gotNotes = r.FormValue("notes")
		if _, fh, err := r.FormFile("before_photo"); err == nil {
			gotPhotoName = fh.Filename
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"t-42"}`))
	})
	ed, _ := newTestEditor(t, TreatmentSpec(), handler)

	var savedID string
	ed.OnSaved(func(id string) { savedID = id })

	ed.OpenForCreate()
	ed.SetField("notes", "microneedling, full face")
	ed.SetField("treatment_type", "Microneedling")
	if err := ed.AttachPhoto("before_photo", "before.png", append(pngHeader, make([]byte, 64)...)); err != nil {
		t.Fatalf("attach: %v", err)
	}

	id, err := ed.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id != "t-42" || savedID != "t-42" {
		t.Errorf("saved id = %q / callback %q, want t-42", id, savedID)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("create must POST, got %s", gotMethod)
	}
	if gotNotes != "microneedling, full face" {
		t.Errorf("notes field lost in transit: %q", gotNotes)
	}
	if gotPhotoName != "before.png" {
		t.Errorf("photo not attached: %q", gotPhotoName)
	}
	if ed.IsOpen() {
		t.Error("editor must close after a successful save")
	}
}

func TestSubmitEditPutsToRecordPath(t *testing.T) {
	var gotPath, gotMethod string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		r.ParseMultipartForm(32 << 20)
		w.Write([]byte(`{"id":"t-7"}`))
	})
	ed, _ := newTestEditor(t, TreatmentSpec(), handler)

	record := models.TreatmentRecord{
		ID:            "t-7",
		Notes:         "existing notes",
		TreatmentType: "Botox",
		Cost:          "420.00",
		Status:        models.TreatmentCompleted,
	}
	ed.OpenForEdit(record)
	ed.SetField("cost", "450.00")

	if _, err := ed.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/treatments/t-7" {
		t.Errorf("expected PUT /treatments/t-7, got %s %s", gotMethod, gotPath)
	}
}

func TestOpenForEditCopiesDraft(t *testing.T) {
	ed, _ := newTestEditor(t, TreatmentSpec(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	record := models.TreatmentRecord{ID: "t-1", Notes: "original", TreatmentType: "Peel"}
	ed.OpenForEdit(record)
	ed.SetField("notes", "changed in draft")

	if record.Notes != "original" {
		t.Error("editing the draft mutated the source record")
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(32 << 20)
		http.Error(w, `{"error":"boom","message":"database unavailable"}`, http.StatusInternalServerError)
	})
	ed, _ := newTestEditor(t, TreatmentSpec(), handler)

	ed.OpenForCreate()
	ed.SetField("notes", "keep me")
	ed.SetField("treatment_type", "Facial")

	_, err := ed.Submit(context.Background())
	if err == nil {
		t.Fatal("expected an error from the failing save")
	}
	if err.Error() != "database unavailable" {
		t.Errorf("server message should surface, got %q", err.Error())
	}
	if !ed.IsOpen() {
		t.Error("editor must stay open after a failed save")
	}
	if ed.Field("notes") != "keep me" {
		t.Error("draft must survive a failed save")
	}
}
