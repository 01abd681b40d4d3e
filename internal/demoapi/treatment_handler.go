package demoapi

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glowdesk/medspa-console/internal/audit"
	"github.com/glowdesk/medspa-console/internal/httperr"
	"github.com/glowdesk/medspa-console/internal/httpresp"
	"github.com/glowdesk/medspa-console/internal/middleware"
	"github.com/glowdesk/medspa-console/internal/models"
)

// maxPhotoBytes mirrors the console's own attachment cap so the demo
// backend round-trips the same rule.
const maxPhotoBytes = 5 << 20

var errPhotoRejected = errors.New("photo rejected")

type TreatmentHandler struct {
	store *Store
	audit *audit.Dispatcher
}

func NewTreatmentHandler(store *Store, dispatcher *audit.Dispatcher) *TreatmentHandler {
	return &TreatmentHandler{store: store, audit: dispatcher}
}

func (h *TreatmentHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.Treatments())
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	record, ok := h.bindTreatmentForm(c)
	if !ok {
		return
	}

	created := h.store.CreateTreatment(record)
	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "create",
		Entity:   "treatment",
		EntityID: created.ID,
	})
	httpresp.Created(c, created)
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	record, ok := h.bindTreatmentForm(c)
	if !ok {
		return
	}

	id := c.Param("id")
	updated, err := h.store.UpdateTreatment(id, record)
	if err != nil {
		httperr.NotFound(c, "treatment_not_found", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "update",
		Entity:   "treatment",
		EntityID: id,
	})
	httpresp.OK(c, updated)
}

func (h *TreatmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteTreatment(id); err != nil {
		httperr.NotFound(c, "treatment_not_found", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "delete",
		Entity:   "treatment",
		EntityID: id,
	})
	c.Status(http.StatusNoContent)
}

// bindTreatmentForm parses the multipart body into a record, validating the
// text fields and any attached photos. On failure it writes the response
// itself and returns ok=false.
func (h *TreatmentHandler) bindTreatmentForm(c *gin.Context) (models.TreatmentRecord, bool) {
	record := models.TreatmentRecord{
		AppointmentID: c.PostForm("appointment_id"),
		ProviderID:    c.GetString(middleware.ContextUserID),
		ClientRef:     c.PostForm("client_ref"),
		Notes:         c.PostForm("notes"),
		TreatmentType: c.PostForm("treatment_type"),
		Cost:          c.PostForm("cost"),
		Description:   c.PostForm("description"),
		Status:        c.PostForm("status"),
		TreatmentDate: c.PostForm("treatment_date"),
	}

	if user, err := h.store.UserByID(record.ProviderID); err == nil {
		record.ProviderName = user.Name
	}

	if strings.TrimSpace(record.Notes) == "" {
		httperr.UnprocessableEntity(c, "notes_required", "treatment notes are required")
		return models.TreatmentRecord{}, false
	}
	if record.Cost != "" {
		if cost, err := strconv.ParseFloat(record.Cost, 64); err != nil || cost < 0 {
			httperr.UnprocessableEntity(c, "invalid_cost", "cost must be a non-negative number")
			return models.TreatmentRecord{}, false
		}
	}
	if record.Status == "" {
		record.Status = models.TreatmentPending
	}

	for _, field := range []string{"before_photo", "after_photo"} {
		ref, err := h.acceptPhoto(c, field)
		if err != nil {
			return models.TreatmentRecord{}, false
		}
		switch field {
		case "before_photo":
			record.BeforePhotoRef = ref
		case "after_photo":
			record.AfterPhotoRef = ref
		}
	}

	return record, true
}

// acceptPhoto validates an optional photo field and returns a storage ref.
// The demo store keeps refs only; bytes are discarded after validation.
func (h *TreatmentHandler) acceptPhoto(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil // field absent; photos are optional
	}
	if fh.Size > maxPhotoBytes {
		httperr.UnprocessableEntity(c, "photo_too_large", field+" exceeds the 5MB limit")
		return "", errPhotoRejected
	}
	if !photoTypeAllowed(fh) {
		httperr.UnprocessableEntity(c, "unsupported_photo_type", field+" must be a JPEG or PNG image")
		return "", errPhotoRejected
	}
	return "photos/" + uuid.NewString() + "-" + fh.Filename, nil
}

func photoTypeAllowed(fh *multipart.FileHeader) bool {
	f, err := fh.Open()
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false
	}

	switch http.DetectContentType(head[:n]) {
	case "image/jpeg", "image/png":
		return true
	}
	return false
}
