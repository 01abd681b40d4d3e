package demoapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/medspa-console/internal/audit"
	"github.com/glowdesk/medspa-console/internal/dto"
	"github.com/glowdesk/medspa-console/internal/httperr"
	"github.com/glowdesk/medspa-console/internal/httpresp"
	"github.com/glowdesk/medspa-console/internal/middleware"
	"github.com/glowdesk/medspa-console/internal/models"
)

type SOAPNoteHandler struct {
	store *Store
	audit *audit.Dispatcher
}

func NewSOAPNoteHandler(store *Store, dispatcher *audit.Dispatcher) *SOAPNoteHandler {
	return &SOAPNoteHandler{store: store, audit: dispatcher}
}

func (h *SOAPNoteHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.SOAPNotes(c.Query("client_id")))
}

func (h *SOAPNoteHandler) Create(c *gin.Context) {
	note, ok := h.bindNote(c, true)
	if !ok {
		return
	}

	created, err := h.store.CreateSOAPNote(note)
	if err != nil {
		httperr.UnprocessableEntity(c, "client_not_found", "selected client does not exist")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "create",
		Entity:   "soap_note",
		EntityID: created.ID,
	})
	httpresp.Created(c, created)
}

func (h *SOAPNoteHandler) Update(c *gin.Context) {
	note, ok := h.bindNote(c, false)
	if !ok {
		return
	}

	id := c.Param("id")
	updated, err := h.store.UpdateSOAPNote(id, note)
	if err != nil {
		if httperr.IsStore(err, "client_not_found") {
			httperr.UnprocessableEntity(c, "client_not_found", "selected client does not exist")
			return
		}
		httperr.NotFound(c, "soap_note_not_found", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "update",
		Entity:   "soap_note",
		EntityID: id,
	})
	httpresp.OK(c, updated)
}

func (h *SOAPNoteHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteSOAPNote(id); err != nil {
		httperr.NotFound(c, "soap_note_not_found", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "delete",
		Entity:   "soap_note",
		EntityID: id,
	})
	c.Status(http.StatusNoContent)
}

func (h *SOAPNoteHandler) bindNote(c *gin.Context, creating bool) (models.SOAPNote, bool) {
	var payload dto.SOAPNotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return models.SOAPNote{}, false
	}

	for field, value := range map[string]string{
		"subjective": payload.Subjective,
		"objective":  payload.Objective,
		"assessment": payload.Assessment,
		"plan":       payload.Plan,
	} {
		if strings.TrimSpace(value) == "" {
			httperr.UnprocessableEntity(c, "missing_"+field, field+" section is required")
			return models.SOAPNote{}, false
		}
	}
	if creating && payload.ClientID == "" {
		httperr.UnprocessableEntity(c, "client_required", "select a client")
		return models.SOAPNote{}, false
	}

	providerID := payload.ProviderID
	if providerID == "" {
		providerID = c.GetString(middleware.ContextUserID)
	}

	note := models.SOAPNote{
		ClientID:      payload.ClientID,
		AppointmentID: payload.AppointmentID,
		ProviderID:    providerID,
		NoteDate:      payload.NoteDate,
		Subjective:    payload.Subjective,
		Objective:     payload.Objective,
		Assessment:    payload.Assessment,
		Plan:          payload.Plan,
	}
	if user, err := h.store.UserByID(providerID); err == nil {
		note.ProviderName = user.Name
	}
	return note, true
}
