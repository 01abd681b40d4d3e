package demoapi

import (
	"github.com/gin-gonic/gin"

	"github.com/glowdesk/medspa-console/internal/httpresp"
	"github.com/glowdesk/medspa-console/internal/middleware"
)

type AppointmentHandler struct {
	store *Store
}

func NewAppointmentHandler(store *Store) *AppointmentHandler {
	return &AppointmentHandler{store: store}
}

// ListAll serves the admin/provider view.
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	httpresp.List(c, h.store.Appointments())
}

// ListBookings serves /bookings. With mine=true only the caller's own
// bookings come back; without it the full list does.
func (h *AppointmentHandler) ListBookings(c *gin.Context) {
	if c.Query("mine") == "true" {
		userID := c.GetString(middleware.ContextUserID)
		httpresp.List(c, h.store.BookingsFor(userID))
		return
	}
	httpresp.List(c, h.store.Appointments())
}
