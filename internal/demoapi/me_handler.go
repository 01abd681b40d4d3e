package demoapi

import (
	"github.com/gin-gonic/gin"

	"github.com/glowdesk/medspa-console/internal/dto"
	"github.com/glowdesk/medspa-console/internal/httperr"
	"github.com/glowdesk/medspa-console/internal/httpresp"
	"github.com/glowdesk/medspa-console/internal/middleware"
)

type MeHandler struct {
	store *Store
}

func NewMeHandler(store *Store) *MeHandler {
	return &MeHandler{store: store}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		httperr.Unauthorized(c, "user_not_in_context", "")
		return
	}

	user, err := h.store.UserByID(userID)
	if err != nil {
		httperr.Unauthorized(c, "unknown_user", "token does not match a known account")
		return
	}

	httpresp.OK(c, dto.UserResponse{User: user})
}
