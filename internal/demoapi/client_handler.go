package demoapi

import (
	"github.com/gin-gonic/gin"

	"github.com/glowdesk/medspa-console/internal/httpresp"
)

type ClientHandler struct {
	store *Store
}

func NewClientHandler(store *Store) *ClientHandler {
	return &ClientHandler{store: store}
}

func (h *ClientHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.Clients())
}
