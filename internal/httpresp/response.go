package httpresp

import "github.com/gin-gonic/gin"

// ListResponse is the envelope every collection endpoint returns. The console
// client also decodes bare JSON arrays for backends that skip the envelope.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
