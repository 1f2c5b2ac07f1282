package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodhub-api/apperr"
	"foodhub-api/response"
)

// parseID reads a numeric path parameter, answering 400 on garbage.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(c, apperr.InvalidRequest("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}

// parseBoolQuery reads an optional "true"/"false" query parameter.
func parseBoolQuery(c *gin.Context, name string) *bool {
	switch c.Query(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// parseIntQuery reads an optional non-negative integer query parameter.
func parseIntQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
