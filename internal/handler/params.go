package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

func parsePagination(c *gin.Context) (page, pageSize int) {
	page = defaultPage
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	pageSize = defaultPageSize
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 {
		pageSize = v
	}
	return page, pageSize
}

func queryInt(c *gin.Context, name string) *int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return &v
		}
	}
	return nil
}

func queryBool(c *gin.Context, name string) *bool {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return &v
		}
	}
	return nil
}
