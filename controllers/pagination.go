package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// pageParams reads page/pageSize query parameters with sane bounds.
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func pagedResponse(data interface{}, totalCount int64, page, pageSize int) gin.H {
	return gin.H{
		"data":       data,
		"totalCount": totalCount,
		"pageNumber": page,
		"pageSize":   pageSize,
	}
}
