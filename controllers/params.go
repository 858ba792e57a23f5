package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID parses the :id path segment. 0 means bad input.
func paramID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// queryUint parses an optional numeric query param like ?restaurant=3.
func queryUint(c *gin.Context, key string) *uint {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}
