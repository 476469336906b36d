package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

// Accepted layouts for timestamps in query strings, most specific first.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", domain.DateLayout}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return id, true
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

// queryTimeRange reads two required timestamps from the query string.
func queryTimeRange(c *gin.Context, startKey, endKey string) (time.Time, time.Time, bool) {
	start, err := parseTime(c.Query(startKey))
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid %s", startKey))
		return time.Time{}, time.Time{}, false
	}
	end, err := parseTime(c.Query(endKey))
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid %s", endKey))
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func queryFloat(c *gin.Context, key string) (*float64, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid %s", key))
		return nil, false
	}
	return &v, true
}

func queryInt(c *gin.Context, key string) (*int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid %s", key))
		return nil, false
	}
	return &v, true
}

func queryString(c *gin.Context, key string) *string {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	return &raw
}
