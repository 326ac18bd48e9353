package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"foodserver/pkg/resp"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth validates the shared static key. Clients may send it as the
// `key` query parameter, an X-API-Key header, or a `key` field in a JSON
// body. A missing or mismatched key aborts the request immediately.
func APIKeyAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.Query("key")
		if got == "" {
			got = c.GetHeader("X-API-Key")
		}
		if got == "" {
			got = keyFromBody(c)
		}
		if got == "" || got != key {
			resp.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// keyFromBody peeks at a JSON body for the key field and restores the
// body so handlers can still bind it.
func keyFromBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	ct := c.ContentType()
	if !strings.Contains(ct, "json") {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var probe struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.Key
}
