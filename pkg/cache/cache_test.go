package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewWithoutAddrIsNil(t *testing.T) {
	require.Nil(t, New("", 0, time.Minute))
}

func TestNilCacheIsPassThrough(t *testing.T) {
	var c *Cache

	var dest []string
	hit, err := c.GetJSON(context.Background(), RestaurantListKey, &dest)
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, c.SetJSON(context.Background(), RestaurantListKey, []string{"a"}))
	require.NoError(t, c.Close())
}
