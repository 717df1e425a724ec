package bible

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPassageCacheExpiry(t *testing.T) {
	cache := newPassageCache(30 * time.Millisecond)
	defer cache.close()

	cache.set("Psalm 23:1", "cached")

	value, ok := cache.get("Psalm 23:1")
	assert.True(t, ok)
	assert.Equal(t, "cached", value)

	assert.Eventually(t, func() bool {
		_, ok := cache.get("Psalm 23:1")
		return !ok
	}, time.Second, 10*time.Millisecond)

	_, ok = cache.get("never set")
	assert.False(t, ok)
}
