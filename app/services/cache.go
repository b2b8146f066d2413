package services

import (
	"time"

	"github.com/shashiranjanraj/bookstore/pkg/cache"
)

// catalogCacheKey holds the unfiltered book listing. Every mutation that can
// change a book row, including stock movements from order mutations, must
// drop it.
const catalogCacheKey = "books:all"

const catalogCacheTTL = 30 * time.Second

func invalidateCatalog() {
	_ = cache.Del(catalogCacheKey)
}
