package pdf

import (
	"os"

	"github.com/patrickmn/go-cache"
)

// fontCache holds raw TTF bytes for the process lifetime. Font data is
// immutable and small, so entries never expire and racing first requests may
// populate the same key redundantly without harm.
var fontCache = cache.New(cache.NoExpiration, 0)

// AcquireFont returns the font bytes for name, reading them from path on
// first use and serving the cached copy afterwards.
func AcquireFont(name, path string) ([]byte, error) {
	if v, ok := fontCache.Get(name); ok {
		return v.([]byte), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fontCache.Set(name, data, cache.NoExpiration)
	return data, nil
}
