package application

import "expvar"

// Published on /api/debug/vars.
var (
	userCacheHits   = expvar.NewInt("user_cache_hits")
	userCacheMisses = expvar.NewInt("user_cache_misses")
)
