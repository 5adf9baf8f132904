package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"studytrail-be/pkg/reading"
)

// SnapshotCache is a read-through cache in front of the snapshot store so a
// student flipping between sections doesn't hit Postgres on every render.
type SnapshotCache struct {
	cache *cache.Cache
}

func NewSnapshotCache() *SnapshotCache {
	// Reading sessions rarely outlive an hour; expired entries are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SnapshotCache{
		cache: c,
	}
}

func cacheKey(userID uuid.UUID, textbookID string, chapterNumber int) string {
	return fmt.Sprintf("%s/%s/%d", userID, textbookID, chapterNumber)
}

func (r *SnapshotCache) Save(userID uuid.UUID, state reading.State) {
	r.cache.Set(cacheKey(userID, state.TextbookID, state.ChapterNumber), state, cache.DefaultExpiration)
}

func (r *SnapshotCache) Get(userID uuid.UUID, textbookID string, chapterNumber int) (reading.State, bool) {
	if x, found := r.cache.Get(cacheKey(userID, textbookID, chapterNumber)); found {
		return x.(reading.State), true
	}
	return reading.State{}, false
}

func (r *SnapshotCache) Delete(userID uuid.UUID, textbookID string, chapterNumber int) {
	r.cache.Delete(cacheKey(userID, textbookID, chapterNumber))
}
