package post

import (
	"context"
	"encoding/json"
	"fmt"

	"kenshi-webspace/internal/domain"
)

// The article list is the hottest read path, so the first pages are kept
// in Redis and dropped wholesale on any post mutation.

func (s *service) listKey(params domain.PaginationParams) string {
	return fmt.Sprintf("%s:%d:%d", listCacheKey, params.Page, params.PageSize)
}

func (s *service) getCachedList(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.PostWithAuthor], bool) {
	var resp domain.PaginatedResponse[domain.PostWithAuthor]
	if s.redis == nil {
		return resp, false
	}

	raw, err := s.redis.Get(ctx, s.listKey(params)).Bytes()
	if err != nil {
		return resp, false
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return resp, false
	}
	return resp, true
}

func (s *service) setCachedList(ctx context.Context, params domain.PaginationParams, resp domain.PaginatedResponse[domain.PostWithAuthor]) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, s.listKey(params), raw, listCacheTTL).Err()
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.redis == nil {
		return
	}

	iter := s.redis.Scan(ctx, 0, listCacheKey+":*", 100).Iterator()
	for iter.Next(ctx) {
		_ = s.redis.Del(ctx, iter.Val()).Err()
	}
	if err := iter.Err(); err != nil {
		s.log.Warn().Err(err).Msg("post list cache invalidation failed")
	}
}
