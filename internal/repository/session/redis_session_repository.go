package session

import (
	"context"
	"encoding/json"
	"time"

	"placid-catalog-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 1 * time.Hour

// Repository keeps chatbot sessions in Redis with a sliding TTL. When Redis
// is unreachable every lookup misses, so each request gets a fresh session
// and the chatbot degrades to stateless answers.
type Repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) *Repository {
	return &Repository{rdb: rdb}
}

func key(sessionID string) string {
	return "chatbot:session:" + sessionID
}

func (r *Repository) Save(ctx context.Context, session *store.Session) error {
	if r.rdb == nil {
		return nil
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key(session.ID), data, sessionTTL).Err()
}

func (r *Repository) Get(ctx context.Context, sessionID string) (*store.Session, bool) {
	if r.rdb == nil {
		return nil, false
	}
	data, err := r.rdb.Get(ctx, key(sessionID)).Bytes()
	if err != nil {
		return nil, false
	}
	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (r *Repository) Delete(ctx context.Context, sessionID string) {
	if r.rdb == nil {
		return
	}
	r.rdb.Del(ctx, key(sessionID))
}
