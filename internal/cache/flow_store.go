package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
)

// FlowStore keeps booking drafts in redis under their flow id. Drafts
// expire on their own; a flow nobody confirms just disappears.
type FlowStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFlowStore(rdb *redis.Client) *FlowStore {
	return &FlowStore{
		rdb: rdb,
		ttl: 30 * time.Minute,
	}
}

func flowKey(id string) string {
	return "booking:flow:" + id
}

func (s *FlowStore) Save(ctx context.Context, f *booking.Flow) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, flowKey(f.ID), raw, s.ttl).Err()
}

func (s *FlowStore) Get(ctx context.Context, id string) (*booking.Flow, error) {
	raw, err := s.rdb.Get(ctx, flowKey(id)).Bytes()
	if err == redis.Nil {
		return nil, httperr.ErrBusiness("flow_not_found")
	}
	if err != nil {
		return nil, err
	}

	var f booking.Flow
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
