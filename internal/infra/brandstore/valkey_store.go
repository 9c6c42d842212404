package brandstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/ecolife/ecolife-api/internal/domain/brand"
)

// ValkeyStore keeps brand search counters in a Valkey sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "brand"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) IncrementSearch(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display == "" {
		return nil
	}
	return displayWriteErr(s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error())
}

// displayWriteErr filters the SET NX outcome. NX keeps the first spelling and
// answers an existing key with a nil reply, which is not a failure.
func displayWriteErr(err error) error {
	if err == nil || valkey.IsValkeyNil(err) {
		return nil
	}
	return fmt.Errorf("store brand display name: %w", err)
}

func (s *ValkeyStore) TopSearches(ctx context.Context, limit int) ([]brand.TrendingBrand, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	scored, err := parseScoredReply[valkey.ValkeyMessage](arr)
	if err != nil {
		return nil, fmt.Errorf("parse trending reply: %w", err)
	}
	out := make([]brand.TrendingBrand, 0, len(scored))
	for _, m := range scored {
		out = append(out, brand.TrendingBrand{Name: s.fetchDisplay(ctx, m.member), Count: int64(m.score)})
	}
	return out, nil
}

type scoredMember struct {
	member string
	score  float64
}

// replyMessage is the subset of *valkey.ValkeyMessage needed to read a
// ZRANGE WITHSCORES reply.
type replyMessage[M any] interface {
	*M
	ToArray() ([]M, error)
	ToString() (string, error)
	ToFloat64() (float64, error)
}

// parseScoredReply accepts both reply shapes: RESP3 nests [member, score]
// pairs while RESP2 is a flat member, score, member, score array.
func parseScoredReply[M any, PM replyMessage[M]](arr []M) ([]scoredMember, error) {
	out := make([]scoredMember, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			pair  [2]PM
			width int
		)
		if tuple, err := PM(&arr[i]).ToArray(); err == nil {
			if len(tuple) != 2 {
				return nil, fmt.Errorf("entry %d has %d elements, want 2", i, len(tuple))
			}
			pair, width = [2]PM{&tuple[0], &tuple[1]}, 1
		} else {
			if i+1 >= len(arr) {
				return nil, fmt.Errorf("member %d has no score", i)
			}
			pair, width = [2]PM{&arr[i], &arr[i+1]}, 2
		}
		member, err := pair[0].ToString()
		if err != nil {
			return nil, fmt.Errorf("entry %d member: %w", i, err)
		}
		score, err := pair[1].ToFloat64()
		if err != nil {
			return nil, fmt.Errorf("entry %d score: %w", i, err)
		}
		out = append(out, scoredMember{member: member, score: score})
		i += width
	}
	return out, nil
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	display, err := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build()).ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ brand.TrendStore = (*ValkeyStore)(nil)
