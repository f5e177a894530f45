package homebrew

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
	"github.com/KirkDiggler/dnd-item-catalog/internal/uuid"
)

const indexKey = "homebrew:baseitems"

// Data is the stored form of a homebrew base item
type Data struct {
	Item      *item.Item `json:"item"`
	CreatedAt time.Time  `json:"created_at"`
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = RealTimeProvider()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
}

// NewRedis creates a Redis-backed repository with real ids and clock
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("homebrew:baseitem:%s", id)
}

func (r *redisRepo) Create(ctx context.Context, it *item.Item) error {
	if err := validate(it); err != nil {
		return err
	}
	if it.UniqueID == "" {
		it.UniqueID = r.uuidGenerator.New()
	}

	jsonData, err := json.Marshal(Data{Item: it, CreatedAt: r.timeProvider.Now()})
	if err != nil {
		return caterr.Wrap(err, "failed to marshal homebrew item")
	}

	// SETNX and the index add run in one MULTI; re-adding an existing id to
	// the index is a no-op.
	pipe := r.client.TxPipeline()
	created := pipe.SetNX(ctx, r.key(it.UniqueID), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, it.UniqueID)
	if _, err := pipe.Exec(ctx); err != nil {
		return caterr.Wrap(err, "failed to store homebrew item")
	}
	if !created.Val() {
		return caterr.AlreadyExistsf("homebrew item with ID '%s' already exists", it.UniqueID).
			WithMeta("item_id", it.UniqueID)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*item.Item, error) {
	if id == "" {
		return nil, caterr.InvalidArgument("item ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, caterr.NotFoundf("homebrew item with ID '%s' not found", id).
			WithMeta("item_id", id)
	}
	if err != nil {
		return nil, caterr.Wrap(err, "failed to get homebrew item")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, caterr.Wrap(err, "failed to unmarshal homebrew item")
	}
	if data.Item == nil {
		return nil, caterr.DataIntegrityf("homebrew item '%s' is empty", id).
			WithMeta("item_id", id)
	}

	return data.Item, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return caterr.InvalidArgument("item ID is required")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return caterr.Wrap(err, "failed to delete homebrew item")
	}
	if del.Val() == 0 {
		return caterr.NotFoundf("homebrew item with ID '%s' not found", id).
			WithMeta("item_id", id)
	}

	return nil
}

func (r *redisRepo) ListBaseItems(ctx context.Context) ([]*item.Item, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, caterr.Wrap(err, "failed to list homebrew item IDs")
	}

	items := make([]*item.Item, len(ids))
	stale := make([]bool, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			it, err := r.Get(gctx, id)
			if caterr.IsNotFound(err) {
				stale[i] = true
				return nil
			}
			if err != nil {
				return caterr.Wrapf(err, "failed to get homebrew item %s", id)
			}
			items[i] = it
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		if !stale[i] {
			continue
		}
		log.Printf("Dropping dangling homebrew index entry %s", id)
		if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
			log.Printf("Failed to remove dangling homebrew index entry %s: %v", id, err)
		}
	}

	items = slices.DeleteFunc(items, func(it *item.Item) bool { return it == nil })
	sortItems(items)
	return items, nil
}

func validate(it *item.Item) error {
	if it == nil {
		return caterr.InvalidArgument("item cannot be nil")
	}
	if strings.TrimSpace(it.Name) == "" {
		return caterr.InvalidArgument("item name is required")
	}
	if strings.TrimSpace(it.Source) == "" {
		return caterr.InvalidArgument("item source is required").
			WithMeta("item_name", it.Name)
	}
	return nil
}

func sortItems(items []*item.Item) {
	slices.SortFunc(items, func(a, b *item.Item) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			strings.Compare(a.UniqueID, b.UniqueID),
		)
	})
}
