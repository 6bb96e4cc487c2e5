package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
)

const (
	reportKeyPrefix = "battle_report:"
	reportIndexKey  = "battle_reports"

	// TTL for reports (30 days)
	reportTTL = 30 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	TTL          time.Duration
	Logger       *slog.Logger
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
	logger       *slog.Logger
}

// NewRedis creates a Redis-backed report repository with default configuration
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// NewRedisRepository creates a Redis-backed report repository. Reports are
// stored as JSON under battle_report:<id> and indexed by creation time in
// the battle_reports sorted set.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = reportTTL
	}
	tp := cfg.TimeProvider
	if tp == nil {
		tp = SystemClock{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: tp,
		ttl:          ttl,
		logger:       logger,
	}
}

func reportKey(id string) string {
	return reportKeyPrefix + id
}

func (r *redisRepo) Create(ctx context.Context, report *Report) error {
	if err := validateReport(report); err != nil {
		return err
	}

	report.CreatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(report)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to marshal report")
	}

	created, err := r.client.SetNX(ctx, reportKey(report.ID), string(jsonData), r.ttl).Result()
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to store report in Redis")
	}
	if !created {
		return apperr.AlreadyExistsf("report %s already exists", report.ID)
	}

	err = r.client.ZAdd(ctx, reportIndexKey, redis.Z{
		Score:  float64(report.CreatedAt.UnixMilli()),
		Member: report.ID,
	}).Err()
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to index report in Redis")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Report, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("report ID cannot be empty")
	}

	jsonData, err := r.client.Get(ctx, reportKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, newReportNotFoundError(id)
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get report from Redis")
	}

	var report Report
	if err := json.Unmarshal(jsonData, &report); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to unmarshal report")
	}

	return &report, nil
}

func (r *redisRepo) List(ctx context.Context, limit int) ([]*Report, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := r.client.ZRevRange(ctx, reportIndexKey, 0, stop).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list reports from Redis")
	}

	reports := make([]*Report, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			report, err := r.Get(gctx, id)
			if err != nil {
				// expired reports linger in the index until pruned
				if apperr.IsNotFound(err) {
					return nil
				}
				return apperr.Wrapf(err, "failed to get report %s", id)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var stale []any
	result := make([]*Report, 0, len(reports))
	for i, report := range reports {
		if report == nil {
			stale = append(stale, ids[i])
			continue
		}
		result = append(result, report)
	}

	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, reportIndexKey, stale...).Err(); err != nil {
			r.logger.Warn("Failed to prune expired reports", "count", len(stale), "error", err)
		}
	}

	return result, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, reportKey(id))
	pipe.ZRem(ctx, reportIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, fmt.Sprintf("failed to delete report %s from Redis", id))
	}

	return nil
}
