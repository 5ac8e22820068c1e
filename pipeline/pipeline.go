// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/leadrank/ai"
	"github.com/poiesic/leadrank/core"
	"github.com/poiesic/leadrank/engage"
	"github.com/poiesic/leadrank/filter"
	"github.com/poiesic/leadrank/rank"
	"github.com/poiesic/leadrank/source"
	"github.com/poiesic/leadrank/storage"
)

const (
	defaultShardTimeout = 15 * time.Second
	defaultShardLimit   = 100
)

// Pipeline runs one ranking request end to end: shard planning, concurrent
// candidate fetches, admission filtering, cross-shard deduplication, lexical
// scoring over the merged pool, ranking, and an optional engagement
// re-scoring stage.
type Pipeline struct {
	source       source.Source
	provider     ai.AIProvider
	seenRepo     storage.SeenRepository
	engageScorer *engage.Scorer
	fetchPool    *ants.Pool
	shardTimeout time.Duration
	shardLimit   int
	filterCfg    filter.Config
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent shard fetches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.fetchPool != nil {
			p.fetchPool.Release()
		}

		fetchPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.fetchPool = fetchPool
		return nil
	}
}

// WithShardTimeout sets the per-shard fetch timeout.
// Default is 15 seconds. A timed-out shard contributes zero items.
func WithShardTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) error {
		if timeout > 0 {
			p.shardTimeout = timeout
		}
		return nil
	}
}

// WithShardLimit sets the maximum items fetched per shard.
// Default is 100.
func WithShardLimit(limit int) Option {
	return func(p *Pipeline) error {
		if limit > 0 {
			p.shardLimit = limit
		}
		return nil
	}
}

// WithFilterConfig overrides the admission-control limits. The profile's
// recency window and excluded groups are applied on top of it per run.
func WithFilterConfig(cfg filter.Config) Option {
	return func(p *Pipeline) error {
		p.filterCfg = cfg
		return nil
	}
}

// WithAIProvider enables the engagement re-scoring stage for profiles that
// carry a product description.
func WithAIProvider(provider ai.AIProvider) Option {
	return func(p *Pipeline) error {
		p.provider = provider
		return nil
	}
}

// WithSeenRepository persists delivered identity keys across runs, so the
// same lead is never surfaced twice for a profile.
func WithSeenRepository(repo storage.SeenRepository) Option {
	return func(p *Pipeline) error {
		p.seenRepo = repo
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a ranking pipeline over the given candidate source.
func NewPipeline(src source.Source, opts ...Option) (*Pipeline, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	fetchPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		source:       src,
		fetchPool:    fetchPool,
		shardTimeout: defaultShardTimeout,
		shardLimit:   defaultShardLimit,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	if p.provider != nil {
		scorer, err := engage.NewScorer(p.provider, engage.WithLogger(p.logger))
		if err != nil {
			p.Release()
			return nil, err
		}
		p.engageScorer = scorer
	}

	return p, nil
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Posts is the ordered, bounded result set.
	Posts []*core.ScoredPost

	// Fetched counts raw items returned across all shards, before any
	// filtering or deduplication.
	Fetched int

	// Filtered counts items rejected by admission control.
	Filtered int

	// Duplicates counts items rejected as cross-shard or historical
	// duplicates.
	Duplicates int

	// ShardsFailed counts shard fetches that errored or timed out.
	ShardsFailed int
}

// Run executes one ranking request. Shard fetches run concurrently on the
// worker pool; a failed shard is logged and degrades recall but never aborts
// the run. All admission, deduplication, and scoring happens on the fully
// merged pool, since the lexical vector space must be built once over every
// surviving candidate.
func (p *Pipeline) Run(ctx context.Context, profile *core.Profile) (*Result, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}
	if err := core.ValidateProfile(profile); err != nil {
		return nil, err
	}

	shards := rank.PlanShards(profile)
	result := &Result{}

	pool := p.fetchShards(ctx, shards, profile.Window, result)
	result.Fetched = len(pool)
	if len(pool) == 0 {
		return result, nil
	}

	admitted := p.admit(ctx, pool, profile, result)
	if len(admitted) == 0 {
		return result, nil
	}

	scored, err := rank.ScorePool(admitted, profile)
	if err != nil {
		return nil, err
	}
	ranked := rank.Rank(scored, profile.MinSimilarity, profile.MaxResults)

	if p.engageScorer != nil && profile.Description != "" {
		rescored, err := p.engageScorer.Score(ctx, ranked, profile.Description)
		if err != nil {
			// Lexical ranking is still valid; degrade instead of failing.
			p.logger.Error("engagement scoring failed, keeping lexical order", "err", err)
		} else {
			ranked = rescored
		}
	}

	p.recordDelivered(ctx, profile, ranked)

	result.Posts = ranked
	return result, nil
}

// fetchShards issues every shard query concurrently and merges the results
// in shard order.
func (p *Pipeline) fetchShards(ctx context.Context, shards []rank.Shard, window core.RecencyWindow, result *Result) []*core.Post {
	slots := make([][]*core.Post, len(shards))
	var failed sync.Map
	var wg sync.WaitGroup

	for i, shard := range shards {
		i, shard := i, shard
		wg.Add(1)
		submitErr := p.fetchPool.Submit(func() {
			defer wg.Done()

			shardCtx, cancel := context.WithTimeout(ctx, p.shardTimeout)
			defer cancel()

			posts, err := p.source.Search(shardCtx, shard.Query(), window, p.shardLimit)
			if err != nil {
				p.logger.Warn("shard fetch failed",
					"query", shard.Query(), "err", err)
				failed.Store(i, struct{}{})
				return
			}
			slots[i] = posts
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Warn("shard submit failed",
				"query", shard.Query(), "err", submitErr)
			failed.Store(i, struct{}{})
		}
	}
	wg.Wait()

	failed.Range(func(_, _ any) bool {
		result.ShardsFailed++
		return true
	})

	var pool []*core.Post
	for _, posts := range slots {
		pool = append(pool, posts...)
	}
	return pool
}

// admit runs admission control and deduplication over the merged pool.
func (p *Pipeline) admit(ctx context.Context, pool []*core.Post, profile *core.Profile, result *Result) []*core.Post {
	cfg := p.filterCfg
	cfg.Window = profile.Window
	cfg.ExcludedGroups = profile.ExcludedGroups
	admission := filter.New(cfg)

	tracker := filter.NewTracker(p.seenSeed(ctx, profile))

	admitted := make([]*core.Post, 0, len(pool))
	for _, post := range pool {
		ok, reason := admission.Admit(post)
		if !ok {
			result.Filtered++
			p.logger.Debug("post rejected", "post_id", post.ID, "reason", reason)
			continue
		}
		if !tracker.Admit(post) {
			result.Duplicates++
			continue
		}
		admitted = append(admitted, post)
	}
	return admitted
}

// seenSeed merges the profile's in-memory seen set with persisted delivery
// history, when a seen repository is configured.
func (p *Pipeline) seenSeed(ctx context.Context, profile *core.Profile) map[core.ID]struct{} {
	if p.seenRepo == nil {
		return profile.Seen
	}

	persisted, err := p.seenRepo.GetSeen(ctx, profile.Key())
	if err != nil {
		p.logger.Warn("loading seen history failed", "err", err)
		return profile.Seen
	}
	for id := range profile.Seen {
		persisted[id] = struct{}{}
	}
	return persisted
}

// recordDelivered persists the identity keys of the delivered posts.
func (p *Pipeline) recordDelivered(ctx context.Context, profile *core.Profile, delivered []*core.ScoredPost) {
	if p.seenRepo == nil || len(delivered) == 0 {
		return
	}

	ids := make([]core.ID, 0, len(delivered))
	for _, sp := range delivered {
		if key, ok := sp.Post.IdentityKey(); ok {
			ids = append(ids, key)
		}
	}
	if len(ids) == 0 {
		return
	}

	if err := p.seenRepo.AddSeen(ctx, profile.Key(), time.Now().UTC(), ids...); err != nil {
		p.logger.Warn("recording delivered posts failed", "err", err)
	}
}

// Release frees the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.fetchPool != nil {
		p.fetchPool.Release()
	}
}
