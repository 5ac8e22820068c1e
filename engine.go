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


package leadrank

import (
	"log/slog"

	"github.com/poiesic/leadrank/ai"
	"github.com/poiesic/leadrank/ai/openai"
	"github.com/poiesic/leadrank/pipeline"
	"github.com/poiesic/leadrank/source"
	"github.com/poiesic/leadrank/storage"
	"github.com/poiesic/leadrank/storage/badger"
)

// Engine bundles the storage backend and AI provider behind one lifecycle,
// and constructs ranking pipelines wired to both.
type Engine struct {
	backend  *badger.Backend
	seenRepo storage.SeenRepository
	provider ai.AIProvider
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig  *ai.Config
	withoutAI bool
	inMemory  bool
}

// WithAIConfig overrides the AI provider configuration.
func WithAIConfig(cfg *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithoutAI disables the AI provider. Pipelines built from the engine then
// rank lexically only, skipping the engagement stage.
func WithoutAI() EngineOption {
	return func(o *engineOptions) {
		o.withoutAI = true
	}
}

// WithInMemoryStorage keeps all delivery history in memory. Intended for
// tests and one-off runs.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine opens the storage backend at filePath and initializes the AI
// provider. Callers own the Engine and must Close it.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	seenRepo, err := badger.NewSeenRepositoryWithBackend(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	var provider ai.AIProvider
	if !options.withoutAI {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			seenRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Engine{
		backend:  backend,
		seenRepo: seenRepo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider and storage backend.
func (e *Engine) Close() error {
	if e.provider != nil {
		if err := e.provider.Close(); err != nil {
			e.logger.Error("error closing AI provider", "err", err)
		}
	}

	if err := e.seenRepo.Close(); err != nil {
		e.logger.Error("error closing seen repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// SeenRepository returns the delivery-history repository.
func (e *Engine) SeenRepository() storage.SeenRepository {
	return e.seenRepo
}

// NewPipeline builds a ranking pipeline over the given candidate source,
// wired to the engine's delivery history and AI provider. Additional
// pipeline options are applied after the engine's wiring.
func (e *Engine) NewPipeline(src source.Source, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	wired := []pipeline.Option{
		pipeline.WithSeenRepository(e.seenRepo),
		pipeline.WithLogger(e.logger),
	}
	if e.provider != nil {
		wired = append(wired, pipeline.WithAIProvider(e.provider))
	}
	return pipeline.NewPipeline(src, append(wired, opts...)...)
}
