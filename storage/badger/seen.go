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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/leadrank/core"
	"github.com/poiesic/leadrank/storage"
)

// SeenRepository implements storage.SeenRepository for BadgerDB.
type SeenRepository struct {
	backend  *Backend
	ownsBack bool
}

var _ storage.SeenRepository = (*SeenRepository)(nil)

// NewSeenRepository opens a BadgerDB-backed seen repository at the given
// path. Closing the repository closes the underlying database.
func NewSeenRepository(filePath string) (storage.SeenRepository, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}
	return &SeenRepository{backend: backend, ownsBack: true}, nil
}

// NewSeenRepositoryWithBackend creates a seen repository on an existing
// backend. The caller keeps ownership of the backend's lifecycle.
func NewSeenRepositoryWithBackend(backend *Backend) (storage.SeenRepository, error) {
	if backend == nil {
		return nil, storage.ErrStorageClosed
	}
	return &SeenRepository{backend: backend}, nil
}

// Close closes the underlying database when this repository owns it.
func (r *SeenRepository) Close() error {
	if r.ownsBack {
		return r.backend.Close()
	}
	return nil
}

// AddSeen records identity keys as delivered for the profile.
func (r *SeenRepository) AddSeen(ctx context.Context, profileKey string, deliveredAt time.Time, ids ...core.ID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if deliveredAt.IsZero() {
		deliveredAt = time.Now().UTC()
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record := &core.SeenRecord{Id: id, DeliveredAt: deliveredAt}
			if err := tx.Set(makeSeenKey(profileKey, id), storage.MarshalSeenRecord(record)); err != nil {
				return err
			}
		}
		return nil
	}, true)
}

// GetSeen returns every identity key recorded for the profile.
func (r *SeenRepository) GetSeen(ctx context.Context, profileKey string) (map[core.ID]struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[core.ID]struct{})
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeSeenPrefix(profileKey)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if id, ok := seenIDFromKey(iter.Item().Key()); ok {
				seen[id] = struct{}{}
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// PurgeSeen removes entries delivered before the cutoff and returns how many
// were removed. A zero cutoff removes every entry for the profile.
func (r *SeenRepository) PurgeSeen(ctx context.Context, profileKey string, before time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var removed int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeSeenPrefix(profileKey)
		iter := tx.NewIterator(opts)

		var stale [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			if before.IsZero() {
				stale = append(stale, item.KeyCopy(nil))
				continue
			}

			var record *core.SeenRecord
			err := item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalSeenRecord(val)
				return err
			})
			if err != nil {
				iter.Close()
				return err
			}
			if record.DeliveredAt.Before(before) {
				stale = append(stale, item.KeyCopy(nil))
			}
		}
		iter.Close()

		for _, key := range stale {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	}, true)
	if err != nil {
		return 0, err
	}
	return removed, nil
}
