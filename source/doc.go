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


// Package source defines the candidate source boundary of the ranking pipeline.
//
// The pipeline never fetches posts itself; it issues shard queries against a
// Source implementation owned by the caller. The package ships two
// implementations:
//
//   - Static: an in-memory source over a pre-fetched post dump, with local
//     keyword matching. Used by the CLI and in tests.
//   - source/mock: a fully injectable test double.
//
// Network-backed implementations (platform APIs, search indexes) live with the
// callers that own their credentials and rate limits.
package source
