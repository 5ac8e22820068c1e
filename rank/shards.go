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

package rank

import (
	"strings"

	"github.com/poiesic/leadrank/core"
)

// Shard is one search query's worth of keywords. Keyword pairs keep each
// query under source query-length limits while widening recall beyond a
// single combined OR-query; the resulting shards overlap deliberately, which
// is why the pipeline deduplicates the merged pool.
type Shard struct {
	Keywords []string
}

// Query renders the shard as a quoted OR-query, e.g. `"coffee" OR "espresso"`.
func (s Shard) Query() string {
	quoted := make([]string, len(s.Keywords))
	for i, kw := range s.Keywords {
		quoted[i] = `"` + kw + `"`
	}
	return strings.Join(quoted, " OR ")
}

// EffectiveKeywords returns the profile's usable primary and secondary
// keyword lists with blanks dropped. When the primary slot holds nothing
// usable the secondary list is promoted into its place, so callers always
// score and shard against the primary return value.
func EffectiveKeywords(p *core.Profile) (primary, secondary []string) {
	primary = cleanKeywords(p.PrimaryKeywords)
	secondary = cleanKeywords(p.SecondaryKeywords)
	if len(primary) == 0 {
		primary = secondary
		secondary = nil
	}
	return primary, secondary
}

// PlanShards produces every unordered pair of the profile's effective
// primary keywords, in list order. A single-keyword profile yields one
// size-1 shard; a profile with no usable keywords yields none.
func PlanShards(p *core.Profile) []Shard {
	primary, _ := EffectiveKeywords(p)

	switch len(primary) {
	case 0:
		return nil
	case 1:
		return []Shard{{Keywords: primary}}
	}

	shards := make([]Shard, 0, len(primary)*(len(primary)-1)/2)
	for i := 0; i < len(primary); i++ {
		for j := i + 1; j < len(primary); j++ {
			shards = append(shards, Shard{Keywords: []string{primary[i], primary[j]}})
		}
	}
	return shards
}

func cleanKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
