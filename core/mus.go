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

package core

import (
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS format serializers for persisted types.

var (
	IDMUS         = idMUS{}
	SeenRecordMUS = seenRecordMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(v ID) int {
	return varint.Uint64.Size(uint64(v))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type seenRecordMUS struct{}

func (s seenRecordMUS) Marshal(v SeenRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += raw.TimeUnix.Marshal(v.DeliveredAt, bs[n:])
	return n
}

func (s seenRecordMUS) Unmarshal(bs []byte) (v SeenRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return v, n, err
	}
	var n1 int
	v.DeliveredAt, n1, err = raw.TimeUnix.Unmarshal(bs[n:])
	n += n1
	return v, n, err
}

func (s seenRecordMUS) Size(v SeenRecord) int {
	return IDMUS.Size(v.Id) + raw.TimeUnix.Size(v.DeliveredAt)
}

func (s seenRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return n, err
	}
	n1, err := raw.TimeUnix.Skip(bs[n:])
	return n + n1, err
}
