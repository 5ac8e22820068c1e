package core

import "time"

// SeenRecord marks one identity key as delivered for a profile, so the
// pipeline never re-surfaces the same lead. DeliveredAt supports retention
// purges of stale entries.
type SeenRecord struct {
	Id          ID
	DeliveredAt time.Time
}
