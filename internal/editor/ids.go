package editor

import (
	"strconv"
	"time"
)

// IDGenerator 生成在当前序列中不冲突的 id。
type IDGenerator interface {
	NewID(taken func(id string) bool) string
}

// TimestampIDs 以当前毫秒时间戳作为 id，冲突时顺延。
type TimestampIDs struct {
	Prefix string
	Now    func() time.Time
}

func (g TimestampIDs) NewID(taken func(id string) bool) string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	ms := now().UnixMilli()
	for {
		id := g.Prefix + strconv.FormatInt(ms, 10)
		if taken == nil || !taken(id) {
			return id
		}
		ms++
	}
}

func idSet[T any](items []T, id func(T) string) func(string) bool {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[id(item)] = struct{}{}
	}
	return func(candidate string) bool {
		_, ok := set[candidate]
		return ok
	}
}
