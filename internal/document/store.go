package document

import (
	"log/slog"
	"sync"

	"resumehub/internal/resume"
)

// Snapshot 是某一版本文档的只读视图。
type Snapshot struct {
	Version uint64            `json:"version"`
	Data    resume.ResumeData `json:"data"`
}

// Listener 在每次整文档替换后被同步调用。
// Listener 内不能再调用 Replace，否则会死锁。
type Listener func(Snapshot)

// Store 持有唯一的简历文档，只提供整文档替换，不做任何校验。
type Store struct {
	// writeMu 串行化替换与通知，保证上一次重绘完成前不会开始下一次替换。
	writeMu sync.Mutex

	mu        sync.RWMutex
	doc       resume.ResumeData
	version   uint64
	listeners []subscription
	nextSubID int

	logger *slog.Logger
}

type subscription struct {
	id int
	fn Listener
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New 以 seed 初始化文档，版本号从 1 开始。
func New(seed resume.ResumeData, opts ...Option) *Store {
	s := &Store{
		doc:     seed.Clone(),
		version: 1,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot 返回当前文档的深拷贝。
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Version: s.version, Data: s.doc.Clone()}
}

// Replace 原子地替换整份文档，并按订阅顺序通知所有监听者。
func (s *Store) Replace(doc resume.ResumeData) Snapshot {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.doc = doc.Clone()
	s.version++
	snap := Snapshot{Version: s.version, Data: s.doc.Clone()}
	listeners := append([]subscription(nil), s.listeners...)
	s.mu.Unlock()

	s.logger.Debug("document replaced",
		slog.Uint64("version", snap.Version),
		slog.Int("listeners", len(listeners)),
	)

	for _, sub := range listeners {
		// 每个监听者拿到独立拷贝，互相之间不会看到对方的修改。
		sub.fn(Snapshot{Version: snap.Version, Data: snap.Data.Clone()})
	}
	return snap
}

// Subscribe 注册重绘回调，返回的函数用于取消订阅，可重复调用。
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}
