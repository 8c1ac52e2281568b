package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"resumehub/internal/document"
	"resumehub/internal/export"
	"resumehub/internal/preview"
	"resumehub/internal/sequence"
	"resumehub/internal/theme"
)

const (
	wsPingInterval = 30 * time.Second
	wsWriteTimeout = 5 * time.Second
)

// snapshotMessage 是推送给实时预览的消息。
type snapshotMessage struct {
	Type    string `json:"type"`
	Version uint64 `json:"version"`
	HTML    string `json:"html"`
}

// 客户端发来的拖拽消息。
const (
	dragStartMessage = "drag_start"
	dragOverMessage  = "drag_over"
	dropMessage      = "drop"
	cancelMessage    = "cancel"
)

type clientMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ActivityReorderer 提交拖拽完成后的经历重排。
type ActivityReorderer interface {
	ReorderActivities(g sequence.Gesture) (document.Snapshot, bool)
}

type wsClient struct {
	kick chan struct{}
}

// notify 合并未处理的刷新请求，只保留一次。
func (c *wsClient) notify() {
	select {
	case c.kick <- struct{}{}:
	default:
	}
}

// WsHandler 在每次文档替换或外观变化时推送最新预览，
// 并转发 Redis 上的导出通知。
type WsHandler struct {
	store       *document.Store
	theme       *theme.Context
	renderer    *preview.Renderer
	reorderer   ActivityReorderer
	redisClient *redis.Client
	logger      *slog.Logger
	upgrader    websocket.Upgrader

	mu          sync.Mutex
	clients     map[*wsClient]struct{}
	unsubscribe func()
}

// NewWsHandler 构造 WebSocket 处理器。redisClient 为 nil 时不转发导出通知，
// reorderer 为 nil 时忽略客户端的拖拽消息。
func NewWsHandler(store *document.Store, themeCtx *theme.Context, renderer *preview.Renderer, reorderer ActivityReorderer, redisClient *redis.Client, logger *slog.Logger) *WsHandler {
	h := &WsHandler{
		store:       store,
		theme:       themeCtx,
		renderer:    renderer,
		reorderer:   reorderer,
		redisClient: redisClient,
		logger:      logger,
		clients:     make(map[*wsClient]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false
			}
			return strings.EqualFold(u.Host, r.Host)
		},
	}
	// Listener 在 Replace 的锁内同步执行，这里只做非阻塞通知。
	h.unsubscribe = store.Subscribe(func(document.Snapshot) { h.Refresh() })
	return h
}

// Refresh 通知所有连接重新推送预览。
func (h *WsHandler) Refresh() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.notify()
	}
}

// Close 取消对文档的订阅。
func (h *WsHandler) Close() {
	h.unsubscribe()
}

func (h *WsHandler) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *WsHandler) unregister(c *wsClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// HandleConnection 负责升级连接并启动读写循环。
func (h *WsHandler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("upgrade websocket failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	log := h.logger.With(slog.String("client_ip", c.ClientIP()))

	client := &wsClient{kick: make(chan struct{}, 1)}
	h.register(client)
	defer h.unregister(client)

	errCh := make(chan error, 2)
	go h.readLoop(ctx, conn, errCh, cancel, log)

	var notifications <-chan *redis.Message
	if h.redisClient != nil {
		pubsub := h.redisClient.Subscribe(ctx, export.NotifyChannel)
		defer pubsub.Close()
		notifications = pubsub.Channel()
		log.Info("subscribed to redis channel", slog.String("channel", export.NotifyChannel))
	}

	go h.writeLoop(ctx, conn, client, notifications, errCh, cancel, log)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Info("websocket connection closed", slog.Any("error", err))
		} else {
			log.Info("websocket connection closed")
		}
	}
}

func (h *WsHandler) readLoop(ctx context.Context, conn *websocket.Conn, errCh chan<- error, cancel context.CancelFunc, log *slog.Logger) {
	// 每个连接各自持有一次拖拽，只在 drop 时提交到文档。
	var drag sequence.Drag
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			writeClose(conn, websocket.CloseNormalClosure, "bye")
			errCh <- fmt.Errorf("read message: %w", err)
			cancel()
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug("ignore malformed client message", slog.Any("error", err))
			continue
		}
		h.handleDrag(&drag, msg, log)
	}
}

func (h *WsHandler) handleDrag(drag *sequence.Drag, msg clientMessage, log *slog.Logger) {
	switch msg.Type {
	case dragStartMessage:
		drag.Start(msg.ID)
	case dragOverMessage:
		drag.Over(msg.ID)
	case dropMessage:
		g, ok := drag.Drop()
		if !ok || h.reorderer == nil {
			return
		}
		// 文档替换后由订阅回调推送新的预览。
		if snap, moved := h.reorderer.ReorderActivities(g); moved {
			log.Debug("activities reordered",
				slog.String("source_id", g.SourceID),
				slog.String("target_id", g.TargetID),
				slog.Uint64("version", snap.Version))
		}
	case cancelMessage:
		drag.Cancel()
	default:
		log.Debug("ignore unknown client message", slog.String("type", msg.Type))
	}
}

func writeClose(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(wsWriteTimeout)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}

func (h *WsHandler) writeLoop(
	ctx context.Context,
	conn *websocket.Conn,
	client *wsClient,
	notifications <-chan *redis.Message,
	errCh chan<- error,
	cancel context.CancelFunc,
	log *slog.Logger,
) {
	fail := func(err error) {
		errCh <- err
		cancel()
	}

	if err := h.pushSnapshot(conn); err != nil {
		fail(err)
		return
	}

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-client.kick:
			if err := h.pushSnapshot(conn); err != nil {
				fail(err)
				return
			}
		case msg, ok := <-notifications:
			if !ok {
				fail(fmt.Errorf("pubsub channel closed"))
				return
			}
			log.Info("forwarding message to client", slog.String("channel", msg.Channel))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				fail(fmt.Errorf("write message: %w", err))
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(wsWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), deadline); err != nil {
				fail(fmt.Errorf("write ping: %w", err))
				return
			}
		}
	}
}

func (h *WsHandler) pushSnapshot(conn *websocket.Conn) error {
	snap := h.store.Snapshot()
	html, err := h.renderer.RenderString(snap.Data, h.theme.Settings())
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	data, err := json.Marshal(snapshotMessage{Type: "snapshot", Version: snap.Version, HTML: html})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
