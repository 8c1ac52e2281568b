package metrics

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// 不属于编辑面板的路由统一归到 system。
const systemSection = "system"

var (
	registerOnce sync.Once

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "按面板分区统计的 HTTP 请求耗时（秒），不含 WebSocket 长连接。",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"section", "method"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "按面板分区统计的 HTTP 请求总数。",
		},
		[]string{"section", "method", "route", "status"},
	)

	liveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "live_preview_connections",
			Help:      "当前打开的实时预览连接数。",
		},
	)
)

// SectionOf 把 /v1 下的路由模板映射到面板分区，例如
// /v1/activities/:id/save → activities。
func SectionOf(route string) string {
	rest, ok := strings.CutPrefix(route, "/v1/")
	if !ok || rest == "" {
		return systemSection
	}
	section, _, _ := strings.Cut(rest, "/")
	return section
}

// GinMiddleware 为 Gin 路由注册 Prometheus 指标采集逻辑。
func GinMiddleware() gin.HandlerFunc {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestDuration, requestTotal, liveConnections)
	})

	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			// 未匹配的路径不作为标签，避免基数膨胀。
			route = "unmatched"
		}
		section := SectionOf(route)

		if section == "ws" {
			liveConnections.Inc()
			defer liveConnections.Dec()
		}

		start := time.Now()
		c.Next()

		requestTotal.WithLabelValues(section, c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		if section != "ws" {
			requestDuration.WithLabelValues(section, c.Request.Method).Observe(time.Since(start).Seconds())
		}
	}
}
