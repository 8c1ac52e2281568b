package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumehub/internal/document"
	"resumehub/internal/preview"
	"resumehub/internal/theme"
)

// PreviewHandler 提供只读的预览与统计接口。
type PreviewHandler struct {
	store    *document.Store
	theme    *theme.Context
	renderer *preview.Renderer
}

// NewPreviewHandler 构造 PreviewHandler。
func NewPreviewHandler(store *document.Store, themeCtx *theme.Context, renderer *preview.Renderer) *PreviewHandler {
	return &PreviewHandler{store: store, theme: themeCtx, renderer: renderer}
}

func (h *PreviewHandler) Preview(c *gin.Context) {
	snap := h.store.Snapshot()
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, snap.Data, h.theme.Settings()); err != nil {
		_ = c.Error(err)
		Internal(c, "render preview failed")
		return
	}
	c.Header("X-Document-Version", uintString(snap.Version))
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

type statsResponse struct {
	Version uint64 `json:"version"`
	preview.Stats
}

func (h *PreviewHandler) Stats(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, statsResponse{Version: snap.Version, Stats: preview.ComputeStats(snap.Data.Activities)})
}

func (h *PreviewHandler) Feed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": preview.Feed(h.store.Snapshot().Data.Activities)})
}

type skillChartResponse struct {
	preview.SkillGroups
	Categories []preview.CategoryOption `json:"categories"`
}

func (h *PreviewHandler) SkillChart(c *gin.Context) {
	c.JSON(http.StatusOK, skillChartResponse{
		SkillGroups: preview.GroupSkills(h.store.Snapshot().Data.Skills),
		Categories:  preview.CategoryOptions(),
	})
}

func uintString(v uint64) string {
	return strconv.FormatUint(v, 10)
}
