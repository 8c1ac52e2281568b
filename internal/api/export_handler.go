package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumehub/internal/api/middleware"
	"resumehub/internal/document"
	"resumehub/internal/errcode"
	"resumehub/internal/export"
	"resumehub/internal/theme"
)

// ExportRecorder 统计导出请求。
type ExportRecorder interface {
	ExportRequested(format string, queued bool)
}

type ExportHandler struct {
	store    *document.Store
	theme    *theme.Context
	service  *export.Service
	recorder ExportRecorder
}

// NewExportHandler 构造 ExportHandler。recorder 可为 nil。
func NewExportHandler(store *document.Store, themeCtx *theme.Context, service *export.Service, recorder ExportRecorder) *ExportHandler {
	return &ExportHandler{store: store, theme: themeCtx, service: service, recorder: recorder}
}

// Export 触发导出。print 直接返回打印页；PDF/DOCX 入队成功返回 202，
// 未配置队列时只返回提示文案。
func (h *ExportHandler) Export(c *gin.Context) {
	log := middleware.LoggerFromContext(c)

	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		Error(c, http.StatusBadRequest, errcode.UnknownFormat, err.Error())
		return
	}

	res, err := h.service.Trigger(c.Request.Context(), format, h.store.Snapshot(), h.theme.Settings(), middleware.GetCorrelationID(c))
	if err != nil {
		log.Error("trigger export failed", slog.String("format", string(format)), slog.Any("error", err))
		if errors.Is(err, export.ErrUnknownFormat) {
			Error(c, http.StatusBadRequest, errcode.UnknownFormat, err.Error())
			return
		}
		Error(c, http.StatusInternalServerError, errcode.ExportFailed, "export failed")
		return
	}
	if h.recorder != nil {
		h.recorder.ExportRequested(string(format), res.Queued)
	}

	if format == export.Print {
		c.Data(http.StatusOK, format.ContentType(), []byte(res.HTML))
		return
	}
	status := http.StatusOK
	if res.Queued {
		status = http.StatusAccepted
	}
	c.JSON(status, res)
}
