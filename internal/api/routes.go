package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"resumehub/internal/document"
	"resumehub/internal/editor"
	"resumehub/internal/export"
	"resumehub/internal/preview"
	"resumehub/internal/theme"
)

// Dependencies 汇总路由需要的组件，均由 main 显式构造后注入。
type Dependencies struct {
	Store    *document.Store
	Panel    *editor.Panel
	Theme    *theme.Context
	Renderer *preview.Renderer
	Exporter *export.Service
	// Redis 为 nil 时 WebSocket 不转发导出通知。
	Redis    *redis.Client
	Recorder ExportRecorder
	Logger   *slog.Logger
}

// RegisterRoutes 注册 /v1 下的全部接口，返回的 WsHandler 需要在退出时 Close。
func RegisterRoutes(router *gin.Engine, deps Dependencies) *WsHandler {
	editorHandler := NewEditorHandler(deps.Panel)
	previewHandler := NewPreviewHandler(deps.Store, deps.Theme, deps.Renderer)
	wsHandler := NewWsHandler(deps.Store, deps.Theme, deps.Renderer, deps.Panel, deps.Redis, deps.Logger)
	themeHandler := NewThemeHandler(deps.Theme, wsHandler)
	exportHandler := NewExportHandler(deps.Store, deps.Theme, deps.Exporter, deps.Recorder)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		v1.GET("/document", editorHandler.GetDocument)
		v1.PUT("/document", editorHandler.ReplaceDocument)
		v1.PUT("/personal/:field", editorHandler.SetPersonalField)
		v1.PUT("/summary", editorHandler.SetSummary)

		activityGroup := v1.Group("/activities")
		{
			activityGroup.POST("", editorHandler.AddActivity)
			activityGroup.POST("/reorder", editorHandler.ReorderActivities)
			activityGroup.PUT("/:id", editorHandler.EditActivity)
			activityGroup.DELETE("/:id", editorHandler.DeleteActivity)
			activityGroup.POST("/:id/edit", editorHandler.BeginEdit)
			activityGroup.PATCH("/:id/draft", editorHandler.ChangeDraft)
			activityGroup.POST("/:id/draft/skills", editorHandler.AddDraftSkill)
			activityGroup.DELETE("/:id/draft/skills/:index", editorHandler.RemoveDraftSkill)
			activityGroup.POST("/:id/save", editorHandler.SaveDraft)
			activityGroup.POST("/:id/cancel", editorHandler.CancelDraft)
		}

		skillGroup := v1.Group("/skills")
		{
			skillGroup.POST("", editorHandler.AddSkill)
			skillGroup.GET("/chart", previewHandler.SkillChart)
			skillGroup.PATCH("/:index", editorHandler.UpdateSkill)
			skillGroup.PUT("/:index/level", editorHandler.SetSkillLevel)
			skillGroup.POST("/:index/verify", editorHandler.ToggleSkillVerified)
			skillGroup.DELETE("/:index", editorHandler.DeleteSkill)
		}

		educationGroup := v1.Group("/education")
		{
			educationGroup.POST("", editorHandler.AddEducation)
			educationGroup.PUT("/:id/:field", editorHandler.UpdateEducation)
			educationGroup.DELETE("/:id", editorHandler.DeleteEducation)
		}

		v1.GET("/preview", previewHandler.Preview)
		v1.GET("/stats", previewHandler.Stats)
		v1.GET("/feed", previewHandler.Feed)

		themeGroup := v1.Group("/theme")
		{
			themeGroup.GET("", themeHandler.Get)
			themeGroup.GET("/templates", themeHandler.Templates)
			themeGroup.POST("/toggle", themeHandler.Toggle)
			themeGroup.PUT("/template", themeHandler.SetTemplate)
			themeGroup.PUT("/color", themeHandler.SetColor)
			themeGroup.PUT("/palette", themeHandler.ApplyPalette)
		}

		v1.POST("/export/:format", exportHandler.Export)
	}

	return wsHandler
}
