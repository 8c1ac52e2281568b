package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumehub/internal/errcode"
	"resumehub/internal/theme"
)

// Refresher 在外观变化后通知实时预览重新推送。
type Refresher interface {
	Refresh()
}

// ThemeHandler 提供外观配置接口，修改后通知实时预览刷新。
type ThemeHandler struct {
	theme     *theme.Context
	refresher Refresher
}

// NewThemeHandler 构造 ThemeHandler。
func NewThemeHandler(themeCtx *theme.Context, refresher Refresher) *ThemeHandler {
	return &ThemeHandler{theme: themeCtx, refresher: refresher}
}

func (h *ThemeHandler) respond(c *gin.Context, s theme.Settings) {
	if h.refresher != nil {
		h.refresher.Refresh()
	}
	c.JSON(http.StatusOK, s)
}

func (h *ThemeHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.theme.Settings())
}

func (h *ThemeHandler) Toggle(c *gin.Context) {
	h.respond(c, h.theme.Toggle())
}

type templateRequest struct {
	Template theme.Template `json:"template" binding:"required"`
}

func (h *ThemeHandler) SetTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	s, err := h.theme.SetTemplate(req.Template)
	if err != nil {
		Error(c, http.StatusBadRequest, errcode.InvalidRequest, err.Error())
		return
	}
	h.respond(c, s)
}

type colorRequest struct {
	Color string `json:"color" binding:"required"`
}

func (h *ThemeHandler) SetColor(c *gin.Context) {
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	s, err := h.theme.SetPrimaryColor(strings.TrimSpace(req.Color))
	if err != nil {
		Error(c, http.StatusBadRequest, errcode.InvalidRequest, err.Error())
		return
	}
	h.respond(c, s)
}

type paletteRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *ThemeHandler) ApplyPalette(c *gin.Context) {
	var req paletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	s, err := h.theme.ApplyPalette(req.Name)
	if err != nil {
		Error(c, http.StatusBadRequest, errcode.InvalidRequest, err.Error())
		return
	}
	h.respond(c, s)
}

func (h *ThemeHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": theme.Templates, "palettes": theme.Palettes})
}
