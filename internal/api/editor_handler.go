package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumehub/internal/api/middleware"
	"resumehub/internal/editor"
	"resumehub/internal/errcode"
	"resumehub/internal/resume"
	"resumehub/internal/schema"
	"resumehub/internal/sequence"
)

// EditorHandler 把编辑面板的操作暴露为 HTTP 接口。
// 越界下标与未知 id 按无操作处理，只有请求体格式错误返回 400。
type EditorHandler struct {
	panel *editor.Panel
}

// NewEditorHandler 构造 EditorHandler。
func NewEditorHandler(panel *editor.Panel) *EditorHandler {
	return &EditorHandler{panel: panel}
}

type valueRequest struct {
	Value string `json:"value"`
}

type draftResponse struct {
	ID    string           `json:"id"`
	Mode  string           `json:"mode"`
	Draft *resume.Activity `json:"draft,omitempty"`
}

func draftJSON(c *gin.Context, id string, mode editor.Mode, draft resume.Activity, ok bool) {
	resp := draftResponse{ID: id, Mode: mode.String()}
	if ok {
		resp.Draft = &draft
	}
	c.JSON(http.StatusOK, resp)
}

func indexParam(c *gin.Context, name string) (int, bool) {
	idx, err := strconv.Atoi(c.Param(name))
	if err != nil {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return idx, true
}

func (h *EditorHandler) GetDocument(c *gin.Context) {
	Document(c, h.panel.Snapshot(), false)
}

// ReplaceDocument 整体替换文档，请求体必须符合简历结构。
func (h *EditorHandler) ReplaceDocument(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	if err := schema.Validate(raw); err != nil {
		if errors.Is(err, schema.ErrInvalidDocument) {
			middleware.LoggerFromContext(c).Warn("reject invalid document", "error", err)
			Error(c, http.StatusBadRequest, errcode.InvalidDocument, err.Error())
			return
		}
		Internal(c, err.Error())
		return
	}

	var doc resume.ResumeData
	if err := json.Unmarshal(raw, &doc); err != nil {
		BadRequest(c, err.Error())
		return
	}
	Document(c, h.panel.ReplaceDocument(doc), true)
}

func (h *EditorHandler) SetPersonalField(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	snap, ok := h.panel.SetPersonalField(editor.PersonalField(c.Param("field")), req.Value)
	Document(c, snap, ok)
}

func (h *EditorHandler) SetSummary(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	Document(c, h.panel.SetSummary(req.Value), true)
}

// Activities.

func (h *EditorHandler) AddActivity(c *gin.Context) {
	a, snap := h.panel.AddActivity()
	DocumentWithItem(c, snap, a)
}

func (h *EditorHandler) EditActivity(c *gin.Context) {
	var a resume.Activity
	if err := c.ShouldBindJSON(&a); err != nil {
		BadRequest(c, err.Error())
		return
	}
	a.ID = c.Param("id")
	snap, ok := h.panel.EditActivity(a)
	Document(c, snap, ok)
}

func (h *EditorHandler) DeleteActivity(c *gin.Context) {
	snap, ok := h.panel.DeleteActivity(c.Param("id"))
	Document(c, snap, ok)
}

func (h *EditorHandler) ReorderActivities(c *gin.Context) {
	var g sequence.Gesture
	if err := c.ShouldBindJSON(&g); err != nil {
		BadRequest(c, err.Error())
		return
	}
	snap, ok := h.panel.ReorderActivities(g)
	Document(c, snap, ok)
}

func (h *EditorHandler) BeginEdit(c *gin.Context) {
	id := c.Param("id")
	draft, ok := h.panel.BeginEdit(id)
	draftJSON(c, id, h.panel.Mode(id), draft, ok)
}

func (h *EditorHandler) ChangeDraft(c *gin.Context) {
	var patch editor.ActivityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		BadRequest(c, err.Error())
		return
	}
	id := c.Param("id")
	draft, ok := h.panel.ChangeDraft(id, patch)
	draftJSON(c, id, h.panel.Mode(id), draft, ok)
}

type draftSkillRequest struct {
	Name string `json:"name"`
}

func (h *EditorHandler) AddDraftSkill(c *gin.Context) {
	var req draftSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	id := c.Param("id")
	draft, ok := h.panel.AddDraftSkill(id, req.Name)
	draftJSON(c, id, h.panel.Mode(id), draft, ok)
}

func (h *EditorHandler) RemoveDraftSkill(c *gin.Context) {
	idx, ok := indexParam(c, "index")
	if !ok {
		return
	}
	id := c.Param("id")
	draft, ok := h.panel.RemoveDraftSkill(id, idx)
	draftJSON(c, id, h.panel.Mode(id), draft, ok)
}

func (h *EditorHandler) SaveDraft(c *gin.Context) {
	snap, ok := h.panel.SaveDraft(c.Param("id"))
	Document(c, snap, ok)
}

func (h *EditorHandler) CancelDraft(c *gin.Context) {
	id := c.Param("id")
	h.panel.CancelDraft(id)
	draftJSON(c, id, h.panel.Mode(id), resume.Activity{}, false)
}

// Skills.

type addSkillRequest struct {
	Name     string               `json:"name"`
	Category resume.SkillCategory `json:"category"`
}

func (h *EditorHandler) AddSkill(c *gin.Context) {
	var req addSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	skill, snap, ok := h.panel.AddSkill(req.Name, req.Category)
	if !ok {
		Document(c, snap, false)
		return
	}
	DocumentWithItem(c, snap, skill)
}

func (h *EditorHandler) UpdateSkill(c *gin.Context) {
	idx, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var patch editor.SkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		BadRequest(c, err.Error())
		return
	}
	snap, ok := h.panel.UpdateSkill(idx, patch)
	Document(c, snap, ok)
}

type levelRequest struct {
	Level *int `json:"level" binding:"required"`
}

func (h *EditorHandler) SetSkillLevel(c *gin.Context) {
	idx, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var req levelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	snap, ok := h.panel.SetSkillLevel(idx, *req.Level)
	Document(c, snap, ok)
}

func (h *EditorHandler) ToggleSkillVerified(c *gin.Context) {
	idx, ok := indexParam(c, "index")
	if !ok {
		return
	}
	snap, ok := h.panel.ToggleSkillVerified(idx)
	Document(c, snap, ok)
}

func (h *EditorHandler) DeleteSkill(c *gin.Context) {
	idx, ok := indexParam(c, "index")
	if !ok {
		return
	}
	snap, ok := h.panel.DeleteSkill(idx)
	Document(c, snap, ok)
}

// Education.

func (h *EditorHandler) AddEducation(c *gin.Context) {
	e, snap := h.panel.AddEducation()
	DocumentWithItem(c, snap, e)
}

func (h *EditorHandler) UpdateEducation(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	snap, ok := h.panel.UpdateEducation(c.Param("id"), editor.EducationField(c.Param("field")), req.Value)
	Document(c, snap, ok)
}

func (h *EditorHandler) DeleteEducation(c *gin.Context) {
	snap, ok := h.panel.DeleteEducation(c.Param("id"))
	Document(c, snap, ok)
}
