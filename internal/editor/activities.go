package editor

import (
	"time"

	"github.com/ecodeclub/ekit/slice"

	"resumehub/internal/resume"
	"resumehub/internal/sequence"
)

const (
	DefaultActivityTitle        = "New Activity"
	DefaultActivityOrganization = "Organization Name"
	DefaultActivityDescription  = "Description of the activity..."
	activityDateLayout          = "January 2006"
)

// ActivityEditor 负责经历列表的增删改与拖拽排序。
// 每个操作都基于构造时传入的切片计算新切片，再通过 onUpdate 整体交回。
type ActivityEditor struct {
	items    []resume.Activity
	onUpdate func([]resume.Activity)
	ids      IDGenerator
	now      func() time.Time
}

// NewActivityEditor 构造 ActivityEditor。ids 为 nil 时使用时间戳 id，now 为 nil 时使用 time.Now。
func NewActivityEditor(items []resume.Activity, onUpdate func([]resume.Activity), ids IDGenerator, now func() time.Time) *ActivityEditor {
	if ids == nil {
		ids = TimestampIDs{Now: now}
	}
	if now == nil {
		now = time.Now
	}
	return &ActivityEditor{items: items, onUpdate: onUpdate, ids: ids, now: now}
}

func activityID(a resume.Activity) string { return a.ID }

// Add 在末尾追加一条带默认值的经历。
func (e *ActivityEditor) Add() resume.Activity {
	created := resume.Activity{
		ID:           e.ids.NewID(idSet(e.items, activityID)),
		Type:         resume.ActivityProject,
		Title:        DefaultActivityTitle,
		Organization: DefaultActivityOrganization,
		Date:         e.now().Format(activityDateLayout),
		Status:       resume.StatusInProgress,
		Skills:       []string{},
		Description:  DefaultActivityDescription,
	}

	next := make([]resume.Activity, 0, len(e.items)+1)
	next = append(next, e.items...)
	next = append(next, created)
	e.commit(next)
	return created
}

// Edit 用 updated 替换同 id 的经历，找不到时不产生更新。
func (e *ActivityEditor) Edit(updated resume.Activity) bool {
	if sequence.IndexOf(e.items, func(a resume.Activity) bool { return a.ID == updated.ID }) < 0 {
		return false
	}
	e.commit(slice.Map(e.items, func(_ int, a resume.Activity) resume.Activity {
		if a.ID == updated.ID {
			return updated.Clone()
		}
		return a
	}))
	return true
}

// Delete 删除指定 id 的经历。
func (e *ActivityEditor) Delete(id string) bool {
	idx := sequence.IndexOf(e.items, func(a resume.Activity) bool { return a.ID == id })
	if idx < 0 {
		return false
	}
	next := make([]resume.Activity, 0, len(e.items)-1)
	next = append(next, e.items[:idx]...)
	next = append(next, e.items[idx+1:]...)
	e.commit(next)
	return true
}

// Reorder 把 source 移动到 target 所在位置。原地放下或目标无效时不产生更新。
func (e *ActivityEditor) Reorder(g sequence.Gesture) bool {
	next, moved := sequence.Reorder(e.items, activityID, g)
	if !moved {
		return false
	}
	e.commit(next)
	return true
}

func (e *ActivityEditor) commit(next []resume.Activity) {
	e.items = next
	if e.onUpdate != nil {
		e.onUpdate(next)
	}
}

// ActivityPatch 描述对草稿的浅合并，nil 字段保持不变。
type ActivityPatch struct {
	Type         *resume.ActivityType   `json:"type"`
	Title        *string                `json:"title"`
	Organization *string                `json:"organization"`
	Date         *string                `json:"date"`
	Status       *resume.ActivityStatus `json:"status"`
	Description  *string                `json:"description"`
}

// Apply 合并补丁，非法的枚举值会被忽略。
func (p ActivityPatch) Apply(a *resume.Activity) {
	if p.Type != nil && p.Type.Valid() {
		a.Type = *p.Type
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Organization != nil {
		a.Organization = *p.Organization
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Status != nil && p.Status.Valid() {
		a.Status = *p.Status
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
}
