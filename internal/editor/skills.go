package editor

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"

	"resumehub/internal/resume"
)

const (
	DefaultSkillLevel = 50
	MinSkillLevel     = 0
	MaxSkillLevel     = 100
	SkillLevelStep    = 5
)

// ClampLevel 把熟练度限制在 [0,100] 并对齐到滑块步长。
func ClampLevel(level int) int {
	switch {
	case level < MinSkillLevel:
		level = MinSkillLevel
	case level > MaxSkillLevel:
		level = MaxSkillLevel
	}
	return (level + SkillLevelStep/2) / SkillLevelStep * SkillLevelStep
}

// SkillPatch 描述对单个技能的浅合并。
type SkillPatch struct {
	Name     *string               `json:"name"`
	Level    *int                  `json:"level"`
	Verified *bool                 `json:"verified"`
	Category *resume.SkillCategory `json:"category"`
}

// SkillsEditor 以下标定位技能，每次修改都立即整体提交。
type SkillsEditor struct {
	items    []resume.Skill
	onUpdate func([]resume.Skill)
}

// NewSkillsEditor 构造 SkillsEditor。
func NewSkillsEditor(items []resume.Skill, onUpdate func([]resume.Skill)) *SkillsEditor {
	return &SkillsEditor{items: items, onUpdate: onUpdate}
}

// Add 追加新技能，名称为空时不做任何事。
func (e *SkillsEditor) Add(name string, category resume.SkillCategory) (resume.Skill, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return resume.Skill{}, false
	}
	if !category.Valid() {
		category = resume.CategoryTechnical
	}
	created := resume.Skill{
		Name:     name,
		Level:    DefaultSkillLevel,
		Verified: false,
		Category: category,
	}
	next := make([]resume.Skill, 0, len(e.items)+1)
	next = append(next, e.items...)
	next = append(next, created)
	e.commit(next)
	return created, true
}

// Update 对第 index 个技能做浅合并。
func (e *SkillsEditor) Update(index int, patch SkillPatch) bool {
	if index < 0 || index >= len(e.items) {
		return false
	}
	e.commit(slice.Map(e.items, func(i int, s resume.Skill) resume.Skill {
		if i != index {
			return s
		}
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.Level != nil {
			s.Level = ClampLevel(*patch.Level)
		}
		if patch.Verified != nil {
			s.Verified = *patch.Verified
		}
		if patch.Category != nil && patch.Category.Valid() {
			s.Category = *patch.Category
		}
		return s
	}))
	return true
}

// SetLevel 对应滑块拖动，每次移动都是一次完整更新。
func (e *SkillsEditor) SetLevel(index, level int) bool {
	return e.Update(index, SkillPatch{Level: &level})
}

// ToggleVerified 切换指定技能的认证状态，下标越界时不产生更新。
func (e *SkillsEditor) ToggleVerified(index int) bool {
	if index < 0 || index >= len(e.items) {
		return false
	}
	verified := !e.items[index].Verified
	return e.Update(index, SkillPatch{Verified: &verified})
}

// Delete 删除指定下标的技能。
func (e *SkillsEditor) Delete(index int) bool {
	if index < 0 || index >= len(e.items) {
		return false
	}
	next := make([]resume.Skill, 0, len(e.items)-1)
	next = append(next, e.items[:index]...)
	next = append(next, e.items[index+1:]...)
	e.commit(next)
	return true
}

func (e *SkillsEditor) commit(next []resume.Skill) {
	e.items = next
	if e.onUpdate != nil {
		e.onUpdate(next)
	}
}
