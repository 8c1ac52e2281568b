package editor

import (
	"strings"

	"resumehub/internal/resume"
)

// Mode 是单条经历的编辑状态。
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

// Drafts 保存每条经历的本地草稿：Viewing ↔ Editing(draft)。
// 草稿上的修改在 Save 之前不会进入共享文档，Cancel 直接丢弃。
type Drafts struct {
	items map[string]resume.Activity
}

func NewDrafts() *Drafts {
	return &Drafts{items: make(map[string]resume.Activity)}
}

func (d *Drafts) Mode(id string) Mode {
	if _, ok := d.items[id]; ok {
		return Editing
	}
	return Viewing
}

// Begin 进入编辑态，把已提交的记录克隆为草稿。
// 已在编辑中时保留现有草稿。
func (d *Drafts) Begin(committed resume.Activity) resume.Activity {
	if draft, ok := d.items[committed.ID]; ok {
		return draft.Clone()
	}
	draft := committed.Clone()
	if draft.Skills == nil {
		draft.Skills = []string{}
	}
	d.items[committed.ID] = draft
	return draft.Clone()
}

func (d *Drafts) Draft(id string) (resume.Activity, bool) {
	draft, ok := d.items[id]
	if !ok {
		return resume.Activity{}, false
	}
	return draft.Clone(), true
}

// Change 修改草稿，id 不允许被改动。
func (d *Drafts) Change(id string, fn func(*resume.Activity)) (resume.Activity, bool) {
	draft, ok := d.items[id]
	if !ok {
		return resume.Activity{}, false
	}
	draft = draft.Clone()
	fn(&draft)
	draft.ID = id
	d.items[id] = draft
	return draft.Clone(), true
}

// AddSkill 向草稿追加技能，去掉首尾空白后为空则忽略。
func (d *Drafts) AddSkill(id, name string) (resume.Activity, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return d.Draft(id)
	}
	return d.Change(id, func(a *resume.Activity) {
		a.Skills = append(a.Skills, name)
	})
}

// RemoveSkill 删除草稿中第 index 个技能，越界时忽略。
func (d *Drafts) RemoveSkill(id string, index int) (resume.Activity, bool) {
	return d.Change(id, func(a *resume.Activity) {
		if index < 0 || index >= len(a.Skills) {
			return
		}
		next := make([]string, 0, len(a.Skills)-1)
		next = append(next, a.Skills[:index]...)
		next = append(next, a.Skills[index+1:]...)
		a.Skills = next
	})
}

// Save 通过 editor 把草稿合并进共享文档并回到 Viewing。
// 对应的记录已被删除时草稿同样被丢弃，返回 false。
func (d *Drafts) Save(id string, editor *ActivityEditor) bool {
	draft, ok := d.items[id]
	if !ok {
		return false
	}
	delete(d.items, id)
	return editor.Edit(draft)
}

// Cancel 丢弃草稿并回到 Viewing，不触碰共享文档。
func (d *Drafts) Cancel(id string) bool {
	if _, ok := d.items[id]; !ok {
		return false
	}
	delete(d.items, id)
	return true
}

// Retain 清理已不在文档中的草稿。
func (d *Drafts) Retain(activities []resume.Activity) {
	alive := idSet(activities, activityID)
	for id := range d.items {
		if !alive(id) {
			delete(d.items, id)
		}
	}
}
