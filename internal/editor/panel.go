package editor

import (
	"sync"
	"time"

	"resumehub/internal/document"
	"resumehub/internal/resume"
	"resumehub/internal/sequence"
)

const (
	SectionPersonal   = "personal"
	SectionActivities = "activities"
	SectionSkills     = "skills"
	SectionEducation  = "education"
	SectionDocument   = "document"
)

// Recorder 接收编辑操作的统计。
type Recorder interface {
	EditorOperation(section, op string)
	DocumentVersion(version uint64)
}

type nopRecorder struct{}

func (nopRecorder) EditorOperation(string, string) {}
func (nopRecorder) DocumentVersion(uint64)         {}

// Panel 是顶层的状态持有者：每次操作取快照、构造对应分区的编辑器，
// 编辑器把新的分区合并进整份文档拷贝后交给 Store.Replace。
// 所有操作串行执行，读取与替换之间不会插入其它事件。
type Panel struct {
	mu       sync.Mutex
	store    *document.Store
	drafts   *Drafts
	ids      IDGenerator
	eduIDs   IDGenerator
	now      func() time.Time
	recorder Recorder
}

type PanelOption func(*Panel)

func WithClock(now func() time.Time) PanelOption {
	return func(p *Panel) { p.now = now }
}

func WithIDs(activities, education IDGenerator) PanelOption {
	return func(p *Panel) {
		if activities != nil {
			p.ids = activities
		}
		if education != nil {
			p.eduIDs = education
		}
	}
}

func WithRecorder(r Recorder) PanelOption {
	return func(p *Panel) {
		if r != nil {
			p.recorder = r
		}
	}
}

// NewPanel 构造绑定到 store 的编辑面板。
func NewPanel(store *document.Store, opts ...PanelOption) *Panel {
	p := &Panel{
		store:    store,
		drafts:   NewDrafts(),
		now:      time.Now,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ids == nil {
		p.ids = TimestampIDs{Now: p.now}
	}
	if p.eduIDs == nil {
		p.eduIDs = TimestampIDs{Prefix: "edu-", Now: p.now}
	}
	return p
}

// Snapshot 返回当前已提交的文档。
func (p *Panel) Snapshot() document.Snapshot {
	return p.store.Snapshot()
}

// edit 串行执行一次事件。commit 把新文档交给 Store 并记录统计。
func (p *Panel) edit(section, op string, fn func(doc resume.ResumeData, commit func(resume.ResumeData))) document.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := p.store.Snapshot()
	fn(snap.Data, func(next resume.ResumeData) {
		snap = p.store.Replace(next)
		p.drafts.Retain(snap.Data.Activities)
		p.recorder.EditorOperation(section, op)
		p.recorder.DocumentVersion(snap.Version)
	})
	return snap
}

func (p *Panel) withActivities(op string, fn func(*ActivityEditor)) document.Snapshot {
	return p.edit(SectionActivities, op, func(doc resume.ResumeData, commit func(resume.ResumeData)) {
		fn(NewActivityEditor(doc.Activities, func(next []resume.Activity) {
			doc.Activities = next
			commit(doc)
		}, p.ids, p.now))
	})
}

func (p *Panel) withSkills(op string, fn func(*SkillsEditor)) document.Snapshot {
	return p.edit(SectionSkills, op, func(doc resume.ResumeData, commit func(resume.ResumeData)) {
		fn(NewSkillsEditor(doc.Skills, func(next []resume.Skill) {
			doc.Skills = next
			commit(doc)
		}))
	})
}

func (p *Panel) withEducation(op string, fn func(*EducationEditor)) document.Snapshot {
	return p.edit(SectionEducation, op, func(doc resume.ResumeData, commit func(resume.ResumeData)) {
		fn(NewEducationEditor(doc.Education, func(next []resume.Education) {
			doc.Education = next
			commit(doc)
		}, p.eduIDs))
	})
}

func (p *Panel) withPersonal(op string, fn func(*PersonalInfoEditor)) document.Snapshot {
	return p.edit(SectionPersonal, op, func(doc resume.ResumeData, commit func(resume.ResumeData)) {
		fn(NewPersonalInfoEditor(doc.PersonalInfo, doc.Summary, func(info resume.PersonalInfo, summary string) {
			doc.PersonalInfo = info
			doc.Summary = summary
			commit(doc)
		}))
	})
}

// ReplaceDocument 整体替换文档，未完成的草稿若对应记录已不存在则被丢弃。
func (p *Panel) ReplaceDocument(doc resume.ResumeData) document.Snapshot {
	return p.edit(SectionDocument, "replace", func(_ resume.ResumeData, commit func(resume.ResumeData)) {
		commit(doc)
	})
}

// Personal info.

func (p *Panel) SetPersonalField(field PersonalField, value string) (document.Snapshot, bool) {
	var ok bool
	snap := p.withPersonal("set_field", func(e *PersonalInfoEditor) {
		ok = e.SetField(field, value)
	})
	return snap, ok
}

func (p *Panel) SetSummary(value string) document.Snapshot {
	return p.withPersonal("set_summary", func(e *PersonalInfoEditor) {
		e.SetSummary(value)
	})
}

// Activities.

func (p *Panel) AddActivity() (resume.Activity, document.Snapshot) {
	var created resume.Activity
	snap := p.withActivities("add", func(e *ActivityEditor) {
		created = e.Add()
	})
	return created, snap
}

func (p *Panel) EditActivity(updated resume.Activity) (document.Snapshot, bool) {
	var ok bool
	snap := p.withActivities("edit", func(e *ActivityEditor) {
		ok = e.Edit(updated)
	})
	return snap, ok
}

func (p *Panel) DeleteActivity(id string) (document.Snapshot, bool) {
	var ok bool
	snap := p.withActivities("delete", func(e *ActivityEditor) {
		ok = e.Delete(id)
	})
	return snap, ok
}

// ReorderActivities 应用一次已完成的拖拽手势。
func (p *Panel) ReorderActivities(g sequence.Gesture) (document.Snapshot, bool) {
	var ok bool
	snap := p.withActivities("reorder", func(e *ActivityEditor) {
		ok = e.Reorder(g)
	})
	return snap, ok
}

// BeginEdit 让指定经历进入编辑态并返回草稿。
func (p *Panel) BeginEdit(id string) (resume.Activity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	activities := p.store.Snapshot().Data.Activities
	idx := sequence.IndexOf(activities, func(a resume.Activity) bool { return a.ID == id })
	if idx < 0 {
		return resume.Activity{}, false
	}
	return p.drafts.Begin(activities[idx]), true
}

func (p *Panel) Mode(id string) Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drafts.Mode(id)
}

func (p *Panel) Draft(id string) (resume.Activity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drafts.Draft(id)
}

func (p *Panel) ChangeDraft(id string, patch ActivityPatch) (resume.Activity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drafts.Change(id, patch.Apply)
}

func (p *Panel) AddDraftSkill(id, name string) (resume.Activity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drafts.AddSkill(id, name)
}

func (p *Panel) RemoveDraftSkill(id string, index int) (resume.Activity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drafts.RemoveSkill(id, index)
}

// SaveDraft 把草稿合并进共享文档。
func (p *Panel) SaveDraft(id string) (document.Snapshot, bool) {
	var ok bool
	snap := p.withActivities("save_draft", func(e *ActivityEditor) {
		ok = p.drafts.Save(id, e)
	})
	return snap, ok
}

// CancelDraft 丢弃草稿，不会产生文档更新。
func (p *Panel) CancelDraft(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.drafts.Cancel(id)
}

// Skills.

func (p *Panel) AddSkill(name string, category resume.SkillCategory) (resume.Skill, document.Snapshot, bool) {
	var (
		created resume.Skill
		ok      bool
	)
	snap := p.withSkills("add", func(e *SkillsEditor) {
		created, ok = e.Add(name, category)
	})
	return created, snap, ok
}

func (p *Panel) UpdateSkill(index int, patch SkillPatch) (document.Snapshot, bool) {
	var ok bool
	snap := p.withSkills("update", func(e *SkillsEditor) {
		ok = e.Update(index, patch)
	})
	return snap, ok
}

func (p *Panel) SetSkillLevel(index, level int) (document.Snapshot, bool) {
	var ok bool
	snap := p.withSkills("set_level", func(e *SkillsEditor) {
		ok = e.SetLevel(index, level)
	})
	return snap, ok
}

func (p *Panel) ToggleSkillVerified(index int) (document.Snapshot, bool) {
	var ok bool
	snap := p.withSkills("toggle_verified", func(e *SkillsEditor) {
		ok = e.ToggleVerified(index)
	})
	return snap, ok
}

func (p *Panel) DeleteSkill(index int) (document.Snapshot, bool) {
	var ok bool
	snap := p.withSkills("delete", func(e *SkillsEditor) {
		ok = e.Delete(index)
	})
	return snap, ok
}

// Education.

func (p *Panel) AddEducation() (resume.Education, document.Snapshot) {
	var created resume.Education
	snap := p.withEducation("add", func(e *EducationEditor) {
		created = e.Add()
	})
	return created, snap
}

func (p *Panel) UpdateEducation(id string, field EducationField, value string) (document.Snapshot, bool) {
	var ok bool
	snap := p.withEducation("update", func(e *EducationEditor) {
		ok = e.Update(id, field, value)
	})
	return snap, ok
}

func (p *Panel) DeleteEducation(id string) (document.Snapshot, bool) {
	var ok bool
	snap := p.withEducation("delete", func(e *EducationEditor) {
		ok = e.Delete(id)
	})
	return snap, ok
}
