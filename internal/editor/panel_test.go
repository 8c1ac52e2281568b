package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/document"
	"resumehub/internal/resume"
	"resumehub/internal/sequence"
)

type opRecorder struct {
	ops      []string
	versions []uint64
}

func (r *opRecorder) EditorOperation(section, op string) { r.ops = append(r.ops, section+"."+op) }
func (r *opRecorder) DocumentVersion(v uint64)            { r.versions = append(r.versions, v) }

func newTestPanel(seed resume.ResumeData) (*Panel, *document.Store, *opRecorder) {
	store := document.New(seed)
	rec := &opRecorder{}
	return NewPanel(store, WithClock(fixedNow), WithRecorder(rec)), store, rec
}

func TestPanel_ReorderThenDelete(t *testing.T) {
	p, store, rec := newTestPanel(resume.ResumeData{Activities: threeActivities()})

	var redraws []uint64
	store.Subscribe(func(s document.Snapshot) { redraws = append(redraws, s.Version) })

	snap, ok := p.ReorderActivities(sequence.Gesture{SourceID: "c", TargetID: "a"})
	require.True(t, ok)
	assert.Equal(t, []string{"c", "a", "b"}, ids(snap.Data.Activities))

	snap, ok = p.DeleteActivity("a")
	require.True(t, ok)
	assert.Equal(t, []string{"c", "b"}, ids(snap.Data.Activities))
	assert.Equal(t, []string{"c", "b"}, ids(store.Snapshot().Data.Activities))

	assert.Equal(t, []uint64{2, 3}, redraws)
	assert.Equal(t, []string{"activities.reorder", "activities.delete"}, rec.ops)
	assert.Equal(t, []uint64{2, 3}, rec.versions)
}

func TestPanel_NoopDoesNotReplace(t *testing.T) {
	p, store, rec := newTestPanel(resume.ResumeData{Activities: threeActivities()})

	_, ok := p.ReorderActivities(sequence.Gesture{SourceID: "a", TargetID: "a"})
	assert.False(t, ok)
	_, ok = p.DeleteSkill(0)
	assert.False(t, ok)
	_, _, ok = p.AddSkill("", resume.CategorySoft)
	assert.False(t, ok)

	assert.Equal(t, uint64(1), store.Snapshot().Version)
	assert.Empty(t, rec.ops)
}

func TestPanel_AddSkillToEmptyList(t *testing.T) {
	p, _, _ := newTestPanel(resume.ResumeData{})

	_, snap, ok := p.AddSkill("Rust", "")
	require.True(t, ok)
	assert.Equal(t, []resume.Skill{{Name: "Rust", Level: 50, Category: resume.CategoryTechnical}}, snap.Data.Skills)
}

func TestPanel_SkillLevelUpdates(t *testing.T) {
	p, store, _ := newTestPanel(resume.ResumeData{})
	p.AddSkill("Go", resume.CategoryTechnical)

	var seen []int
	store.Subscribe(func(s document.Snapshot) { seen = append(seen, s.Data.Skills[0].Level) })
	for _, level := range []int{10, 65, 100} {
		_, ok := p.SetSkillLevel(0, level)
		require.True(t, ok)
	}
	assert.Equal(t, []int{10, 65, 100}, seen)
	assert.Equal(t, 100, store.Snapshot().Data.Skills[0].Level)
}

func TestPanel_DraftLifecycle(t *testing.T) {
	p, store, _ := newTestPanel(resume.ResumeData{Activities: threeActivities()})

	draft, ok := p.BeginEdit("b")
	require.True(t, ok)
	assert.Equal(t, "B", draft.Title)
	assert.Equal(t, Editing, p.Mode("b"))

	title := "Bravo"
	_, ok = p.ChangeDraft("b", ActivityPatch{Title: &title})
	require.True(t, ok)
	_, ok = p.AddDraftSkill("b", "Go")
	require.True(t, ok)
	assert.Equal(t, "B", store.Snapshot().Data.Activities[1].Title)

	snap, ok := p.SaveDraft("b")
	require.True(t, ok)
	assert.Equal(t, "Bravo", snap.Data.Activities[1].Title)
	assert.Equal(t, []string{"Go"}, snap.Data.Activities[1].Skills)
	assert.Equal(t, Viewing, p.Mode("b"))

	p.BeginEdit("c")
	p.ChangeDraft("c", ActivityPatch{Title: &title})
	version := store.Snapshot().Version
	require.True(t, p.CancelDraft("c"))
	assert.Equal(t, version, store.Snapshot().Version)
	assert.Equal(t, "C", store.Snapshot().Data.Activities[2].Title)

	_, ok = p.BeginEdit("missing")
	assert.False(t, ok)
}

func TestPanel_DeleteDropsDraft(t *testing.T) {
	p, _, _ := newTestPanel(resume.ResumeData{Activities: threeActivities()})
	p.BeginEdit("a")
	p.DeleteActivity("a")

	assert.Equal(t, Viewing, p.Mode("a"))
	_, ok := p.SaveDraft("a")
	assert.False(t, ok)
}

func TestPanel_AddActivityAndEducation(t *testing.T) {
	p, _, _ := newTestPanel(resume.Seed())

	created, snap := p.AddActivity()
	require.Len(t, snap.Data.Activities, 6)
	assert.Equal(t, created.ID, snap.Data.Activities[5].ID)

	edu, snap := p.AddEducation()
	require.Len(t, snap.Data.Education, 3)
	snap, ok := p.UpdateEducation(edu.ID, EducationInstitution, "MIT")
	require.True(t, ok)
	assert.Equal(t, "MIT", snap.Data.Education[2].Institution)

	snap, ok = p.SetPersonalField(FieldName, "Sam")
	require.True(t, ok)
	assert.Equal(t, "Sam", snap.Data.PersonalInfo.Name)
	snap = p.SetSummary("short")
	assert.Equal(t, "short", snap.Data.Summary)
	assert.Equal(t, "Sam", snap.Data.PersonalInfo.Name)
}
