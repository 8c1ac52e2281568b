package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/resume"
)

func TestClampLevel(t *testing.T) {
	testCases := []struct {
		in, want int
	}{
		{in: -20, want: 0},
		{in: 0, want: 0},
		{in: 2, want: 0},
		{in: 3, want: 5},
		{in: 62, want: 60},
		{in: 65, want: 65},
		{in: 98, want: 100},
		{in: 100, want: 100},
		{in: 250, want: 100},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ClampLevel(tc.in), "ClampLevel(%d)", tc.in)
		assert.Equal(t, ClampLevel(tc.in), ClampLevel(ClampLevel(tc.in)))
	}
}

func TestSkillsEditor_AddToEmpty(t *testing.T) {
	rec := &recorder[resume.Skill]{}
	e := NewSkillsEditor(nil, rec.update)

	_, ok := e.Add("Rust", resume.CategoryTechnical)
	require.True(t, ok)
	assert.Equal(t, []resume.Skill{{Name: "Rust", Level: 50, Verified: false, Category: resume.CategoryTechnical}}, rec.last(t))
}

func TestSkillsEditor_AddEmptyNameIsNoop(t *testing.T) {
	rec := &recorder[resume.Skill]{}
	e := NewSkillsEditor(nil, rec.update)

	_, ok := e.Add("   ", resume.CategorySoft)
	assert.False(t, ok)
	assert.Empty(t, rec.calls)
}

func TestSkillsEditor_AddUnknownCategoryFallsBack(t *testing.T) {
	rec := &recorder[resume.Skill]{}
	e := NewSkillsEditor(nil, rec.update)

	created, ok := e.Add("Go", resume.SkillCategory("magic"))
	require.True(t, ok)
	assert.Equal(t, resume.CategoryTechnical, created.Category)
}

func TestSkillsEditor_SliderMoves(t *testing.T) {
	skills := []resume.Skill{{Name: "Go", Level: 50, Category: resume.CategoryTechnical}}
	var observed []int
	update := func(next []resume.Skill) {
		skills = next
		observed = append(observed, next[0].Level)
	}

	for _, level := range []int{10, 65, 100} {
		require.True(t, NewSkillsEditor(skills, update).SetLevel(0, level))
	}
	assert.Equal(t, []int{10, 65, 100}, observed)
	assert.Equal(t, 100, skills[0].Level)

	NewSkillsEditor(skills, update).SetLevel(0, 100)
	assert.Equal(t, 100, skills[0].Level)

	NewSkillsEditor(skills, update).SetLevel(0, 140)
	assert.Equal(t, 100, skills[0].Level)
}

func TestSkillsEditor_UpdateAndDelete(t *testing.T) {
	items := []resume.Skill{
		{Name: "Go", Level: 50, Category: resume.CategoryTechnical},
		{Name: "Talking", Level: 40, Category: resume.CategorySoft},
	}
	rec := &recorder[resume.Skill]{}
	e := NewSkillsEditor(items, rec.update)

	name := "Golang"
	soft := resume.CategorySoft
	require.True(t, e.Update(0, SkillPatch{Name: &name, Category: &soft}))
	got := rec.last(t)
	assert.Equal(t, resume.Skill{Name: "Golang", Level: 50, Category: resume.CategorySoft}, got[0])
	assert.Equal(t, items[1], got[1])
	assert.Equal(t, "Go", items[0].Name)

	require.True(t, e.ToggleVerified(1))
	assert.True(t, rec.last(t)[1].Verified)

	require.True(t, e.Delete(0))
	assert.Equal(t, []string{"Talking"}, []string{rec.last(t)[0].Name})
	assert.Len(t, rec.last(t), 1)

	calls := len(rec.calls)
	assert.False(t, e.Delete(5))
	assert.False(t, e.SetLevel(-1, 10))
	assert.False(t, e.ToggleVerified(3))
	assert.Len(t, rec.calls, calls)
}
