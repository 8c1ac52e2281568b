package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/resume"
)

func TestEducationEditor(t *testing.T) {
	items := []resume.Education{{ID: "edu-1", Degree: "BSc", Institution: "U", Year: "2020"}}
	update := func(next []resume.Education) { items = next }
	gen := TimestampIDs{Prefix: "edu-", Now: fixedNow}

	created := NewEducationEditor(items, update, gen).Add()
	require.Len(t, items, 2)
	assert.Equal(t, "Bachelor of Science", created.Degree)
	assert.Equal(t, "3.5/4.0", created.GPA)
	assert.NotEqual(t, "edu-1", created.ID)

	require.True(t, NewEducationEditor(items, update, gen).Update(created.ID, EducationGPA, "3.9/4.0"))
	assert.Equal(t, "3.9/4.0", items[1].GPA)
	assert.Equal(t, "BSc", items[0].Degree)

	assert.False(t, NewEducationEditor(items, update, gen).Update(created.ID, EducationField("honors"), "x"))
	assert.False(t, NewEducationEditor(items, update, gen).Update("edu-404", EducationDegree, "x"))

	// 删除前一条后，按 id 编辑仍然命中正确的记录。
	require.True(t, NewEducationEditor(items, update, gen).Delete("edu-1"))
	require.True(t, NewEducationEditor(items, update, gen).Update(created.ID, EducationYear, "2021 - 2025"))
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, "2021 - 2025", items[0].Year)
}

func TestPersonalInfoEditor(t *testing.T) {
	var (
		gotInfo    resume.PersonalInfo
		gotSummary string
		calls      int
	)
	info := resume.PersonalInfo{Name: "Ann", Email: "ann@example.com"}
	update := func(i resume.PersonalInfo, s string) {
		gotInfo, gotSummary = i, s
		calls++
	}
	e := NewPersonalInfoEditor(info, "hello", update)

	require.True(t, e.SetField(FieldGitHub, "github.com/ann"))
	assert.Equal(t, "github.com/ann", gotInfo.GitHub)
	assert.Equal(t, "Ann", gotInfo.Name)
	assert.Equal(t, "hello", gotSummary)

	e.SetSummary("bye")
	assert.Equal(t, "bye", gotSummary)
	assert.Equal(t, "github.com/ann", gotInfo.GitHub)

	assert.False(t, e.SetField(PersonalField("age"), "30"))
	assert.Equal(t, 2, calls)
	assert.Empty(t, info.GitHub)
}
