package editor

import (
	"github.com/ecodeclub/ekit/slice"

	"resumehub/internal/resume"
	"resumehub/internal/sequence"
)

type EducationField string

const (
	EducationDegree      EducationField = "degree"
	EducationInstitution EducationField = "institution"
	EducationYear        EducationField = "year"
	EducationGPA         EducationField = "gpa"
)

// EducationEditor 以生成的 id 定位教育经历，不依赖下标。
type EducationEditor struct {
	items    []resume.Education
	onUpdate func([]resume.Education)
	ids      IDGenerator
}

// NewEducationEditor 构造 EducationEditor。
func NewEducationEditor(items []resume.Education, onUpdate func([]resume.Education), ids IDGenerator) *EducationEditor {
	if ids == nil {
		ids = TimestampIDs{Prefix: "edu-"}
	}
	return &EducationEditor{items: items, onUpdate: onUpdate, ids: ids}
}

func educationID(e resume.Education) string { return e.ID }

func (e *EducationEditor) Add() resume.Education {
	created := resume.Education{
		ID:          e.ids.NewID(idSet(e.items, educationID)),
		Degree:      "Bachelor of Science",
		Institution: "University Name",
		Year:        "2020 - 2024",
		GPA:         "3.5/4.0",
	}
	next := make([]resume.Education, 0, len(e.items)+1)
	next = append(next, e.items...)
	next = append(next, created)
	e.commit(next)
	return created
}

// Update 修改指定条目的单个字段，未知字段或 id 不产生更新。
func (e *EducationEditor) Update(id string, field EducationField, value string) bool {
	if sequence.IndexOf(e.items, func(ed resume.Education) bool { return ed.ID == id }) < 0 {
		return false
	}
	switch field {
	case EducationDegree, EducationInstitution, EducationYear, EducationGPA:
	default:
		return false
	}
	e.commit(slice.Map(e.items, func(_ int, ed resume.Education) resume.Education {
		if ed.ID != id {
			return ed
		}
		switch field {
		case EducationDegree:
			ed.Degree = value
		case EducationInstitution:
			ed.Institution = value
		case EducationYear:
			ed.Year = value
		case EducationGPA:
			ed.GPA = value
		}
		return ed
	}))
	return true
}

func (e *EducationEditor) Delete(id string) bool {
	idx := sequence.IndexOf(e.items, func(ed resume.Education) bool { return ed.ID == id })
	if idx < 0 {
		return false
	}
	next := make([]resume.Education, 0, len(e.items)-1)
	next = append(next, e.items[:idx]...)
	next = append(next, e.items[idx+1:]...)
	e.commit(next)
	return true
}

func (e *EducationEditor) commit(next []resume.Education) {
	e.items = next
	if e.onUpdate != nil {
		e.onUpdate(next)
	}
}
