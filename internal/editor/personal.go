package editor

import "resumehub/internal/resume"

type PersonalField string

const (
	FieldName      PersonalField = "name"
	FieldTitle     PersonalField = "title"
	FieldEmail     PersonalField = "email"
	FieldPhone     PersonalField = "phone"
	FieldLocation  PersonalField = "location"
	FieldLinkedIn  PersonalField = "linkedin"
	FieldGitHub    PersonalField = "github"
	FieldPortfolio PersonalField = "portfolio"
)

// PersonalInfoEditor 编辑个人信息与简介，每次按键都提交整份数据。
type PersonalInfoEditor struct {
	info     resume.PersonalInfo
	summary  string
	onUpdate func(resume.PersonalInfo, string)
}

// NewPersonalInfoEditor 构造 PersonalInfoEditor。
func NewPersonalInfoEditor(info resume.PersonalInfo, summary string, onUpdate func(resume.PersonalInfo, string)) *PersonalInfoEditor {
	return &PersonalInfoEditor{info: info, summary: summary, onUpdate: onUpdate}
}

// SetField 修改单个字段，未知字段返回 false。
func (e *PersonalInfoEditor) SetField(field PersonalField, value string) bool {
	next := e.info
	switch field {
	case FieldName:
		next.Name = value
	case FieldTitle:
		next.Title = value
	case FieldEmail:
		next.Email = value
	case FieldPhone:
		next.Phone = value
	case FieldLocation:
		next.Location = value
	case FieldLinkedIn:
		next.LinkedIn = value
	case FieldGitHub:
		next.GitHub = value
	case FieldPortfolio:
		next.Portfolio = value
	default:
		return false
	}
	e.commit(next, e.summary)
	return true
}

func (e *PersonalInfoEditor) SetSummary(value string) {
	e.commit(e.info, value)
}

func (e *PersonalInfoEditor) commit(info resume.PersonalInfo, summary string) {
	e.info, e.summary = info, summary
	if e.onUpdate != nil {
		e.onUpdate(info, summary)
	}
}
