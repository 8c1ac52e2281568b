package resume

type ActivityType string

const (
	ActivityInternship ActivityType = "internship"
	ActivityHackathon  ActivityType = "hackathon"
	ActivityCourse     ActivityType = "course"
	ActivityProject    ActivityType = "project"
)

// ActivityTypes 是全部合法的经历类型，顺序即统计面板的展示顺序。
var ActivityTypes = []ActivityType{
	ActivityHackathon,
	ActivityInternship,
	ActivityCourse,
	ActivityProject,
}

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityInternship, ActivityHackathon, ActivityCourse, ActivityProject:
		return true
	}
	return false
}

type ActivityStatus string

const (
	StatusCompleted  ActivityStatus = "completed"
	StatusInProgress ActivityStatus = "in-progress"
	StatusVerified   ActivityStatus = "verified"
)

var ActivityStatuses = []ActivityStatus{StatusCompleted, StatusInProgress, StatusVerified}

func (s ActivityStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusVerified:
		return true
	}
	return false
}

type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
	CategoryLanguage  SkillCategory = "language"
)

var SkillCategories = []SkillCategory{CategoryTechnical, CategorySoft, CategoryLanguage}

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoft, CategoryLanguage:
		return true
	}
	return false
}
