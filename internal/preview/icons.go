package preview

import "resumehub/internal/resume"

const fallbackIcon = "📋"

var activityIcons = map[resume.ActivityType]string{
	resume.ActivityHackathon:  "🏆",
	resume.ActivityInternship: "💼",
	resume.ActivityCourse:     "📚",
	resume.ActivityProject:    "🚀",
}

func ActivityIcon(t resume.ActivityType) string {
	if icon, ok := activityIcons[t]; ok {
		return icon
	}
	return fallbackIcon
}

// StatusTone 返回状态对应的配色名。
func StatusTone(s resume.ActivityStatus) string {
	switch s {
	case resume.StatusVerified:
		return "success"
	case resume.StatusCompleted:
		return "primary"
	case resume.StatusInProgress:
		return "accent"
	}
	return "muted"
}

func CategoryLabel(c resume.SkillCategory) string {
	switch c {
	case resume.CategoryTechnical:
		return "Technical"
	case resume.CategorySoft:
		return "Soft Skill"
	case resume.CategoryLanguage:
		return "Language"
	}
	return string(c)
}

// CategoryOption 是技能分类选择器中的一项。
type CategoryOption struct {
	Value resume.SkillCategory `json:"value"`
	Label string               `json:"label"`
}

func CategoryOptions() []CategoryOption {
	opts := make([]CategoryOption, 0, len(resume.SkillCategories))
	for _, c := range resume.SkillCategories {
		opts = append(opts, CategoryOption{Value: c, Label: CategoryLabel(c)})
	}
	return opts
}
