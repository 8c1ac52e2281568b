package preview

import (
	"github.com/ecodeclub/ekit/slice"

	"resumehub/internal/resume"
)

// TypeCount 是统计面板中按类型计数的一格。
type TypeCount struct {
	Type  resume.ActivityType `json:"type"`
	Label string              `json:"label"`
	Icon  string              `json:"icon"`
	Count int                 `json:"count"`
}

// Stats 是经历的派生统计，不修改输入。
type Stats struct {
	ByType   []TypeCount `json:"by_type"`
	Verified int         `json:"verified"`
	Total    int         `json:"total"`
	Rate     int         `json:"rate"`
}

var typeLabels = map[resume.ActivityType]string{
	resume.ActivityHackathon:  "Hackathons",
	resume.ActivityInternship: "Internships",
	resume.ActivityCourse:     "Courses",
	resume.ActivityProject:    "Projects",
}

// ComputeStats 统计各类型数量与认证比例。
func ComputeStats(activities []resume.Activity) Stats {
	byType := slice.Map(resume.ActivityTypes, func(_ int, t resume.ActivityType) TypeCount {
		return TypeCount{
			Type:  t,
			Label: typeLabels[t],
			Icon:  ActivityIcon(t),
			Count: len(slice.FindAll(activities, func(a resume.Activity) bool { return a.Type == t })),
		}
	})
	verified := len(slice.FindAll(activities, func(a resume.Activity) bool {
		return a.Status == resume.StatusVerified
	}))
	return Stats{
		ByType:   byType,
		Verified: verified,
		Total:    len(activities),
		Rate:     VerificationRate(verified, len(activities)),
	}
}

// VerificationRate 返回 round(100*verified/total)，四舍五入；total 为 0 时返回 0。
func VerificationRate(verified, total int) int {
	if total <= 0 || verified <= 0 {
		return 0
	}
	return (200*verified + total) / (2 * total)
}

// TechnicalSkills 只保留技术类技能，用于预览中的徽章。
func TechnicalSkills(skills []resume.Skill) []resume.Skill {
	return slice.FindAll(skills, func(s resume.Skill) bool {
		return s.Category == resume.CategoryTechnical
	})
}

// SkillGroups 是技能图表的分组。
type SkillGroups struct {
	Technical []resume.Skill `json:"technical"`
	Soft      []resume.Skill `json:"soft"`
	Verified  int            `json:"verified"`
}

func GroupSkills(skills []resume.Skill) SkillGroups {
	return SkillGroups{
		Technical: TechnicalSkills(skills),
		Soft: slice.FindAll(skills, func(s resume.Skill) bool {
			return s.Category == resume.CategorySoft
		}),
		Verified: len(slice.FindAll(skills, func(s resume.Skill) bool { return s.Verified })),
	}
}

const (
	feedLimit       = 5
	feedSkillsLimit = 3
)

// FeedItem 是最近经历列表中的一项。
type FeedItem struct {
	ID           string                `json:"id"`
	Icon         string                `json:"icon"`
	Title        string                `json:"title"`
	Organization string                `json:"organization"`
	Date         string                `json:"date"`
	Status       resume.ActivityStatus `json:"status"`
	Tone         string                `json:"tone"`
	Description  string                `json:"description"`
	Skills       []string              `json:"skills"`
	MoreSkills   int                   `json:"more_skills"`
}

// Feed 返回前五条经历，每条最多展示三个技能。
func Feed(activities []resume.Activity) []FeedItem {
	if len(activities) > feedLimit {
		activities = activities[:feedLimit]
	}
	return slice.Map(activities, func(_ int, a resume.Activity) FeedItem {
		skills := a.Skills
		more := 0
		if len(skills) > feedSkillsLimit {
			more = len(skills) - feedSkillsLimit
			skills = skills[:feedSkillsLimit]
		}
		return FeedItem{
			ID:           a.ID,
			Icon:         ActivityIcon(a.Type),
			Title:        a.Title,
			Organization: a.Organization,
			Date:         a.Date,
			Status:       a.Status,
			Tone:         StatusTone(a.Status),
			Description:  a.Description,
			Skills:       append([]string{}, skills...),
			MoreSkills:   more,
		}
	})
}
