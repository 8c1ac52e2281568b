package resume

// ResumeData 是整份简历文档，编辑器与预览共享同一份快照。
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Activities   []Activity   `json:"activities"`
	Skills       []Skill      `json:"skills"`
	Education    []Education  `json:"education"`
}

// PersonalInfo 描述简历头部的个人信息。
// 链接字段只保存 host+path，展示时再补上协议。
type PersonalInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Activity 表示一条经历（实习、比赛、课程、项目）。
type Activity struct {
	ID           string         `json:"id"`
	Type         ActivityType   `json:"type"`
	Title        string         `json:"title"`
	Organization string         `json:"organization"`
	Date         string         `json:"date"`
	Status       ActivityStatus `json:"status"`
	Skills       []string       `json:"skills"`
	Description  string         `json:"description"`
}

// Skill 表示一项技能，Level 为百分比。
type Skill struct {
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Verified bool          `json:"verified"`
	Category SkillCategory `json:"category"`
}

// Education 表示一段教育经历，ID 在创建时生成。
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

// LinkScheme 是展示链接时统一补上的协议前缀。
const LinkScheme = "https://"

// Link 是带展示名的完整链接。
type Link struct {
	Label string
	URL   string
}

// Links 按 LinkedIn、GitHub、Portfolio 的顺序返回非空链接。
func (p PersonalInfo) Links() []Link {
	candidates := []Link{
		{Label: "LinkedIn", URL: p.LinkedIn},
		{Label: "GitHub", URL: p.GitHub},
		{Label: "Portfolio", URL: p.Portfolio},
	}
	links := make([]Link, 0, len(candidates))
	for _, l := range candidates {
		if l.URL == "" {
			continue
		}
		links = append(links, Link{Label: l.Label, URL: LinkScheme + l.URL})
	}
	return links
}

// Clone 返回深拷贝，调用方修改返回值不会影响原文档。
func (d ResumeData) Clone() ResumeData {
	out := d
	if d.Activities != nil {
		out.Activities = make([]Activity, len(d.Activities))
		for i, a := range d.Activities {
			out.Activities[i] = a.Clone()
		}
	}
	if d.Skills != nil {
		out.Skills = append([]Skill(nil), d.Skills...)
	}
	if d.Education != nil {
		out.Education = append([]Education(nil), d.Education...)
	}
	return out
}

// Clone 复制 Activity，包括技能列表。
func (a Activity) Clone() Activity {
	out := a
	if a.Skills != nil {
		out.Skills = append(make([]string, 0, len(a.Skills)), a.Skills...)
	}
	return out
}
