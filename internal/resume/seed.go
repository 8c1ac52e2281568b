package resume

// Seed 返回进程启动时装载的示例简历。
// 每次调用都返回新值，调用方可以随意修改。
func Seed() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{
			Name:      "Alex Johnson",
			Title:     "Computer Science Student & Full-Stack Developer",
			Email:     "alex.johnson@email.com",
			Phone:     "+1 (555) 123-4567",
			Location:  "San Francisco, CA",
			LinkedIn:  "linkedin.com/in/alexjohnson",
			GitHub:    "github.com/alexjohnson",
			Portfolio: "alexjohnson.dev",
		},
		Summary: "Passionate computer science student with hands-on experience in full-stack development, " +
			"machine learning, and competitive programming. Proven track record of delivering innovative " +
			"solutions through internships and hackathons.",
		Activities: []Activity{
			{
				ID:           "1",
				Type:         ActivityInternship,
				Title:        "Software Engineering Intern",
				Organization: "Tech Innovations Inc.",
				Date:         "June 2024 - August 2024",
				Status:       StatusVerified,
				Skills:       []string{"React", "Node.js", "PostgreSQL", "AWS"},
				Description:  "Developed and deployed microservices handling 10K+ daily requests. Improved API response time by 40%.",
			},
			{
				ID:           "2",
				Type:         ActivityHackathon,
				Title:        "1st Place - HackMIT 2024",
				Organization: "MIT",
				Date:         "September 2024",
				Status:       StatusVerified,
				Skills:       []string{"Python", "TensorFlow", "React", "Flask"},
				Description:  "Built an AI-powered accessibility tool for visually impaired users. Won first place among 200+ teams.",
			},
			{
				ID:           "3",
				Type:         ActivityCourse,
				Title:        "Machine Learning Specialization",
				Organization: "Stanford Online",
				Date:         "March 2024",
				Status:       StatusCompleted,
				Skills:       []string{"Python", "Machine Learning", "Neural Networks"},
				Description:  "Completed a comprehensive ML program covering supervised learning, neural networks and recommender systems.",
			},
			{
				ID:           "4",
				Type:         ActivityProject,
				Title:        "Open Source Contributor",
				Organization: "GitHub",
				Date:         "2023 - Present",
				Status:       StatusInProgress,
				Skills:       []string{"TypeScript", "Go", "Docker"},
				Description:  "Active contributor to developer tooling projects with 50+ merged pull requests.",
			},
			{
				ID:           "5",
				Type:         ActivityHackathon,
				Title:        "Best Use of API - TreeHacks",
				Organization: "Stanford University",
				Date:         "February 2024",
				Status:       StatusVerified,
				Skills:       []string{"Vue.js", "Firebase", "Maps API"},
				Description:  "Created a real-time community resource sharing platform.",
			},
		},
		Skills: []Skill{
			{Name: "React", Level: 90, Verified: true, Category: CategoryTechnical},
			{Name: "TypeScript", Level: 85, Verified: true, Category: CategoryTechnical},
			{Name: "Python", Level: 88, Verified: true, Category: CategoryTechnical},
			{Name: "Node.js", Level: 80, Verified: true, Category: CategoryTechnical},
			{Name: "Machine Learning", Level: 75, Verified: false, Category: CategoryTechnical},
			{Name: "Leadership", Level: 85, Verified: true, Category: CategorySoft},
			{Name: "Communication", Level: 90, Verified: false, Category: CategorySoft},
			{Name: "Spanish", Level: 70, Verified: false, Category: CategoryLanguage},
		},
		Education: []Education{
			{
				ID:          "edu-1",
				Degree:      "Bachelor of Science in Computer Science",
				Institution: "University of California, Berkeley",
				Year:        "2021 - 2025",
				GPA:         "3.8/4.0",
			},
			{
				ID:          "edu-2",
				Degree:      "High School Diploma",
				Institution: "Lincoln High School",
				Year:        "2017 - 2021",
			},
		},
	}
}
