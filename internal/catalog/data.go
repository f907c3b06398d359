package catalog

import "skillpath-service/internal/models"

// Built-in reference data. Deployments overlay or replace these through JSON
// files in the data directory; the defaults keep the service functional
// without any mounted data.

var defaultAliases = map[string]string{
	"js":          "JavaScript",
	"javascript":  "JavaScript",
	"es6":         "JavaScript",
	"ts":          "TypeScript",
	"typescript":  "TypeScript",
	"reactjs":     "React",
	"react.js":    "React",
	"react":       "React",
	"nodejs":      "Node.js",
	"node":        "Node.js",
	"node.js":     "Node.js",
	"golang":      "Go",
	"go":          "Go",
	"py":          "Python",
	"python":      "Python",
	"python3":     "Python",
	"postgres":    "PostgreSQL",
	"postgresql":  "PostgreSQL",
	"psql":        "PostgreSQL",
	"mongo":       "MongoDB",
	"mongodb":     "MongoDB",
	"k8s":         "Kubernetes",
	"kubernetes":  "Kubernetes",
	"aws":         "AWS",
	"amazon web services": "AWS",
	"gcp":         "Google Cloud",
	"google cloud": "Google Cloud",
	"tf":          "Terraform",
	"terraform":   "Terraform",
	"ci/cd":       "CI/CD",
	"cicd":        "CI/CD",
	"ml":          "Machine Learning",
	"machine learning": "Machine Learning",
	"dl":          "Deep Learning",
	"deep learning": "Deep Learning",
	"sql":         "SQL",
	"nosql":       "MongoDB",
	"html5":       "HTML",
	"css3":        "CSS",
	"vuejs":       "Vue",
	"vue.js":      "Vue",
	"next":        "Next.js",
	"nextjs":      "Next.js",
	"next.js":     "Next.js",
	"rn":          "React Native",
	"react native": "React Native",
	"c sharp":     "C#",
	"dotnet":      "C#",
	".net":        "C#",
	"springboot":  "Spring",
	"spring boot": "Spring",
}

var defaultDemand = []models.DemandEntry{
	{Skill: "JavaScript", Category: "frontend", Demand: 85, Trend: models.TrendStable},
	{Skill: "TypeScript", Category: "frontend", Demand: 88, Trend: models.TrendRising},
	{Skill: "React", Category: "frontend", Demand: 86, Trend: models.TrendStable},
	{Skill: "Vue", Category: "frontend", Demand: 62, Trend: models.TrendStable},
	{Skill: "Next.js", Category: "frontend", Demand: 74, Trend: models.TrendRising},
	{Skill: "HTML", Category: "frontend", Demand: 60, Trend: models.TrendStable},
	{Skill: "CSS", Category: "frontend", Demand: 60, Trend: models.TrendStable},
	{Skill: "Node.js", Category: "backend", Demand: 80, Trend: models.TrendStable},
	{Skill: "Go", Category: "backend", Demand: 78, Trend: models.TrendRising},
	{Skill: "Python", Category: "backend", Demand: 90, Trend: models.TrendRising},
	{Skill: "Java", Category: "backend", Demand: 72, Trend: models.TrendDeclining},
	{Skill: "C#", Category: "backend", Demand: 65, Trend: models.TrendStable},
	{Skill: "Spring", Category: "backend", Demand: 58, Trend: models.TrendDeclining},
	{Skill: "SQL", Category: "data", Demand: 82, Trend: models.TrendStable},
	{Skill: "PostgreSQL", Category: "data", Demand: 76, Trend: models.TrendRising},
	{Skill: "MongoDB", Category: "data", Demand: 64, Trend: models.TrendStable},
	{Skill: "Machine Learning", Category: "data", Demand: 87, Trend: models.TrendRising},
	{Skill: "Deep Learning", Category: "data", Demand: 79, Trend: models.TrendRising},
	{Skill: "Data Analysis", Category: "data", Demand: 75, Trend: models.TrendRising},
	{Skill: "Docker", Category: "devops", Demand: 81, Trend: models.TrendStable},
	{Skill: "Kubernetes", Category: "devops", Demand: 83, Trend: models.TrendRising},
	{Skill: "Terraform", Category: "devops", Demand: 71, Trend: models.TrendRising},
	{Skill: "CI/CD", Category: "devops", Demand: 73, Trend: models.TrendStable},
	{Skill: "AWS", Category: "cloud", Demand: 84, Trend: models.TrendStable},
	{Skill: "Google Cloud", Category: "cloud", Demand: 66, Trend: models.TrendRising},
	{Skill: "React Native", Category: "mobile", Demand: 63, Trend: models.TrendStable},
	{Skill: "Swift", Category: "mobile", Demand: 55, Trend: models.TrendStable},
	{Skill: "Kotlin", Category: "mobile", Demand: 57, Trend: models.TrendStable},
	{Skill: "Git", Category: "tooling", Demand: 70, Trend: models.TrendStable},
}

var defaultArchetypes = []models.CareerPathArchetype{
	{
		ID:          "frontend-engineer",
		Title:       "Frontend Engineer",
		Description: "Builds user-facing web applications with modern component frameworks",
		RequiredSkills: map[string]int{
			"JavaScript": 75,
			"TypeScript": 60,
			"React":      80,
			"HTML":       50,
			"CSS":        50,
		},
	},
	{
		ID:          "backend-engineer",
		Title:       "Backend Engineer",
		Description: "Designs and operates server-side services and APIs",
		RequiredSkills: map[string]int{
			"Go":         70,
			"SQL":        65,
			"PostgreSQL": 55,
			"Docker":     50,
			"Node.js":    50,
		},
	},
	{
		ID:          "fullstack-engineer",
		Title:       "Full-Stack Engineer",
		Description: "Delivers complete features across frontend and backend",
		RequiredSkills: map[string]int{
			"JavaScript": 70,
			"React":      65,
			"Node.js":    65,
			"SQL":        55,
			"TypeScript": 55,
		},
	},
	{
		ID:          "data-scientist",
		Title:       "Data Scientist",
		Description: "Extracts insight from data with statistical and ML methods",
		RequiredSkills: map[string]int{
			"Python":           80,
			"Machine Learning": 70,
			"SQL":              60,
			"Data Analysis":    65,
		},
	},
	{
		ID:          "devops-engineer",
		Title:       "DevOps Engineer",
		Description: "Automates build, deployment and infrastructure operations",
		RequiredSkills: map[string]int{
			"Docker":     70,
			"Kubernetes": 65,
			"Terraform":  55,
			"CI/CD":      65,
			"AWS":        60,
		},
	},
	{
		ID:          "mobile-engineer",
		Title:       "Mobile Engineer",
		Description: "Ships native and cross-platform mobile applications",
		RequiredSkills: map[string]int{
			"React Native": 70,
			"JavaScript":   60,
			"Swift":        50,
			"Kotlin":       50,
		},
	},
}
