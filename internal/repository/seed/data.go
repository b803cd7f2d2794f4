// Package seed bundles the demo dataset the app starts from. The first
// freelancer doubles as the fallback profile when the document store is
// unreachable.
package seed

import "skillsync-backend/internal/domain"

func Freelancers() []domain.FreelancerProfile {
	return []domain.FreelancerProfile{
		{
			ID:             "1",
			Name:           "Elena Vargas",
			Title:          "Senior Frontend Engineer",
			AvatarURL:      "https://picsum.photos/seed/elena/200/200",
			Skills:         []string{"React", "TypeScript", "Next.js", "Tailwind CSS"},
			Bio:            "Frontend specialist with eight years of experience shipping design systems and high-traffic e-commerce storefronts.",
			WorkHistory:    "Lead Developer at TechCorp, built e-commerce platforms with React and TypeScript. Previously at StartupHub delivering SaaS dashboards.",
			JobPreferences: "Remote-first frontend roles at product companies, ideally SaaS or e-commerce.",
			Rate:           95,
		},
		{
			ID:             "2",
			Name:           "Marcus Chen",
			Title:          "Backend & Cloud Architect",
			AvatarURL:      "https://picsum.photos/seed/marcus/200/200",
			Skills:         []string{"Go", "PostgreSQL", "Kubernetes", "AWS"},
			Bio:            "Backend engineer focused on distributed systems, API design, and cost-efficient cloud infrastructure.",
			WorkHistory:    "Principal Engineer at CloudNine, designed event-driven platforms handling millions of daily requests.",
			JobPreferences: "Contract work on infrastructure and platform teams, remote or hybrid.",
			Rate:           120,
		},
		{
			ID:             "3",
			Name:           "Priya Nair",
			Title:          "Product Designer",
			AvatarURL:      "https://picsum.photos/seed/priya/200/200",
			Skills:         []string{"Figma", "UX Research", "Prototyping", "Design Systems"},
			Bio:            "Designer who pairs research-driven UX with hands-on prototyping. Comfortable embedded in engineering teams.",
			WorkHistory:    "Design lead at Finlytics, redesigned the onboarding funnel and doubled activation.",
			JobPreferences: "Early-stage product teams, fintech or developer tools.",
			Rate:           85,
		},
		{
			ID:             "4",
			Name:           "Tomás Oliveira",
			Title:          "Machine Learning Engineer",
			AvatarURL:      "https://picsum.photos/seed/tomas/200/200",
			Skills:         []string{"Python", "PyTorch", "LLMs", "Data Engineering"},
			Bio:            "ML engineer building retrieval and generation pipelines for production applications.",
			WorkHistory:    "Senior MLE at DataForge, shipped recommendation and search-ranking models.",
			JobPreferences: "Applied AI roles, remote, part-time considered.",
			Rate:           140,
		},
	}
}

func Jobs() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:             "job-1",
			Title:          "React Frontend Developer",
			Company:        "ShopStream",
			LogoURL:        "https://picsum.photos/seed/shopstream/100/100",
			Description:    "Build and maintain the storefront experience for a fast-growing e-commerce platform. You will own component architecture and performance budgets.",
			RequiredSkills: []string{"React", "TypeScript", "CSS"},
			Budget:         8000,
		},
		{
			ID:             "job-2",
			Title:          "Go Platform Engineer",
			Company:        "Meshify",
			LogoURL:        "https://picsum.photos/seed/meshify/100/100",
			Description:    "Design internal services and tooling for a service mesh product. Strong API design and operational instincts required.",
			RequiredSkills: []string{"Go", "Kubernetes", "gRPC"},
			Budget:         12000,
		},
		{
			ID:             "job-3",
			Title:          "Design System Lead",
			Company:        "Brightline",
			LogoURL:        "https://picsum.photos/seed/brightline/100/100",
			Description:    "Own the component library and design tokens used across three product lines. Partner closely with frontend engineers.",
			RequiredSkills: []string{"Figma", "Design Systems", "Prototyping"},
			Budget:         7000,
		},
		{
			ID:             "job-4",
			Title:          "Full-Stack SaaS Engineer",
			Company:        "Ledgerly",
			LogoURL:        "https://picsum.photos/seed/ledgerly/100/100",
			Description:    "Ship features end to end on an accounting SaaS: React frontend, Node services, PostgreSQL storage.",
			RequiredSkills: []string{"React", "Node", "PostgreSQL"},
			Budget:         9500,
		},
		{
			ID:             "job-5",
			Title:          "LLM Application Developer",
			Company:        "Parsec AI",
			LogoURL:        "https://picsum.photos/seed/parsec/100/100",
			Description:    "Build retrieval-augmented generation features and evaluation harnesses for an enterprise assistant.",
			RequiredSkills: []string{"Python", "LLMs", "Vector Databases"},
			Budget:         15000,
		},
		{
			ID:             "job-6",
			Title:          "Cloud Cost Optimization Consultant",
			Company:        "Thriftly",
			LogoURL:        "https://picsum.photos/seed/thriftly/100/100",
			Description:    "Audit a multi-account AWS estate and deliver a cost reduction roadmap with infrastructure-as-code fixes.",
			RequiredSkills: []string{"AWS", "Terraform", "FinOps"},
			Budget:         6000,
		},
	}
}

// DefaultProfile is the fallback returned when the store cannot be read.
func DefaultProfile() *domain.FreelancerProfile {
	f := Freelancers()[0]
	return &f
}
