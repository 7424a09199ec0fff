package repository

import "github.com/okian/revintel/internal/domain/model"

func intPtr(v int) *int { return &v }

// SeedAccounts returns a representative set of CRM accounts for demos and
// tests. In production this data comes from the CRM backend.
func SeedAccounts() []model.Account {
	return []model.Account{
		{
			ID: "acc_001", Company: "Acme Corp", Plan: model.PlanEnterprise,
			MRR: 5000, CreatedDate: "2024-01-15", Industry: "technology", Status: model.StatusActive,
			Usage: model.UsageSignals{
				DailyActiveUsers: 45, FeaturesAdopted: 8, APICallsPerDay: 1200,
				SupportTickets30d: 2, NPSScore: intPtr(9), LoginFrequency7d: 28,
			},
		},
		{
			ID: "acc_002", Company: "TechStart Inc", Plan: model.PlanTrial,
			MRR: 0, CreatedDate: "2024-10-20", Industry: "saas", Status: model.StatusTrial,
			Usage: model.UsageSignals{
				DailyActiveUsers: 8, FeaturesAdopted: 3, APICallsPerDay: 150,
				LoginFrequency7d: 12,
			},
		},
		{
			ID: "acc_003", Company: "Global Finance Ltd", Plan: model.PlanProfessional,
			MRR: 1200, CreatedDate: "2023-08-10", Industry: "finance", Status: model.StatusActive,
			Usage: model.UsageSignals{
				DailyActiveUsers: 22, FeaturesAdopted: 6, APICallsPerDay: 600,
				SupportTickets30d: 1, NPSScore: intPtr(8), LoginFrequency7d: 20,
			},
		},
		{
			ID: "acc_004", Company: "RetailMax Systems", Plan: model.PlanStarter,
			MRR: 299, CreatedDate: "2024-06-01", Industry: "retail", Status: model.StatusActive,
			Usage: model.UsageSignals{
				DailyActiveUsers: 5, FeaturesAdopted: 2, APICallsPerDay: 80,
				SupportTickets30d: 3, NPSScore: intPtr(6), LoginFrequency7d: 8,
			},
		},
		{
			ID: "acc_005", Company: "HealthTech Solutions", Plan: model.PlanEnterprise,
			MRR: 8500, CreatedDate: "2023-03-20", Industry: "healthcare", Status: model.StatusActive,
			Usage: model.UsageSignals{
				DailyActiveUsers: 120, FeaturesAdopted: 10, APICallsPerDay: 2500,
				SupportTickets30d: 4, NPSScore: intPtr(9), LoginFrequency7d: 35,
			},
		},
		{
			ID: "acc_006", Company: "EduLearn Platform", Plan: model.PlanProfessional,
			MRR: 950, CreatedDate: "2024-02-14", Industry: "education", Status: model.StatusAtRisk,
			Usage: model.UsageSignals{
				DailyActiveUsers: 12, FeaturesAdopted: 4, APICallsPerDay: 200,
				SupportTickets30d: 8, NPSScore: intPtr(4), LoginFrequency7d: 5,
			},
		},
		{
			ID: "acc_009", Company: "CloudScale Ventures", Plan: model.PlanTrial,
			MRR: 0, CreatedDate: "2024-10-28", Industry: "technology", Status: model.StatusTrial,
			Usage: model.UsageSignals{
				DailyActiveUsers: 15, FeaturesAdopted: 5, APICallsPerDay: 350,
				LoginFrequency7d: 18,
			},
		},
		{
			ID: "acc_011", Company: "Marketing Wizards", Plan: model.PlanProfessional,
			MRR: 899, CreatedDate: "2023-12-01", Industry: "marketing", Status: model.StatusAtRisk,
			Usage: model.UsageSignals{
				DailyActiveUsers: 6, FeaturesAdopted: 3, APICallsPerDay: 120,
				SupportTickets30d: 5, NPSScore: intPtr(5), LoginFrequency7d: 4,
			},
		},
		{
			ID: "acc_012", Company: "DataDriven Analytics", Plan: model.PlanEnterprise,
			MRR: 12000, CreatedDate: "2023-05-15", Industry: "data_analytics", Status: model.StatusActive,
			Usage: model.UsageSignals{
				DailyActiveUsers: 200, FeaturesAdopted: 12, APICallsPerDay: 5000,
				SupportTickets30d: 3, NPSScore: intPtr(10), LoginFrequency7d: 42,
			},
		},
		{
			ID: "acc_015", Company: "PropTech Realty", Plan: model.PlanTrial,
			MRR: 0, CreatedDate: "2024-10-25", Industry: "real_estate", Status: model.StatusTrial,
			Usage: model.UsageSignals{
				DailyActiveUsers: 4, FeaturesAdopted: 2, APICallsPerDay: 60,
				SupportTickets30d: 1, LoginFrequency7d: 8,
			},
		},
	}
}

// SeedLeads returns a representative set of leads for demos and tests.
func SeedLeads() []model.Lead {
	return []model.Lead{
		{
			ID: "lead_001", Company: "FutureTech Innovations", Industry: "technology",
			EmployeeCount: 250, ContactName: "Sarah Johnson", ContactTitle: "VP of Engineering",
			Signals: model.LeadSignals{
				WebsiteVisits30d: 45, DemoRequested: true, WhitepaperDownloads: 3,
				EmailEngagementScore: 85, LinkedinEngagement: true, FreeTrialStarted: true,
			},
		},
		{
			ID: "lead_002", Company: "StartupHub", Industry: "saas",
			EmployeeCount: 15, ContactName: "Mike Chen", ContactTitle: "CEO",
			Signals: model.LeadSignals{
				WebsiteVisits30d: 8, WhitepaperDownloads: 1, EmailEngagementScore: 35,
			},
		},
		{
			ID: "lead_003", Company: "Enterprise Solutions Corp", Industry: "finance",
			EmployeeCount: 5000, ContactName: "Jennifer Williams", ContactTitle: "CTO",
			Signals: model.LeadSignals{
				WebsiteVisits30d: 62, DemoRequested: true, WhitepaperDownloads: 5,
				EmailEngagementScore: 92, LinkedinEngagement: true, FreeTrialStarted: true,
			},
		},
		{
			ID: "lead_004", Company: "LocalRetail Co", Industry: "retail",
			EmployeeCount: 50, ContactName: "Robert Martinez", ContactTitle: "IT Manager",
			Signals: model.LeadSignals{
				WebsiteVisits30d: 3, EmailEngagementScore: 15,
			},
		},
		{
			ID: "lead_005", Company: "HealthCare Systems Inc", Industry: "healthcare",
			EmployeeCount: 1200, ContactName: "Dr. Emily Brown", ContactTitle: "Chief Medical Information Officer",
			Signals: model.LeadSignals{
				WebsiteVisits30d: 38, DemoRequested: true, WhitepaperDownloads: 4,
				EmailEngagementScore: 78, LinkedinEngagement: true,
			},
		},
		{
			ID: "lead_006", Company: "EduTech Learning", Industry: "education",
			EmployeeCount: 180, ContactName: "David Kim", ContactTitle: "Director of Technology",
			Signals: model.LeadSignals{
				WebsiteVisits30d: 22, DemoRequested: true, WhitepaperDownloads: 2,
				EmailEngagementScore: 65, FreeTrialStarted: true,
			},
		},
		{
			ID: "lead_008", Company: "ConsultPro Group", Industry: "consulting",
			EmployeeCount: 45, ContactName: "Tom Wilson", ContactTitle: "Managing Partner",
			Signals: model.LeadSignals{
				WebsiteVisits30d: 12, WhitepaperDownloads: 1, EmailEngagementScore: 42,
			},
		},
		{
			ID: "lead_012", Company: "DataScience Labs", Industry: "data_analytics",
			EmployeeCount: 450, ContactName: "Alex Turner", ContactTitle: "Head of Data",
			Signals: model.LeadSignals{
				WebsiteVisits30d: 72, DemoRequested: true, WhitepaperDownloads: 6,
				EmailEngagementScore: 95, LinkedinEngagement: true, FreeTrialStarted: true,
			},
		},
	}
}
