package core

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
}

// CategoryBreakdown pairs planned and actual spend for one category of a project.
type CategoryBreakdown struct {
	Category string `json:"category"`
	Planned  Money  `json:"planned"`
	Actual   Money  `json:"actual"`
}

// ProjectSummary is the budget-vs-actual overview for a single project.
// Percentage is nil when the project has no budget set.
type ProjectSummary struct {
	ProjectID  string              `json:"project_id"`
	Currency   string              `json:"currency"`
	Total      Money               `json:"total_spent"`
	Planned    Money               `json:"total_planned"`
	Budget     *Money              `json:"budget,omitempty"`
	Remaining  *Money              `json:"remaining,omitempty"`
	Percentage *float64            `json:"budget_percentage,omitempty"`
	ByCategory []CategoryBreakdown `json:"by_category"`
}

// DashboardStats is the account-wide aggregate shown on the dashboard.
type DashboardStats struct {
	ActiveProjects    int   `json:"active_projects"`
	MonthSpend        Money `json:"month_spend"`
	MonthEntries      int   `json:"month_entries"`
	AllTimeSpend      Money `json:"all_time_spend"`
	AveragePerProject Money `json:"average_per_project"`
}

// ProjectSpend pairs a project with its all-time spend, for dashboard cards.
type ProjectSpend struct {
	Project Project `json:"project"`
	Total   Money   `json:"total_spent"`
}
