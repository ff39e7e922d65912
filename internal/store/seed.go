package store

import (
	"time"

	"finconnect/internal/assistant"
	"finconnect/internal/core"
)

// Seed is the fixture data every process start repopulates the store from.
// Nothing in it survives a restart except the session flag.
type Seed struct {
	CurrentUser core.User
	Users       []core.User
	Projects    []core.Project
	Entries     []core.SpendingEntry
	Budgets     []core.PlannedBudget
	Posts       []core.CommunityPost
	Messages    []core.AssistantMessage
}

func money(cents int64) *core.Money {
	return &core.Money{Cents: cents}
}

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

// DemoSeed returns the demo dataset: four users, four projects, a dozen
// spending entries and planned-budget rows, a small community feed, and the
// assistant greeting.
func DemoSeed() *Seed {
	users := []core.User{
		{ID: "user-1", Name: "Sarah Johnson", Email: "sarah@example.com", AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah"},
		{ID: "user-2", Name: "Michael Chen", Email: "michael@example.com", AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Michael"},
		{ID: "user-3", Name: "Emma Davis", Email: "emma@example.com", AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Emma"},
		{ID: "user-4", Name: "James Wilson", Email: "james@example.com", AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=James"},
	}

	projects := []core.Project{
		{
			ID: "project-1", Name: "Summer Vacation 2025", Category: core.CategoryHoliday,
			Budget: money(500000), Currency: "USD",
			StartDate: core.NewDate(2025, 6, 1), EndDate: core.NewDate(2025, 8, 31),
			Members: []core.Member{
				{UserID: "user-1", Role: core.RoleOwner, JoinedAt: core.NewDate(2025, 1, 1)},
				{UserID: "user-2", Role: core.RoleEditor, JoinedAt: core.NewDate(2025, 1, 5)},
			},
			CreatedAt: day(2025, 1, 1), CreatedBy: "user-1",
		},
		{
			ID: "project-2", Name: "Home Renovation", Category: core.CategoryHousehold,
			Budget: money(1500000), Currency: "USD",
			StartDate: core.NewDate(2025, 2, 1), EndDate: core.NewDate(2025, 12, 31),
			Members: []core.Member{
				{UserID: "user-1", Role: core.RoleOwner, JoinedAt: core.NewDate(2025, 2, 1)},
				{UserID: "user-3", Role: core.RoleEditor, JoinedAt: core.NewDate(2025, 2, 1)},
			},
			CreatedAt: day(2025, 2, 1), CreatedBy: "user-1",
		},
		{
			ID: "project-3", Name: "Personal Budget 2025", Category: core.CategoryPersonal,
			Budget: money(300000), Currency: "USD",
			StartDate: core.NewDate(2025, 1, 1), EndDate: core.NewDate(2025, 12, 31),
			Members: []core.Member{
				{UserID: "user-1", Role: core.RoleOwner, JoinedAt: core.NewDate(2025, 1, 1)},
			},
			CreatedAt: day(2025, 1, 1), CreatedBy: "user-1",
		},
		{
			ID: "project-4", Name: "Startup Expenses Q1", Category: core.CategoryBusiness,
			Budget: money(2500000), Currency: "USD",
			StartDate: core.NewDate(2025, 1, 1), EndDate: core.NewDate(2025, 3, 31),
			Members: []core.Member{
				{UserID: "user-1", Role: core.RoleOwner, JoinedAt: core.NewDate(2025, 1, 1)},
				{UserID: "user-2", Role: core.RoleEditor, JoinedAt: core.NewDate(2025, 1, 1)},
				{UserID: "user-4", Role: core.RoleViewer, JoinedAt: core.NewDate(2025, 1, 15)},
			},
			CreatedAt: day(2025, 1, 1), CreatedBy: "user-1",
		},
	}

	entries := []core.SpendingEntry{
		{ID: "spend-1", ProjectID: "project-1", Date: core.NewDate(2025, 1, 15), Title: "Flight Tickets", Description: "Round-trip flights to Hawaii", Category: "Transportation", Amount: core.Money{Cents: 85000}, Currency: "USD", AuthorID: "user-1", CreatedAt: day(2025, 1, 15)},
		{ID: "spend-2", ProjectID: "project-1", Date: core.NewDate(2025, 1, 20), Title: "Hotel Booking", Description: "Ocean view resort - 7 nights", Category: "Accommodation", Amount: core.Money{Cents: 140000}, Currency: "USD", AuthorID: "user-2", CreatedAt: day(2025, 1, 20)},
		{ID: "spend-3", ProjectID: "project-2", Date: core.NewDate(2025, 2, 5), Title: "Paint Supplies", Description: "Interior paint and brushes", Category: "Materials", Amount: core.Money{Cents: 45000}, Currency: "USD", AuthorID: "user-1", CreatedAt: day(2025, 2, 5)},
		{ID: "spend-4", ProjectID: "project-2", Date: core.NewDate(2025, 2, 12), Title: "Contractor Payment", Description: "Kitchen renovation - deposit", Category: "Labor", Amount: core.Money{Cents: 300000}, Currency: "USD", AuthorID: "user-3", CreatedAt: day(2025, 2, 12)},
		{ID: "spend-5", ProjectID: "project-3", Date: core.NewDate(2025, 10, 1), Title: "Groceries", Description: "Weekly shopping", Category: "Food", Amount: core.Money{Cents: 12000}, Currency: "USD", AuthorID: "user-1", CreatedAt: day(2025, 10, 1)},
		{ID: "spend-6", ProjectID: "project-3", Date: core.NewDate(2025, 10, 3), Title: "Gym Membership", Description: "Monthly subscription", Category: "Health", Amount: core.Money{Cents: 5000}, Currency: "USD", AuthorID: "user-1", CreatedAt: day(2025, 10, 3)},
		{ID: "spend-7", ProjectID: "project-4", Date: core.NewDate(2025, 1, 10), Title: "Office Supplies", Description: "Desks, chairs, and equipment", Category: "Equipment", Amount: core.Money{Cents: 250000}, Currency: "USD", AuthorID: "user-2", CreatedAt: day(2025, 1, 10)},
		{ID: "spend-8", ProjectID: "project-4", Date: core.NewDate(2025, 1, 25), Title: "Marketing Campaign", Description: "Social media ads", Category: "Marketing", Amount: core.Money{Cents: 120000}, Currency: "USD", AuthorID: "user-1", CreatedAt: day(2025, 1, 25)},
		{ID: "spend-9", ProjectID: "project-1", Date: core.NewDate(2025, 2, 1), Title: "Travel Insurance", Description: "Comprehensive coverage", Category: "Insurance", Amount: core.Money{Cents: 18000}, Currency: "USD", AuthorID: "user-1", CreatedAt: day(2025, 2, 1)},
		{ID: "spend-10", ProjectID: "project-3", Date: core.NewDate(2025, 10, 15), Title: "Dining Out", Description: "Restaurant", Category: "Food", Amount: core.Money{Cents: 7500}, Currency: "USD", AuthorID: "user-1", CreatedAt: day(2025, 10, 15)},
		{ID: "spend-11", ProjectID: "project-3", Date: core.NewDate(2025, 10, 20), Title: "Electric Bill", Description: "Monthly utility", Category: "Utilities", Amount: core.Money{Cents: 9500}, Currency: "USD", AuthorID: "user-1", CreatedAt: day(2025, 10, 20)},
		{ID: "spend-12", ProjectID: "project-4", Date: core.NewDate(2025, 2, 10), Title: "Software Licenses", Description: "Annual subscriptions", Category: "Software", Amount: core.Money{Cents: 80000}, Currency: "USD", AuthorID: "user-2", CreatedAt: day(2025, 2, 10)},
	}

	budgets := []core.PlannedBudget{
		{ID: "plan-1", ProjectID: "project-1", Category: "Transportation", Planned: core.Money{Cents: 100000}, Notes: "Flights and car rental"},
		{ID: "plan-2", ProjectID: "project-1", Category: "Accommodation", Planned: core.Money{Cents: 150000}, Notes: "Hotel for 7 nights"},
		{ID: "plan-3", ProjectID: "project-1", Category: "Food", Planned: core.Money{Cents: 80000}, Notes: "Dining and groceries"},
		{ID: "plan-4", ProjectID: "project-1", Category: "Activities", Planned: core.Money{Cents: 120000}, Notes: "Tours and entertainment"},
		{ID: "plan-5", ProjectID: "project-1", Category: "Insurance", Planned: core.Money{Cents: 20000}, Notes: "Travel insurance"},
		{ID: "plan-6", ProjectID: "project-2", Category: "Materials", Planned: core.Money{Cents: 500000}},
		{ID: "plan-7", ProjectID: "project-2", Category: "Labor", Planned: core.Money{Cents: 800000}},
		{ID: "plan-8", ProjectID: "project-2", Category: "Permits", Planned: core.Money{Cents: 100000}},
		{ID: "plan-9", ProjectID: "project-3", Category: "Food", Planned: core.Money{Cents: 60000}},
		{ID: "plan-10", ProjectID: "project-3", Category: "Utilities", Planned: core.Money{Cents: 20000}},
		{ID: "plan-11", ProjectID: "project-3", Category: "Health", Planned: core.Money{Cents: 10000}},
		{ID: "plan-12", ProjectID: "project-3", Category: "Entertainment", Planned: core.Money{Cents: 15000}},
	}

	posts := []core.CommunityPost{
		{
			ID: "post-1", AuthorID: "user-2",
			Content: "💡 Pro tip: Use the 50/30/20 budgeting rule - 50% for needs, 30% for wants, and 20% for savings. It has helped me stay on track this year!",
			Reactions: []core.Reaction{
				{Type: "like", Count: 24},
				{Type: "helpful", Count: 15},
			},
			Comments: []core.Comment{
				{ID: "comment-1", AuthorID: "user-1", Content: "This is great advice! I've been using a similar approach.", CreatedAt: time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)},
			},
			CreatedAt: time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "post-2", AuthorID: "user-3",
			Content:    "Just finished my first month of strict budget tracking. Saved $350 by cutting down on dining out! Small changes really add up.",
			ProjectTag: "Personal Budget",
			Reactions: []core.Reaction{
				{Type: "like", Count: 18},
				{Type: "celebrate", Count: 12},
			},
			Comments:  []core.Comment{},
			CreatedAt: time.Date(2025, 10, 20, 14, 20, 0, 0, time.UTC),
		},
		{
			ID: "post-3", AuthorID: "user-4",
			Content: "Question: How do you all handle budgeting for irregular expenses like car maintenance? I find it hard to predict.",
			Reactions: []core.Reaction{
				{Type: "like", Count: 8},
			},
			Comments: []core.Comment{
				{ID: "comment-2", AuthorID: "user-2", Content: "I set aside a fixed amount each month in a \"surprise expenses\" category. Works well!", CreatedAt: time.Date(2025, 10, 25, 11, 0, 0, 0, time.UTC)},
				{ID: "comment-3", AuthorID: "user-1", Content: "Same here! I budget about 10% for unexpected costs.", CreatedAt: time.Date(2025, 10, 25, 11, 30, 0, 0, time.UTC)},
			},
			CreatedAt: time.Date(2025, 10, 24, 16, 45, 0, 0, time.UTC),
		},
		{
			ID: "post-4", AuthorID: "user-1",
			Content: "Planning a vacation on a budget? Book flights on Tuesday afternoons and hotels on Sunday nights for the best deals! 🏖️✈️",
			Reactions: []core.Reaction{
				{Type: "like", Count: 31},
				{Type: "helpful", Count: 22},
			},
			Comments:  []core.Comment{},
			CreatedAt: time.Date(2025, 10, 28, 8, 15, 0, 0, time.UTC),
		},
	}

	messages := []core.AssistantMessage{
		{ID: "ai-1", Role: core.RoleAssistant, Content: assistant.Greeting, Timestamp: time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC)},
	}

	return &Seed{
		CurrentUser: users[0],
		Users:       users,
		Projects:    projects,
		Entries:     entries,
		Budgets:     budgets,
		Posts:       posts,
		Messages:    messages,
	}
}
