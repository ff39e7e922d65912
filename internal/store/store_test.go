package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"finconnect/internal/core"
)

type fakeFlag struct {
	active bool
	err    error
	sets   []bool
}

func (f *fakeFlag) Active(context.Context) (bool, error) { return f.active, f.err }
func (f *fakeFlag) SetActive(_ context.Context, active bool) error {
	f.sets = append(f.sets, active)
	f.active = active
	return f.err
}

type StoreTestSuite struct {
	suite.Suite
	store *Store
	now   time.Time
}

// SetupTest runs before each test
func (s *StoreTestSuite) SetupTest() {
	s.now = time.Date(2025, 10, 25, 12, 0, 0, 0, time.UTC)
	s.store = New(DemoSeed(),
		WithLatency(0),
		WithClock(func() time.Time { return s.now }),
	)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestSeedCollections() {
	assert.Len(s.T(), s.store.Projects(), 4)
	assert.Len(s.T(), s.store.Entries(), 12)
	assert.Len(s.T(), s.store.Posts(), 4)
	assert.Len(s.T(), s.store.Messages(), 1)

	u, ok := s.store.UserByID("user-3")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "Emma Davis", u.Name)

	_, ok = s.store.UserByID("user-99")
	assert.False(s.T(), ok)
}

func (s *StoreTestSuite) TestLoginEstablishesSession() {
	require.False(s.T(), s.store.Authenticated())

	sess, err := s.store.Login(context.Background(), "anything@example.com", "whatever")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "user-1", sess.User.ID)
	assert.Equal(s.T(), "Sarah Johnson", sess.User.Name)
	assert.True(s.T(), s.store.Authenticated())

	s.store.Logout(context.Background())
	assert.False(s.T(), s.store.Authenticated())
}

func (s *StoreTestSuite) TestRegisterOverridesIdentity() {
	sess, err := s.store.Register(context.Background(), "Alex Kim", "alex@example.com", "pw")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "user-1", sess.User.ID)
	assert.Equal(s.T(), "Alex Kim", sess.User.Name)
	assert.Equal(s.T(), "alex@example.com", sess.User.Email)
}

func (s *StoreTestSuite) TestSessionFlagPersistence() {
	flag := &fakeFlag{}
	st := New(DemoSeed(), WithLatency(0), WithSessionFlag(flag))

	_, err := st.Login(context.Background(), "a@b.c", "pw")
	require.NoError(s.T(), err)
	st.Logout(context.Background())
	assert.Equal(s.T(), []bool{true, false}, flag.sets)
}

func (s *StoreTestSuite) TestRestoreSession() {
	flag := &fakeFlag{active: true}
	st := New(DemoSeed(), WithLatency(0), WithSessionFlag(flag))

	ok, err := st.RestoreSession(context.Background())
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
	assert.True(s.T(), st.Authenticated())

	// Flag not set: nothing restored.
	st2 := New(DemoSeed(), WithLatency(0), WithSessionFlag(&fakeFlag{}))
	ok, err = st2.RestoreSession(context.Background())
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)

	// Flag errors surface to the caller.
	st3 := New(DemoSeed(), WithLatency(0), WithSessionFlag(&fakeFlag{err: errors.New("disk gone")}))
	_, err = st3.RestoreSession(context.Background())
	assert.Error(s.T(), err)
}

func (s *StoreTestSuite) TestLoginRespectsContext() {
	st := New(DemoSeed(), WithLatency(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := st.Login(ctx, "a@b.c", "pw")
	assert.ErrorIs(s.T(), err, context.Canceled)
}

func (s *StoreTestSuite) TestCreateProject() {
	budget := core.Money{Cents: 100000}
	created := s.store.CreateProject(core.Project{
		Name:     "Garden Makeover",
		Category: core.CategoryHousehold,
		Budget:   &budget,
		Currency: "EUR",
	})

	assert.True(s.T(), strings.HasPrefix(created.ID, "project-"))
	assert.Equal(s.T(), s.now, created.CreatedAt)
	assert.Equal(s.T(), "user-1", created.CreatedBy)

	got, ok := s.store.Project(created.ID)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "Garden Makeover", got.Name)
	assert.Len(s.T(), s.store.Projects(), 5)
}

func (s *StoreTestSuite) TestUpdateProjectFieldMask() {
	name := "Winter Vacation 2025"
	ok := s.store.UpdateProject("project-1", ProjectUpdate{Name: &name})
	require.True(s.T(), ok)

	got, _ := s.store.Project("project-1")
	assert.Equal(s.T(), "Winter Vacation 2025", got.Name)
	// Untouched fields survive the merge.
	require.NotNil(s.T(), got.Budget)
	assert.Equal(s.T(), int64(500000), got.Budget.Cents)
	assert.Equal(s.T(), core.CategoryHoliday, got.Category)
}

func (s *StoreTestSuite) TestUpdateProjectClearBudget() {
	ok := s.store.UpdateProject("project-1", ProjectUpdate{ClearBudget: true})
	require.True(s.T(), ok)
	got, _ := s.store.Project("project-1")
	assert.Nil(s.T(), got.Budget)
}

func (s *StoreTestSuite) TestUpdateProjectUnknownIDIsNoop() {
	name := "x"
	assert.False(s.T(), s.store.UpdateProject("project-404", ProjectUpdate{Name: &name}))
	assert.Len(s.T(), s.store.Projects(), 4)
}

func (s *StoreTestSuite) TestDeleteProjectCascades() {
	require.NotEmpty(s.T(), s.store.EntriesByProject("project-1"))
	require.NotEmpty(s.T(), s.store.BudgetsByProject("project-1"))

	ok := s.store.DeleteProject("project-1")
	require.True(s.T(), ok)

	_, found := s.store.Project("project-1")
	assert.False(s.T(), found)
	assert.Empty(s.T(), s.store.EntriesByProject("project-1"))
	assert.Empty(s.T(), s.store.BudgetsByProject("project-1"))

	// Other projects' data is unaffected.
	assert.Len(s.T(), s.store.EntriesByProject("project-2"), 2)
	assert.Len(s.T(), s.store.BudgetsByProject("project-2"), 3)
}

func (s *StoreTestSuite) TestAddEntryAndFilterByProject() {
	added := s.store.AddEntry(core.SpendingEntry{
		ProjectID: "project-2",
		Date:      core.NewDate(2025, 3, 1),
		Title:     "Tile Delivery",
		Category:  "Materials",
		Amount:    core.Money{Cents: 62000},
		Currency:  "USD",
		AuthorID:  "user-1",
	})
	assert.True(s.T(), strings.HasPrefix(added.ID, "spend-"))

	entries := s.store.EntriesByProject("project-2")
	assert.Len(s.T(), entries, 3)
	seen := 0
	for _, e := range entries {
		assert.Equal(s.T(), "project-2", e.ProjectID)
		if e.ID == added.ID {
			seen++
		}
	}
	assert.Equal(s.T(), 1, seen, "added entry should appear exactly once")
	// Insertion order preserved: the new entry comes last.
	assert.Equal(s.T(), added.ID, entries[len(entries)-1].ID)
}

func (s *StoreTestSuite) TestUpdateEntryFieldMask() {
	amount := core.Money{Cents: 90000}
	notes := "rebooked"
	ok := s.store.UpdateEntry("spend-1", EntryUpdate{Amount: &amount, Notes: &notes})
	require.True(s.T(), ok)

	got, _ := s.store.Entry("spend-1")
	assert.Equal(s.T(), int64(90000), got.Amount.Cents)
	assert.Equal(s.T(), "rebooked", got.Notes)
	assert.Equal(s.T(), "Flight Tickets", got.Title)

	assert.False(s.T(), s.store.UpdateEntry("spend-404", EntryUpdate{Notes: &notes}))
}

func (s *StoreTestSuite) TestDeleteEntry() {
	require.True(s.T(), s.store.DeleteEntry("spend-5"))
	_, found := s.store.Entry("spend-5")
	assert.False(s.T(), found)
	assert.False(s.T(), s.store.DeleteEntry("spend-5"))
}

func (s *StoreTestSuite) TestReplaceBudgetsIsRemoveThenAppend() {
	rows := s.store.ReplaceBudgets("project-3", []core.PlannedBudget{
		{Category: "Food", Planned: core.Money{Cents: 70000}},
		{Category: "Travel", Planned: core.Money{Cents: 30000}},
	})
	require.Len(s.T(), rows, 2)
	for _, r := range rows {
		assert.Equal(s.T(), "project-3", r.ProjectID)
		assert.NotEmpty(s.T(), r.ID)
	}

	got := s.store.BudgetsByProject("project-3")
	require.Len(s.T(), got, 2)
	assert.Equal(s.T(), "Food", got[0].Category)
	assert.Equal(s.T(), "Travel", got[1].Category)

	// Replacing with an empty list clears the plan entirely.
	s.store.ReplaceBudgets("project-3", nil)
	assert.Empty(s.T(), s.store.BudgetsByProject("project-3"))

	// Other projects keep their rows.
	assert.Len(s.T(), s.store.BudgetsByProject("project-1"), 5)
}

func (s *StoreTestSuite) TestCreatePostPrepends() {
	created := s.store.CreatePost(core.CommunityPost{Content: "New savings milestone!"})
	assert.Empty(s.T(), created.Reactions)
	assert.Empty(s.T(), created.Comments)
	assert.Equal(s.T(), "user-1", created.AuthorID)

	posts := s.store.Posts()
	require.Len(s.T(), posts, 5)
	assert.Equal(s.T(), created.ID, posts[0].ID, "new post should be first")
}

func (s *StoreTestSuite) TestReactToPost() {
	created := s.store.CreatePost(core.CommunityPost{Content: "React to me"})

	require.True(s.T(), s.store.ReactToPost(created.ID, "like"))
	require.True(s.T(), s.store.ReactToPost(created.ID, "like"))
	require.True(s.T(), s.store.ReactToPost(created.ID, "celebrate"))

	got, ok := s.store.Post(created.ID)
	require.True(s.T(), ok)
	require.Len(s.T(), got.Reactions, 2)
	assert.Equal(s.T(), core.Reaction{Type: "like", Count: 2}, got.Reactions[0])
	assert.Equal(s.T(), core.Reaction{Type: "celebrate", Count: 1}, got.Reactions[1])

	assert.False(s.T(), s.store.ReactToPost("post-404", "like"))
}

func (s *StoreTestSuite) TestAddComment() {
	comment, ok := s.store.AddComment("post-2", "Congrats, that is real progress!")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "user-1", comment.AuthorID)

	got, _ := s.store.Post("post-2")
	require.Len(s.T(), got.Comments, 1)
	assert.Equal(s.T(), comment.ID, got.Comments[0].ID)

	_, ok = s.store.AddComment("post-404", "into the void")
	assert.False(s.T(), ok)
}

func (s *StoreTestSuite) TestSendAssistantMessage() {
	reply, err := s.store.SendAssistantMessage(context.Background(), "How can I reduce spending?", "")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), core.RoleAssistant, reply.Role)
	assert.Contains(s.T(), reply.Content, "personalized saving tips")

	msgs := s.store.Messages()
	require.Len(s.T(), msgs, 3)
	assert.Equal(s.T(), core.RoleUser, msgs[1].Role)
	assert.Equal(s.T(), "How can I reduce spending?", msgs[1].Content)
	assert.Equal(s.T(), reply.ID, msgs[2].ID)
}

func (s *StoreTestSuite) TestClearAssistantHistory() {
	_, err := s.store.SendAssistantMessage(context.Background(), "hi", "project-1")
	require.NoError(s.T(), err)
	require.Greater(s.T(), len(s.store.Messages()), 1)

	s.store.ClearAssistantHistory()
	msgs := s.store.Messages()
	require.Len(s.T(), msgs, 1)
	assert.Equal(s.T(), "ai-1", msgs[0].ID)
	assert.Equal(s.T(), core.RoleAssistant, msgs[0].Role)
}

func (s *StoreTestSuite) TestIDsAreCollisionFree() {
	ids := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		e := s.store.AddEntry(core.SpendingEntry{ProjectID: "project-1", Title: "x", Category: "c", Amount: core.Money{Cents: 1}})
		_, dup := ids[e.ID]
		require.False(s.T(), dup, "duplicate id %s", e.ID)
		ids[e.ID] = struct{}{}
	}
}
