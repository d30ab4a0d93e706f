package repositories_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"ead/internal/database"
	"ead/internal/models"
	"ead/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB returns an isolated in-memory database with both schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.Open(database.DriverSQLite, dsn, nil)
	require.NoError(t, err)
	require.NoError(t, database.MigrateUsers(db))
	require.NoError(t, database.MigrateCourses(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seedUsers(t *testing.T, repo *repositories.GORMUserRepository) []models.User {
	t.Helper()
	now := time.Now().UTC()
	users := []models.User{
		{UserID: "00000000-0000-0000-0000-000000000001", Username: "alice", Email: "alice@ead.com", FullName: "Alice Silva", UserStatus: models.UserStatusActive, UserType: models.UserTypeStudent},
		{UserID: "00000000-0000-0000-0000-000000000002", Username: "bob", Email: "bob@ead.com", FullName: "Bob Souza", UserStatus: models.UserStatusBlocked, UserType: models.UserTypeStudent},
		{UserID: "00000000-0000-0000-0000-000000000003", Username: "carol", Email: "carol@school.org", FullName: "Carol Silva", UserStatus: models.UserStatusActive, UserType: models.UserTypeInstructor},
	}
	for i := range users {
		users[i].Password = "hash"
		users[i].CreationDate = now
		users[i].LastUpdateDate = now
		require.NoError(t, repo.Create(context.Background(), &users[i]))
	}
	return users
}

func TestGORMUserRepository_FindAll(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))
	seedUsers(t, repo)
	ctx := context.Background()

	t.Run("default page sorted by id", func(t *testing.T) {
		users, total, err := repo.FindAll(ctx, repositories.UserFilter{}, repositories.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, users, 3)
		assert.Equal(t, "alice", users[0].Username)
		assert.Equal(t, "carol", users[2].Username)
	})

	t.Run("paged and sorted desc", func(t *testing.T) {
		page := repositories.PageRequest{Page: 1, Size: 2, Sort: "username", Direction: repositories.Desc}
		users, total, err := repo.FindAll(ctx, repositories.UserFilter{}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].Username)
	})

	t.Run("filters", func(t *testing.T) {
		users, total, err := repo.FindAll(ctx, repositories.UserFilter{UserType: "STUDENT", UserStatus: "ACTIVE"}, repositories.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "alice", users[0].Username)

		users, total, err = repo.FindAll(ctx, repositories.UserFilter{FullName: "Silva"}, repositories.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, users, 2)

		_, total, err = repo.FindAll(ctx, repositories.UserFilter{Email: "@ead.com"}, repositories.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("wildcards in filters are literal", func(t *testing.T) {
		users, total, err := repo.FindAll(ctx, repositories.UserFilter{Email: "%"}, repositories.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, users)
	})

	t.Run("page far past the end is empty", func(t *testing.T) {
		users, total, err := repo.FindAll(ctx, repositories.UserFilter{}, repositories.PageRequest{Page: math.MaxInt, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, users)
	})

	t.Run("unknown sort falls back to id", func(t *testing.T) {
		users, _, err := repo.FindAll(ctx, repositories.UserFilter{}, repositories.PageRequest{Sort: "password; DROP TABLE tb_users"})
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "alice", users[0].Username)
	})
}

func TestGORMUserRepository_CRUD(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))
	users := seedUsers(t, repo)
	ctx := context.Background()

	exists, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByEmail(ctx, "nobody@ead.com")
	require.NoError(t, err)
	assert.False(t, exists)

	user, err := repo.GetByID(ctx, users[1].UserID)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	user.FullName = "Roberto Souza"
	require.NoError(t, repo.Update(ctx, user))
	reloaded, err := repo.GetByID(ctx, users[1].UserID)
	require.NoError(t, err)
	assert.Equal(t, "Roberto Souza", reloaded.FullName)
	assert.Equal(t, "bob@ead.com", reloaded.Email)

	require.NoError(t, repo.Delete(ctx, users[1].UserID))
	_, err = repo.GetByID(ctx, users[1].UserID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, users[1].UserID), repositories.ErrNotFound)

	ghost := &models.User{UserID: uuid.New().String(), Username: "ghost", Email: "g@ead.com", Password: "x"}
	assert.ErrorIs(t, repo.Update(ctx, ghost), repositories.ErrNotFound)
}

func TestGORMUserRepository_UniqueUsername(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))
	seedUsers(t, repo)

	dup := &models.User{Username: "alice", Email: "other@ead.com", Password: "x", UserStatus: models.UserStatusActive, UserType: models.UserTypeStudent}
	assert.ErrorIs(t, repo.Create(context.Background(), dup), repositories.ErrDuplicateKey)

	dup = &models.User{Username: "alice2", Email: "alice@ead.com", Password: "x", UserStatus: models.UserStatusActive, UserType: models.UserTypeStudent}
	assert.ErrorIs(t, repo.Create(context.Background(), dup), repositories.ErrDuplicateKey)
}

func TestGORMLessonRepository(t *testing.T) {
	db := openTestDB(t)
	modules := repositories.NewGORMModuleRepository(db)
	lessons := repositories.NewGORMLessonRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	first := &models.Module{Title: "Basics", CreationDate: now}
	second := &models.Module{Title: "Advanced", CreationDate: now}
	require.NoError(t, modules.Create(ctx, first))
	require.NoError(t, modules.Create(ctx, second))
	assert.NotEmpty(t, first.ModuleID)

	found, err := modules.GetByID(ctx, first.ModuleID)
	require.NoError(t, err)
	assert.Equal(t, "Basics", found.Title)
	_, err = modules.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	for _, title := range []string{"Intro", "Setup", "Intro to tests"} {
		l := &models.Lesson{ModuleID: first.ModuleID, Title: title, VideoURL: "http://v", CreationDate: now, LastUpdateDate: now}
		require.NoError(t, lessons.Create(ctx, l))
	}
	other := &models.Lesson{ModuleID: second.ModuleID, Title: "Intro elsewhere", VideoURL: "http://v", CreationDate: now, LastUpdateDate: now}
	require.NoError(t, lessons.Create(ctx, other))

	t.Run("listing is scoped to the module", func(t *testing.T) {
		items, total, err := lessons.FindAllIntoModule(ctx, first.ModuleID, repositories.LessonFilter{}, repositories.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, items, 3)

		items, total, err = lessons.FindAllIntoModule(ctx, first.ModuleID, repositories.LessonFilter{Title: "Intro"}, repositories.PageRequest{Sort: "title"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, "Intro", items[0].Title)
		assert.Equal(t, "Intro to tests", items[1].Title)
	})

	t.Run("empty listing", func(t *testing.T) {
		items, total, err := lessons.FindAllIntoModule(ctx, uuid.New().String(), repositories.LessonFilter{}, repositories.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, items)
	})

	t.Run("lookup requires both ids", func(t *testing.T) {
		_, err := lessons.GetIntoModule(ctx, first.ModuleID, other.LessonID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		got, err := lessons.GetIntoModule(ctx, second.ModuleID, other.LessonID)
		require.NoError(t, err)
		assert.Equal(t, "Intro elsewhere", got.Title)
	})

	t.Run("update and delete", func(t *testing.T) {
		other.Title = "Renamed"
		require.NoError(t, lessons.Update(ctx, other))
		got, err := lessons.GetIntoModule(ctx, second.ModuleID, other.LessonID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)

		require.NoError(t, lessons.Delete(ctx, other))
		_, err = lessons.GetIntoModule(ctx, second.ModuleID, other.LessonID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		assert.ErrorIs(t, lessons.Delete(ctx, other), repositories.ErrNotFound)
	})
}

func TestPageRequest_Normalize(t *testing.T) {
	p := repositories.PageRequest{Page: -3, Size: 1000, Direction: "sideways"}.Normalize()
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, repositories.MaxPageSize, p.Size)
	assert.Equal(t, repositories.Asc, p.Direction)

	p = repositories.PageRequest{Page: math.MaxInt, Size: repositories.MaxPageSize}.Normalize()
	assert.Equal(t, repositories.MaxPage, p.Page)
	assert.Positive(t, p.Page*p.Size)

	p = repositories.PageRequest{Size: 0, Direction: repositories.Desc}.Normalize()
	assert.Equal(t, repositories.DefaultPageSize, p.Size)
	assert.Equal(t, repositories.Desc, p.Direction)
}
