package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmakerhq/dmaker/internal/developer/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// In-memory SQLite creates a separate database per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.Developer{}, &model.RetiredDeveloper{})
	require.NoError(t, err)

	return db
}

func seedDeveloper(t *testing.T, db *gorm.DB, memberID string, status model.Status) {
	err := db.Create(&model.Developer{
		MemberID:           memberID,
		Name:               "Alice",
		DeveloperLevel:     model.LevelSenior,
		DeveloperSkillType: model.SkillBackEnd,
		ExperienceYears:    12,
		StatusCode:         status,
	}).Error
	require.NoError(t, err)
}

func TestRepository_GetByMemberID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		seedDeveloper(t, db, "dev-1", model.StatusEmployed)

		developer, err := repo.GetByMemberID(ctx, "dev-1")

		require.NoError(t, err)
		assert.Equal(t, "dev-1", developer.MemberID)
		assert.Equal(t, model.LevelSenior, developer.DeveloperLevel)
		assert.Equal(t, model.StatusEmployed, developer.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		developer, err := repo.GetByMemberID(ctx, "missing")

		assert.Nil(t, developer)
		assert.ErrorIs(t, err, model.ErrDeveloperNotFound)
	})

	t.Run("finds retired developers too", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		seedDeveloper(t, db, "dev-1", model.StatusRetired)

		developer, err := repo.GetByMemberID(ctx, "dev-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusRetired, developer.StatusCode)
	})
}

func TestRepository_ExistsByMemberID(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		seedDeveloper(t, db, "dev-1", model.StatusEmployed)

		exists, err := repo.ExistsByMemberID(ctx, "dev-1")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("does not exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		exists, err := repo.ExistsByMemberID(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		created, err := repo.Create(ctx, &model.Developer{
			MemberID:           "dev-1",
			Name:               "Alice",
			DeveloperLevel:     model.LevelJunior,
			DeveloperSkillType: model.SkillFrontEnd,
			ExperienceYears:    2,
			StatusCode:         model.StatusEmployed,
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})

	t.Run("duplicate member_id maps to domain error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		seedDeveloper(t, db, "dev-1", model.StatusEmployed)

		_, err := repo.Create(ctx, &model.Developer{
			MemberID:           "dev-1",
			Name:               "Bob",
			DeveloperLevel:     model.LevelJunior,
			DeveloperSkillType: model.SkillFrontEnd,
			ExperienceYears:    1,
			StatusCode:         model.StatusEmployed,
		})

		assert.ErrorIs(t, err, model.ErrDuplicateMemberID)
	})
}

func TestRepository_ListByStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by status and orders by member_id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		seedDeveloper(t, db, "dev-b", model.StatusEmployed)
		seedDeveloper(t, db, "dev-a", model.StatusEmployed)
		seedDeveloper(t, db, "dev-c", model.StatusRetired)

		developers, err := repo.ListByStatus(ctx, model.StatusEmployed)

		require.NoError(t, err)
		require.Len(t, developers, 2)
		assert.Equal(t, "dev-a", developers[0].MemberID)
		assert.Equal(t, "dev-b", developers[1].MemberID)
	})

	t.Run("empty list is non-nil", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		developers, err := repo.ListByStatus(ctx, model.StatusEmployed)

		require.NoError(t, err)
		assert.NotNil(t, developers)
		assert.Empty(t, developers)
	})
}

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("persists field changes", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		seedDeveloper(t, db, "dev-1", model.StatusEmployed)

		developer, err := repo.GetByMemberID(ctx, "dev-1")
		require.NoError(t, err)

		developer.StatusCode = model.StatusRetired
		developer.ExperienceYears = 13
		_, err = repo.Save(ctx, developer)
		require.NoError(t, err)

		reloaded, err := repo.GetByMemberID(ctx, "dev-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusRetired, reloaded.StatusCode)
		assert.Equal(t, 13, reloaded.ExperienceYears)
	})
}

func TestRepository_CreateRetired(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		err := repo.CreateRetired(ctx, &model.RetiredDeveloper{
			MemberID: "dev-1",
			Name:     "Alice",
		})
		require.NoError(t, err)

		var retired []model.RetiredDeveloper
		require.NoError(t, db.Find(&retired).Error)
		require.Len(t, retired, 1)
		assert.Equal(t, "dev-1", retired[0].MemberID)
		assert.Zero(t, retired[0].ExperienceYears)
		assert.False(t, retired[0].CreatedAt.IsZero())
	})

	t.Run("allows repeated archival rows for one member", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		require.NoError(t, repo.CreateRetired(ctx, &model.RetiredDeveloper{MemberID: "dev-1", Name: "Alice"}))
		require.NoError(t, repo.CreateRetired(ctx, &model.RetiredDeveloper{MemberID: "dev-1", Name: "Alice"}))

		var count int64
		require.NoError(t, db.Model(&model.RetiredDeveloper{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})
}
