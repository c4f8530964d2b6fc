package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/testutil"
	"github.com/sbilibin2017/gw-veritas/internal/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributionRepositories_Postgres(t *testing.T) {
	db := testutil.StartPostgres(t)
	ctx := context.Background()
	txm := tx.New(db, 0)

	writer := NewContributionWriteRepository(db, tx.FromContext)
	reader := NewContributionReadRepository(db, tx.FromContext)

	alice := testutil.CreateUser(t, db, "alice", false)
	bob := testutil.CreateUser(t, db, "bob", false)

	fileURL := "https://files.example.com/a.pdf"
	first, err := writer.Insert(ctx, alice, models.ContributionCandidate{
		Title:       "First",
		Description: "first idea",
		Type:        models.ContributionTypeIdea,
		FileURL:     &fileURL,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, first.Status)
	assert.Equal(t, alice, first.UserID)
	require.NotNil(t, first.FileURL)
	assert.Equal(t, fileURL, *first.FileURL)

	second, err := writer.Insert(ctx, bob, models.ContributionCandidate{
		Title:       "Second",
		Description: "second work",
		Type:        models.ContributionTypeWork,
	})
	require.NoError(t, err)
	assert.Nil(t, second.FileURL)

	third, err := writer.Insert(ctx, alice, models.ContributionCandidate{
		Title:       "Third",
		Description: "third asset",
		Type:        models.ContributionTypeAsset,
	})
	require.NoError(t, err)

	t.Run("CountPendingByUser", func(t *testing.T) {
		n, err := reader.CountPendingByUser(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("Pending queue is oldest first with owners", func(t *testing.T) {
		list, err := reader.ListByStatusOldestFirst(ctx, models.StatusPending, 10, 0)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []int64{first.ID, second.ID, third.ID}, ids(list))
		require.NotNil(t, list[1].User)
		assert.Equal(t, "bob", list[1].User.Username)
	})

	t.Run("Pagination", func(t *testing.T) {
		list, err := reader.ListByStatusOldestFirst(ctx, models.StatusPending, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{third.ID}, ids(list))
	})

	t.Run("LockByID and UpdateStatus", func(t *testing.T) {
		err := txm.Do(ctx, func(ctx context.Context) error {
			locked, err := writer.LockByID(ctx, first.ID)
			require.NoError(t, err)
			require.NotNil(t, locked)
			assert.Equal(t, models.StatusPending, locked.Status)

			updated, err := writer.UpdateStatus(ctx, first.ID, models.StatusVerified)
			require.NoError(t, err)
			assert.Equal(t, models.StatusVerified, updated.Status)
			assert.False(t, updated.UpdatedAt.Before(locked.UpdatedAt))
			return nil
		})
		require.NoError(t, err)

		n, err := reader.CountByStatus(ctx, models.StatusVerified)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("LockByID missing row", func(t *testing.T) {
		err := txm.Do(ctx, func(ctx context.Context) error {
			locked, err := writer.LockByID(ctx, third.ID+1000)
			assert.NoError(t, err)
			assert.Nil(t, locked)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("Catalog is newest first", func(t *testing.T) {
		_, err := writer.UpdateStatus(ctx, third.ID, models.StatusVerified)
		require.NoError(t, err)

		list, err := reader.ListByStatusNewestFirst(ctx, models.StatusVerified, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, []int64{third.ID, first.ID}, ids(list))
		require.NotNil(t, list[0].User)
		assert.Equal(t, "alice", list[0].User.Username)
	})

	t.Run("ListByUser", func(t *testing.T) {
		list, err := reader.ListByUser(ctx, alice, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, []int64{third.ID, first.ID}, ids(list))

		n, err := reader.CountByUser(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("GetByID", func(t *testing.T) {
		c, err := reader.GetByID(ctx, second.ID)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "Second", c.Title)

		c, err = reader.GetByID(ctx, second.ID+1000)
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("Owner delete is restricted", func(t *testing.T) {
		_, err := db.Exec(`DELETE FROM users WHERE id = $1`, alice)
		assert.Error(t, err)
	})
}

func TestContributionWriteRepository_LockByID_NoTransaction(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	writer := NewContributionWriteRepository(sqlx.NewDb(db, "sqlmock"), tx.FromContext)

	c, err := writer.LockByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNoTransaction)
	assert.Nil(t, c)
}

func TestContributionReadRepository_CountPendingByUser_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contributions WHERE user_id = $1 AND status = $2")).
		WithArgs(int64(1), "PENDING").
		WillReturnError(sql.ErrConnDone)

	reader := NewContributionReadRepository(sqlx.NewDb(db, "sqlmock"), nil)

	_, err = reader.CountPendingByUser(context.Background(), 1)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContributionReadRepository_ListByStatus_Sqlmock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "description", "type", "file_url", "status", "created_at", "updated_at",
		"user_email", "user_username", "user_is_admin",
	}).AddRow(int64(7), int64(1), "Title", "Desc", "idea", nil, "VERIFIED", fixedTime, fixedTime,
		"alice@example.com", "alice", false)

	mock.ExpectQuery("ORDER BY c.created_at DESC, c.id DESC").
		WithArgs("VERIFIED", 10, 0).
		WillReturnRows(rows)

	reader := NewContributionReadRepository(sqlx.NewDb(db, "sqlmock"), nil)

	list, err := reader.ListByStatusNewestFirst(context.Background(), models.StatusVerified, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].ID)
	assert.Equal(t, models.ContributionTypeIdea, list[0].Type)
	assert.Equal(t, models.StatusVerified, list[0].Status)
	require.NotNil(t, list[0].User)
	assert.Equal(t, int64(1), list[0].User.ID)
	assert.Equal(t, "alice", list[0].User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContributionReadRepository_UnknownStatusIsRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "description", "type", "file_url", "status", "created_at", "updated_at",
	}).AddRow(int64(7), int64(1), "Title", "Desc", "idea", nil, "ARCHIVED", fixedTime, fixedTime)

	mock.ExpectQuery("FROM contributions WHERE id = \\$1").WithArgs(int64(7)).WillReturnRows(rows)

	reader := NewContributionReadRepository(sqlx.NewDb(db, "sqlmock"), nil)

	c, err := reader.GetByID(context.Background(), 7)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func ids(list []models.Contribution) []int64 {
	out := make([]int64, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}
