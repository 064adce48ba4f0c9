package repository

import (
	"testing"

	"voloconnect/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedQuery(t *testing.T, db *gorm.DB, name, subject string, status entity.QueryStatus) *entity.Query {
	t.Helper()

	query := &entity.Query{
		Name:    name,
		Email:   "sender@example.com",
		Subject: subject,
		Message: "Hello, I have a question.",
		Status:  status,
	}
	require.NoError(t, db.Save(query).Error)
	return query
}

func TestQueryRepository_FindByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewQueryRepository(db)

	seedQuery(t, db, "Alice", "Volunteering", entity.QueryPending)
	answered := seedQuery(t, db, "Bob", "Donations", entity.QueryResponded)

	found, err := repo.FindByStatus(entity.QueryResponded)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, answered.ID, found[0].ID)
}

func TestQueryRepository_SubstringLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewQueryRepository(db)

	seeded := seedQuery(t, db, "Alice Smith", "Event schedule", entity.QueryPending)
	seedQuery(t, db, "Bob Jones", "Donations", entity.QueryPending)

	bySubject, err := repo.FindBySubjectContaining("SCHEDULE")
	require.NoError(t, err)
	require.Len(t, bySubject, 1)
	assert.Equal(t, seeded.ID, bySubject[0].ID)

	byName, err := repo.FindByNameContaining("smith")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, seeded.ID, byName[0].ID)

	byEmail, err := repo.FindByEmailContaining("sender@")
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)
}

func TestQueryRepository_CountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewQueryRepository(db)

	seedQuery(t, db, "Alice", "First", entity.QueryPending)
	seedQuery(t, db, "Bob", "Second", entity.QueryPending)
	seedQuery(t, db, "Cara", "Third", entity.QueryClosed)

	pending, err := repo.CountByStatus(entity.QueryPending)
	require.NoError(t, err)
	assert.EqualValues(t, 2, pending)

	responded, err := repo.CountByStatus(entity.QueryResponded)
	require.NoError(t, err)
	assert.EqualValues(t, 0, responded)
}

func TestQueryRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewQueryRepository(db)

	query := seedQuery(t, db, "Alice", "Remove me", entity.QueryClosed)
	require.NoError(t, repo.Delete(query))

	missing, err := repo.FindByID(query.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
