package repository

import (
	"testing"

	"voloconnect/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolunteerRepository_FindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewVolunteerRepository(db)

	seeded := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	found, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, seeded.ID, found.ID)

	missing, err := repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVolunteerRepository_ExistsByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewVolunteerRepository(db)

	seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerPending)

	exists, err := repo.ExistsByEmail("alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail("bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestVolunteerRepository_FindByNameContaining_IsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewVolunteerRepository(db)

	seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)
	seedVolunteer(t, db, "Bob Jones", "bob@example.com", entity.VolunteerActive)

	found, err := repo.FindByNameContaining("SMITH")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice Smith", found[0].Name)
}

func TestVolunteerRepository_FindBySkillsContaining(t *testing.T) {
	db := newTestDB(t)
	repo := NewVolunteerRepository(db)

	skills := "First Aid, Cooking"
	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)
	volunteer.Skills = &skills
	require.NoError(t, repo.Save(volunteer))
	seedVolunteer(t, db, "Bob Jones", "bob@example.com", entity.VolunteerActive)

	found, err := repo.FindBySkillsContaining("first aid")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, volunteer.ID, found[0].ID)
}

func TestVolunteerRepository_FindByPhoneAndPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewVolunteerRepository(db)

	seeded := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	byPhone, err := repo.FindByPhone("555-0100")
	require.NoError(t, err)
	require.NotNil(t, byPhone)
	assert.Equal(t, seeded.ID, byPhone.ID)

	byPair, err := repo.FindByNameAndEmail("Alice Smith", "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byPair)
	assert.Equal(t, seeded.ID, byPair.ID)

	mismatch, err := repo.FindByNameAndEmail("Alice Smith", "bob@example.com")
	require.NoError(t, err)
	assert.Nil(t, mismatch)
}

func TestVolunteerRepository_CountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewVolunteerRepository(db)

	seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)
	seedVolunteer(t, db, "Bob Jones", "bob@example.com", entity.VolunteerActive)
	seedVolunteer(t, db, "Cara White", "cara@example.com", entity.VolunteerPending)

	active, err := repo.CountByStatus(entity.VolunteerActive)
	require.NoError(t, err)
	assert.EqualValues(t, 2, active)

	inactive, err := repo.CountByStatus(entity.VolunteerInactive)
	require.NoError(t, err)
	assert.EqualValues(t, 0, inactive)
}

func TestVolunteerRepository_UniqueEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewVolunteerRepository(db)

	seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	dup := &entity.Volunteer{
		Name:   "Alice Clone",
		Email:  "alice@example.com",
		Phone:  "555-0101",
		Status: entity.VolunteerPending,
	}
	assert.Error(t, repo.Save(dup))
}
