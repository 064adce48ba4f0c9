package service

import (
	"net/http"
	"testing"

	"voloconnect/cmd/internal/domain/entity"
	"voloconnect/cmd/internal/domain/sqlite/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAssignmentService(t *testing.T) (*DefaultAssignmentService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewAssignmentService(
		db,
		repository.NewAssignmentRepository(db),
		repository.NewEventRepository(db),
		repository.NewVolunteerRepository(db),
	)
	return svc, db
}

func TestAssignVolunteer(t *testing.T) {
	svc, db := newAssignmentService(t)

	event := seedEvent(t, db, "Beach Cleanup", entity.EventUpcoming)
	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	id, apierr := svc.AssignVolunteer(event.ID, volunteer.ID, "Lead")
	require.Nil(t, apierr)
	assert.NotZero(t, id)

	volunteers, apierr := svc.GetEventVolunteers(event.ID)
	require.Nil(t, apierr)
	require.Len(t, volunteers, 1)
	assert.Equal(t, "Alice Smith", volunteers[0].Name)
}

func TestAssignVolunteer_DuplicateIsConflict(t *testing.T) {
	svc, db := newAssignmentService(t)

	event := seedEvent(t, db, "Beach Cleanup", entity.EventUpcoming)
	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	_, apierr := svc.AssignVolunteer(event.ID, volunteer.ID, "Lead")
	require.Nil(t, apierr)

	_, apierr = svc.AssignVolunteer(event.ID, volunteer.ID, "Helper")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusConflict, apierr.Code())

	// The failed attempt must not have changed the roster.
	volunteers, apierr := svc.GetEventVolunteers(event.ID)
	require.Nil(t, apierr)
	assert.Len(t, volunteers, 1)
}

func TestAssignVolunteer_MissingParents(t *testing.T) {
	svc, db := newAssignmentService(t)

	event := seedEvent(t, db, "Beach Cleanup", entity.EventUpcoming)
	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	_, apierr := svc.AssignVolunteer(999, volunteer.ID, "Lead")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	_, apierr = svc.AssignVolunteer(event.ID, 999, "Lead")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestRemoveVolunteer(t *testing.T) {
	svc, db := newAssignmentService(t)

	event := seedEvent(t, db, "Beach Cleanup", entity.EventUpcoming)
	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	// Not assigned yet: no error, nothing removed.
	removed, apierr := svc.RemoveVolunteer(event.ID, volunteer.ID)
	require.Nil(t, apierr)
	assert.False(t, removed)

	_, apierr = svc.AssignVolunteer(event.ID, volunteer.ID, "Lead")
	require.Nil(t, apierr)

	removed, apierr = svc.RemoveVolunteer(event.ID, volunteer.ID)
	require.Nil(t, apierr)
	assert.True(t, removed)

	volunteers, apierr := svc.GetEventVolunteers(event.ID)
	require.Nil(t, apierr)
	assert.Empty(t, volunteers)
}

func TestRemoveVolunteer_MissingParents(t *testing.T) {
	svc, db := newAssignmentService(t)

	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	_, apierr := svc.RemoveVolunteer(999, volunteer.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestUpdateVolunteerRole(t *testing.T) {
	svc, db := newAssignmentService(t)

	event := seedEvent(t, db, "Beach Cleanup", entity.EventUpcoming)
	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	// No assignment yet: reports false, no error.
	updated, apierr := svc.UpdateVolunteerRole(event.ID, volunteer.ID, "Helper")
	require.Nil(t, apierr)
	assert.False(t, updated)

	id, apierr := svc.AssignVolunteer(event.ID, volunteer.ID, "Lead")
	require.Nil(t, apierr)

	updated, apierr = svc.UpdateVolunteerRole(event.ID, volunteer.ID, "Helper")
	require.Nil(t, apierr)
	assert.True(t, updated)

	// Only the role changes; the assignment row itself survives.
	var assignment entity.Assignment
	require.NoError(t, db.First(&assignment, id).Error)
	assert.Equal(t, "Helper", assignment.Role)
	assert.Equal(t, event.ID, assignment.EventID)
	assert.Equal(t, volunteer.ID, assignment.VolunteerID)
}

func TestGetEventVolunteers_UnknownEvent(t *testing.T) {
	svc, _ := newAssignmentService(t)

	_, apierr := svc.GetEventVolunteers(999)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestGetVolunteerEvents(t *testing.T) {
	svc, db := newAssignmentService(t)

	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)
	first := seedEvent(t, db, "Beach Cleanup", entity.EventCompleted)
	second := seedEvent(t, db, "Food Drive", entity.EventUpcoming)
	seedAssignment(t, db, first.ID, volunteer.ID, "Lead")
	seedAssignment(t, db, second.ID, volunteer.ID, "Helper")

	events, apierr := svc.GetVolunteerEvents(volunteer.ID)
	require.Nil(t, apierr)
	require.Len(t, events, 2)

	_, apierr = svc.GetVolunteerEvents(999)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}
