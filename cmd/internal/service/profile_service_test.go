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

func newProfileService(t *testing.T) (*DefaultProfileService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewProfileService(
		db,
		repository.NewVolunteerRepository(db),
		repository.NewAssignmentRepository(db),
		validate,
	)
	return svc, db
}

func TestUpdateProfile_OnlyPresentFieldsChange(t *testing.T) {
	svc, db := newProfileService(t)

	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)
	volunteer.Bio = str("Long-time helper")
	volunteer.Availability = str("Weekends")
	require.NoError(t, db.Save(volunteer).Error)

	apierr := svc.UpdateProfile(volunteer.ID, &UpdateProfileRequest{
		Skills: str("First Aid"),
	})
	require.Nil(t, apierr)

	var stored entity.Volunteer
	require.NoError(t, db.First(&stored, volunteer.ID).Error)
	require.NotNil(t, stored.Skills)
	assert.Equal(t, "First Aid", *stored.Skills)
	require.NotNil(t, stored.Bio)
	assert.Equal(t, "Long-time helper", *stored.Bio)
	require.NotNil(t, stored.Availability)
	assert.Equal(t, "Weekends", *stored.Availability)
}

func TestUpdateProfile_UnknownVolunteer(t *testing.T) {
	svc, _ := newProfileService(t)

	apierr := svc.UpdateProfile(999, &UpdateProfileRequest{Bio: str("hello")})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestUpdateSkillsAndAvailability(t *testing.T) {
	svc, db := newProfileService(t)

	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	require.Nil(t, svc.UpdateSkills(volunteer.ID, "Cooking, Driving"))
	require.Nil(t, svc.UpdateAvailability(volunteer.ID, "Weekday evenings"))

	var stored entity.Volunteer
	require.NoError(t, db.First(&stored, volunteer.ID).Error)
	require.NotNil(t, stored.Skills)
	assert.Equal(t, "Cooking, Driving", *stored.Skills)
	require.NotNil(t, stored.Availability)
	assert.Equal(t, "Weekday evenings", *stored.Availability)

	apierr := svc.UpdateSkills(999, "anything")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestGetVolunteerStats(t *testing.T) {
	svc, db := newProfileService(t)

	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)
	first := seedEvent(t, db, "Beach Cleanup", entity.EventCompleted)
	second := seedEvent(t, db, "Food Drive", entity.EventCompleted)
	third := seedEvent(t, db, "Tree Planting", entity.EventUpcoming)
	seedAssignment(t, db, first.ID, volunteer.ID, "Lead")
	seedAssignment(t, db, second.ID, volunteer.ID, "Helper")
	seedAssignment(t, db, third.ID, volunteer.ID, "Lead")

	stats, apierr := svc.GetVolunteerStats(volunteer.ID)
	require.Nil(t, apierr)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 2, stats.CompletedEvents)
	assert.Equal(t, "Lead, Helper", stats.Roles)
}

func TestGetVolunteerStats_NoAssignments(t *testing.T) {
	svc, db := newProfileService(t)

	volunteer := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)

	stats, apierr := svc.GetVolunteerStats(volunteer.ID)
	require.Nil(t, apierr)
	assert.Equal(t, 0, stats.TotalEvents)
	assert.Equal(t, 0, stats.CompletedEvents)
	assert.Equal(t, "", stats.Roles)

	_, apierr = svc.GetVolunteerStats(999)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestSearchVolunteers(t *testing.T) {
	svc, db := newProfileService(t)

	alice := seedVolunteer(t, db, "Alice Smith", "alice@example.com", entity.VolunteerActive)
	alice.Skills = str("First Aid, Cooking")
	alice.Availability = str("Weekends")
	require.NoError(t, db.Save(alice).Error)

	bob := seedVolunteer(t, db, "Bob Jones", "bob@example.com", entity.VolunteerPending)
	bob.Skills = str("Driving")
	require.NoError(t, db.Save(bob).Error)

	// Empty criteria match everyone.
	all, apierr := svc.SearchVolunteers(&SearchCriteria{})
	require.Nil(t, apierr)
	assert.Len(t, all, 2)

	// Skills match is a case-insensitive substring.
	bySkills, apierr := svc.SearchVolunteers(&SearchCriteria{Skills: str("first aid")})
	require.Nil(t, apierr)
	require.Len(t, bySkills, 1)
	assert.Equal(t, alice.ID, bySkills[0].ID)

	// Status compares case-insensitively.
	byStatus, apierr := svc.SearchVolunteers(&SearchCriteria{Status: str("active")})
	require.Nil(t, apierr)
	require.Len(t, byStatus, 1)
	assert.Equal(t, alice.ID, byStatus[0].ID)

	// Criteria combine with AND.
	combined, apierr := svc.SearchVolunteers(&SearchCriteria{
		Skills: str("Cooking"),
		Status: str("PENDING"),
	})
	require.Nil(t, apierr)
	assert.Empty(t, combined)
}

func TestSearchVolunteers_UnsetFieldNeverMatches(t *testing.T) {
	svc, db := newProfileService(t)

	// Bob has no availability on record, so an availability constraint
	// filters him out even for the empty keyword.
	seedVolunteer(t, db, "Bob Jones", "bob@example.com", entity.VolunteerActive)

	matches, apierr := svc.SearchVolunteers(&SearchCriteria{Availability: str("")})
	require.Nil(t, apierr)
	assert.Empty(t, matches)
}
