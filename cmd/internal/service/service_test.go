package service

import (
	"fmt"
	"strings"
	"testing"

	"voloconnect/cmd/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Volunteer{},
		&entity.Event{},
		&entity.Assignment{},
		&entity.Query{},
	))
	return db
}

var validate = validator.New()

func seedVolunteer(t *testing.T, db *gorm.DB, name, email string, status entity.VolunteerStatus) *entity.Volunteer {
	t.Helper()

	volunteer := &entity.Volunteer{
		Name:   name,
		Email:  email,
		Phone:  "555-0100",
		Status: status,
	}
	require.NoError(t, db.Save(volunteer).Error)
	return volunteer
}

func seedEvent(t *testing.T, db *gorm.DB, title string, status entity.EventStatus) *entity.Event {
	t.Helper()

	event := &entity.Event{
		Title:       title,
		Description: "a test event",
		Date:        1700000000000,
		Location:    "Community Hall",
		Capacity:    25,
		Status:      status,
	}
	require.NoError(t, db.Save(event).Error)
	return event
}

func seedAssignment(t *testing.T, db *gorm.DB, eventID, volunteerID int, role string) *entity.Assignment {
	t.Helper()

	assignment := &entity.Assignment{EventID: eventID, VolunteerID: volunteerID, Role: role}
	require.NoError(t, db.Save(assignment).Error)
	return assignment
}

func str(s string) *string {
	return &s
}
