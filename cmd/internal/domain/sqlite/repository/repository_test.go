package repository

import (
	"fmt"
	"strings"
	"testing"

	"voloconnect/cmd/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test, with foreign
// keys enabled so the cascade constraints behave like production.
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

func seedEvent(t *testing.T, db *gorm.DB, title string, date int64, status entity.EventStatus) *entity.Event {
	t.Helper()

	event := &entity.Event{
		Title:       title,
		Description: "a test event",
		Date:        date,
		Location:    "Community Hall",
		Capacity:    25,
		Status:      status,
	}
	require.NoError(t, db.Save(event).Error)
	return event
}
