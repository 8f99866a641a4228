package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"elevated/config"
	"elevated/database"
	"elevated/models"
)

func setupSchedulerDb(t *testing.T) *gorm.DB {
	t.Helper()
	config.AppConfig = &config.Config{}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.LiveSession{}))

	database.Database = database.DbInstance{Db: db}
	return db
}

func newSession(title string, startsIn time.Duration) models.LiveSession {
	return models.LiveSession{
		Title:          title,
		Description:    "d",
		InstructorName: "Elevated",
		SessionDate:    time.Now().Add(startsIn),
		Duration:       60,
		MeetingID:      "123456789",
	}
}

func TestReminderMarksOnlySessionsWithin24h(t *testing.T) {
	db := setupSchedulerDb(t)

	soon := newSession("soon", 2*time.Hour)
	far := newSession("far", 72*time.Hour)
	require.NoError(t, db.Create(&soon).Error)
	require.NoError(t, db.Create(&far).Error)

	user := models.User{Username: "madhavan", Password: "x", Email: "madhavan@example.com"}
	require.NoError(t, db.Create(&user).Error)

	ProcessUpcomingSessionReminders()

	var got models.LiveSession
	require.NoError(t, db.First(&got, soon.ID).Error)
	assert.True(t, got.ReminderSent)

	var gotFar models.LiveSession
	require.NoError(t, db.First(&gotFar, far.ID).Error)
	assert.False(t, gotFar.ReminderSent)
}

func TestReminderNotRepeatedForMarkedSessions(t *testing.T) {
	db := setupSchedulerDb(t)

	session := newSession("soon", 2*time.Hour)
	session.ReminderSent = true
	require.NoError(t, db.Create(&session).Error)

	// A marked session is filtered out of the reminder query entirely.
	ProcessUpcomingSessionReminders()

	var got models.LiveSession
	require.NoError(t, db.First(&got, session.ID).Error)
	assert.True(t, got.ReminderSent)
	assert.Equal(t, session.UpdatedAt.Unix(), got.UpdatedAt.Unix())
}
