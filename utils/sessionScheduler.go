package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"elevated/database"
	"elevated/models"
)

// InitializeSessionScheduler sets up the live session reminder scheduler
func InitializeSessionScheduler() {
	log.Println("[SESSION-SCHEDULER] Initializing live session scheduler...")

	c := cron.New()

	// Run hourly to catch sessions starting within the next day
	c.AddFunc("0 * * * *", func() {
		log.Println("[SESSION-SCHEDULER] Running session reminder check...")
		ProcessUpcomingSessionReminders()
	})

	c.Start()
	log.Println("[SESSION-SCHEDULER] Session scheduler started - runs hourly")
}

// ProcessUpcomingSessionReminders sends reminder emails for sessions starting
// within 24 hours that have not been reminded yet.
func ProcessUpcomingSessionReminders() {
	db := database.Database.Db
	now := time.Now()
	dayFromNow := now.AddDate(0, 0, 1)

	var sessions []models.LiveSession
	if err := db.
		Where("reminder_sent = false").
		Where("session_date BETWEEN ? AND ?", now, dayFromNow).
		Find(&sessions).Error; err != nil {
		log.Printf("[SESSION-SCHEDULER] Error fetching upcoming sessions: %v", err)
		return
	}

	log.Printf("[SESSION-SCHEDULER] Found %d sessions starting within 24h", len(sessions))
	if len(sessions) == 0 {
		return
	}

	// Every registered learner gets the reminder
	var users []models.User
	if err := db.Where("email <> ''").Find(&users).Error; err != nil {
		log.Printf("[SESSION-SCHEDULER] Error fetching users: %v", err)
		return
	}

	for i := range sessions {
		session := &sessions[i]
		details := GetMeetingDetails(session)

		for _, user := range users {
			SendSessionReminderEmail(user.Email, user.Username, session.Title, session.InstructorName, details.JoinURL)
		}

		session.ReminderSent = true
		if err := db.Save(session).Error; err != nil {
			log.Printf("[SESSION-SCHEDULER] Error marking reminder sent for session %d: %v", session.ID, err)
			continue
		}
		log.Printf("[SESSION-SCHEDULER] Reminders sent for session %q", session.Title)
	}
}
