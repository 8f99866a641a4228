package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"elevated/config"
	"elevated/models"
)

// ZoomMeetingDetails is what session endpoints return for joining a meeting.
type ZoomMeetingDetails struct {
	MeetingID string `json:"meeting_id"`
	Password  string `json:"password"`
	JoinURL   string `json:"join_url"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
}

type zoomMeetingResponse struct {
	ID       int64  `json:"id"`
	JoinURL  string `json:"join_url"`
	Password string `json:"password"`
}

var zoomClient = resty.New().SetTimeout(10 * time.Second)

// GetMeetingDetails resolves joining details for a live session. When no
// Zoom API is configured the join URL is derived from the stored meeting
// ID so the client still gets a working link shape.
func GetMeetingDetails(session *models.LiveSession) ZoomMeetingDetails {
	details := ZoomMeetingDetails{
		MeetingID: session.MeetingID,
		Password:  session.MeetingPassword,
		JoinURL:   fmt.Sprintf("https://zoom.us/j/%s", session.MeetingID),
		StartTime: session.SessionDate.Format(time.RFC3339),
		Duration:  session.Duration,
	}

	apiURL := config.AppConfig.ZoomApiURL
	if apiURL == "" {
		return details
	}

	var meeting zoomMeetingResponse
	resp, err := zoomClient.R().
		SetAuthToken(config.AppConfig.ZoomApiKey).
		SetResult(&meeting).
		Get(fmt.Sprintf("%s/meetings/%s", apiURL, session.MeetingID))
	if err != nil {
		log.Printf("Error fetching Zoom meeting %s: %v", session.MeetingID, err)
		return details
	}
	if resp.IsError() {
		log.Printf("Zoom API returned %d for meeting %s", resp.StatusCode(), session.MeetingID)
		return details
	}

	if meeting.JoinURL != "" {
		details.JoinURL = meeting.JoinURL
	}
	if meeting.Password != "" {
		details.Password = meeting.Password
	}
	return details
}
