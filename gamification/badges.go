package gamification

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"elevated/models"
)

// RequirementKind tags a parsed badge requirement.
type RequirementKind int

const (
	ReqLogin RequirementKind = iota
	ReqEnroll
	ReqLessons
	ReqQuizPerfect
	ReqCompilerPassCount
	ReqLiveSession
	ReqCourseComplete
)

// Requirement is the tagged form of a badge's requirement string, parsed once
// when the catalog is loaded.
type Requirement struct {
	Kind     RequirementKind
	Count    int
	CourseID uint
}

// ParseRequirement decodes the compact requirement encodings used by the
// badge catalog: "login:N", "enroll:N", "lessons:N", "quiz:perfect",
// "compiler:N", "livesession:N" and "course:<id>:complete".
func ParseRequirement(s string) (Requirement, error) {
	parts := strings.Split(s, ":")
	switch {
	case len(parts) == 2 && parts[0] == "quiz" && parts[1] == "perfect":
		return Requirement{Kind: ReqQuizPerfect}, nil
	case len(parts) == 3 && parts[0] == "course" && parts[2] == "complete":
		id, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return Requirement{}, fmt.Errorf("requirement %q: bad course id", s)
		}
		return Requirement{Kind: ReqCourseComplete, CourseID: uint(id)}, nil
	case len(parts) == 2:
		count, err := strconv.Atoi(parts[1])
		if err != nil || count < 1 {
			return Requirement{}, fmt.Errorf("requirement %q: bad count", s)
		}
		switch parts[0] {
		case "login":
			return Requirement{Kind: ReqLogin, Count: count}, nil
		case "enroll":
			return Requirement{Kind: ReqEnroll, Count: count}, nil
		case "lessons":
			return Requirement{Kind: ReqLessons, Count: count}, nil
		case "compiler":
			return Requirement{Kind: ReqCompilerPassCount, Count: count}, nil
		case "livesession":
			return Requirement{Kind: ReqLiveSession, Count: count}, nil
		}
	}
	return Requirement{}, fmt.Errorf("requirement %q: unknown encoding", s)
}

// satisfied reports whether an event satisfies a requirement. Kinds without a
// wired trigger (login, lessons, livesession, course-complete) never fire;
// the catalog defines them but nothing emits their events yet.
func satisfied(req Requirement, event Event) bool {
	switch ev := event.(type) {
	case EnrollmentCreated:
		return req.Kind == ReqEnroll && ev.EnrollmentCount == req.Count
	case QuizGraded:
		return req.Kind == ReqQuizPerfect && ev.Total > 0 && ev.Score == ev.Total
	case CompilerSolutionGraded:
		// Exact equality, not >=: the badge fires on the Nth pass only.
		return req.Kind == ReqCompilerPassCount && ev.Passed && ev.PassedCount == req.Count
	}
	return false
}

// evaluateBadges awards every catalog badge whose requirement the event
// satisfies and the user does not yet hold. Failures are logged and skipped:
// a badge problem must never fail the mutation that triggered it.
func (e *Engine) evaluateBadges(userID uint, event Event) []models.Badge {
	userBadges, err := e.store.GetUserBadges(userID)
	if err != nil {
		log.Printf("[GAMIFICATION] Badge lookup for user %d failed: %v", userID, err)
		return nil
	}
	held := make(map[uint]bool, len(userBadges))
	for _, ub := range userBadges {
		held[ub.BadgeID] = true
	}

	var earned []models.Badge

	for _, entry := range e.catalog {
		if held[entry.badge.ID] || !satisfied(entry.req, event) {
			continue
		}
		if _, err := e.store.AwardBadge(userID, entry.badge.ID); err != nil {
			log.Printf("[GAMIFICATION] Awarding badge %q to user %d failed: %v", entry.badge.Name, userID, err)
			continue
		}
		earned = append(earned, entry.badge)
	}
	return earned
}
