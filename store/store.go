package store

import (
	"errors"

	"elevated/models"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a create would violate uniqueness,
	// e.g. a second enrollment for the same (user, course) pair.
	ErrConflict = errors.New("record already exists")
)

// Store is the persistence capability consumed by the gamification engine and
// the controllers. It carries no business rules; the two disciplines it does
// own are the atomic XP increment and the idempotent badge award, both of
// which belong at the storage boundary.
//
// Implementations: gormstore (production) and memstore (tests, dev).
type Store interface {
	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	// AddUserXP atomically increments the user's XP by delta and returns the
	// updated user. The engine always issues a delta, never an absolute value.
	AddUserXP(userID uint, delta int) (*models.User, error)

	// Courses
	GetCourses() ([]models.Course, error)
	GetCourse(id uint) (*models.Course, error)
	CreateCourse(course *models.Course) error

	// Enrollments
	GetEnrollments(userID uint) ([]models.Enrollment, error)
	GetEnrollment(userID, courseID uint) (*models.Enrollment, error)
	GetEnrollmentByID(id uint) (*models.Enrollment, error)
	CreateEnrollment(enrollment *models.Enrollment) error
	UpdateEnrollmentProgress(id uint, progress int, completed bool, currentLesson int) (*models.Enrollment, error)

	// Quizzes
	GetQuizzes() ([]models.Quiz, error)
	GetQuiz(id uint) (*models.Quiz, error)
	CreateQuiz(quiz *models.Quiz) error
	GetQuizQuestions(quizID uint) ([]models.QuizQuestion, error)
	CreateQuizQuestion(question *models.QuizQuestion) error
	CreateQuizSubmission(submission *models.QuizSubmission) error
	GetQuizSubmissions(userID uint) ([]models.QuizSubmission, error)

	// Badges
	GetBadges() ([]models.Badge, error)
	CreateBadge(badge *models.Badge) error
	GetUserBadges(userID uint) ([]models.UserBadge, error)
	// AwardBadge is idempotent: if the (user, badge) pair already exists the
	// existing record is returned instead of a duplicate being created.
	AwardBadge(userID, badgeID uint) (*models.UserBadge, error)

	// Certifications
	GetCertifications(userID uint) ([]models.Certification, error)
	CreateCertification(certification *models.Certification) error

	// Live sessions
	GetLiveSessions() ([]models.LiveSession, error)
	GetLiveSession(id uint) (*models.LiveSession, error)
	CreateLiveSession(session *models.LiveSession) error

	// Chat
	GetChatMessages() ([]models.ChatMessage, error)
	CreateChatMessage(message *models.ChatMessage) error

	// Compiler
	GetCompilerChallenges() ([]models.CompilerChallenge, error)
	GetCompilerChallenge(id uint) (*models.CompilerChallenge, error)
	// GetChallengeForQuiz returns the challenge linked to a quiz, or
	// ErrNotFound when the quiz has no follow-on challenge.
	GetChallengeForQuiz(quizID uint) (*models.CompilerChallenge, error)
	CreateCompilerChallenge(challenge *models.CompilerChallenge) error
	CreateCompilerSolution(solution *models.CompilerSolution) error
	GetCompilerSolutions(userID uint) ([]models.CompilerSolution, error)
}
