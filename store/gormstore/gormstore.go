package gormstore

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"elevated/models"
	"elevated/store"
)

// GormStore is the durable store.Store implementation backed by GORM.
type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

// Users

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(user *models.User) error {
	if err := s.db.Where("LOWER(username) = LOWER(?)", user.Username).First(&models.User{}).Error; err == nil {
		return store.ErrConflict
	}
	return s.db.Create(user).Error
}

// AddUserXP issues an atomic increment so concurrent awards never lose
// updates to a read-modify-write race.
func (s *GormStore) AddUserXP(userID uint, delta int) (*models.User, error) {
	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("xp", gorm.Expr("xp + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.GetUser(userID)
}

// Courses

func (s *GormStore) GetCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (s *GormStore) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

// Enrollments

func (s *GormStore) GetEnrollments(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ?", userID).Preload("Course").Order("id asc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormStore) GetEnrollment(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return nil, translate(err)
	}
	return &enrollment, nil
}

func (s *GormStore) GetEnrollmentByID(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &enrollment, nil
}

func (s *GormStore) CreateEnrollment(enrollment *models.Enrollment) error {
	if err := s.db.Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
		First(&models.Enrollment{}).Error; err == nil {
		return store.ErrConflict
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now()
	}
	return s.db.Create(enrollment).Error
}

func (s *GormStore) UpdateEnrollmentProgress(id uint, progress int, completed bool, currentLesson int) (*models.Enrollment, error) {
	result := s.db.Model(&models.Enrollment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"progress":       progress,
			"completed":      completed,
			"current_lesson": currentLesson,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.GetEnrollmentByID(id)
}

// Quizzes

func (s *GormStore) GetQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := s.db.Order("id asc").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *GormStore) GetQuiz(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, id).Error; err != nil {
		return nil, translate(err)
	}
	return &quiz, nil
}

func (s *GormStore) CreateQuiz(quiz *models.Quiz) error {
	return s.db.Create(quiz).Error
}

func (s *GormStore) GetQuizQuestions(quizID uint) ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	if err := s.db.Where("quiz_id = ?", quizID).Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) CreateQuizQuestion(question *models.QuizQuestion) error {
	return s.db.Create(question).Error
}

func (s *GormStore) CreateQuizSubmission(submission *models.QuizSubmission) error {
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}
	return s.db.Create(submission).Error
}

func (s *GormStore) GetQuizSubmissions(userID uint) ([]models.QuizSubmission, error) {
	var submissions []models.QuizSubmission
	if err := s.db.Where("user_id = ?", userID).Preload("Quiz").Order("id asc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// Badges

func (s *GormStore) GetBadges() ([]models.Badge, error) {
	var badges []models.Badge
	if err := s.db.Order("id asc").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (s *GormStore) CreateBadge(badge *models.Badge) error {
	return s.db.Create(badge).Error
}

func (s *GormStore) GetUserBadges(userID uint) ([]models.UserBadge, error) {
	var userBadges []models.UserBadge
	if err := s.db.Where("user_id = ?", userID).Preload("Badge").Order("id asc").Find(&userBadges).Error; err != nil {
		return nil, err
	}
	return userBadges, nil
}

// AwardBadge does a lookup-before-insert; the unique index on
// (user_id, badge_id) backs it up under concurrent award calls.
func (s *GormStore) AwardBadge(userID, badgeID uint) (*models.UserBadge, error) {
	var existing models.UserBadge
	err := s.db.Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Preload("Badge").First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	userBadge := models.UserBadge{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: time.Now(),
	}
	if err := s.db.Create(&userBadge).Error; err != nil {
		return nil, err
	}
	s.db.Preload("Badge").First(&userBadge, userBadge.ID)
	return &userBadge, nil
}

// Certifications

func (s *GormStore) GetCertifications(userID uint) ([]models.Certification, error) {
	var certifications []models.Certification
	if err := s.db.Where("user_id = ?", userID).Preload("Course").Order("issue_date desc").Find(&certifications).Error; err != nil {
		return nil, err
	}
	return certifications, nil
}

func (s *GormStore) CreateCertification(certification *models.Certification) error {
	if certification.IssueDate.IsZero() {
		certification.IssueDate = time.Now()
	}
	return s.db.Create(certification).Error
}

// Live sessions

func (s *GormStore) GetLiveSessions() ([]models.LiveSession, error) {
	var sessions []models.LiveSession
	if err := s.db.Order("session_date asc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *GormStore) GetLiveSession(id uint) (*models.LiveSession, error) {
	var session models.LiveSession
	if err := s.db.First(&session, id).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (s *GormStore) CreateLiveSession(session *models.LiveSession) error {
	return s.db.Create(session).Error
}

// Chat

func (s *GormStore) GetChatMessages() ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.db.Order("sent_at asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *GormStore) CreateChatMessage(message *models.ChatMessage) error {
	if message.SentAt.IsZero() {
		message.SentAt = time.Now()
	}
	return s.db.Create(message).Error
}

// Compiler

func (s *GormStore) GetCompilerChallenges() ([]models.CompilerChallenge, error) {
	var challenges []models.CompilerChallenge
	if err := s.db.Order("id asc").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (s *GormStore) GetCompilerChallenge(id uint) (*models.CompilerChallenge, error) {
	var challenge models.CompilerChallenge
	if err := s.db.First(&challenge, id).Error; err != nil {
		return nil, translate(err)
	}
	return &challenge, nil
}

func (s *GormStore) GetChallengeForQuiz(quizID uint) (*models.CompilerChallenge, error) {
	var challenge models.CompilerChallenge
	if err := s.db.Where("quiz_id = ?", quizID).First(&challenge).Error; err != nil {
		return nil, translate(err)
	}
	return &challenge, nil
}

func (s *GormStore) CreateCompilerChallenge(challenge *models.CompilerChallenge) error {
	return s.db.Create(challenge).Error
}

func (s *GormStore) CreateCompilerSolution(solution *models.CompilerSolution) error {
	if solution.SubmittedAt.IsZero() {
		solution.SubmittedAt = time.Now()
	}
	return s.db.Create(solution).Error
}

func (s *GormStore) GetCompilerSolutions(userID uint) ([]models.CompilerSolution, error) {
	var solutions []models.CompilerSolution
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&solutions).Error; err != nil {
		return nil, err
	}
	return solutions, nil
}
