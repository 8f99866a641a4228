package memstore

import (
	"sort"
	"strings"
	"sync"
	"time"

	"elevated/models"
	"elevated/store"
)

// MemStore is a mutex-guarded, map-backed implementation of store.Store.
// It mirrors the relational store closely enough that the engine tests run
// against it unchanged.
type MemStore struct {
	mu sync.Mutex

	users          map[uint]models.User
	courses        map[uint]models.Course
	enrollments    map[uint]models.Enrollment
	quizzes        map[uint]models.Quiz
	questions      map[uint]models.QuizQuestion
	submissions    map[uint]models.QuizSubmission
	badges         map[uint]models.Badge
	userBadges     map[uint]models.UserBadge
	certifications map[uint]models.Certification
	sessions       map[uint]models.LiveSession
	messages       map[uint]models.ChatMessage
	challenges     map[uint]models.CompilerChallenge
	solutions      map[uint]models.CompilerSolution

	nextID map[string]uint
}

func New() *MemStore {
	return &MemStore{
		users:          make(map[uint]models.User),
		courses:        make(map[uint]models.Course),
		enrollments:    make(map[uint]models.Enrollment),
		quizzes:        make(map[uint]models.Quiz),
		questions:      make(map[uint]models.QuizQuestion),
		submissions:    make(map[uint]models.QuizSubmission),
		badges:         make(map[uint]models.Badge),
		userBadges:     make(map[uint]models.UserBadge),
		certifications: make(map[uint]models.Certification),
		sessions:       make(map[uint]models.LiveSession),
		messages:       make(map[uint]models.ChatMessage),
		challenges:     make(map[uint]models.CompilerChallenge),
		solutions:      make(map[uint]models.CompilerSolution),
		nextID:         make(map[string]uint),
	}
}

func (m *MemStore) allocID(table string) uint {
	m.nextID[table]++
	return m.nextID[table]
}

// Users

func (m *MemStore) GetUser(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (m *MemStore) GetUserByUsername(username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemStore) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return store.ErrConflict
		}
	}
	user.ID = m.allocID("users")
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *MemStore) AddUserXP(userID uint, delta int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	user.XP += delta
	m.users[userID] = user
	return &user, nil
}

// Courses

func (m *MemStore) GetCourses() ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	courses := make([]models.Course, 0, len(m.courses))
	for _, course := range m.courses {
		courses = append(courses, course)
	}
	sortByID(courses, func(c models.Course) uint { return c.ID })
	return courses, nil
}

func (m *MemStore) GetCourse(id uint) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	course, ok := m.courses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &course, nil
}

func (m *MemStore) CreateCourse(course *models.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	course.ID = m.allocID("courses")
	course.CreatedAt = time.Now()
	m.courses[course.ID] = *course
	return nil
}

// Enrollments

func (m *MemStore) GetEnrollments(userID uint) ([]models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var enrollments []models.Enrollment
	for _, enrollment := range m.enrollments {
		if enrollment.UserID == userID {
			enrollment.Course = m.courses[enrollment.CourseID]
			enrollments = append(enrollments, enrollment)
		}
	}
	sortByID(enrollments, func(e models.Enrollment) uint { return e.ID })
	return enrollments, nil
}

func (m *MemStore) GetEnrollment(userID, courseID uint) (*models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, enrollment := range m.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			e := enrollment
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemStore) GetEnrollmentByID(id uint) (*models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	enrollment, ok := m.enrollments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &enrollment, nil
}

func (m *MemStore) CreateEnrollment(enrollment *models.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return store.ErrConflict
		}
	}
	enrollment.ID = m.allocID("enrollments")
	enrollment.EnrolledAt = time.Now()
	enrollment.CreatedAt = enrollment.EnrolledAt
	m.enrollments[enrollment.ID] = *enrollment
	return nil
}

func (m *MemStore) UpdateEnrollmentProgress(id uint, progress int, completed bool, currentLesson int) (*models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	enrollment, ok := m.enrollments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	enrollment.Progress = progress
	enrollment.Completed = completed
	enrollment.CurrentLesson = currentLesson
	m.enrollments[id] = enrollment
	return &enrollment, nil
}

// Quizzes

func (m *MemStore) GetQuizzes() ([]models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	quizzes := make([]models.Quiz, 0, len(m.quizzes))
	for _, quiz := range m.quizzes {
		quizzes = append(quizzes, quiz)
	}
	sortByID(quizzes, func(q models.Quiz) uint { return q.ID })
	return quizzes, nil
}

func (m *MemStore) GetQuiz(id uint) (*models.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	quiz, ok := m.quizzes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &quiz, nil
}

func (m *MemStore) CreateQuiz(quiz *models.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	quiz.ID = m.allocID("quizzes")
	quiz.CreatedAt = time.Now()
	m.quizzes[quiz.ID] = *quiz
	return nil
}

func (m *MemStore) GetQuizQuestions(quizID uint) ([]models.QuizQuestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var questions []models.QuizQuestion
	for _, question := range m.questions {
		if question.QuizID == quizID {
			questions = append(questions, question)
		}
	}
	sortByID(questions, func(q models.QuizQuestion) uint { return q.ID })
	return questions, nil
}

func (m *MemStore) CreateQuizQuestion(question *models.QuizQuestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	question.ID = m.allocID("quiz_questions")
	m.questions[question.ID] = *question
	return nil
}

func (m *MemStore) CreateQuizSubmission(submission *models.QuizSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	submission.ID = m.allocID("quiz_submissions")
	submission.SubmittedAt = time.Now()
	m.submissions[submission.ID] = *submission
	return nil
}

func (m *MemStore) GetQuizSubmissions(userID uint) ([]models.QuizSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var submissions []models.QuizSubmission
	for _, submission := range m.submissions {
		if submission.UserID == userID {
			submission.Quiz = m.quizzes[submission.QuizID]
			submissions = append(submissions, submission)
		}
	}
	sortByID(submissions, func(s models.QuizSubmission) uint { return s.ID })
	return submissions, nil
}

// Badges

func (m *MemStore) GetBadges() ([]models.Badge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	badges := make([]models.Badge, 0, len(m.badges))
	for _, badge := range m.badges {
		badges = append(badges, badge)
	}
	sortByID(badges, func(b models.Badge) uint { return b.ID })
	return badges, nil
}

func (m *MemStore) CreateBadge(badge *models.Badge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	badge.ID = m.allocID("badges")
	m.badges[badge.ID] = *badge
	return nil
}

func (m *MemStore) GetUserBadges(userID uint) ([]models.UserBadge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var userBadges []models.UserBadge
	for _, userBadge := range m.userBadges {
		if userBadge.UserID == userID {
			userBadge.Badge = m.badges[userBadge.BadgeID]
			userBadges = append(userBadges, userBadge)
		}
	}
	sortByID(userBadges, func(ub models.UserBadge) uint { return ub.ID })
	return userBadges, nil
}

func (m *MemStore) AwardBadge(userID, badgeID uint) (*models.UserBadge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.userBadges {
		if existing.UserID == userID && existing.BadgeID == badgeID {
			existing.Badge = m.badges[existing.BadgeID]
			ub := existing
			return &ub, nil
		}
	}
	userBadge := models.UserBadge{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: time.Now(),
	}
	userBadge.ID = m.allocID("user_badges")
	m.userBadges[userBadge.ID] = userBadge
	userBadge.Badge = m.badges[badgeID]
	return &userBadge, nil
}

// Certifications

func (m *MemStore) GetCertifications(userID uint) ([]models.Certification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var certifications []models.Certification
	for _, certification := range m.certifications {
		if certification.UserID == userID {
			certification.Course = m.courses[certification.CourseID]
			certifications = append(certifications, certification)
		}
	}
	sortByID(certifications, func(c models.Certification) uint { return c.ID })
	return certifications, nil
}

func (m *MemStore) CreateCertification(certification *models.Certification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	certification.ID = m.allocID("certifications")
	if certification.IssueDate.IsZero() {
		certification.IssueDate = time.Now()
	}
	m.certifications[certification.ID] = *certification
	return nil
}

// Live sessions

func (m *MemStore) GetLiveSessions() ([]models.LiveSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sessions := make([]models.LiveSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	sortByID(sessions, func(s models.LiveSession) uint { return s.ID })
	return sessions, nil
}

func (m *MemStore) GetLiveSession(id uint) (*models.LiveSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &session, nil
}

func (m *MemStore) CreateLiveSession(session *models.LiveSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session.ID = m.allocID("live_sessions")
	m.sessions[session.ID] = *session
	return nil
}

// Chat

func (m *MemStore) GetChatMessages() ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	messages := make([]models.ChatMessage, 0, len(m.messages))
	for _, message := range m.messages {
		messages = append(messages, message)
	}
	sortByID(messages, func(msg models.ChatMessage) uint { return msg.ID })
	return messages, nil
}

func (m *MemStore) CreateChatMessage(message *models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	message.ID = m.allocID("chat_messages")
	message.SentAt = time.Now()
	m.messages[message.ID] = *message
	return nil
}

// Compiler

func (m *MemStore) GetCompilerChallenges() ([]models.CompilerChallenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	challenges := make([]models.CompilerChallenge, 0, len(m.challenges))
	for _, challenge := range m.challenges {
		challenges = append(challenges, challenge)
	}
	sortByID(challenges, func(ch models.CompilerChallenge) uint { return ch.ID })
	return challenges, nil
}

func (m *MemStore) GetCompilerChallenge(id uint) (*models.CompilerChallenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	challenge, ok := m.challenges[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &challenge, nil
}

func (m *MemStore) GetChallengeForQuiz(quizID uint) (*models.CompilerChallenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, challenge := range m.challenges {
		if challenge.QuizID != nil && *challenge.QuizID == quizID {
			ch := challenge
			return &ch, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemStore) CreateCompilerChallenge(challenge *models.CompilerChallenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	challenge.ID = m.allocID("compiler_challenges")
	m.challenges[challenge.ID] = *challenge
	return nil
}

func (m *MemStore) CreateCompilerSolution(solution *models.CompilerSolution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	solution.ID = m.allocID("compiler_solutions")
	solution.SubmittedAt = time.Now()
	m.solutions[solution.ID] = *solution
	return nil
}

func (m *MemStore) GetCompilerSolutions(userID uint) ([]models.CompilerSolution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var solutions []models.CompilerSolution
	for _, solution := range m.solutions {
		if solution.UserID == userID {
			solutions = append(solutions, solution)
		}
	}
	sortByID(solutions, func(s models.CompilerSolution) uint { return s.ID })
	return solutions, nil
}

// sortByID keeps map iteration from leaking into response ordering.
func sortByID[T any](items []T, id func(T) uint) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
