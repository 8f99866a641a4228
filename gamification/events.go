package gamification

// Event is a local, in-process notification emitted by a mutation and
// consumed synchronously by the badge evaluator. There is no queue and no
// cross-request ordering; each side effect is an independent best-effort
// write.
type Event interface {
	eventName() string
}

type EnrollmentCreated struct {
	UserID          uint
	CourseID        uint
	EnrollmentCount int // user's total enrollments after this one
}

type ProgressAdvanced struct {
	UserID       uint
	EnrollmentID uint
	Progress     int
	Completed    bool
}

type QuizGraded struct {
	UserID uint
	QuizID uint
	Score  int
	Total  int
}

type CompilerSolutionGraded struct {
	UserID      uint
	ChallengeID uint
	Passed      bool
	PassedCount int // user's total passed solutions after this one
}

func (EnrollmentCreated) eventName() string      { return "enrollment_created" }
func (ProgressAdvanced) eventName() string       { return "progress_advanced" }
func (QuizGraded) eventName() string             { return "quiz_graded" }
func (CompilerSolutionGraded) eventName() string { return "compiler_solution_graded" }
