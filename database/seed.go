package database

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"elevated/config"
	"elevated/models"
)

// SeedData fills empty tables with the default catalog. Each table is
// seeded independently so a partially populated database is topped up
// rather than duplicated.
func SeedData() {
	db := Database.Db

	seedUsers(db)
	seedBadges(db)
	seedCourses(db)
	seedQuizzes(db)
	seedCompilerChallenges(db)
	seedLiveSessions(db)
	seedChatMessages(db)

	log.Println("Database seeding completed.")
}

func tableEmpty(db *gorm.DB, model interface{}) bool {
	var count int64
	db.Model(model).Count(&count)
	return count == 0
}

func seedUsers(db *gorm.DB) {
	if !tableEmpty(db, &models.User{}) {
		return
	}
	log.Println("Seeding default users...")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing seed password: %v", err)
		return
	}

	users := []models.User{
		{
			Username:  "Madhavan",
			Password:  string(hashed),
			Email:     "madhavan@example.com",
			AvatarURL: "https://images.unsplash.com/photo-1599566150163-29194dcaad36",
			XP:        120,
		},
		{
			Username:  "Elevated",
			Password:  string(hashed),
			Email:     "elevated@example.com",
			AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e",
			XP:        450,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Printf("Error seeding users: %v", err)
	}
}

func seedBadges(db *gorm.DB) {
	if !tableEmpty(db, &models.Badge{}) {
		return
	}
	log.Println("Seeding badges...")

	badges := []models.Badge{
		{
			Name:        "First Steps",
			Description: "Logged in for the first time",
			IconURL:     "https://cdn-icons-png.flaticon.com/512/3112/3112946.png",
			Requirement: "login:1",
		},
		{
			Name:        "Course Explorer",
			Description: "Enrolled in your first course",
			IconURL:     "https://cdn-icons-png.flaticon.com/512/2072/2072130.png",
			Requirement: "enroll:1",
		},
		{
			Name:        "Lesson Devourer",
			Description: "Completed 5 lessons",
			IconURL:     "https://cdn-icons-png.flaticon.com/512/1378/1378640.png",
			Requirement: "lessons:5",
		},
		{
			Name:        "Quiz Master",
			Description: "Scored 100% on a quiz",
			IconURL:     "https://cdn-icons-png.flaticon.com/512/3227/3227076.png",
			Requirement: "quiz:perfect",
		},
		{
			Name:        "Code Ninja",
			Description: "Completed 3 coding challenges",
			IconURL:     "https://cdn-icons-png.flaticon.com/512/6614/6614677.png",
			Requirement: "compiler:3",
		},
		{
			Name:        "Front Row",
			Description: "Attended your first live session",
			IconURL:     "https://cdn-icons-png.flaticon.com/512/1161/1161388.png",
			Requirement: "livesession:1",
		},
		{
			Name:        "JavaScript Graduate",
			Description: "Completed the Complete JavaScript course",
			IconURL:     "https://cdn-icons-png.flaticon.com/512/5968/5968292.png",
			Requirement: "course:1:complete",
		},
	}
	if err := db.Create(&badges).Error; err != nil {
		log.Printf("Error seeding badges: %v", err)
	}
}

func seedCourses(db *gorm.DB) {
	if !tableEmpty(db, &models.Course{}) {
		return
	}
	log.Println("Seeding courses...")

	courses := []models.Course{
		{
			Title:        "Complete JavaScript Basics to Advanced",
			Description:  "Learn JavaScript from scratch and progress to advanced concepts like closures, promises, and async/await.",
			Category:     "Programming",
			ThumbnailURL: "https://images.unsplash.com/photo-1627398242454-45a1465c2479",
			Rating:       48,
			LessonsCount: 48,
			XPReward:     150,
		},
		{
			Title:        "React Framework Masterclass",
			Description:  "Become a React expert with this comprehensive guide to building modern web applications with React.",
			Category:     "Web Development",
			ThumbnailURL: "https://images.unsplash.com/photo-1633356122544-f134324a6cee",
			Rating:       49,
			LessonsCount: 36,
			XPReward:     200,
		},
		{
			Title:        "Node.js Back-End Development",
			Description:  "Build scalable back-end applications with Node.js, Express, and MongoDB.",
			Category:     "Backend",
			ThumbnailURL: "https://images.unsplash.com/photo-1616763355548-1b606f439f86",
			Rating:       47,
			LessonsCount: 42,
			XPReward:     180,
		},
		{
			Title:        "Python for Data Science",
			Description:  "Master data analysis, visualization and machine learning with Python, NumPy, Pandas and Scikit-learn.",
			Category:     "Data Science",
			ThumbnailURL: "https://images.unsplash.com/photo-1526379095098-d400fd0bf935",
			Rating:       49,
			LessonsCount: 56,
			XPReward:     220,
		},
		{
			Title:        "Mobile App Development with React Native",
			Description:  "Create cross-platform mobile applications for iOS and Android using your React knowledge.",
			Category:     "Mobile Development",
			ThumbnailURL: "https://images.unsplash.com/photo-1581276879432-15e50529f34b",
			Rating:       46,
			LessonsCount: 38,
			XPReward:     190,
		},
		{
			Title:        "Modern CSS and SASS",
			Description:  "Level up your styling skills with modern CSS techniques, Flexbox, Grid, and SASS preprocessing.",
			Category:     "Web Development",
			ThumbnailURL: "https://images.unsplash.com/photo-1507721999472-8ed4421c4af2",
			Rating:       47,
			LessonsCount: 32,
			XPReward:     140,
		},
		{
			Title:        "Docker and Kubernetes for Deployment",
			Description:  "Learn to containerize your applications and orchestrate them for production environments.",
			Category:     "DevOps",
			ThumbnailURL: "https://images.unsplash.com/photo-1605745341489-5b14b6db7ecf",
			Rating:       48,
			LessonsCount: 28,
			XPReward:     170,
		},
		{
			Title:        "Cybersecurity for Developers",
			Description:  "Learn to identify and fix common security vulnerabilities in web applications.",
			Category:     "Security",
			ThumbnailURL: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b",
			Rating:       48,
			LessonsCount: 32,
			XPReward:     180,
		},
	}
	if err := db.Create(&courses).Error; err != nil {
		log.Printf("Error seeding courses: %v", err)
	}
}

func uintPtr(id uint) *uint { return &id }

func seedQuizzes(db *gorm.DB) {
	if !tableEmpty(db, &models.Quiz{}) {
		return
	}
	log.Println("Seeding quizzes...")

	quizzes := []models.Quiz{
		{
			Title:           "JavaScript Fundamentals",
			Description:     "Test your knowledge of JavaScript basics including variables, functions, and control flow.",
			XPReward:        25,
			CourseID:        uintPtr(1),
			DifficultyLevel: "Beginner",
		},
		{
			Title:           "Advanced JavaScript Concepts",
			Description:     "Test your understanding of closures, prototypes, and asynchronous JavaScript.",
			XPReward:        40,
			CourseID:        uintPtr(1),
			DifficultyLevel: "Advanced",
		},
		{
			Title:           "React Components and Props",
			Description:     "Quiz covering React component architecture and the proper use of props.",
			XPReward:        30,
			CourseID:        uintPtr(2),
			DifficultyLevel: "Intermediate",
		},
		{
			Title:           "React State Management",
			Description:     "Test your knowledge of state management in React using hooks and context.",
			XPReward:        35,
			CourseID:        uintPtr(2),
			DifficultyLevel: "Intermediate",
		},
		{
			Title:           "Node.js Basics",
			Description:     "Fundamental concepts of Node.js including modules, npm, and the event loop.",
			XPReward:        25,
			CourseID:        uintPtr(3),
			DifficultyLevel: "Beginner",
		},
		{
			Title:           "Express.js Middleware and Routing",
			Description:     "Quiz on Express.js middleware concepts and route configuration.",
			XPReward:        30,
			CourseID:        uintPtr(3),
			DifficultyLevel: "Intermediate",
		},
		{
			Title:           "Python Syntax and Data Structures",
			Description:     "Test your knowledge of Python syntax, lists, dictionaries, and other data structures.",
			XPReward:        25,
			CourseID:        uintPtr(4),
			DifficultyLevel: "Beginner",
		},
		{
			Title:           "CSS Flexbox and Grid",
			Description:     "Quiz covering modern CSS layout techniques using Flexbox and Grid.",
			XPReward:        25,
			CourseID:        uintPtr(6),
			DifficultyLevel: "Beginner",
		},
	}
	if err := db.Create(&quizzes).Error; err != nil {
		log.Printf("Error seeding quizzes: %v", err)
		return
	}

	// Every quiz gets a 20-question bank: handwritten questions where we
	// have them, generated filler questions for the rest.
	handwritten := map[uint][]models.QuizQuestion{
		quizzes[0].ID: javascriptFundamentalsQuestions(quizzes[0].ID),
		quizzes[7].ID: cssFlexboxQuestions(quizzes[7].ID),
	}
	var questions []models.QuizQuestion
	for _, quiz := range quizzes {
		bank := handwritten[quiz.ID]
		bank = append(bank, generatedQuestions(quiz.ID, len(bank)+1, questionsPerQuiz-len(bank))...)
		questions = append(questions, bank...)
	}
	if err := db.Create(&questions).Error; err != nil {
		log.Printf("Error seeding quiz questions: %v", err)
	}
}

const questionsPerQuiz = 20

// generatedQuestions produces numbered placeholder questions with "A" as
// the correct option, continuing the numbering from any handwritten bank.
func generatedQuestions(quizID uint, start, count int) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		n := start + i
		questions = append(questions, models.QuizQuestion{
			QuizID:        quizID,
			Question:      fmt.Sprintf("Sample Question %d for Quiz %d", n, quizID),
			OptionA:       fmt.Sprintf("Option A for Question %d", n),
			OptionB:       fmt.Sprintf("Option B for Question %d", n),
			OptionC:       fmt.Sprintf("Option C for Question %d", n),
			OptionD:       fmt.Sprintf("Option D for Question %d", n),
			CorrectOption: "A",
		})
	}
	return questions
}

func javascriptFundamentalsQuestions(quizID uint) []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			QuizID:   quizID,
			Question: "What is the correct way to declare a variable that cannot be reassigned?",
			OptionA:  "var x = 10;", OptionB: "let x = 10;", OptionC: "const x = 10;", OptionD: "final x = 10;",
			CorrectOption: "C",
		},
		{
			QuizID:   quizID,
			Question: "Which operator is used for strict equality comparison in JavaScript?",
			OptionA:  "==", OptionB: "===", OptionC: "=", OptionD: "<==>",
			CorrectOption: "B",
		},
		{
			QuizID:   quizID,
			Question: "What does the 'typeof' operator return for an array?",
			OptionA:  "'array'", OptionB: "'object'", OptionC: "'list'", OptionD: "'collection'",
			CorrectOption: "B",
		},
		{
			QuizID:   quizID,
			Question: "Which method is used to add an element to the end of an array?",
			OptionA:  "push()", OptionB: "add()", OptionC: "append()", OptionD: "insert()",
			CorrectOption: "A",
		},
		{
			QuizID:   quizID,
			Question: "How do you access the first element of an array named 'myArray'?",
			OptionA:  "myArray.first", OptionB: "myArray[0]", OptionC: "myArray[1]", OptionD: "myArray.get(0)",
			CorrectOption: "B",
		},
		{
			QuizID:   quizID,
			Question: "What is the result of '2' + 2 in JavaScript?",
			OptionA:  "22", OptionB: "4", OptionC: "'22'", OptionD: "'4'",
			CorrectOption: "C",
		},
		{
			QuizID:   quizID,
			Question: "Which loop is guaranteed to execute at least once?",
			OptionA:  "for loop", OptionB: "while loop", OptionC: "do...while loop", OptionD: "forEach loop",
			CorrectOption: "C",
		},
		{
			QuizID:   quizID,
			Question: "What is the purpose of the 'use strict' directive in JavaScript?",
			OptionA:  "It enforces stricter parsing and error handling", OptionB: "It enables new JavaScript features",
			OptionC: "It optimizes code performance", OptionD: "It prevents automatic type conversion",
			CorrectOption: "A",
		},
	}
}

func cssFlexboxQuestions(quizID uint) []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			QuizID:   quizID,
			Question: "What CSS property makes an element a flex container?",
			OptionA:  "display: flex", OptionB: "position: flex", OptionC: "flex: 1", OptionD: "float: flex",
			CorrectOption: "A",
		},
		{
			QuizID:   quizID,
			Question: "Which property aligns flex items along the main axis?",
			OptionA:  "justify-content", OptionB: "align-items", OptionC: "flex-direction", OptionD: "flex-wrap",
			CorrectOption: "A",
		},
		{
			QuizID:   quizID,
			Question: "Which property aligns flex items along the cross axis?",
			OptionA:  "justify-content", OptionB: "align-items", OptionC: "flex-flow", OptionD: "align-self",
			CorrectOption: "B",
		},
		{
			QuizID:   quizID,
			Question: "What is the default value of 'flex-direction'?",
			OptionA:  "row", OptionB: "column", OptionC: "row-reverse", OptionD: "wrap",
			CorrectOption: "A",
		},
		{
			QuizID:   quizID,
			Question: "What CSS property makes an element a grid container?",
			OptionA:  "display: grid", OptionB: "position: grid", OptionC: "grid: 1", OptionD: "layout: grid",
			CorrectOption: "A",
		},
		{
			QuizID:   quizID,
			Question: "How do you define columns in a CSS Grid?",
			OptionA:  "grid-rows", OptionB: "grid-template-columns", OptionC: "column-template", OptionD: "grid-columns",
			CorrectOption: "B",
		},
		{
			QuizID:   quizID,
			Question: "What is the purpose of 'grid-gap'?",
			OptionA:  "To set the width of grid columns", OptionB: "To set the space between grid items",
			OptionC: "To overlap grid items", OptionD: "To create responsive grids",
			CorrectOption: "B",
		},
		{
			QuizID:   quizID,
			Question: "What does 'fr' stand for in CSS Grid?",
			OptionA:  "fraction", OptionB: "fragment", OptionC: "frequency", OptionD: "free space",
			CorrectOption: "A",
		},
	}
}

func seedCompilerChallenges(db *gorm.DB) {
	if !tableEmpty(db, &models.CompilerChallenge{}) {
		return
	}
	log.Println("Seeding compiler challenges...")

	challenges := []models.CompilerChallenge{
		{
			Title:          "Hello World",
			Description:    "Write a function that returns the string 'Hello, World!'",
			QuizID:         uintPtr(1),
			Instructions:   "Create a function called 'helloWorld' that returns the string 'Hello, World!'",
			StartingCode:   "function helloWorld() {\n  // Your code here\n}\n\n// Don't modify below this line\nconsole.log(helloWorld());",
			ExpectedOutput: "Hello, World!",
			Difficulty:     "Beginner",
			Language:       "javascript",
		},
		{
			Title:          "Sum of Two Numbers",
			Description:    "Write a function that returns the sum of two numbers",
			QuizID:         uintPtr(2),
			Instructions:   "Create a function called 'sum' that takes two parameters and returns their sum",
			StartingCode:   "function sum(a, b) {\n  // Your code here\n}\n\n// Don't modify below this line\nconsole.log(sum(5, 3));",
			ExpectedOutput: "8",
			Difficulty:     "Beginner",
			Language:       "javascript",
		},
		{
			Title:          "Reverse a String",
			Description:    "Write a function that reverses a string",
			QuizID:         uintPtr(3),
			Instructions:   "Create a function called 'reverseString' that takes a string and returns it reversed",
			StartingCode:   "function reverseString(str) {\n  // Your code here\n}\n\n// Don't modify below this line\nconsole.log(reverseString('hello'));",
			ExpectedOutput: "olleh",
			Difficulty:     "Beginner",
			Language:       "javascript",
		},
		{
			Title:          "FizzBuzz",
			Description:    "Implement the classic FizzBuzz problem",
			QuizID:         uintPtr(5),
			Instructions:   "Create a function called 'fizzBuzz' that takes a number and returns 'Fizz' if the number is divisible by 3, 'Buzz' if divisible by 5, 'FizzBuzz' if divisible by both, or the number itself otherwise",
			StartingCode:   "function fizzBuzz(num) {\n  // Your code here\n}\n\n// Don't modify below this line\nconsole.log(fizzBuzz(15));",
			ExpectedOutput: "FizzBuzz",
			Difficulty:     "Intermediate",
			Language:       "javascript",
		},
	}
	if err := db.Create(&challenges).Error; err != nil {
		log.Printf("Error seeding compiler challenges: %v", err)
	}
}

func seedLiveSessions(db *gorm.DB) {
	if !tableEmpty(db, &models.LiveSession{}) {
		return
	}
	log.Println("Seeding live sessions...")

	now := time.Now()
	sessions := []models.LiveSession{
		{
			Title:           "JavaScript ES6+ Features Deep Dive",
			Description:     "Explore the modern features of JavaScript ES6 and beyond that make coding more efficient.",
			InstructorName:  "Elevated",
			Duration:        60,
			SessionDate:     now.AddDate(0, 0, 1),
			MeetingID:       "123456789",
			MeetingPassword: "123456",
		},
		{
			Title:           "React Hooks Workshop",
			Description:     "Hands-on workshop about React Hooks and how to refactor class components to functional components.",
			InstructorName:  "Madhavan",
			Duration:        90,
			SessionDate:     now.AddDate(0, 0, 2),
			MeetingID:       "987654321",
			MeetingPassword: "654321",
		},
		{
			Title:           "Database Design and Optimization",
			Description:     "Best practices for designing efficient database schemas and optimizing queries for performance.",
			InstructorName:  "Madhavan",
			Duration:        120,
			SessionDate:     now.AddDate(0, 0, 4),
			MeetingID:       "432156789",
			MeetingPassword: "432156",
		},
	}
	if err := db.Create(&sessions).Error; err != nil {
		log.Printf("Error seeding live sessions: %v", err)
	}
}

func seedChatMessages(db *gorm.DB) {
	if !tableEmpty(db, &models.ChatMessage{}) {
		return
	}
	log.Println("Seeding chat messages...")

	messages := []models.ChatMessage{
		{UserID: 2, Username: "Elevated", Message: "Welcome to the community chat! Ask anything about your courses here.", SentAt: time.Now()},
		{UserID: 1, Username: "Madhavan", Message: "Thanks! Just enrolled in the JavaScript course.", SentAt: time.Now()},
	}
	if err := db.Create(&messages).Error; err != nil {
		log.Printf("Error seeding chat messages: %v", err)
	}
}
