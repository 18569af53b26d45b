package domain

import (
	"context"
	"time"
)

// TestResult is one entry of the per-user test log.
type TestResult struct {
	Topic          string    `json:"topic"`
	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	Date           time.Time `json:"date"`
}

// ViewedLecture is one entry of the per-user lecture log, keyed by title.
type ViewedLecture struct {
	Title    string    `json:"title"`
	Duration string    `json:"duration"`
	ViewedAt time.Time `json:"viewed_at"`
}

// UserProgress aggregates the append-only learning logs of one user.
// Absent logs behave as empty collections.
type UserProgress struct {
	UserID          string
	TestResults     []TestResult
	CompletedTopics []string
	ViewedLectures  []ViewedLecture
	LastActivity    *time.Time
}

// TestsCompleted returns the number of recorded test attempts.
func (p *UserProgress) TestsCompleted() int {
	return len(p.TestResults)
}

// AverageScore returns the mean score across all attempts, 0 when there
// are none.
func (p *UserProgress) AverageScore() float64 {
	if len(p.TestResults) == 0 {
		return 0
	}
	var sum float64
	for _, r := range p.TestResults {
		sum += r.Score
	}
	return sum / float64(len(p.TestResults))
}

// ProgressRepository defines the interface for progress log persistence.
// All mutations are atomic server-side merges; callers never read, modify
// and write a log back.
type ProgressRepository interface {
	CreateEmptyProgress(ctx context.Context, userID string) error
	AppendTestResult(ctx context.Context, userID string, result TestResult) error
	AddCompletedTopic(ctx context.Context, userID string, topic string) error
	UpsertViewedLecture(ctx context.Context, userID string, lecture ViewedLecture) error
	GetProgressByUserID(ctx context.Context, userID string) (*UserProgress, error)
}
