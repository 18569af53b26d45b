package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"studylink/internal/domain"
	"studylink/internal/repository/models"
	"studylink/internal/util"

	"github.com/jmoiron/sqlx"
)

// ProgressRepositoryImpl implements domain.ProgressRepository using
// PostgreSQL. Every mutation is a single INSERT ... ON CONFLICT statement
// that merges the new entry into the jsonb log server-side, so concurrent
// writers never clobber each other's entries.
type ProgressRepositoryImpl struct {
	db DBTX
}

// NewProgressRepository creates a new instance of ProgressRepositoryImpl.
func NewProgressRepository(db *sqlx.DB) domain.ProgressRepository {
	return &ProgressRepositoryImpl{db: db}
}

func (r *ProgressRepositoryImpl) CreateEmptyProgress(ctx context.Context, userID string) error {
	executor := GetExecutor(ctx, r.db)

	query := `
		INSERT INTO user_progress (user_id, test_results, completed_topics, viewed_lectures)
		VALUES ($1, CAST('[]' AS jsonb), CAST('[]' AS jsonb), CAST('[]' AS jsonb))
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := executor.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to create empty progress: %w", err)
	}
	return nil
}

func (r *ProgressRepositoryImpl) AppendTestResult(ctx context.Context, userID string, result domain.TestResult) error {
	executor := GetExecutor(ctx, r.db)

	entry, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode test result: %w", err)
	}

	query := `
		INSERT INTO user_progress (user_id, test_results, last_activity)
		VALUES (:user_id, jsonb_build_array(CAST(:entry AS jsonb)), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			test_results = COALESCE(user_progress.test_results, CAST('[]' AS jsonb)) || EXCLUDED.test_results,
			last_activity = NOW()`

	_, err = executor.NamedExecContext(ctx, query, map[string]interface{}{
		"user_id": userID,
		"entry":   string(entry),
	})
	if err != nil {
		return fmt.Errorf("failed to append test result: %w", err)
	}
	return nil
}

func (r *ProgressRepositoryImpl) AddCompletedTopic(ctx context.Context, userID string, topic string) error {
	executor := GetExecutor(ctx, r.db)

	entry, err := json.Marshal(topic)
	if err != nil {
		return fmt.Errorf("failed to encode topic: %w", err)
	}

	// The @> guard keeps the topic log a set: re-completing a topic leaves
	// the log unchanged but still bumps last_activity.
	query := `
		INSERT INTO user_progress (user_id, completed_topics, last_activity)
		VALUES (:user_id, jsonb_build_array(CAST(:entry AS jsonb)), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			completed_topics = CASE
				WHEN COALESCE(user_progress.completed_topics, CAST('[]' AS jsonb)) @> EXCLUDED.completed_topics
					THEN COALESCE(user_progress.completed_topics, CAST('[]' AS jsonb))
				ELSE COALESCE(user_progress.completed_topics, CAST('[]' AS jsonb)) || EXCLUDED.completed_topics
			END,
			last_activity = NOW()`

	_, err = executor.NamedExecContext(ctx, query, map[string]interface{}{
		"user_id": userID,
		"entry":   string(entry),
	})
	if err != nil {
		return fmt.Errorf("failed to add completed topic: %w", err)
	}
	return nil
}

func (r *ProgressRepositoryImpl) UpsertViewedLecture(ctx context.Context, userID string, lecture domain.ViewedLecture) error {
	executor := GetExecutor(ctx, r.db)

	entry, err := json.Marshal(lecture)
	if err != nil {
		return fmt.Errorf("failed to encode viewed lecture: %w", err)
	}

	// Rewatching a lecture replaces its entry in place of appending a
	// duplicate: the merge filters out any element with the same title
	// before concatenating the fresh one.
	query := `
		INSERT INTO user_progress (user_id, viewed_lectures, last_activity)
		VALUES (:user_id, jsonb_build_array(CAST(:entry AS jsonb)), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			viewed_lectures = (
				SELECT COALESCE(jsonb_agg(e), CAST('[]' AS jsonb))
				FROM jsonb_array_elements(COALESCE(user_progress.viewed_lectures, CAST('[]' AS jsonb))) AS e
				WHERE e->>'title' <> :title
			) || EXCLUDED.viewed_lectures,
			last_activity = NOW()`

	_, err = executor.NamedExecContext(ctx, query, map[string]interface{}{
		"user_id": userID,
		"entry":   string(entry),
		"title":   lecture.Title,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert viewed lecture: %w", err)
	}
	return nil
}

func (r *ProgressRepositoryImpl) GetProgressByUserID(ctx context.Context, userID string) (*domain.UserProgress, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.UserProgress
	query := `
		SELECT user_id, test_results, completed_topics, viewed_lectures, last_activity
		FROM user_progress
		WHERE user_id = $1`
	if err := executor.GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A user without a progress row has empty logs.
			return &domain.UserProgress{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return toDomainProgress(&m), nil
}

func toDomainProgress(m *models.UserProgress) *domain.UserProgress {
	return &domain.UserProgress{
		UserID:          m.UserID,
		TestResults:     m.TestResults,
		CompletedTopics: m.CompletedTopics,
		ViewedLectures:  m.ViewedLectures,
		LastActivity:    util.NullTimeToPtr(m.LastActivity),
	}
}
