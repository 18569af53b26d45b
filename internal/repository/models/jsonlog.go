package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"studylink/internal/domain"
)

// The progress logs live in jsonb columns. These types make them scan and
// bind like ordinary struct fields; NULL reads as an empty collection.

// TestResultLog is the jsonb-backed test attempt log.
type TestResultLog []domain.TestResult

// Value implements the driver.Valuer interface
func (l TestResultLog) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (l *TestResultLog) Scan(value interface{}) error {
	return scanJSONLog(value, l)
}

// TopicList is the jsonb-backed completed-topics set.
type TopicList []string

// Value implements the driver.Valuer interface
func (l TopicList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (l *TopicList) Scan(value interface{}) error {
	return scanJSONLog(value, l)
}

// LectureLog is the jsonb-backed viewed-lectures log keyed by title.
type LectureLog []domain.ViewedLecture

// Value implements the driver.Valuer interface
func (l LectureLog) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (l *LectureLog) Scan(value interface{}) error {
	return scanJSONLog(value, l)
}

func scanJSONLog(value interface{}, dest interface{}) error {
	if value == nil {
		// DB NULL behaves as an empty collection.
		return json.Unmarshal([]byte("[]"), dest)
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for json log column: %T", value)
	}

	if len(data) == 0 {
		data = []byte("[]")
	}
	return json.Unmarshal(data, dest)
}
