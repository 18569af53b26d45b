package service

import (
	"context"
	"time"

	"studylink/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserRole(ctx context.Context, userID string) (domain.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Role), args.Error(1)
}

// --- MockProgressRepository ---
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) CreateEmptyProgress(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProgressRepository) AppendTestResult(ctx context.Context, userID string, result domain.TestResult) error {
	args := m.Called(ctx, userID, result)
	return args.Error(0)
}

func (m *MockProgressRepository) AddCompletedTopic(ctx context.Context, userID string, topic string) error {
	args := m.Called(ctx, userID, topic)
	return args.Error(0)
}

func (m *MockProgressRepository) UpsertViewedLecture(ctx context.Context, userID string, lecture domain.ViewedLecture) error {
	args := m.Called(ctx, userID, lecture)
	return args.Error(0)
}

func (m *MockProgressRepository) GetProgressByUserID(ctx context.Context, userID string) (*domain.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

// --- MockChatRepository ---
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) InsertMessage(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) GetThread(ctx context.Context, userID, otherUserID string) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, userID, otherUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) MarkThreadRead(ctx context.Context, receiverID, senderID string) error {
	args := m.Called(ctx, receiverID, senderID)
	return args.Error(0)
}

func (m *MockChatRepository) CountUnread(ctx context.Context, receiverID string) (int, error) {
	args := m.Called(ctx, receiverID)
	return args.Int(0), args.Error(1)
}

// --- MockMaterialRepository ---
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) InsertMaterial(ctx context.Context, material *domain.LearningMaterial) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) ListByTeacher(ctx context.Context, teacherID string) ([]domain.LearningMaterial, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LearningMaterial), args.Error(1)
}

func (m *MockMaterialRepository) ListForStudent(ctx context.Context, studentID string) ([]domain.LearningMaterial, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LearningMaterial), args.Error(1)
}

func (m *MockMaterialRepository) DeleteMaterial(ctx context.Context, materialID, teacherID string) (int64, error) {
	args := m.Called(ctx, materialID, teacherID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaterialRepository) GetMaterialOwner(ctx context.Context, materialID string) (string, error) {
	args := m.Called(ctx, materialID)
	return args.String(0), args.Error(1)
}

func (m *MockMaterialRepository) UpsertStatus(ctx context.Context, s *domain.MaterialStatus) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockMaterialRepository) ListStatusesByMaterial(ctx context.Context, materialID string) ([]domain.MaterialStatus, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialStatus), args.Error(1)
}

// --- MockEnrollmentRepository ---
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) AddStudent(ctx context.Context, teacherID, studentID string) error {
	args := m.Called(ctx, teacherID, studentID)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) ListTeachersForStudent(ctx context.Context, studentID string) ([]domain.Teacher, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Teacher), args.Error(1)
}

func (m *MockEnrollmentRepository) ListStudents(ctx context.Context) ([]domain.StudentDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentDetail), args.Error(1)
}

func (m *MockEnrollmentRepository) GetStudentDetail(ctx context.Context, studentID string) (*domain.StudentDetail, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentDetail), args.Error(1)
}

func (m *MockEnrollmentRepository) InsertTeacherMessage(ctx context.Context, msg *domain.TeacherMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockFileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

// --- MockTransactionManager ---
// WithTransaction simply runs fn; transactional behavior itself is the
// adapter's concern.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
