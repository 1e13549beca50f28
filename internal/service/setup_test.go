package service

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.Review{},
		&model.TrustedReviewer{},
		&model.RoleRequest{},
		&model.ReviewerScorecard{},
		&model.AdminRequest{},
		&model.StaffDiscussion{},
		&model.StaffEscalation{},
		&model.ModerationRecord{},
	)
	if err != nil {
		t.Fatal(err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username, roles string) *model.User {
	t.Helper()

	user := &model.User{
		Username: username,
		Password: "hashed",
		Name:     "User " + username,
		Email:    username + "@example.com",
		Roles:    roles,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

func newQuestionService(db *gorm.DB) *QuestionService {
	return NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewReviewRepository(db),
		nil,
	)
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(repository.NewReviewRepository(db))
}

func newTrustService(db *gorm.DB) *TrustService {
	return NewTrustService(repository.NewTrustedReviewerRepository(db), repository.NewUserRepository(db))
}

func newScorecardService(db *gorm.DB) *ScorecardService {
	return NewScorecardService(repository.NewScorecardRepository(db))
}

func newRoleRequestService(db *gorm.DB) *RoleRequestService {
	return NewRoleRequestService(repository.NewRoleRequestRepository(db), repository.NewUserRepository(db))
}

func newAdminRequestService(db *gorm.DB) *AdminRequestService {
	return NewAdminRequestService(repository.NewAdminRequestRepository(db))
}

func newStaffService(db *gorm.DB) *StaffService {
	return NewStaffService(repository.NewStaffRepository(db), repository.NewUserRepository(db))
}
