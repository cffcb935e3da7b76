package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// CreateUser создает пользователя в транзакции, пароль хешируется
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User, rawPassword string) {
	t.Helper()

	hash, err := auth.HashPassword(rawPassword)
	if err != nil {
		t.Fatalf("Не удалось хешировать пароль: %v", err)
	}
	user.PasswordHash = hash

	if user.AccountStatus == "" {
		user.AccountStatus = models.AccountStatusActive
	}

	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", user.Username, err)
	}
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, role models.UserRole) (string, *models.User) {
	t.Helper()

	username := fmt.Sprintf("%s_%d", role, time.Now().UnixNano())
	user := &models.User{
		FullName: "Test " + string(role),
		Username: username,
		Email:    username + "@test.com",
		Role:     role,
	}
	CreateUser(t, tx, user, "password123")

	loginBody := map[string]any{
		"username": username,
		"password": "password123",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/login", "", loginBody, nil)
	assert.Equal(t, http.StatusOK, res.Code, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateCompany создает компанию работодателя напрямую в транзакции
func CreateCompany(t *testing.T, tx *gorm.DB, ownerID string) *models.EmployerCompany {
	t.Helper()

	company := &models.EmployerCompany{
		Name:   fmt.Sprintf("Company %d", time.Now().UnixNano()),
		City:   "Almaty",
		UserID: ownerID,
	}
	if err := tx.Create(company).Error; err != nil {
		t.Fatalf("Не удалось создать компанию: %v", err)
	}
	return company
}

// CreatePosting создает активную вакансию в транзакции
func CreatePosting(t *testing.T, tx *gorm.DB, companyID string) *models.JobPosting {
	t.Helper()

	posting := &models.JobPosting{
		Title:     "Go Developer",
		City:      "Almaty",
		Status:    models.PostingStatusActive,
		CompanyID: companyID,
	}
	if err := tx.Create(posting).Error; err != nil {
		t.Fatalf("Не удалось создать вакансию: %v", err)
	}
	return posting
}

// CreateResume создает резюме соискателя в транзакции
func CreateResume(t *testing.T, tx *gorm.DB, ownerID string) *models.JobSeekerResume {
	t.Helper()

	resume := &models.JobSeekerResume{
		JobTitle:  "Backend Developer",
		IsVisible: true,
		UserID:    ownerID,
	}
	if err := tx.Create(resume).Error; err != nil {
		t.Fatalf("Не удалось создать резюме: %v", err)
	}
	return resume
}
