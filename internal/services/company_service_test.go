package services

import (
	"fmt"
	"net/http"
	"testing"

	"jobport_backend/internal/auth"
	"jobport_backend/internal/models"
	"jobport_backend/internal/repositories"
	"jobport_backend/internal/services/dto"
	"jobport_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCompanyRepo - репозиторий в памяти, db игнорируется
type fakeCompanyRepo struct {
	companies map[string]*models.EmployerCompany
	nextID    int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*models.EmployerCompany)}
}

func (f *fakeCompanyRepo) FindByID(_ *gorm.DB, id string) (*models.EmployerCompany, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) FindAll(_ *gorm.DB, _, _ int) ([]models.EmployerCompany, error) {
	var out []models.EmployerCompany
	for _, c := range f.companies {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) FindByUserID(_ *gorm.DB, userID string, _, _ int) ([]models.EmployerCompany, error) {
	var out []models.EmployerCompany
	for _, c := range f.companies {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) Create(_ *gorm.DB, company *models.EmployerCompany) error {
	if company.ID == "" {
		f.nextID++
		company.ID = fmt.Sprintf("company-%d", f.nextID)
	}
	f.companies[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) Update(_ *gorm.DB, company *models.EmployerCompany) error {
	f.companies[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := f.companies[id]; !ok {
		return repositories.ErrCompanyNotFound
	}
	delete(f.companies, id)
	return nil
}

func seedCompany(t *testing.T, repo *fakeCompanyRepo, ownerID string) *models.EmployerCompany {
	t.Helper()

	company := &models.EmployerCompany{
		Name:   "Test Company",
		City:   "Almaty",
		UserID: ownerID,
	}
	require.NoError(t, repo.Create(nil, company))
	return company
}

func TestCompanyService_OwnerUpdates(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	userRepo := newFakeUserRepo()
	svc := NewCompanyService(companyRepo, userRepo)

	owner := seedUser(t, userRepo, "employer", "password123", models.UserRoleEmployer, models.AccountStatusActive)
	company := seedCompany(t, companyRepo, owner.ID)

	name := "Renamed"
	updated, err := svc.Update(nil, &auth.Principal{ID: owner.ID, Role: models.UserRoleEmployer}, company.ID, &dto.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

// Владелец компании удален, запись осиротела: наружу уходит 404,
// а не 403, подтверждающий существование
func TestCompanyService_OrphanedOwnerIsNotFound(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	userRepo := newFakeUserRepo()
	svc := NewCompanyService(companyRepo, userRepo)

	stranger := seedUser(t, userRepo, "stranger", "password123", models.UserRoleEmployer, models.AccountStatusActive)
	orphan := seedCompany(t, companyRepo, "deleted-user-id")

	name := "Hijacked"
	for _, p := range []*auth.Principal{
		{ID: stranger.ID, Role: models.UserRoleEmployer},
		{ID: "admin-id", Role: models.UserRoleAdmin},
	} {
		_, err := svc.Update(nil, p, orphan.ID, &dto.UpdateCompanyRequest{Name: &name})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr, "роль %s", p.Role)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

		var delErr *apperrors.AppError
		require.ErrorAs(t, svc.Delete(nil, p, orphan.ID), &delErr)
		assert.Equal(t, http.StatusNotFound, delErr.HTTPCode)
	}
}
