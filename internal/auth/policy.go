package auth

import (
	"jobport_backend/internal/models"
	"jobport_backend/pkg/apperrors"
)

// Visibility - режим видимости типа ресурса для не-административных ролей.
type Visibility int

const (
	// VisibilityOwnerOnly - ресурс видит и меняет только владелец
	VisibilityOwnerOnly Visibility = iota
	// VisibilityPeerRead - читают все аутентифицированные, пишет владелец
	// (компании, вакансии)
	VisibilityPeerRead
	// VisibilityEmployerRead - читают владелец и работодатели, пишет
	// владелец (резюме и их дочерние сущности)
	VisibilityEmployerRead
)

type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

// Authorize - единое правило владения/видимости, применяемое каждым
// ресурсным сервисом. ownerID/ownerRole - владелец записи (для косвенных
// ресурсов он разрешается через родителя отдельным lookup-ом).
//
//   - full_admin: без ограничений;
//   - admin: без ограничений на записях employer/job_seeker и своих,
//     403 на записях другого admin или full_admin (асимметричная защита);
//   - employer/job_seeker: свои записи, плюс чтение по режиму видимости.
func Authorize(p *Principal, ownerID string, ownerRole models.UserRole, visibility Visibility, action Action) error {
	if p == nil {
		return apperrors.ErrUnauthorized
	}

	switch p.Role {
	case models.UserRoleFullAdmin:
		return nil

	case models.UserRoleAdmin:
		if ownerID == p.ID {
			return nil
		}
		if ownerRole.IsAdministrative() {
			return apperrors.ErrForbidden
		}
		return nil

	case models.UserRoleEmployer, models.UserRoleJobSeeker:
		if ownerID == p.ID {
			return nil
		}
		if action == ActionRead {
			switch visibility {
			case VisibilityPeerRead:
				return nil
			case VisibilityEmployerRead:
				if p.Role == models.UserRoleEmployer {
					return nil
				}
			}
		}
		return apperrors.ErrForbidden

	default:
		return apperrors.ErrForbidden
	}
}

// CanReassignOwnership - менять поля принадлежности (user_id/company_id/
// resume_id) на чужие значения может только full_admin.
func CanReassignOwnership(p *Principal) bool {
	return p != nil && p.Role == models.UserRoleFullAdmin
}
