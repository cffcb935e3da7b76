package models

type UserRole string
type AccountStatus string
type EmploymentStatus string
type ApplicationStatus string
type PostingStatus string

const (
	// Иерархия ролей: full_admin > admin > {employer, job_seeker}.
	// Это не наследование, а порядок для политики доступа.
	UserRoleFullAdmin UserRole = "full_admin"
	UserRoleAdmin     UserRole = "admin"
	UserRoleEmployer  UserRole = "employer"
	UserRoleJobSeeker UserRole = "job_seeker"

	AccountStatusActive    AccountStatus = "active"
	AccountStatusInactive  AccountStatus = "inactive"
	AccountStatusSuspended AccountStatus = "suspended"

	EmploymentStatusSeeking      EmploymentStatus = "seeking"
	EmploymentStatusEmployed     EmploymentStatus = "employed"
	EmploymentStatusOpenToOffers EmploymentStatus = "open_to_offers"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	PostingStatusDraft  PostingStatus = "draft"
	PostingStatusActive PostingStatus = "active"
	PostingStatusClosed PostingStatus = "closed"
)

// IsAdministrative - роль входит в административную пару
func (r UserRole) IsAdministrative() bool {
	return r == UserRoleFullAdmin || r == UserRoleAdmin
}

// Valid проверяет, что роль известна системе
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleFullAdmin, UserRoleAdmin, UserRoleEmployer, UserRoleJobSeeker:
		return true
	}
	return false
}
