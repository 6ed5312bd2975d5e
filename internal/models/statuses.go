package models

type UserRole string
type ProjectStatus string

const (
	UserRoleCreative UserRole = "creative"
	UserRoleClient   UserRole = "client"
	UserRoleAdmin    UserRole = "admin"

	// Project lifecycle. Transitions are strictly monotonic:
	// open -> in_progress -> pending_approval -> closed.
	ProjectStatusOpen            ProjectStatus = "open"
	ProjectStatusInProgress      ProjectStatus = "in_progress"
	ProjectStatusPendingApproval ProjectStatus = "pending_approval"
	ProjectStatusClosed          ProjectStatus = "closed"
)

// ValidUserRoles lists the roles accepted at registration. Admin accounts
// are seeded or promoted, never self-registered.
var ValidUserRoles = []UserRole{UserRoleCreative, UserRoleClient}
