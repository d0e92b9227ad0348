package authz

import "braik-api/internal/models"

// Permission is a team-scoped capability. The set is closed: every value
// below has exactly one row in rolePermissions, checked at compile time.
type Permission int

// Team permissions.
const (
	PermViewTeam Permission = iota
	PermEditTeamSettings
	PermEditRoster
	PermManageMembers
	PermPostAnnouncements
	PermViewAnnouncements
	PermManageDocuments
	PermViewDocuments
	PermManageBilling
	PermUseAIAssistant
	PermApproveAIActions
	PermViewAuditLog

	permissionCount
)

var (
	allRoles   = []models.Role{models.RoleHeadCoach, models.RoleAssistantCoach, models.RolePlayer, models.RoleParent}
	staffRoles = []models.Role{models.RoleHeadCoach, models.RoleAssistantCoach}
	headOnly   = []models.Role{models.RoleHeadCoach}
)

var rolePermissions = [...][]models.Role{
	PermViewTeam:          allRoles,
	PermEditTeamSettings:  headOnly,
	PermEditRoster:        staffRoles,
	PermManageMembers:     headOnly,
	PermPostAnnouncements: staffRoles,
	PermViewAnnouncements: allRoles,
	PermManageDocuments:   staffRoles,
	PermViewDocuments:     allRoles,
	PermManageBilling:     headOnly,
	PermUseAIAssistant:    allRoles,
	PermApproveAIActions:  headOnly,
	PermViewAuditLog:      headOnly,
}

var permissionNames = [...]string{
	PermViewTeam:          "view_team",
	PermEditTeamSettings:  "edit_team_settings",
	PermEditRoster:        "edit_roster",
	PermManageMembers:     "manage_members",
	PermPostAnnouncements: "post_announcements",
	PermViewAnnouncements: "view_announcements",
	PermManageDocuments:   "manage_documents",
	PermViewDocuments:     "view_documents",
	PermManageBilling:     "manage_billing",
	PermUseAIAssistant:    "use_ai_assistant",
	PermApproveAIActions:  "approve_ai_actions",
	PermViewAuditLog:      "view_audit_log",
}

// Adding a Permission without a table row (or a row without a Permission)
// makes one of these indexes out of range and breaks the build.
var (
	_ = [1]struct{}{}[int(permissionCount)-len(rolePermissions)]
	_ = [1]struct{}{}[int(permissionCount)-len(permissionNames)]
)

// Valid reports whether p is a declared permission.
func (p Permission) Valid() bool {
	return p >= 0 && p < permissionCount
}

func (p Permission) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return permissionNames[p]
}

// AllowedRoles returns the roles granted p.
func AllowedRoles(p Permission) []models.Role {
	if !p.Valid() {
		return nil
	}
	return rolePermissions[p]
}

// RoleHasPermission reports whether role is granted p.
func RoleHasPermission(role models.Role, p Permission) bool {
	for _, r := range AllowedRoles(p) {
		if r == role {
			return true
		}
	}
	return false
}

// Permissions returns every declared permission in declaration order.
func Permissions() []Permission {
	perms := make([]Permission, 0, permissionCount)
	for p := Permission(0); p < permissionCount; p++ {
		perms = append(perms, p)
	}
	return perms
}
