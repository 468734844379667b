package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Quiz de trail match
	PermissionQuestionRead  Permission = "questions.read"
	PermissionQuestionWrite Permission = "questions.write"
	PermissionAnswerSubmit  Permission = "answers.submit"

	// Voluntários
	PermissionVolunteerRead  Permission = "volunteers.read"
	PermissionVolunteerWrite Permission = "volunteers.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionQuestionRead,
		PermissionQuestionWrite,
		PermissionAnswerSubmit,
		PermissionVolunteerRead,
		PermissionVolunteerWrite,
	},
	RoleMember: {
		PermissionQuestionRead,
		PermissionAnswerSubmit,
		PermissionVolunteerRead,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
