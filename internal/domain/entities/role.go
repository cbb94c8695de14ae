package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// Permission representa uma permissão específica
type Permission string

const (
	// User permissions
	PermissionUserRead   Permission = "users.read"
	PermissionUserWrite  Permission = "users.write"
	PermissionUserDelete Permission = "users.delete"

	// Student permissions
	PermissionStudentRead  Permission = "students.read"
	PermissionStudentWrite Permission = "students.write"

	// Instructor permissions
	PermissionInstructorRead  Permission = "instructors.read"
	PermissionInstructorWrite Permission = "instructors.write"

	// Treino permissions
	PermissionTreinoRead  Permission = "treinos.read"
	PermissionTreinoWrite Permission = "treinos.write"

	// Payment permissions
	PermissionPaymentRead  Permission = "payments.read"
	PermissionPaymentWrite Permission = "payments.write"

	// Notification permissions
	PermissionNotificationWrite Permission = "notifications.write"

	PermissionDashboardRead Permission = "dashboard.read"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserDelete,
		PermissionStudentRead,
		PermissionStudentWrite,
		PermissionInstructorRead,
		PermissionInstructorWrite,
		PermissionTreinoRead,
		PermissionTreinoWrite,
		PermissionPaymentRead,
		PermissionPaymentWrite,
		PermissionNotificationWrite,
		PermissionDashboardRead,
	},
	RoleInstructor: {
		PermissionStudentRead,
		PermissionInstructorRead,
		PermissionTreinoRead,
		PermissionTreinoWrite,
	},
	RoleStudent: {
		PermissionInstructorRead,
		PermissionTreinoRead,
	},
}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
