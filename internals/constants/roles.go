package constants

// Organization-level roles (one active role per user per organization).
const (
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleVolunteer   = "volunteer"
	RoleBeneficiary = "beneficiary"
)

// Course-level roles.
const (
	CourseRoleStudent    = "student"
	CourseRoleInstructor = "instructor"
	CourseRoleAssistant  = "assistant"
	CourseRoleObserver   = "observer"
)

var OrganizationRoles = []string{RoleAdmin, RoleManager, RoleVolunteer, RoleBeneficiary}

var CourseRoles = []string{CourseRoleStudent, CourseRoleInstructor, CourseRoleAssistant, CourseRoleObserver}

func IsOrganizationRole(r string) bool {
	for _, v := range OrganizationRoles {
		if v == r {
			return true
		}
	}
	return false
}

func IsCourseRole(r string) bool {
	for _, v := range CourseRoles {
		if v == r {
			return true
		}
	}
	return false
}
