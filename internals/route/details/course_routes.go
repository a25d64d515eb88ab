package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "sarai_backend/internals/features/courses/certificates/controller"
	courseController "sarai_backend/internals/features/courses/courses/controller"
	enrollmentController "sarai_backend/internals/features/courses/enrollments/controller"
	gradingController "sarai_backend/internals/features/courses/grading/controller"
)

// CourseLearnerRoutes need only an authenticated user; the course is resolved
// from the path.
func CourseLearnerRoutes(r fiber.Router, db *gorm.DB) {
	grading := gradingController.NewGradingController(db)
	certs := certificateController.NewCertificateController(db)

	r.Post("/modules/:module_id/form", grading.SubmitForm)
	r.Get("/modules/:module_id/submission", grading.GetMySubmission)

	r.Get("/certificates", certs.ListMine)
	r.Get("/courses/:course_id/certificate/eligibility", certs.CheckEligibility)
	r.Post("/courses/:course_id/certificate", certs.Issue)
}

// CourseMemberRoutes are organization-scoped learner views.
func CourseMemberRoutes(r fiber.Router, db *gorm.DB) {
	enrollments := enrollmentController.NewEnrollmentController(db)

	r.Get("/courses", enrollments.ListMyCourses)
	r.Post("/courses/:course_id/modules/:module_id/complete", enrollments.MarkModuleComplete)
}

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	courses := courseController.NewCourseController(db)
	enrollments := enrollmentController.NewEnrollmentController(db)
	grading := gradingController.NewGradingController(db)

	r.Post("/courses", courses.Create)
	r.Get("/courses", courses.GetAll)
	r.Get("/courses/:id", courses.GetByID)
	r.Put("/courses/:id", courses.Update)
	r.Delete("/courses/:id", courses.Delete)

	r.Post("/courses/:course_id/modules", courses.CreateModule)
	r.Put("/courses/:course_id/modules/:module_id", courses.UpdateModule)
	r.Delete("/courses/:course_id/modules/:module_id", courses.DeleteModule)

	r.Post("/courses/:course_id/enrollments", enrollments.Enroll)
	r.Get("/courses/:course_id/enrollments", enrollments.ListCourseEnrollments)

	r.Post("/courses/:course_id/grades", grading.EnterGrade)
	r.Get("/courses/:course_id/grades", grading.ListCourseGrades)
}
