package routes

import (
	"github.com/gofiber/fiber/v2"

	"learnhub-web/config"
	"learnhub-web/controllers"
	"learnhub-web/middleware"
	"learnhub-web/models"
	"learnhub-web/platform"
	"learnhub-web/session"
)

func SetupRoutes(app *fiber.App, api *platform.Client, sessions *session.Manager, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(api, sessions, cfg)
	app.Post("/auth/register", authController.Register)
	app.Post("/auth/login", authController.Login)
	app.Get("/auth/google", authController.GoogleLogin)
	app.Get("/auth/google/callback", authController.GoogleCallback)
	app.Post("/auth/google/complete", authController.CompleteGoogleSignup)
	app.Post("/auth/logout", authController.Logout)
	app.Get("/auth/session", authController.Session)

	// Middleware
	requireSession := middleware.RequireSession(sessions)

	// The role router: one dashboard, two mutually exclusive view trees.
	app.Get("/dashboard", requireSession, authController.Dashboard)

	// Instructor view tree
	instructorController := controllers.NewInstructorController(api, sessions)
	instructor := app.Group("/instructor", requireSession, middleware.RequireRole(models.RoleInstructor))
	instructor.Get("/courses", instructorController.ListCourses)
	instructor.Post("/courses", instructorController.CreateCourse)
	instructor.Put("/courses/:id", instructorController.UpdateCourse)
	instructor.Delete("/courses/:id", instructorController.DeleteCourse)
	instructor.Get("/courses/:id/sessions", instructorController.ListSessions)
	instructor.Post("/courses/:id/sessions", instructorController.CreateSession)
	instructor.Put("/sessions/:sessionId", instructorController.UpdateSession)
	instructor.Delete("/sessions/:sessionId", instructorController.DeleteSession)

	// Student view tree
	studentController := controllers.NewStudentController(api, sessions)
	student := app.Group("/student", requireSession, middleware.RequireRole(models.RoleStudent))
	student.Get("/courses/available", studentController.AvailableCourses)
	student.Get("/courses/enrolled", studentController.EnrolledCourses)
	student.Post("/courses/:id/enroll", studentController.Enroll)
	student.Get("/courses/:id/sessions/:sessionId", studentController.SessionDetail)
	student.Post("/courses/:id/sessions/:sessionId/complete", studentController.CompleteSession)
	student.Post("/courses/:id/sessions/:sessionId/rating", studentController.RateSession)
	student.Get("/dashboard", studentController.Dashboard)
}
