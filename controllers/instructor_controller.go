package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub-web/models"
	"learnhub-web/platform"
	"learnhub-web/session"
	"learnhub-web/utils"
)

type InstructorController struct {
	API      *platform.Client
	Sessions *session.Manager
}

func NewInstructorController(api *platform.Client, sessions *session.Manager) *InstructorController {
	return &InstructorController{API: api, Sessions: sessions}
}

// ListCourses returns the instructor's own courses. The search filter is a
// case-insensitive substring match on the title applied here; the platform
// has no server-side search.
func (ic *InstructorController) ListCourses(c *fiber.Ctx) error {
	user, _, err := identify(c, ic.API, ic.Sessions)
	if user == nil {
		return err
	}

	courses, err := ic.API.CoursesByInstructor(c.Context(), sessionToken(c, ic.Sessions), user.ID)
	if err != nil {
		return respondUpstream(c, ic.Sessions, err, "Failed to fetch courses.")
	}

	// Footer stats cover everything the instructor owns, not the current
	// search result.
	totalCourses := len(courses)
	totalSessions := 0
	for _, course := range courses {
		totalSessions += len(course.Sessions)
	}

	if search := c.Query("search"); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]models.Course, 0, len(courses))
		for _, course := range courses {
			if strings.Contains(strings.ToLower(course.Title), needle) {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses":       courses,
		"totalCourses":  totalCourses,
		"totalSessions": totalSessions,
	})
}

// CreateCourse validates the form before any network call; a validation
// failure never reaches the platform. The response carries the upstream's
// echoed entity so the list shows server-assigned fields.
func (ic *InstructorController) CreateCourse(c *fiber.Ctx) error {
	var input models.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	course, err := ic.API.CreateCourse(c.Context(), sessionToken(c, ic.Sessions), input)
	if err != nil {
		return respondUpstream(c, ic.Sessions, err, "Failed to add course.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusCreated,
		fiber.Map{"course": course},
		utils.NoticeSuccess, "Course added successfully! Now you can add sessions to it.")
}

func (ic *InstructorController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input models.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	course, err := ic.API.UpdateCourse(c.Context(), sessionToken(c, ic.Sessions), courseID, input)
	if err != nil {
		return respondUpstream(c, ic.Sessions, err, "Failed to update course.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusOK,
		fiber.Map{"course": course},
		utils.NoticeSuccess, "Course updated successfully!")
}

func (ic *InstructorController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := ic.API.DeleteCourse(c.Context(), sessionToken(c, ic.Sessions), courseID); err != nil {
		return respondUpstream(c, ic.Sessions, err, "Failed to delete course.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusOK,
		fiber.Map{"deleted": courseID},
		utils.NoticeSuccess, "Course deleted successfully!")
}

func (ic *InstructorController) ListSessions(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	sessions, err := ic.API.Sessions(c.Context(), sessionToken(c, ic.Sessions), courseID)
	if err != nil {
		return respondUpstream(c, ic.Sessions, err, "Failed to fetch sessions.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"sessions": sessions})
}

func (ic *InstructorController) CreateSession(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input models.SessionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	created, err := ic.API.CreateSession(c.Context(), sessionToken(c, ic.Sessions), courseID, input)
	if err != nil {
		return respondUpstream(c, ic.Sessions, err, "Failed to add session.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusCreated,
		fiber.Map{"session": created},
		utils.NoticeSuccess, "Session added successfully!")
}

func (ic *InstructorController) UpdateSession(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("sessionId")
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	var input models.SessionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	updated, err := ic.API.UpdateSession(c.Context(), sessionToken(c, ic.Sessions), sessionID, input)
	if err != nil {
		return respondUpstream(c, ic.Sessions, err, "Failed to update session.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusOK,
		fiber.Map{"session": updated},
		utils.NoticeSuccess, "Session updated successfully!")
}

func (ic *InstructorController) DeleteSession(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("sessionId")
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	if err := ic.API.DeleteSession(c.Context(), sessionToken(c, ic.Sessions), sessionID); err != nil {
		return respondUpstream(c, ic.Sessions, err, "Failed to delete session.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusOK,
		fiber.Map{"deleted": sessionID},
		utils.NoticeSuccess, "Session deleted successfully!")
}
