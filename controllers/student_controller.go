package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnhub-web/models"
	"learnhub-web/platform"
	"learnhub-web/session"
	"learnhub-web/utils"
)

type StudentController struct {
	API      *platform.Client
	Sessions *session.Manager
}

func NewStudentController(api *platform.Client, sessions *session.Manager) *StudentController {
	return &StudentController{API: api, Sessions: sessions}
}

// AvailableCourses is the discovery catalog: published courses the student
// has not joined yet.
func (sc *StudentController) AvailableCourses(c *fiber.Ctx) error {
	user, _, err := identify(c, sc.API, sc.Sessions)
	if user == nil {
		return err
	}
	token := sessionToken(c, sc.Sessions)

	published, err := sc.API.PublishedCourses(c.Context(), token)
	if err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to fetch available courses.")
	}

	enrolled, err := sc.enrolledSet(c, token, user.ID)
	if err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to fetch available courses.")
	}

	available := make([]models.Course, 0, len(published))
	for _, course := range published {
		if !enrolled[course.ID] {
			available = append(available, course)
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"courses": available})
}

// EnrolledCourses returns the joined courses enriched with their session
// lists and per-course progress. A failing session fetch for one course
// degrades that course to an empty list instead of failing the view.
func (sc *StudentController) EnrolledCourses(c *fiber.Ctx) error {
	user, _, err := identify(c, sc.API, sc.Sessions)
	if user == nil {
		return err
	}
	token := sessionToken(c, sc.Sessions)

	enrollments, err := sc.API.Enrollments(c.Context(), token, user.ID)
	if err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to fetch enrolled courses.")
	}

	progress, err := sc.API.StudentDashboard(c.Context(), token, user.ID)
	if err != nil {
		if errors.Is(err, platform.ErrUnauthorized) {
			return respondUpstream(c, sc.Sessions, err, "")
		}
		progress = nil
	}

	courses := make([]fiber.Map, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course := enrollment.Course
		sessions, err := sc.API.Sessions(c.Context(), token, course.ID)
		if err != nil {
			sessions = nil
		}
		record := models.ProgressFor(progress, course.ID)
		courses = append(courses, fiber.Map{
			"course":       course,
			"sessions":     sessions,
			"sessionCount": len(sessions),
			"progress": fiber.Map{
				"completed": len(record.CompletedSessions),
				"total":     record.TotalSessions,
			},
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"courses": courses})
}

// Enroll joins a course. Already-enrolled is answered locally with an
// informational notice and no platform call; the guard is per course, so
// enrolls on different courses stay independent.
func (sc *StudentController) Enroll(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	user, _, err := identify(c, sc.API, sc.Sessions)
	if user == nil {
		return err
	}
	token := sessionToken(c, sc.Sessions)

	enrolled, err := sc.enrolledSet(c, token, user.ID)
	if err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to enroll in course. Please try again.")
	}
	if enrolled[courseID] {
		return utils.SuccessWithNotice(c, fiber.StatusOK,
			fiber.Map{"courseId": courseID, "alreadyEnrolled": true},
			utils.NoticeInfo, "You are already enrolled in this course.")
	}

	if err := sc.API.Enroll(c.Context(), token, courseID, user.ID); err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to enroll in course. Please try again.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusCreated,
		fiber.Map{"courseId": courseID, "enrolled": true},
		utils.NoticeSuccess, "Successfully enrolled in course!")
}

// SessionDetail is the completion view: the session content plus whether
// this student already completed or rated it.
func (sc *StudentController) SessionDetail(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	sessionID, err := c.ParamsInt("sessionId")
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	user, _, err := identify(c, sc.API, sc.Sessions)
	if user == nil {
		return err
	}
	token := sessionToken(c, sc.Sessions)

	detail, err := sc.API.SessionByID(c.Context(), token, courseID, sessionID)
	if err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to load session details. Please try again.")
	}

	// Course title for the view header; tolerate a failure, except an auth
	// one, which invalidates the session like everywhere else.
	var courseTitle string
	if course, err := sc.API.CourseByID(c.Context(), token, courseID); err == nil {
		courseTitle = course.Title
	} else if errors.Is(err, platform.ErrUnauthorized) {
		return respondUpstream(c, sc.Sessions, err, "")
	}

	completed := false
	if progress, err := sc.API.StudentDashboard(c.Context(), token, user.ID); err == nil {
		completed = models.ProgressFor(progress, courseID).Completed(sessionID)
	} else if errors.Is(err, platform.ErrUnauthorized) {
		return respondUpstream(c, sc.Sessions, err, "")
	}

	rating := &models.RatingStatus{}
	if status, err := sc.API.RatingStatus(c.Context(), token, user.ID, courseID, sessionID); err == nil {
		rating = status
	} else if errors.Is(err, platform.ErrUnauthorized) {
		return respondUpstream(c, sc.Sessions, err, "")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"session":     detail,
		"courseTitle": courseTitle,
		"completed":   completed,
		"rating":      rating,
	})
}

// CompleteSession is the one-way "mark complete". Already-completed answers
// the already-done state without a platform call; there is no un-complete.
func (sc *StudentController) CompleteSession(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	sessionID, err := c.ParamsInt("sessionId")
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	user, _, err := identify(c, sc.API, sc.Sessions)
	if user == nil {
		return err
	}
	token := sessionToken(c, sc.Sessions)

	progress, err := sc.API.StudentDashboard(c.Context(), token, user.ID)
	if err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to mark session as completed. Please try again.")
	}
	if models.ProgressFor(progress, courseID).Completed(sessionID) {
		return utils.SuccessWithNotice(c, fiber.StatusOK,
			fiber.Map{"courseId": courseID, "sessionId": sessionID, "completed": true},
			utils.NoticeInfo, "You've already completed this session.")
	}

	if err := sc.API.CompleteSession(c.Context(), token, user.ID, courseID, sessionID); err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to mark session as completed. Please try again.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusOK,
		fiber.Map{"courseId": courseID, "sessionId": sessionID, "completed": true},
		utils.NoticeSuccess, "Session marked as completed!")
}

// RateSession submits the optional one-time 1-5 rating. A duplicate comes
// back from the platform as a conflict and is converted to the benign
// "already rated" state, never an error banner.
func (sc *StudentController) RateSession(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	sessionID, err := c.ParamsInt("sessionId")
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	var input models.RatingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	user, _, err := identify(c, sc.API, sc.Sessions)
	if user == nil {
		return err
	}
	token := sessionToken(c, sc.Sessions)

	err = sc.API.SubmitRating(c.Context(), token, user.ID, courseID, sessionID, input.Rating)
	if err != nil {
		if errors.Is(err, platform.ErrConflict) {
			return utils.SuccessWithNotice(c, fiber.StatusOK,
				fiber.Map{"sessionId": sessionID, "alreadyRated": true},
				utils.NoticeInfo, "You have already rated this session.")
		}
		return respondUpstream(c, sc.Sessions, err, "Failed to submit rating. Please try again.")
	}

	return utils.SuccessWithNotice(c, fiber.StatusCreated,
		fiber.Map{"sessionId": sessionID, "rating": input.Rating},
		utils.NoticeSuccess, "Thanks for rating this session!")
}

// Dashboard returns the raw per-course progress array for the student.
func (sc *StudentController) Dashboard(c *fiber.Ctx) error {
	user, _, err := identify(c, sc.API, sc.Sessions)
	if user == nil {
		return err
	}

	progress, err := sc.API.StudentDashboard(c.Context(), sessionToken(c, sc.Sessions), user.ID)
	if err != nil {
		return respondUpstream(c, sc.Sessions, err, "Failed to load dashboard data.")
	}
	if progress == nil {
		progress = []models.CourseProgress{}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"progress": progress})
}

func (sc *StudentController) enrolledSet(c *fiber.Ctx, token string, studentID int) (map[int]bool, error) {
	enrollments, err := sc.API.Enrollments(c.Context(), token, studentID)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(enrollments))
	for _, enrollment := range enrollments {
		courseID := enrollment.CourseID
		if courseID == 0 {
			courseID = enrollment.Course.ID
		}
		set[courseID] = true
	}
	return set, nil
}
