package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub-web/models"
	"learnhub-web/utils"
)

func instructorApp(t *testing.T) (*fakePlatform, func(method, target, body string) *http.Response) {
	t.Helper()

	fake := newFakePlatform(t)
	fake.loginBody = map[string]string{"token": "t1", "role": "instructor"}
	fake.userBody = models.User{ID: 2, Email: "teach@example.com", Role: "instructor"}
	app := newTestApp(fake)
	cookie := login(t, app)

	do := func(method, target, body string) *http.Response {
		req := jsonRequest(method, target, body)
		req.AddCookie(cookie)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}
	return fake, do
}

func TestListCoursesAggregates(t *testing.T) {
	fake, do := instructorApp(t)
	fake.instructorCourses = []models.Course{
		{ID: 5, Title: "Go Basics", InstructorID: 2, Sessions: []models.CourseSession{{ID: 1}, {ID: 2}}},
		{ID: 6, Title: "Databases", InstructorID: 2, Sessions: []models.CourseSession{{ID: 3}}},
	}

	resp := do("GET", "/instructor/courses", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	var totalCourses, totalSessions int
	decodeData(t, body, "totalCourses", &totalCourses)
	decodeData(t, body, "totalSessions", &totalSessions)
	assert.Equal(t, 2, totalCourses)
	assert.Equal(t, 3, totalSessions)
}

func TestListCoursesSearchIsCaseInsensitive(t *testing.T) {
	fake, do := instructorApp(t)
	fake.instructorCourses = []models.Course{
		{ID: 5, Title: "Go Basics", InstructorID: 2, Sessions: []models.CourseSession{{ID: 1}}},
		{ID: 6, Title: "Databases", InstructorID: 2, Sessions: []models.CourseSession{{ID: 2}, {ID: 3}}},
	}

	resp := do("GET", "/instructor/courses?search=BASIC", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	var courses []models.Course
	decodeData(t, body, "courses", &courses)
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Basics", courses[0].Title)

	// The footer stats stay over everything owned, not the search result.
	var totalCourses, totalSessions int
	decodeData(t, body, "totalCourses", &totalCourses)
	decodeData(t, body, "totalSessions", &totalSessions)
	assert.Equal(t, 2, totalCourses)
	assert.Equal(t, 3, totalSessions)
}

func TestCreateCourseEchoesServerEntity(t *testing.T) {
	fake, do := instructorApp(t)
	fake.createdCourse = models.Course{ID: 42, Title: "Go Basics", Category: "programming", InstructorID: 2}

	resp := do("POST", "/instructor/courses",
		`{"title":"Go Basics","description":"From zero","category":"programming"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	var course models.Course
	decodeData(t, body, "course", &course)
	assert.Equal(t, 42, course.ID, "server-assigned id must come back to the view")
	require.NotNil(t, body.Notice)
	assert.Equal(t, "Course added successfully! Now you can add sessions to it.", body.Notice.Message)
}

func TestCreateCourseValidationBlocksUpstream(t *testing.T) {
	fake, do := instructorApp(t)

	resp := do("POST", "/instructor/courses", `{"title":"","description":"","category":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "All fields are required!", body.Message)
	assert.Contains(t, body.Details, "title")
	assert.Zero(t, fake.count("POST /courses"))
}

func TestCreateSessionValidationBlocksUpstream(t *testing.T) {
	fake, do := instructorApp(t)

	resp := do("POST", "/instructor/courses/5/sessions", `{"title":"Joins"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body.Details, "videoLink")
	assert.Contains(t, body.Details, "explanation")
	assert.Zero(t, fake.count("POST /courses/5/sessions"))
}

func TestSessionCrudRoundTrip(t *testing.T) {
	fake, do := instructorApp(t)
	fake.sessionDetail = models.CourseSession{ID: 9, CourseID: 5, Title: "Joins"}
	fake.courseSessions = []models.CourseSession{{ID: 9, CourseID: 5, Title: "Joins"}}

	resp := do("POST", "/instructor/courses/5/sessions",
		`{"title":"Joins","videoLink":"https://example.com/v","explanation":"SQL joins"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, fake.count("POST /courses/5/sessions"))

	resp = do("GET", "/instructor/courses/5/sessions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sessions []models.CourseSession
	decodeData(t, decodeBody(t, resp), "sessions", &sessions)
	require.Len(t, sessions, 1)

	resp = do("PUT", "/instructor/sessions/9",
		`{"title":"Joins v2","videoLink":"https://example.com/v2","explanation":"SQL joins, revised"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, fake.count("PUT /courses/sessions/9"))

	resp = do("DELETE", "/instructor/sessions/9", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, fake.count("DELETE /courses/sessions/9"))
}

func TestDeleteCourse(t *testing.T) {
	fake, do := instructorApp(t)

	resp := do("DELETE", "/instructor/courses/5", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.NotNil(t, body.Notice)
	assert.Equal(t, utils.NoticeSuccess, body.Notice.Level)
	assert.Equal(t, 1, fake.count("DELETE /courses/5"))
}

func TestUpstreamUnauthorizedMidFeatureClearsSession(t *testing.T) {
	fake, do := instructorApp(t)
	fake.instructorCoursesStatus = http.StatusUnauthorized

	resp := do("GET", "/instructor/courses", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "/login", body.Redirect)
	assert.Equal(t, "Your session has expired. Please log in again.", body.Message)
	requireSessionCleared(t, resp)
}

func TestInstructorTreeRejectsStudent(t *testing.T) {
	fake := newFakePlatform(t)
	fake.loginBody = map[string]string{"token": "t1", "role": "student"}
	app := newTestApp(fake)
	cookie := login(t, app)

	req := jsonRequest("GET", "/instructor/courses", "")
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "This area is not available for your role.", decodeBody(t, resp).Message)
}
