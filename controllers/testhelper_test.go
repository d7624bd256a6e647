package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub-web/config"
	"learnhub-web/models"
	"learnhub-web/platform"
	"learnhub-web/routes"
	"learnhub-web/session"
	"learnhub-web/utils"
)

// fakePlatform stands in for the external platform API. It records every
// request so tests can assert which upstream calls were (not) made.
type fakePlatform struct {
	server *httptest.Server

	mu    sync.Mutex
	calls map[string]int

	loginStatus int
	loginBody   interface{}

	// userStatus, instructorCoursesStatus and courseStatus, when >= 400,
	// force the matching endpoint to answer that status instead of its body.
	userBody                interface{}
	userStatus              int
	instructorCoursesStatus int
	courseStatus            int

	completeSignupBody interface{}

	publishedCourses  []models.Course
	instructorCourses []models.Course
	createdCourse     models.Course
	courseSessions    []models.CourseSession
	sessionDetail     models.CourseSession

	enrollments []models.Enrollment
	dashboard   []models.CourseProgress

	ratingConflict bool
}

func newFakePlatform(t *testing.T) *fakePlatform {
	f := &fakePlatform{
		calls:       map[string]int{},
		loginStatus: http.StatusOK,
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakePlatform) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakePlatform) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.Method+" "+r.URL.Path]++
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	seg := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	writeJSON := func(status int, v interface{}) {
		w.WriteHeader(status)
		if v != nil {
			json.NewEncoder(w).Encode(v)
		} else {
			io.WriteString(w, "{}")
		}
	}

	switch {
	case r.Method == "POST" && r.URL.Path == "/auth/login":
		writeJSON(f.loginStatus, f.loginBody)
	case r.Method == "POST" && r.URL.Path == "/auth/register":
		writeJSON(http.StatusCreated, nil)
	case r.Method == "POST" && r.URL.Path == "/auth/google/complete":
		writeJSON(http.StatusCreated, f.completeSignupBody)
	case r.Method == "GET" && r.URL.Path == "/auth/user":
		if f.userStatus >= 400 {
			writeJSON(f.userStatus, map[string]string{"message": "Invalid or expired token"})
			return
		}
		if r.Header.Get("Authorization") == "" {
			writeJSON(http.StatusUnauthorized, map[string]string{"message": "Missing authorization token"})
			return
		}
		writeJSON(http.StatusOK, f.userBody)
	case r.Method == "GET" && r.URL.Path == "/courses/published":
		writeJSON(http.StatusOK, f.publishedCourses)
	case r.Method == "GET" && len(seg) == 3 && seg[0] == "courses" && seg[1] == "instructor":
		if f.instructorCoursesStatus >= 400 {
			writeJSON(f.instructorCoursesStatus, map[string]string{"message": "Invalid or expired token"})
			return
		}
		writeJSON(http.StatusOK, f.instructorCourses)
	case r.Method == "POST" && r.URL.Path == "/courses":
		writeJSON(http.StatusCreated, f.createdCourse)
	case len(seg) == 3 && seg[0] == "courses" && seg[1] == "sessions":
		writeJSON(http.StatusOK, f.sessionDetail)
	case r.Method == "GET" && len(seg) == 3 && seg[0] == "courses" && seg[2] == "sessions":
		writeJSON(http.StatusOK, f.courseSessions)
	case r.Method == "POST" && len(seg) == 3 && seg[0] == "courses" && seg[2] == "sessions":
		writeJSON(http.StatusCreated, f.sessionDetail)
	case r.Method == "GET" && len(seg) == 4 && seg[0] == "courses" && seg[2] == "sessions":
		writeJSON(http.StatusOK, f.sessionDetail)
	case len(seg) == 2 && seg[0] == "courses":
		if f.courseStatus >= 400 {
			writeJSON(f.courseStatus, map[string]string{"message": "Invalid or expired token"})
			return
		}
		writeJSON(http.StatusOK, models.Course{ID: 1, Title: "Course"})
	case r.Method == "POST" && r.URL.Path == "/enrollments":
		writeJSON(http.StatusCreated, nil)
	case r.Method == "GET" && len(seg) == 3 && seg[0] == "enrollments":
		writeJSON(http.StatusOK, f.enrollments)
	case r.Method == "GET" && len(seg) == 3 && seg[0] == "dashboard":
		writeJSON(http.StatusOK, f.dashboard)
	case r.Method == "POST" && strings.HasSuffix(r.URL.Path, "/complete"):
		writeJSON(http.StatusOK, nil)
	case r.Method == "POST" && strings.HasSuffix(r.URL.Path, "/rating"):
		if f.ratingConflict {
			writeJSON(http.StatusConflict, map[string]string{"message": "Rating already exists"})
			return
		}
		writeJSON(http.StatusCreated, nil)
	case r.Method == "GET" && strings.HasSuffix(r.URL.Path, "/rating"):
		writeJSON(http.StatusOK, models.RatingStatus{})
	default:
		writeJSON(http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

func newTestApp(f *fakePlatform) *fiber.App {
	cfg := &config.Config{
		PlatformURL:     f.server.URL,
		SessionSecret:   "testsecret",
		SessionTTLHours: 1,
	}
	api := platform.NewClient(f.server.URL, 5*time.Second)
	sessions := session.NewManager(cfg.SessionSecret, time.Hour)

	app := fiber.New()
	routes.SetupRoutes(app, api, sessions, cfg)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// login drives the real login flow against the fake platform and returns
// the session cookie for follow-up requests.
func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	req := jsonRequest("POST", "/auth/login",
		`{"email":"user@example.com","password":"password123"}`)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("session cookie was not set")
	return nil
}

// requireSessionCleared asserts the response carries an expired, emptied
// session cookie, i.e. the browser session was invalidated.
func requireSessionCleared(t *testing.T, resp *http.Response) {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			assert.Empty(t, cookie.Value)
			assert.True(t, cookie.Expires.Before(time.Now()), "session cookie must be expired")
			return
		}
	}
	t.Fatal("session cookie was not cleared")
}

type envelope struct {
	Success  bool                       `json:"success"`
	Data     map[string]json.RawMessage `json:"data"`
	Notice   *utils.Notice              `json:"notice"`
	Error    string                     `json:"error"`
	Message  string                     `json:"message"`
	Redirect string                     `json:"redirect"`
	Details  map[string]string          `json:"details"`
}

func decodeBody(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func dataString(t *testing.T, body envelope, key string) string {
	t.Helper()
	var value string
	require.NoError(t, json.Unmarshal(body.Data[key], &value))
	return value
}

func decodeData(t *testing.T, body envelope, key string, out interface{}) {
	t.Helper()
	require.Contains(t, body.Data, key)
	require.NoError(t, json.Unmarshal(body.Data[key], out))
}

func dataBool(t *testing.T, body envelope, key string) bool {
	t.Helper()
	var value bool
	require.NoError(t, json.Unmarshal(body.Data[key], &value))
	return value
}
