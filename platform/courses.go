package platform

import (
	"context"
	"fmt"

	"learnhub-web/models"
)

func (c *Client) PublishedCourses(ctx context.Context, token string) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, "GET", "/courses/published", token, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) CoursesByInstructor(ctx context.Context, token string, instructorID int) ([]models.Course, error) {
	var courses []models.Course
	path := fmt.Sprintf("/courses/instructor/%d", instructorID)
	if err := c.do(ctx, "GET", path, token, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) CourseByID(ctx context.Context, token string, courseID int) (*models.Course, error) {
	var course models.Course
	path := fmt.Sprintf("/courses/%d", courseID)
	if err := c.do(ctx, "GET", path, token, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse returns the upstream's echoed entity so lists always show
// server-assigned fields (ids in particular), never the submitted form data.
func (c *Client) CreateCourse(ctx context.Context, token string, input models.CourseInput) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, "POST", "/courses", token, input, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, token string, courseID int, input models.CourseInput) (*models.Course, error) {
	var course models.Course
	path := fmt.Sprintf("/courses/%d", courseID)
	if err := c.do(ctx, "PUT", path, token, input, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) DeleteCourse(ctx context.Context, token string, courseID int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/courses/%d", courseID), token, nil, nil)
}

func (c *Client) Sessions(ctx context.Context, token string, courseID int) ([]models.CourseSession, error) {
	var sessions []models.CourseSession
	path := fmt.Sprintf("/courses/%d/sessions", courseID)
	if err := c.do(ctx, "GET", path, token, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) SessionByID(ctx context.Context, token string, courseID, sessionID int) (*models.CourseSession, error) {
	var session models.CourseSession
	path := fmt.Sprintf("/courses/%d/sessions/%d", courseID, sessionID)
	if err := c.do(ctx, "GET", path, token, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) CreateSession(ctx context.Context, token string, courseID int, input models.SessionInput) (*models.CourseSession, error) {
	var session models.CourseSession
	path := fmt.Sprintf("/courses/%d/sessions", courseID)
	if err := c.do(ctx, "POST", path, token, input, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Session updates and deletes address the session directly, not through its
// course; that is how the platform routes them.
func (c *Client) UpdateSession(ctx context.Context, token string, sessionID int, input models.SessionInput) (*models.CourseSession, error) {
	var session models.CourseSession
	path := fmt.Sprintf("/courses/sessions/%d", sessionID)
	if err := c.do(ctx, "PUT", path, token, input, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) DeleteSession(ctx context.Context, token string, sessionID int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/courses/sessions/%d", sessionID), token, nil, nil)
}
