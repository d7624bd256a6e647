package platform

import (
	"context"
	"fmt"

	"learnhub-web/models"
)

// StudentDashboard returns the per-course progress array for the student:
// one record per enrolled course with completed session ids and the total.
func (c *Client) StudentDashboard(ctx context.Context, token string, studentID int) ([]models.CourseProgress, error) {
	var records []models.CourseProgress
	path := fmt.Sprintf("/dashboard/student/%d", studentID)
	if err := c.do(ctx, "GET", path, token, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CompleteSession(ctx context.Context, token string, studentID, courseID, sessionID int) error {
	path := fmt.Sprintf("/dashboard/student/%d/courses/%d/sessions/%d/complete",
		studentID, courseID, sessionID)
	return c.do(ctx, "POST", path, token, nil, nil)
}

// SubmitRating sends the one-time 1-5 rating. A duplicate comes back as
// ErrConflict, which callers treat as "already rated" rather than a failure.
func (c *Client) SubmitRating(ctx context.Context, token string, studentID, courseID, sessionID, rating int) error {
	path := fmt.Sprintf("/dashboard/student/%d/courses/%d/sessions/%d/rating",
		studentID, courseID, sessionID)
	body := map[string]int{"rating": rating}
	return c.do(ctx, "POST", path, token, body, nil)
}

func (c *Client) RatingStatus(ctx context.Context, token string, studentID, courseID, sessionID int) (*models.RatingStatus, error) {
	path := fmt.Sprintf("/dashboard/student/%d/courses/%d/sessions/%d/rating",
		studentID, courseID, sessionID)
	var status models.RatingStatus
	if err := c.do(ctx, "GET", path, token, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
