package platform

import (
	"context"
	"fmt"

	"learnhub-web/models"
)

func (c *Client) Enrollments(ctx context.Context, token string, studentID int) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	path := fmt.Sprintf("/enrollments/student/%d", studentID)
	if err := c.do(ctx, "GET", path, token, nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (c *Client) Enroll(ctx context.Context, token string, courseID, studentID int) error {
	body := map[string]int{"courseId": courseID, "studentId": studentID}
	return c.do(ctx, "POST", "/enrollments", token, body, nil)
}
