package models

// Course as served by the platform API. Sessions are the learning units
// nested under the course, ordered by the upstream.
type Course struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	InstructorID int             `json:"instructorId,omitempty"`
	Sessions     []CourseSession `json:"sessions,omitempty"`
}

// CourseSession is a learning unit (video plus explanation) belonging to
// exactly one course. Not to be confused with the auth session.
type CourseSession struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"courseId,omitempty"`
	Title       string `json:"title"`
	VideoLink   string `json:"videoLink"`
	Explanation string `json:"explanation"`
}

// CourseInput is the instructor-submitted course form. Every field except
// the image is required before any upstream call is attempted.
type CourseInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"imageUrl"`
}

// SessionInput is the instructor-submitted session form.
type SessionInput struct {
	Title       string `json:"title" validate:"required"`
	VideoLink   string `json:"videoLink" validate:"required"`
	Explanation string `json:"explanation" validate:"required"`
}
