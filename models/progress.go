package models

// Enrollment links a student to a course. Create and read only: the platform
// defines no unenroll operation.
type Enrollment struct {
	ID        int    `json:"id"`
	StudentID int    `json:"studentId"`
	CourseID  int    `json:"courseId"`
	Course    Course `json:"course"`
}

// CourseProgress is the per student-course completion record from the
// dashboard resource. CompletedSessions only ever grows during a session;
// there is no un-complete.
type CourseProgress struct {
	CourseID          int   `json:"courseId"`
	CompletedSessions []int `json:"completedSessions"`
	TotalSessions     int   `json:"totalSessions"`
}

func (p CourseProgress) Completed(sessionID int) bool {
	for _, id := range p.CompletedSessions {
		if id == sessionID {
			return true
		}
	}
	return false
}

// ProgressFor returns the record for the given course, or a zero record when
// the student has no progress there yet.
func ProgressFor(records []CourseProgress, courseID int) CourseProgress {
	for _, r := range records {
		if r.CourseID == courseID {
			return r
		}
	}
	return CourseProgress{CourseID: courseID}
}

// RatingInput is the student-submitted one-time rating for a session.
type RatingInput struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// RatingStatus is the upstream answer to a rating-status lookup.
type RatingStatus struct {
	Rated  bool `json:"rated"`
	Rating int  `json:"rating,omitempty"`
}
