package model

// Course represents a course owned by a single user. isPublic is stored as
// the string "true"/"false" because the PublicCoursesIndex GSI keys on it.
type Course struct {
	PK          string `dynamodbav:"PK" json:"-"`
	SK          string `dynamodbav:"SK" json:"-"`
	CourseID    string `dynamodbav:"courseId" json:"courseId"`
	UserID      string `dynamodbav:"userId" json:"userId"`
	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description" json:"description"`
	Instructor  string `dynamodbav:"instructor" json:"instructor"`
	Semester    string `dynamodbav:"semester" json:"semester"`
	Credits     int    `dynamodbav:"credits" json:"credits"`
	IsPublic    string `dynamodbav:"isPublic" json:"isPublic"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt   string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// BoolString converts a boolean into the canonical stored form of isPublic.
func BoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
