package model

// Assignment is a child item of a Course. Its partition is the parent course,
// so the courseId field must always match the PK it is stored under.
type Assignment struct {
	PK           string `dynamodbav:"PK" json:"-"`
	SK           string `dynamodbav:"SK" json:"-"`
	AssignmentID string `dynamodbav:"assignmentId" json:"assignmentId"`
	CourseID     string `dynamodbav:"courseId" json:"courseId"`
	Title        string `dynamodbav:"title" json:"title"`
	Description  string `dynamodbav:"description" json:"description"`
	DueDate      string `dynamodbav:"dueDate" json:"dueDate"`
	Status       string `dynamodbav:"status" json:"status"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}
