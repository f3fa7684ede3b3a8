package dto

import "courseplanner/internal/model"

// AssignmentCreateDTO is used for incoming assignment creation requests
type AssignmentCreateDTO struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     string  `json:"dueDate"`
	Status      *string `json:"status,omitempty"`
}

// AssignmentUpdateDTO is used for incoming assignment update requests.
// CourseID addresses the parent partition; the assignment id alone cannot
// locate the item.
type AssignmentUpdateDTO struct {
	CourseID    string  `json:"courseId"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// AssignmentListDTO is the list-with-count envelope for assignment queries
type AssignmentListDTO struct {
	Assignments []model.Assignment `json:"assignments"`
	Count       int                `json:"count"`
}
