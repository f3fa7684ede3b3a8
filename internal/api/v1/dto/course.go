package dto

import "courseplanner/internal/model"

// CourseCreateDTO is used for incoming course creation requests
type CourseCreateDTO struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Instructor  *string `json:"instructor,omitempty"`
	Semester    string  `json:"semester"`
	Credits     *int    `json:"credits,omitempty" validate:"omitempty,gte=0"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

// CourseUpdateDTO is used for incoming course update requests. Absent fields
// are left untouched; present fields (including empty strings) overwrite.
type CourseUpdateDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Instructor  *string `json:"instructor,omitempty"`
	Semester    *string `json:"semester,omitempty"`
	Credits     *int    `json:"credits,omitempty" validate:"omitempty,gte=0"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

// CourseListDTO is the list-with-count envelope for course queries
type CourseListDTO struct {
	Courses []model.Course `json:"courses"`
	Count   int            `json:"count"`
}
