package service

import (
	"context"
	"fmt"

	"courseplanner/internal/api/v1/dto"
	"courseplanner/internal/model"
	"courseplanner/internal/repository"
	"courseplanner/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AssignmentService defines assignment-related operations
type AssignmentService interface {
	CreateAssignment(ctx context.Context, courseID string, req dto.AssignmentCreateDTO) (*model.Assignment, error)
	// UpdateAssignment applies a sparse update. Unlike courses, an update
	// with zero changed fields fails with store.ErrNoFieldsToUpdate.
	UpdateAssignment(ctx context.Context, assignmentID string, req dto.AssignmentUpdateDTO) (*model.Assignment, error)
	GetAssignmentsByCourseID(ctx context.Context, courseID string) ([]model.Assignment, error)
}

type assignmentService struct {
	repo   repository.AssignmentRepository
	logger zerolog.Logger
	now    func() string
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(repo repository.AssignmentRepository, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		repo:   repo,
		logger: logger.With().Str("service", "AssignmentService").Logger(),
		now:    model.NowISO,
	}
}

func (s *assignmentService) CreateAssignment(ctx context.Context, courseID string, req dto.AssignmentCreateDTO) (*model.Assignment, error) {
	if req.Title == "" || req.DueDate == "" {
		return nil, NewValidationError("Missing required fields: title and dueDate")
	}

	status := "pending"
	if req.Status != nil {
		status = *req.Status
	}
	assignment := &model.Assignment{
		AssignmentID: uuid.NewString(),
		CourseID:     courseID,
		Title:        req.Title,
		Description:  strOrEmpty(req.Description),
		DueDate:      req.DueDate,
		Status:       status,
		CreatedAt:    s.now(),
	}
	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to create assignment")
		return nil, fmt.Errorf("creating assignment: %w", err)
	}
	return assignment, nil
}

func (s *assignmentService) UpdateAssignment(ctx context.Context, assignmentID string, req dto.AssignmentUpdateDTO) (*model.Assignment, error) {
	if req.CourseID == "" {
		return nil, NewValidationError("courseId required in body")
	}

	ub := store.NewUpdate()
	if req.Title != nil {
		ub.Set("title", *req.Title)
	}
	if req.Description != nil {
		ub.Set("description", *req.Description)
	}
	if req.DueDate != nil {
		ub.Set("dueDate", *req.DueDate)
	}
	if req.Status != nil {
		ub.Set("status", *req.Status)
	}
	// Assignments carry no updatedAt, so an empty change set has nothing to
	// write and is rejected rather than silently succeeding.
	if ub.Len() == 0 {
		return nil, store.ErrNoFieldsToUpdate
	}

	updated, err := s.repo.UpdateAssignment(ctx, req.CourseID, assignmentID, ub)
	if err != nil {
		if err == store.ErrItemNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("assignment_id", assignmentID).Msg("Failed to update assignment")
		return nil, fmt.Errorf("updating assignment %s: %w", assignmentID, err)
	}
	return updated, nil
}

func (s *assignmentService) GetAssignmentsByCourseID(ctx context.Context, courseID string) ([]model.Assignment, error) {
	assignments, err := s.repo.GetAssignmentsByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []model.Assignment{}
	}
	return assignments, nil
}
