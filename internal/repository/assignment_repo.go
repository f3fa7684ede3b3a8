package repository

import (
	"context"
	"fmt"

	"courseplanner/internal/model"
	"courseplanner/internal/store"
)

// AssignmentRepository defines the interface for interacting with assignment data
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, a *model.Assignment) error
	// UpdateAssignment applies a partial update. The parent courseId is
	// required to address the partition; the assignment id alone cannot
	// locate the item.
	UpdateAssignment(ctx context.Context, courseID, assignmentID string, ub *store.UpdateBuilder) (*model.Assignment, error)
	GetAssignmentsByCourseID(ctx context.Context, courseID string) ([]model.Assignment, error)
}

type assignmentRepo struct {
	store *store.Store
	table string
}

// NewAssignmentRepo creates a new AssignmentRepository
func NewAssignmentRepo(s *store.Store, table string) AssignmentRepository {
	return &assignmentRepo{store: s, table: table}
}

func (r *assignmentRepo) CreateAssignment(ctx context.Context, a *model.Assignment) error {
	a.PK = model.CoursePK(a.CourseID)
	a.SK = model.AssignmentSK(a.AssignmentID)
	if err := r.store.Put(ctx, r.table, a); err != nil {
		return fmt.Errorf("creating assignment: %w", err)
	}
	return nil
}

func (r *assignmentRepo) UpdateAssignment(ctx context.Context, courseID, assignmentID string, ub *store.UpdateBuilder) (*model.Assignment, error) {
	key := store.Key{PK: model.CoursePK(courseID), SK: model.AssignmentSK(assignmentID)}
	var updated model.Assignment
	if err := r.store.Update(ctx, r.table, key, ub, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *assignmentRepo) GetAssignmentsByCourseID(ctx context.Context, courseID string) ([]model.Assignment, error) {
	assignments := []model.Assignment{}
	if err := r.store.QueryPrefix(ctx, r.table, model.CoursePK(courseID), model.AssignmentKeyPrefix, &assignments); err != nil {
		return nil, fmt.Errorf("listing assignments for course %s: %w", courseID, err)
	}
	return assignments, nil
}
