package repository

import (
	"context"
	"fmt"

	"courseplanner/internal/model"
	"courseplanner/internal/store"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	CreateCourse(ctx context.Context, c *model.Course) error
	// UpdateCourse applies a partial update to the caller's course and
	// returns the post-update item.
	UpdateCourse(ctx context.Context, userID, courseID string, ub *store.UpdateBuilder) (*model.Course, error)
	GetCoursesByUserID(ctx context.Context, userID string) ([]model.Course, error)
	GetPublicCourses(ctx context.Context) ([]model.Course, error)
	DeleteCourse(ctx context.Context, userID, courseID string) error
}

type courseRepo struct {
	store       *store.Store
	table       string
	publicIndex string
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(s *store.Store, table, publicIndex string) CourseRepository {
	return &courseRepo{store: s, table: table, publicIndex: publicIndex}
}

func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	c.PK = model.UserPK(c.UserID)
	c.SK = model.CourseSK(c.CourseID)
	if err := r.store.Put(ctx, r.table, c); err != nil {
		return fmt.Errorf("creating course: %w", err)
	}
	return nil
}

func (r *courseRepo) UpdateCourse(ctx context.Context, userID, courseID string, ub *store.UpdateBuilder) (*model.Course, error) {
	key := store.Key{PK: model.UserPK(userID), SK: model.CourseSK(courseID)}
	var updated model.Course
	if err := r.store.Update(ctx, r.table, key, ub, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetCoursesByUserID retrieves all courses owned by the given user
func (r *courseRepo) GetCoursesByUserID(ctx context.Context, userID string) ([]model.Course, error) {
	courses := []model.Course{}
	if err := r.store.QueryPrefix(ctx, r.table, model.UserPK(userID), model.CourseKeyPrefix, &courses); err != nil {
		return nil, fmt.Errorf("listing courses for user %s: %w", userID, err)
	}
	return courses, nil
}

// GetPublicCourses returns every course published to the public catalog. The
// secondary index keys purely on the string "true"/"false" representation.
func (r *courseRepo) GetPublicCourses(ctx context.Context) ([]model.Course, error) {
	courses := []model.Course{}
	if err := r.store.QueryIndex(ctx, r.table, r.publicIndex, "isPublic", "true", &courses); err != nil {
		return nil, fmt.Errorf("listing public courses: %w", err)
	}
	return courses, nil
}

func (r *courseRepo) DeleteCourse(ctx context.Context, userID, courseID string) error {
	key := store.Key{PK: model.UserPK(userID), SK: model.CourseSK(courseID)}
	if err := r.store.Delete(ctx, r.table, key); err != nil {
		return fmt.Errorf("deleting course %s: %w", courseID, err)
	}
	return nil
}
