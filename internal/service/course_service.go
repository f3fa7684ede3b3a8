package service

import (
	"context"
	"fmt"

	"courseplanner/internal/api/v1/dto"
	"courseplanner/internal/model"
	"courseplanner/internal/repository"
	"courseplanner/internal/store"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

const publicCatalogCacheKey = "public_catalog"

// CourseService defines course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, userID string, req dto.CourseCreateDTO) (*model.Course, error)
	// UpdateCourse applies a sparse update; an empty update still succeeds
	// and only advances updatedAt.
	UpdateCourse(ctx context.Context, userID, courseID string, req dto.CourseUpdateDTO) (*model.Course, error)
	GetCoursesByUserID(ctx context.Context, userID string) ([]model.Course, error)
	GetPublicCatalog(ctx context.Context) ([]model.Course, error)
	DeleteCourse(ctx context.Context, userID, courseID string) error
}

type courseService struct {
	repo   repository.CourseRepository
	cache  *gocache.Cache
	logger zerolog.Logger
	now    func() string
}

// NewCourseService creates a new CourseService. The cache holds the public
// catalog for its default expiration interval.
func NewCourseService(repo repository.CourseRepository, cache *gocache.Cache, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:   repo,
		cache:  cache,
		logger: logger.With().Str("service", "CourseService").Logger(),
		now:    model.NowISO,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, userID string, req dto.CourseCreateDTO) (*model.Course, error) {
	if req.Title == "" || req.Semester == "" {
		return nil, NewValidationError("Missing required fields: title and semester")
	}

	now := s.now()
	course := &model.Course{
		CourseID:    uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: strOrEmpty(req.Description),
		Instructor:  strOrEmpty(req.Instructor),
		Semester:    req.Semester,
		Credits:     intOrZero(req.Credits),
		IsPublic:    model.BoolString(req.IsPublic != nil && *req.IsPublic),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create course")
		return nil, fmt.Errorf("creating course: %w", err)
	}
	return course, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, userID, courseID string, req dto.CourseUpdateDTO) (*model.Course, error) {
	ub := store.NewUpdate()
	if req.Title != nil {
		ub.Set("title", *req.Title)
	}
	if req.Description != nil {
		ub.Set("description", *req.Description)
	}
	if req.Instructor != nil {
		ub.Set("instructor", *req.Instructor)
	}
	if req.Semester != nil {
		ub.Set("semester", *req.Semester)
	}
	if req.Credits != nil {
		ub.Set("credits", *req.Credits)
	}
	if req.IsPublic != nil {
		ub.Set("isPublic", model.BoolString(*req.IsPublic))
	}
	// updatedAt always advances, even when no other field changed.
	ub.Set("updatedAt", s.now())

	updated, err := s.repo.UpdateCourse(ctx, userID, courseID, ub)
	if err != nil {
		if err == store.ErrItemNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to update course")
		return nil, fmt.Errorf("updating course %s: %w", courseID, err)
	}
	s.cache.Delete(publicCatalogCacheKey)
	return updated, nil
}

func (s *courseService) GetCoursesByUserID(ctx context.Context, userID string) ([]model.Course, error) {
	courses, err := s.repo.GetCoursesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// GetPublicCatalog returns the published courses, served from a short-lived
// in-process cache between store round trips.
func (s *courseService) GetPublicCatalog(ctx context.Context) ([]model.Course, error) {
	if cached, ok := s.cache.Get(publicCatalogCacheKey); ok {
		return cached.([]model.Course), nil
	}
	courses, err := s.repo.GetPublicCourses(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load public catalog")
		return nil, fmt.Errorf("loading public catalog: %w", err)
	}
	if courses == nil {
		courses = []model.Course{}
	}
	s.cache.Set(publicCatalogCacheKey, courses, gocache.DefaultExpiration)
	return courses, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, userID, courseID string) error {
	if err := s.repo.DeleteCourse(ctx, userID, courseID); err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to delete course")
		return fmt.Errorf("deleting course %s: %w", courseID, err)
	}
	s.cache.Delete(publicCatalogCacheKey)
	return nil
}

func strOrEmpty(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func intOrZero(i *int) int {
	if i != nil {
		return *i
	}
	return 0
}
