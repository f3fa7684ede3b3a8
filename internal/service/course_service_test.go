package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"courseplanner/internal/api/v1/dto"
	"courseplanner/internal/logger"
	"courseplanner/internal/model"
	"courseplanner/internal/store"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseRepo struct {
	created       *model.Course
	updateUserID  string
	updateCourse  string
	updateBuilder *store.UpdateBuilder
	updateErr     error
	userCourses   []model.Course
	publicCourses []model.Course
	publicCalls   int
	deletedCourse string
	err           error
}

func (f *fakeCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	f.created = c
	return f.err
}

func (f *fakeCourseRepo) UpdateCourse(ctx context.Context, userID, courseID string, ub *store.UpdateBuilder) (*model.Course, error) {
	f.updateUserID = userID
	f.updateCourse = courseID
	f.updateBuilder = ub
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &model.Course{CourseID: courseID, UserID: userID}, nil
}

func (f *fakeCourseRepo) GetCoursesByUserID(ctx context.Context, userID string) ([]model.Course, error) {
	return f.userCourses, f.err
}

func (f *fakeCourseRepo) GetPublicCourses(ctx context.Context) ([]model.Course, error) {
	f.publicCalls++
	return f.publicCourses, f.err
}

func (f *fakeCourseRepo) DeleteCourse(ctx context.Context, userID, courseID string) error {
	f.deletedCourse = courseID
	return f.err
}

func newCourseServiceForTest(repo *fakeCourseRepo, ttl time.Duration) *courseService {
	svc := NewCourseService(repo, gocache.New(ttl, time.Minute), logger.New()).(*courseService)
	return svc
}

func TestCreateCourseAppliesDefaults(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := newCourseServiceForTest(repo, time.Minute)

	course, err := svc.CreateCourse(context.Background(), "u1", dto.CourseCreateDTO{
		Title:    "Algorithms",
		Semester: "Fall 2024",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", course.UserID)
	assert.Equal(t, "Algorithms", course.Title)
	assert.Equal(t, "", course.Description)
	assert.Equal(t, "", course.Instructor)
	assert.Equal(t, 0, course.Credits)
	assert.Equal(t, "false", course.IsPublic)
	assert.Equal(t, course.CreatedAt, course.UpdatedAt)

	_, err = uuid.Parse(course.CourseID)
	assert.NoError(t, err, "courseId must be a freshly generated uuid")
	require.NotNil(t, repo.created)
	assert.Same(t, course, repo.created)
}

func TestCreateCourseNormalizesIsPublic(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := newCourseServiceForTest(repo, time.Minute)
	public := true

	course, err := svc.CreateCourse(context.Background(), "u1", dto.CourseCreateDTO{
		Title:    "Databases",
		Semester: "Spring 2025",
		IsPublic: &public,
	})
	require.NoError(t, err)
	assert.Equal(t, "true", course.IsPublic)
}

func TestCreateCourseMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CourseCreateDTO
	}{
		{name: "missing title", req: dto.CourseCreateDTO{Semester: "Fall 2024"}},
		{name: "missing semester", req: dto.CourseCreateDTO{Title: "Algorithms"}},
		{name: "missing both", req: dto.CourseCreateDTO{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newCourseServiceForTest(&fakeCourseRepo{}, time.Minute)
			_, err := svc.CreateCourse(context.Background(), "u1", tt.req)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "Missing required fields: title and semester", ve.Error())
		})
	}
}

func TestUpdateCourseOnlyTouchesSuppliedFields(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := newCourseServiceForTest(repo, time.Minute)
	svc.now = func() string { return "2024-09-01T00:00:00.000Z" }

	title := "Renamed"
	desc := ""
	_, err := svc.UpdateCourse(context.Background(), "u1", "c1", dto.CourseUpdateDTO{
		Title:       &title,
		Description: &desc,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.updateBuilder)
	assert.Equal(t, []string{"title", "description", "updatedAt"}, repo.updateBuilder.Fields())

	v, ok := repo.updateBuilder.Value("description")
	require.True(t, ok)
	assert.Equal(t, "", v, "present-but-empty field still overwrites")
}

func TestUpdateCourseEmptyBodyStillAdvancesUpdatedAt(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := newCourseServiceForTest(repo, time.Minute)
	svc.now = func() string { return "2024-09-01T00:00:00.000Z" }

	_, err := svc.UpdateCourse(context.Background(), "u1", "c1", dto.CourseUpdateDTO{})
	require.NoError(t, err)

	require.NotNil(t, repo.updateBuilder)
	assert.Equal(t, []string{"updatedAt"}, repo.updateBuilder.Fields())
	v, _ := repo.updateBuilder.Value("updatedAt")
	assert.Equal(t, "2024-09-01T00:00:00.000Z", v)
}

func TestUpdateCourseNormalizesIsPublic(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := newCourseServiceForTest(repo, time.Minute)
	public := false

	_, err := svc.UpdateCourse(context.Background(), "u1", "c1", dto.CourseUpdateDTO{IsPublic: &public})
	require.NoError(t, err)

	v, ok := repo.updateBuilder.Value("isPublic")
	require.True(t, ok)
	assert.Equal(t, "false", v)
}

func TestUpdateCourseMissingItemPassesThrough(t *testing.T) {
	repo := &fakeCourseRepo{updateErr: store.ErrItemNotFound}
	svc := newCourseServiceForTest(repo, time.Minute)

	_, err := svc.UpdateCourse(context.Background(), "u1", "missing", dto.CourseUpdateDTO{})
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestGetPublicCatalogServesFromCache(t *testing.T) {
	repo := &fakeCourseRepo{publicCourses: []model.Course{{CourseID: "c1", IsPublic: "true"}}}
	svc := newCourseServiceForTest(repo, time.Minute)

	first, err := svc.GetPublicCatalog(context.Background())
	require.NoError(t, err)
	second, err := svc.GetPublicCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.publicCalls, "second read must come from cache")
}

func TestUpdateCourseInvalidatesCatalogCache(t *testing.T) {
	repo := &fakeCourseRepo{publicCourses: []model.Course{}}
	svc := newCourseServiceForTest(repo, time.Minute)

	_, err := svc.GetPublicCatalog(context.Background())
	require.NoError(t, err)
	_, err = svc.UpdateCourse(context.Background(), "u1", "c1", dto.CourseUpdateDTO{})
	require.NoError(t, err)
	_, err = svc.GetPublicCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.publicCalls)
}

func TestGetPublicCatalogPropagatesFailures(t *testing.T) {
	repo := &fakeCourseRepo{err: errors.New("throughput exceeded")}
	svc := newCourseServiceForTest(repo, time.Minute)

	_, err := svc.GetPublicCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throughput exceeded")
}
