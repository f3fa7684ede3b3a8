package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courseplanner/internal/logger"
	"courseplanner/internal/middleware"
	"courseplanner/internal/model"
	"courseplanner/internal/service"
	"courseplanner/internal/store"

	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Repo fakes. Handlers are tested end to end through the mux with real
// services so the response contract matches what the wire actually carries.

type fakeCourseRepo struct {
	courses       []model.Course
	publicCourses []model.Course
	updateErr     error
	err           error
}

func (f *fakeCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error { return f.err }

func (f *fakeCourseRepo) UpdateCourse(ctx context.Context, userID, courseID string, ub *store.UpdateBuilder) (*model.Course, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &model.Course{CourseID: courseID, UserID: userID}, nil
}

func (f *fakeCourseRepo) GetCoursesByUserID(ctx context.Context, userID string) ([]model.Course, error) {
	return f.courses, f.err
}

func (f *fakeCourseRepo) GetPublicCourses(ctx context.Context) ([]model.Course, error) {
	return f.publicCourses, f.err
}

func (f *fakeCourseRepo) DeleteCourse(ctx context.Context, userID, courseID string) error {
	return f.err
}

type fakeAssignmentRepo struct {
	assignments []model.Assignment
	updateErr   error
	err         error
}

func (f *fakeAssignmentRepo) CreateAssignment(ctx context.Context, a *model.Assignment) error {
	return f.err
}

func (f *fakeAssignmentRepo) UpdateAssignment(ctx context.Context, courseID, assignmentID string, ub *store.UpdateBuilder) (*model.Assignment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &model.Assignment{AssignmentID: assignmentID, CourseID: courseID}, nil
}

func (f *fakeAssignmentRepo) GetAssignmentsByCourseID(ctx context.Context, courseID string) ([]model.Assignment, error) {
	return f.assignments, f.err
}

type fakeFileRepo struct {
	files []model.FileMetadata
	byID  *model.FileMetadata
	err   error
}

func (f *fakeFileRepo) CreateFile(ctx context.Context, m *model.FileMetadata) error { return f.err }

func (f *fakeFileRepo) GetFilesByCourseID(ctx context.Context, courseID string) ([]model.FileMetadata, error) {
	return f.files, f.err
}

func (f *fakeFileRepo) GetFileByID(ctx context.Context, fileID string) (*model.FileMetadata, error) {
	if f.byID == nil {
		return nil, store.ErrItemNotFound
	}
	return f.byID, nil
}

type fakePresigner struct{ err error }

func (f *fakePresigner) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	return "https://bucket.example/upload/" + key, f.err
}

func (f *fakePresigner) PresignDownload(ctx context.Context, key string) (string, error) {
	return "https://bucket.example/download/" + key, f.err
}

// stubAuth injects a fixed user without requiring a token.
func stubAuth(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestMux(courseRepo *fakeCourseRepo, assignmentRepo *fakeAssignmentRepo, fileRepo *fakeFileRepo) *http.ServeMux {
	log := logger.New()
	validate := validator.New(validator.WithRequiredStructEnabled())
	cache := gocache.New(time.Minute, time.Minute)

	courseSvc := service.NewCourseService(courseRepo, cache, log)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, log)
	fileSvc := service.NewFileService(fileRepo, &fakePresigner{}, log)

	mux := http.NewServeMux()
	auth := stubAuth("u1")
	NewCourseHandler(courseSvc, validate, log).RegisterRoutes(mux, auth)
	NewAssignmentHandler(assignmentSvc, validate, log).RegisterRoutes(mux, auth)
	NewFileHandler(fileSvc, validate, log).RegisterRoutes(mux, auth)
	NewPublicHandler(courseSvc, log).RegisterRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "response must be JSON: %s", rec.Body.String())
	return rec, decoded
}

func TestCreateCourseReturnsDefaults(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPost, "/courses", `{"title":"Algorithms","semester":"Fall 2024"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Algorithms", body["title"])
	assert.Equal(t, float64(0), body["credits"])
	assert.Equal(t, "false", body["isPublic"])
	assert.Equal(t, "", body["description"])
	assert.Equal(t, "u1", body["userId"])
	assert.Equal(t, body["createdAt"], body["updatedAt"])
	assert.NotEmpty(t, body["courseId"])
}

func TestCreateCourseMissingFields(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPost, "/courses", `{"title":"Algorithms"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields: title and semester", body["error"])
}

func TestCreateCourseStorageFailureIsServerError(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{err: errors.New("throughput exceeded")}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPost, "/courses", `{"title":"Algorithms","semester":"Fall 2024"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create course", body["error"])
	assert.Contains(t, body["message"], "throughput exceeded")
}

func TestUpdateCourseEmptyBodySucceeds(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPut, "/courses/c1", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", body["courseId"])
}

func TestUpdateCourseUnknownCourseIs404(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{updateErr: store.ErrItemNotFound}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPut, "/courses/missing", `{"title":"x"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course not found", body["error"])
}

func TestUpdateAssignmentWithoutCourseID(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPut, "/assignments/abc123", `{"status":"completed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "courseId required in body", body["error"])
}

func TestUpdateAssignmentWithNoFields(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPut, "/assignments/abc123", `{"courseId":"c1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No fields to update", body["error"])
}

func TestListAssignmentsEmptyCourse(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodGet, "/courses/c1/assignments", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.NotNil(t, body["assignments"])
	assert.Empty(t, body["assignments"])
}

func TestInitiateUploadReturnsCapability(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPost, "/courses/c1/files/upload",
		`{"fileName":"syllabus.pdf","fileType":"application/pdf"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["uploadUrl"])
	assert.NotEmpty(t, body["fileId"])
	fileKey, _ := body["fileKey"].(string)
	assert.True(t, strings.HasPrefix(fileKey, "courses/c1/"), "fileKey %q must live under the course prefix", fileKey)
	assert.True(t, strings.HasSuffix(fileKey, "-syllabus.pdf"))
}

func TestInitiateUploadMissingFields(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPost, "/courses/c1/files/upload", `{"fileName":"syllabus.pdf"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields: fileName and fileType", body["error"])
}

func TestGetFileURLUnknownFile(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodGet, "/files/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "File not found", body["error"])
}

func TestGetFileURLResolvesMetadata(t *testing.T) {
	fileRepo := &fakeFileRepo{byID: &model.FileMetadata{
		FileID:   "f1",
		FileKey:  "courses/c1/f1-syllabus.pdf",
		FileName: "syllabus.pdf",
		MimeType: "application/pdf",
		FileSize: 2048,
	}}
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, fileRepo)

	rec, body := doJSON(t, mux, http.MethodGet, "/files/f1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://bucket.example/download/courses/c1/f1-syllabus.pdf", body["downloadUrl"])
	assert.Equal(t, "syllabus.pdf", body["fileName"])
	assert.Equal(t, "application/pdf", body["mimeType"])
	assert.Equal(t, float64(2048), body["fileSize"])
}

func TestPublicCatalogIsCacheableAndUnauthenticated(t *testing.T) {
	courseRepo := &fakeCourseRepo{publicCourses: []model.Course{
		{CourseID: "c1", Title: "Algorithms", IsPublic: "true"},
	}}
	mux := newTestMux(courseRepo, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodGet, "/public/catalog", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=10", rec.Header().Get("Cache-Control"))
	assert.Equal(t, float64(1), body["count"])
}

func TestPublicCatalogEmpty(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{publicCourses: []model.Course{}}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodGet, "/public/catalog", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.NotNil(t, body["courses"])
}

func TestInvalidJSONPayload(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPost, "/courses", `{"title": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON payload", body["error"])
}

func TestCreateCourseRejectsNegativeCredits(t *testing.T) {
	mux := newTestMux(&fakeCourseRepo{}, &fakeAssignmentRepo{}, &fakeFileRepo{})

	rec, body := doJSON(t, mux, http.MethodPost, "/courses",
		`{"title":"Algorithms","semester":"Fall 2024","credits":-3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "Validation failed")
}
