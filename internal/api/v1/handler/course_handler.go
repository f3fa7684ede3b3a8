package handler

import (
	"encoding/json"
	"net/http"

	"courseplanner/internal/api/v1/dto"
	"courseplanner/internal/middleware"
	"courseplanner/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /courses", authMw(http.HandlerFunc(h.createCourse)))
	mux.Handle("GET /courses", authMw(http.HandlerFunc(h.listCourses)))
	mux.Handle("PUT /courses/{courseId}", authMw(http.HandlerFunc(h.updateCourse)))
	mux.Handle("DELETE /courses/{courseId}", authMw(http.HandlerFunc(h.deleteCourse)))
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a course owned by the authenticated user.
// @Tags courses
// @Accept json
// @Produce json
// @Success 201 {object} model.Course
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error(), "")
		return
	}
	course, err := h.courseService.CreateCourse(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err, "Course not found", "Failed to create course")
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

// updateCourse godoc
// @Summary Update a course
// @Description Applies a sparse update to the caller's course. An empty body
// still succeeds and only advances updatedAt.
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} model.Course
// @Router /courses/{courseId} [put]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	courseID := r.PathValue("courseId")
	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error(), "")
		return
	}
	course, err := h.courseService.UpdateCourse(r.Context(), userID, courseID, req)
	if err != nil {
		writeServiceError(w, err, "Course not found", "Failed to update course")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	courses, err := h.courseService.GetCoursesByUserID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Course not found", "Failed to get courses")
		return
	}
	writeJSON(w, http.StatusOK, dto.CourseListDTO{Courses: courses, Count: len(courses)})
}

func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	courseID := r.PathValue("courseId")
	if err := h.courseService.DeleteCourse(r.Context(), userID, courseID); err != nil {
		writeServiceError(w, err, "Course not found", "Failed to delete course")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Course deleted"})
}
