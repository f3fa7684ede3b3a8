package handler

import (
	"net/http"

	"courseplanner/internal/api/v1/dto"
	"courseplanner/internal/service"

	"github.com/rs/zerolog"
)

// PublicHandler serves the unauthenticated read-only catalog
type PublicHandler struct {
	courseService service.CourseService
	logger        zerolog.Logger
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(courseService service.CourseService, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{courseService: courseService, logger: logger}
}

// RegisterRoutes mounts the public catalog route (no auth middleware)
func (h *PublicHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /public/catalog", http.HandlerFunc(h.getCatalog))
}

// getCatalog godoc
// @Summary List public courses
// @Description Returns every course published to the public catalog.
// @Tags public
// @Produce json
// @Success 200 {object} dto.CourseListDTO
// @Router /public/catalog [get]
func (h *PublicHandler) getCatalog(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.GetPublicCatalog(r.Context())
	if err != nil {
		writeServiceError(w, err, "Course not found", "Failed to get public catalog")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=10")
	writeJSON(w, http.StatusOK, dto.CourseListDTO{Courses: courses, Count: len(courses)})
}
