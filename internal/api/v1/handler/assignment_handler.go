package handler

import (
	"encoding/json"
	"net/http"

	"courseplanner/internal/api/v1/dto"
	"courseplanner/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AssignmentHandler handles assignment-related endpoints
type AssignmentHandler struct {
	assignmentService service.AssignmentService
	validate          *validator.Validate
	logger            zerolog.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(assignmentService service.AssignmentService, validate *validator.Validate, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService, validate: validate, logger: logger}
}

// RegisterRoutes mounts assignment routes
func (h *AssignmentHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /courses/{courseId}/assignments", authMw(http.HandlerFunc(h.createAssignment)))
	mux.Handle("GET /courses/{courseId}/assignments", authMw(http.HandlerFunc(h.listAssignments)))
	mux.Handle("PUT /assignments/{assignmentId}", authMw(http.HandlerFunc(h.updateAssignment)))
}

// createAssignment godoc
// @Summary Create an assignment
// @Description Creates an assignment under the given course.
// @Tags assignments
// @Accept json
// @Produce json
// @Success 201 {object} model.Assignment
// @Router /courses/{courseId}/assignments [post]
func (h *AssignmentHandler) createAssignment(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseId")
	var req dto.AssignmentCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error(), "")
		return
	}
	assignment, err := h.assignmentService.CreateAssignment(r.Context(), courseID, req)
	if err != nil {
		writeServiceError(w, err, "Assignment not found", "Failed to create assignment")
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

// updateAssignment godoc
// @Summary Update an assignment
// @Description Applies a sparse update. The body must carry courseId so the
// parent partition can be addressed.
// @Tags assignments
// @Accept json
// @Produce json
// @Success 200 {object} model.Assignment
// @Router /assignments/{assignmentId} [put]
func (h *AssignmentHandler) updateAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentId")
	var req dto.AssignmentUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error(), "")
		return
	}
	assignment, err := h.assignmentService.UpdateAssignment(r.Context(), assignmentID, req)
	if err != nil {
		writeServiceError(w, err, "Assignment not found", "Failed to update assignment")
		return
	}
	writeJSON(w, http.StatusOK, assignment)
}

func (h *AssignmentHandler) listAssignments(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseId")
	assignments, err := h.assignmentService.GetAssignmentsByCourseID(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, err, "Assignment not found", "Failed to get assignments")
		return
	}
	writeJSON(w, http.StatusOK, dto.AssignmentListDTO{Assignments: assignments, Count: len(assignments)})
}
