package handler

import (
	"encoding/json"
	"net/http"

	"courseplanner/internal/api/v1/dto"
	"courseplanner/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// FileHandler handles file-metadata and presigned-URL endpoints
type FileHandler struct {
	fileService service.FileService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileService service.FileService, validate *validator.Validate, logger zerolog.Logger) *FileHandler {
	return &FileHandler{fileService: fileService, validate: validate, logger: logger}
}

// RegisterRoutes mounts file routes
func (h *FileHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /courses/{courseId}/files/upload", authMw(http.HandlerFunc(h.initiateUpload)))
	mux.Handle("GET /courses/{courseId}/files", authMw(http.HandlerFunc(h.listFiles)))
	mux.Handle("GET /files/{fileId}", authMw(http.HandlerFunc(h.getFileURL)))
}

// initiateUpload godoc
// @Summary Request an upload URL
// @Description Records file metadata and returns a presigned URL the client
// PUTs the raw bytes to.
// @Tags files
// @Accept json
// @Produce json
// @Success 200 {object} dto.FileUploadResponseDTO
// @Router /courses/{courseId}/files/upload [post]
func (h *FileHandler) initiateUpload(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseId")
	var req dto.FileUploadDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error(), "")
		return
	}
	meta, uploadURL, err := h.fileService.InitiateUpload(r.Context(), courseID, req)
	if err != nil {
		writeServiceError(w, err, "File not found", "Failed to generate upload URL")
		return
	}
	writeJSON(w, http.StatusOK, dto.FileUploadResponseDTO{
		UploadURL: uploadURL,
		FileID:    meta.FileID,
		FileKey:   meta.FileKey,
		Message:   "Use the uploadUrl to PUT your file",
	})
}

// getFileURL godoc
// @Summary Get a download URL
// @Description Resolves a file by id and returns a presigned GET URL.
// @Tags files
// @Produce json
// @Success 200 {object} dto.FileDownloadResponseDTO
// @Router /files/{fileId} [get]
func (h *FileHandler) getFileURL(w http.ResponseWriter, r *http.Request) {
	fileID := r.PathValue("fileId")
	meta, downloadURL, err := h.fileService.GetDownloadURL(r.Context(), fileID)
	if err != nil {
		writeServiceError(w, err, "File not found", "Failed to get file URL")
		return
	}
	writeJSON(w, http.StatusOK, dto.FileDownloadResponseDTO{
		DownloadURL: downloadURL,
		FileName:    meta.FileName,
		MimeType:    meta.MimeType,
		FileSize:    meta.FileSize,
	})
}

func (h *FileHandler) listFiles(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseId")
	files, err := h.fileService.GetFilesByCourseID(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, err, "File not found", "Failed to get files")
		return
	}
	writeJSON(w, http.StatusOK, dto.FileListDTO{Files: files, Count: len(files)})
}
