package service

import (
	"context"
	"fmt"

	"courseplanner/internal/api/v1/dto"
	"courseplanner/internal/model"
	"courseplanner/internal/repository"
	"courseplanner/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FileService defines file-metadata and presigned-URL operations
type FileService interface {
	// InitiateUpload records file metadata and returns a presigned URL the
	// client PUTs the bytes to. The metadata exists before the object does.
	InitiateUpload(ctx context.Context, courseID string, req dto.FileUploadDTO) (*model.FileMetadata, string, error)
	// GetDownloadURL resolves a file by id and mints a presigned GET URL.
	GetDownloadURL(ctx context.Context, fileID string) (*model.FileMetadata, string, error)
	GetFilesByCourseID(ctx context.Context, courseID string) ([]model.FileMetadata, error)
}

type fileService struct {
	repo      repository.FileRepository
	presigner storage.Presigner
	logger    zerolog.Logger
	now       func() string
}

// NewFileService creates a new FileService
func NewFileService(repo repository.FileRepository, presigner storage.Presigner, logger zerolog.Logger) FileService {
	return &fileService{
		repo:      repo,
		presigner: presigner,
		logger:    logger.With().Str("service", "FileService").Logger(),
		now:       model.NowISO,
	}
}

func (s *fileService) InitiateUpload(ctx context.Context, courseID string, req dto.FileUploadDTO) (*model.FileMetadata, string, error) {
	if req.FileName == "" || req.FileType == "" {
		return nil, "", NewValidationError("Missing required fields: fileName and fileType")
	}

	fileID := uuid.NewString()
	fileKey := model.ObjectKey(courseID, fileID, req.FileName)

	uploadURL, err := s.presigner.PresignUpload(ctx, fileKey, req.FileType)
	if err != nil {
		s.logger.Error().Err(err).Str("file_key", fileKey).Msg("Failed to presign upload")
		return nil, "", fmt.Errorf("generating upload URL: %w", err)
	}

	var size int64
	if req.FileSize != nil {
		size = *req.FileSize
	}
	meta := &model.FileMetadata{
		FileID:     fileID,
		CourseID:   courseID,
		FileName:   req.FileName,
		FileKey:    fileKey,
		FileSize:   size,
		MimeType:   req.FileType,
		UploadedAt: s.now(),
	}
	if err := s.repo.CreateFile(ctx, meta); err != nil {
		s.logger.Error().Err(err).Str("file_id", fileID).Msg("Failed to store file metadata")
		return nil, "", fmt.Errorf("storing file metadata: %w", err)
	}
	return meta, uploadURL, nil
}

func (s *fileService) GetDownloadURL(ctx context.Context, fileID string) (*model.FileMetadata, string, error) {
	meta, err := s.repo.GetFileByID(ctx, fileID)
	if err != nil {
		return nil, "", err
	}
	downloadURL, err := s.presigner.PresignDownload(ctx, meta.FileKey)
	if err != nil {
		s.logger.Error().Err(err).Str("file_id", fileID).Msg("Failed to presign download")
		return nil, "", fmt.Errorf("generating download URL: %w", err)
	}
	return meta, downloadURL, nil
}

func (s *fileService) GetFilesByCourseID(ctx context.Context, courseID string) ([]model.FileMetadata, error) {
	files, err := s.repo.GetFilesByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []model.FileMetadata{}
	}
	return files, nil
}
