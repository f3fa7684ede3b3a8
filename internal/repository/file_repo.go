package repository

import (
	"context"
	"fmt"

	"courseplanner/internal/model"
	"courseplanner/internal/store"
)

// FileRepository defines the interface for interacting with file metadata
type FileRepository interface {
	CreateFile(ctx context.Context, f *model.FileMetadata) error
	GetFilesByCourseID(ctx context.Context, courseID string) ([]model.FileMetadata, error)
	// GetFileByID looks a file up by its id alone, via the fileId index.
	// Returns store.ErrItemNotFound when no such file exists.
	GetFileByID(ctx context.Context, fileID string) (*model.FileMetadata, error)
}

type fileRepo struct {
	store       *store.Store
	table       string
	fileIDIndex string
}

// NewFileRepo creates a new FileRepository
func NewFileRepo(s *store.Store, table, fileIDIndex string) FileRepository {
	return &fileRepo{store: s, table: table, fileIDIndex: fileIDIndex}
}

func (r *fileRepo) CreateFile(ctx context.Context, f *model.FileMetadata) error {
	f.PK = model.CoursePK(f.CourseID)
	f.SK = model.FileSK(f.FileID)
	if err := r.store.Put(ctx, r.table, f); err != nil {
		return fmt.Errorf("creating file metadata: %w", err)
	}
	return nil
}

func (r *fileRepo) GetFilesByCourseID(ctx context.Context, courseID string) ([]model.FileMetadata, error) {
	files := []model.FileMetadata{}
	if err := r.store.QueryPrefix(ctx, r.table, model.CoursePK(courseID), model.FileKeyPrefix, &files); err != nil {
		return nil, fmt.Errorf("listing files for course %s: %w", courseID, err)
	}
	return files, nil
}

func (r *fileRepo) GetFileByID(ctx context.Context, fileID string) (*model.FileMetadata, error) {
	files := []model.FileMetadata{}
	if err := r.store.QueryIndex(ctx, r.table, r.fileIDIndex, "fileId", fileID, &files); err != nil {
		return nil, fmt.Errorf("looking up file %s: %w", fileID, err)
	}
	if len(files) == 0 {
		return nil, store.ErrItemNotFound
	}
	return &files[0], nil
}
