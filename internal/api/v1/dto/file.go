package dto

import "courseplanner/internal/model"

// FileUploadDTO is used for incoming upload-URL requests. FileSize is
// caller-reported and advisory only.
type FileUploadDTO struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize *int64 `json:"fileSize,omitempty" validate:"omitempty,gte=0"`
}

// FileUploadResponseDTO carries the presigned upload capability
type FileUploadResponseDTO struct {
	UploadURL string `json:"uploadUrl"`
	FileID    string `json:"fileId"`
	FileKey   string `json:"fileKey"`
	Message   string `json:"message"`
}

// FileDownloadResponseDTO carries the presigned download capability
type FileDownloadResponseDTO struct {
	DownloadURL string `json:"downloadUrl"`
	FileName    string `json:"fileName"`
	MimeType    string `json:"mimeType"`
	FileSize    int64  `json:"fileSize"`
}

// FileListDTO is the list-with-count envelope for file queries
type FileListDTO struct {
	Files []model.FileMetadata `json:"files"`
	Count int                  `json:"count"`
}
