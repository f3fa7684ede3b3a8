package model

import "fmt"

// FileMetadata describes an object stored in the bucket. The bytes live in
// object storage under fileKey; the metadata may exist before the client has
// actually uploaded anything, since upload is a second, client-driven step.
// fileSize is caller-reported and never reconciled against the object.
type FileMetadata struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	FileID     string `dynamodbav:"fileId" json:"fileId"`
	CourseID   string `dynamodbav:"courseId" json:"courseId"`
	FileName   string `dynamodbav:"fileName" json:"fileName"`
	FileKey    string `dynamodbav:"fileKey" json:"fileKey"`
	FileSize   int64  `dynamodbav:"fileSize" json:"fileSize"`
	MimeType   string `dynamodbav:"mimeType" json:"mimeType"`
	UploadedAt string `dynamodbav:"uploadedAt" json:"uploadedAt"`
}

// ObjectKey derives the storage key for a file. The fileId component makes the
// key globally unique, so names may repeat within a course without colliding.
func ObjectKey(courseID, fileID, fileName string) string {
	return fmt.Sprintf("courses/%s/%s-%s", courseID, fileID, fileName)
}
