package model

import "time"

// Key prefixes for the composite PK/SK scheme. Courses live in the Courses
// table partitioned by owner; assignments and files share the CourseChildren
// table partitioned by parent course and are told apart by SK prefix.
const (
	UserKeyPrefix       = "USER#"
	CourseKeyPrefix     = "COURSE#"
	AssignmentKeyPrefix = "ASSIGNMENT#"
	FileKeyPrefix       = "FILE#"
)

func UserPK(userID string) string {
	return UserKeyPrefix + userID
}

func CoursePK(courseID string) string {
	return CourseKeyPrefix + courseID
}

func CourseSK(courseID string) string {
	return CourseKeyPrefix + courseID
}

func AssignmentSK(assignmentID string) string {
	return AssignmentKeyPrefix + assignmentID
}

func FileSK(fileID string) string {
	return FileKeyPrefix + fileID
}

// timeLayout matches ISO-8601 with millisecond precision, the format every
// stored timestamp uses.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// NowISO returns the current UTC time in the stored timestamp format.
func NowISO() string {
	return time.Now().UTC().Format(timeLayout)
}
