package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	AWSRegion    string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSEndpoint  string `envconfig:"AWS_ENDPOINT"` // set for local stacks (dynamodb-local, minio)
	AWSAccessKey string `envconfig:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`

	CoursesTable        string `envconfig:"COURSES_TABLE" default:"Courses"`
	CourseChildrenTable string `envconfig:"COURSE_CHILDREN_TABLE" default:"CourseChildren"`
	PublicCoursesIndex  string `envconfig:"PUBLIC_COURSES_INDEX" default:"PublicCoursesIndex"`
	FileIDIndex         string `envconfig:"FILE_ID_INDEX" default:"FileIdIndex"`

	StorageBucket  string `envconfig:"STORAGE_BUCKET" required:"true"`
	PresignTTLSec  int    `envconfig:"PRESIGN_TTL_SEC" default:"3600"`
	CatalogTTLSec  int    `envconfig:"CATALOG_CACHE_TTL_SEC" default:"10"`
	S3UsePathStyle bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
