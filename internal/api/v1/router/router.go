package router

import (
	"context"
	"net/http"
	"time"

	"courseplanner/internal/api/v1/handler"
	"courseplanner/internal/config"
	"courseplanner/internal/middleware"
	"courseplanner/internal/repository"
	"courseplanner/internal/service"
	"courseplanner/internal/storage"
	"courseplanner/internal/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires the AWS clients, repositories, services, and handlers into the
// HTTP handler chain.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, error) {
	// 1. Build the shared AWS config. Static credentials and a custom
	// endpoint are only set for local stacks; in a deployed environment the
	// default chain applies.
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load AWS config")
		return nil, err
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})
	logger.Info().
		Str("courses_table", cfg.CoursesTable).
		Str("children_table", cfg.CourseChildrenTable).
		Str("bucket", cfg.StorageBucket).
		Msg("AWS clients initialized")

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize store adapter, presigner, and catalog cache
	entityStore := store.New(dynamoClient)
	presigner := storage.NewS3Presigner(s3Client, cfg.StorageBucket, time.Duration(cfg.PresignTTLSec)*time.Second)
	catalogTTL := time.Duration(cfg.CatalogTTLSec) * time.Second
	catalogCache := gocache.New(catalogTTL, 2*catalogTTL)

	// 4. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(entityStore, cfg.CoursesTable, cfg.PublicCoursesIndex)
	assignmentRepo := repository.NewAssignmentRepo(entityStore, cfg.CourseChildrenTable)
	fileRepo := repository.NewFileRepo(entityStore, cfg.CourseChildrenTable, cfg.FileIDIndex)

	courseSvc := service.NewCourseService(courseRepo, catalogCache, logger)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, logger)
	fileSvc := service.NewFileService(fileRepo, presigner, logger)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc, validate, logger)
	fileHandler := handler.NewFileHandler(fileSvc, validate, logger)
	publicHandler := handler.NewPublicHandler(courseSvc, logger)

	// 5. Initialize middleware and mount routes
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret, logger)

	mux := http.NewServeMux()
	courseHandler.RegisterRoutes(mux, authMiddleware)
	assignmentHandler.RegisterRoutes(mux, authMiddleware)
	fileHandler.RegisterRoutes(mux, authMiddleware)
	publicHandler.RegisterRoutes(mux)

	// 6. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), nil
}
