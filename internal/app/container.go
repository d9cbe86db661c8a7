package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-portal/internal/config"
	"hr-portal/internal/database"
	"hr-portal/internal/database/migration"
	dbpostgres "hr-portal/internal/database/postgres"
	"hr-portal/internal/infrastructure/cache"
	"hr-portal/internal/infrastructure/notify"
	"hr-portal/internal/infrastructure/storage"
	"hr-portal/internal/metrics"
	"hr-portal/internal/pkg/jwt"
	"hr-portal/internal/repository"
	"hr-portal/internal/usecase"
	"hr-portal/internal/ws"

	"go.uber.org/zap"
)

// Container holds the long-lived dependencies of the server.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Cache *cache.Redis
	Store *storage.S3
	Hub   *ws.Hub
	JWT   *jwt.HMACService

	Users     usecase.UserUsecase
	Uploads   usecase.UploadUsecase
	Jobs      usecase.JobUsecase
	Files     usecase.FileUsecase
	Reviews   usecase.ReviewUsecase
	Tests     usecase.AptitudeUsecase
	Results   usecase.ResultUsecase
	Lecturers usecase.LecturerUsecase
	Subjects  usecase.SubjectUsecase
	Status    usecase.StatusUsecase
	Purger    *usecase.Purger
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if pool, ok := db.(*dbpostgres.Pool); ok {
		metrics.ObserveDBPool(pool.Stats)
	}

	if cfg.App.AutoMigrate {
		if err := (migration.Runner{Dir: cfg.App.MigrationsDir, Logger: logger.Named("migrate")}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", zap.String("dir", cfg.App.MigrationsDir))
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger.Named("cache")),
		Hub:    ws.NewHub(logger.Named("ws")),
		JWT:    jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
	}

	var store usecase.ObjectStore
	if cfg.Storage.Bucket != "" {
		s3, err := storage.NewS3(ctx, cfg.Storage)
		if err != nil {
			logger.Warn("object storage disabled", zap.Error(err))
		} else {
			c.Store = s3
			store = s3
		}
	} else {
		logger.Warn("STORAGE_BUCKET not set, uploads are disabled")
	}

	var mailer usecase.Mailer = notify.Nop{}
	if cfg.Mail.Enabled {
		ses, err := notify.NewSES(ctx, cfg.Mail, logger.Named("mail"))
		if err != nil {
			logger.Warn("email notifications disabled", zap.Error(err))
		} else {
			mailer = ses
		}
	}

	events := ws.NewPublisher(c.Hub)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	fileRepo := repository.NewPostgresApplicantFileRepository(db)
	reviewRepo := repository.NewPostgresReviewRepository(db)
	testRepo := repository.NewPostgresAptitudeTestRepository(db)
	resultRepo := repository.NewPostgresResultRepository(db)
	lecturerRepo := repository.NewPostgresLecturerRepository(db)
	subjectRepo := repository.NewPostgresSubjectRepository(db)

	c.Users = usecase.NewUserUsecase(userRepo)
	c.Uploads = usecase.NewUploadUsecase(c.Store)
	c.Jobs = usecase.NewJobUsecase(jobRepo, c.Cache, events, logger.Named("jobs"))
	c.Files = usecase.NewFileUsecase(userRepo, fileRepo, reviewRepo, store, events, logger.Named("files"))
	c.Reviews = usecase.NewReviewUsecase(reviewRepo, fileRepo, mailer, events, logger.Named("review"))
	c.Tests = usecase.NewAptitudeUsecase(testRepo, events)
	c.Results = usecase.NewResultUsecase(userRepo, fileRepo, testRepo, resultRepo, events)
	c.Lecturers = usecase.NewLecturerUsecase(lecturerRepo)
	c.Subjects = usecase.NewSubjectUsecase(subjectRepo, lecturerRepo)
	c.Status = usecase.NewStatusUsecase(userRepo, fileRepo, reviewRepo, resultRepo)
	c.Purger = usecase.NewPurger(jobRepo, testRepo, fileRepo, c.Cache, store, cfg.Jobs.PurgeInterval, logger.Named("purge")).
		WithConcurrency(cfg.Jobs.PurgeWorkers, cfg.Jobs.PurgeDeleteRPS)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
