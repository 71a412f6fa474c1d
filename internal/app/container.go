package app

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"jobboard/internal/access"
	"jobboard/internal/config"
	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/metrics"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
	ucauth "jobboard/internal/usecase/auth"
	"jobboard/internal/ws"
)

// Container owns the process-wide dependencies and their lifetimes.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	DB      database.DB
	Cache   *cache.Redis
	Metrics *metrics.Recorder
	Hub     *ws.Hub
	Policy  access.Policy
	JWT     jwt.Service

	Users        *repository.PostgresUserRepository
	Profiles     *repository.PostgresProfileRepository
	Skills       *repository.PostgresSkillRepository
	Jobs         *repository.PostgresJobRepository
	Catalog      *usecase.JobCatalog
	SkillSuggest *usecase.SkillSuggest
	Auth         *usecase.Auth
	User         *usecase.User
	Profile      *usecase.Profile
	Postings     *usecase.JobPosting
	Dashboard    *usecase.SeekerDashboard
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return newContainer(cfg, logger, db, cache.NewRedis(cfg.Redis, logger)), nil
}

func newContainer(cfg config.Config, logger *log.Logger, db database.DB, redis *cache.Redis) *Container {
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   redis,
		Metrics: metrics.NewRecorder(),
		Hub:     ws.NewHub(logger),
		Policy:  access.NewRolePolicy(),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
	}
	c.Hub.OnClientCount(c.Metrics.SetWSClients)

	c.Users = repository.NewPostgresUserRepository(db)
	c.Profiles = repository.NewPostgresProfileRepository(db)
	c.Skills = repository.NewPostgresSkillRepository(db)
	c.Jobs = repository.NewPostgresJobRepository(db)

	c.Catalog = usecase.NewJobCatalog(c.Jobs, redis, cfg.Recommend.CandidatePoolSize, cfg.Recommend.CatalogCacheTTL, logger)
	c.Auth = usecase.NewAuthUsecase(ucauth.NewService(c.Users), c.Users, c.JWT)
	c.User = usecase.NewUserUsecase(c.Users)
	c.SkillSuggest = usecase.NewSkillUsecase(c.Skills, logger)
	c.Profile = usecase.NewProfileUsecase(c.Profiles, c.Profiles, c.Catalog, logger)
	c.Postings = usecase.NewJobPostingUsecase(c.Jobs, c.Profiles, c.Catalog, ws.NewJobNotifier(c.Hub, c.Metrics), logger)
	c.Dashboard = usecase.NewDashboardUsecase(c.Skills, c.Catalog, c.Metrics, cfg.Recommend.Limit, logger)
	return c
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
