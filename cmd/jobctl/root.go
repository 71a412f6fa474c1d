package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/domain/recommend"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/repository"
	"jobboard/internal/seeder"
	"jobboard/internal/usecase"
	"jobboard/migrations"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobctl",
		Short:         "Operate the job board: migrations, demo data and ad hoc recommendations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd(), newRecommendCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending embedded SQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			db, err := dbpostgres.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			runner := migration.Runner{FS: migrations.FS, Logger: log.New(cmd.ErrOrStderr(), "", log.LstdFlags)}
			n, err := runner.Run(ctx, db.SQLDB())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo employers, jobs and seekers (idempotent)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seeders, err := selectSeeders(only)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			db, err := dbpostgres.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			if err := seeder.RunAll(ctx, db, logger, seeders...); err != nil {
				return err
			}

			redis := cache.NewRedis(cfg.Redis, logger)
			defer redis.Close()
			usecase.NewJobCatalog(nil, redis, cfg.Recommend.CandidatePoolSize, cfg.Recommend.CatalogCacheTTL, logger).Invalidate(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d set(s); demo password is %q\n", len(seeders), seeder.DemoPassword)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "run only the named seeders (employers, jobs, seekers)")
	return cmd
}

func selectSeeders(names []string) ([]seeder.Seeder, error) {
	all := seeder.Default()
	if len(names) == 0 {
		return all, nil
	}

	known := make(map[string]bool, len(all))
	for _, s := range all {
		known[s.Name()] = true
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if !known[n] {
			return nil, fmt.Errorf("unknown seeder %q", n)
		}
		want[n] = true
	}

	out := make([]seeder.Seeder, 0, len(want))
	for _, s := range all {
		if want[s.Name()] {
			out = append(out, s)
		}
	}
	return out, nil
}

func newRecommendCmd() *cobra.Command {
	var (
		skills string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank open jobs against a comma separated skill list",
		Example: `  jobctl recommend --skills "go, postgresql, docker"
  jobctl recommend --skills "python,react" --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := recommend.ParseSkills(skills)
			if set.Len() == 0 {
				return fmt.Errorf("--skills must name at least one skill")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			db, err := dbpostgres.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			logger := log.New(io.Discard, "", 0)
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			}

			redis := cache.NewRedis(cfg.Redis, logger)
			defer redis.Close()

			catalog := usecase.NewJobCatalog(repository.NewPostgresJobRepository(db), redis, cfg.Recommend.CandidatePoolSize, cfg.Recommend.CatalogCacheTTL, logger)
			dashboard := usecase.NewDashboardUsecase(nil, catalog, nil, cfg.Recommend.Limit, logger)

			out, err := dashboard.RecommendForSkills(ctx, set, limit)
			if err != nil {
				return err
			}
			return printRecommendations(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&skills, "skills", "", "comma separated skills, e.g. \"go, sql\"")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of jobs (default from RECOMMEND_LIMIT)")
	cmd.Flags().BoolP("verbose", "v", false, "log cache activity to stderr")
	_ = cmd.MarkFlagRequired("skills")
	return cmd
}

func printRecommendations(w io.Writer, items []usecase.RecommendedJob) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no matching jobs")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tJOB ID\tTITLE\tCOMPANY\tMATCHED\tMISSING")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.Score,
			it.Job.ID,
			it.Job.Title,
			it.Job.CompanyName,
			recommend.NewSkillSet(it.Matched...),
			recommend.NewSkillSet(it.Missing...),
		)
	}
	return tw.Flush()
}

