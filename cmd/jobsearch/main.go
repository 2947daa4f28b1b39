package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/project-tktt/go-jobsearch/internal/config"
	"github.com/project-tktt/go-jobsearch/internal/domain"
	"github.com/project-tktt/go-jobsearch/internal/fetcher"
	"github.com/project-tktt/go-jobsearch/internal/fetcher/googlecse"
	"github.com/project-tktt/go-jobsearch/internal/fetcher/scraper"
	"github.com/project-tktt/go-jobsearch/internal/logger"
	"github.com/project-tktt/go-jobsearch/internal/pipeline"
)

func main() {
	var (
		skills     []string
		location   string
		experience int
		salary     int
		debug      bool
		jsonLog    bool
	)

	rootCmd := &cobra.Command{
		Use:   "jobsearch [request]",
		Short: "Search Vietnamese job sites and rank results against a profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(jsonLog, debug)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer log.Sync()

			cfg := config.Load()

			fetchers := []fetcher.Fetcher{
				googlecse.New(googlecse.Config{
					APIKey:         cfg.Google.APIKey,
					SearchEngineID: cfg.Google.SearchEngineID,
					Timeout:        cfg.Google.Timeout,
					MaxResults:     cfg.Google.MaxResults,
				}, log),
				scraper.New(scraper.Config{
					UserAgent: cfg.Scraper.UserAgent,
					Timeout:   cfg.Scraper.Timeout,
					MaxPages:  cfg.Scraper.MaxPages,
					MinDelay:  cfg.Scraper.MinDelay,
					MaxDelay:  cfg.Scraper.MaxDelay,
				}, log),
			}

			profile := domain.NewUserProfile(skills, location, experience, salary)
			request := strings.Join(args, " ")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, summary, err := pipeline.New(fetchers, log).Run(ctx, request, profile)
			if err != nil {
				return err
			}

			log.Info("search summary",
				zap.Int("total_found", summary.TotalFound),
				zap.Strings("queries", summary.QueriesUsed),
			)

			fmt.Println(report)
			return nil
		},
	}

	rootCmd.Flags().StringSliceVar(&skills, "skills", nil, "profile skills, e.g. --skills java,spring")
	rootCmd.Flags().StringVar(&location, "location", "", "preferred location, e.g. \"TP.HCM\"")
	rootCmd.Flags().IntVar(&experience, "experience", 0, "years of experience")
	rootCmd.Flags().IntVar(&salary, "salary", 0, "expected monthly salary in VND")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.Flags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
