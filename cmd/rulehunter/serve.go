package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	_ "github.com/DjordjeVuckovic/rule-hunter/docs"
	"github.com/DjordjeVuckovic/rule-hunter/internal/planner"
	"github.com/DjordjeVuckovic/rule-hunter/internal/router"
	"github.com/DjordjeVuckovic/rule-hunter/internal/server"
	"github.com/DjordjeVuckovic/rule-hunter/internal/skiprule"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/rule-hunter/pkg/config/env"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Configuration comes from the environment, optionally
loaded from a .env file:

  PORT, USE_HTTP2, CORS_ORIGINS      server
  STORAGE_TYPE (in_mem|pg|es)        catalog storage
  PG_CONNECTION_STRING               postgres storage
  ES_ADDRESSES, ES_INDEX_NAME,
  ES_USERNAME, ES_PASSWORD           elasticsearch storage
  RULES_PATH                         rule set used for plans
  HASH_LEN                           length of generated names`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.LoadDotEnv(os.Getenv("APP_ENV"), envFile); err != nil {
				return err
			}

			sCfg, err := server.LoadConfig()
			if err != nil {
				return err
			}

			storageCfg, err := factory.LoadEnv()
			if err != nil {
				return err
			}

			store, healthChecker, err := factory.NewStore(cmd.Context(), storageCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := loadPlanner()
			if err != nil {
				return err
			}

			s := server.New(sCfg, healthChecker).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health").
				SetupMetrics("/metrics").
				SetupOpenApi("/swagger/*")

			s.Echo.GET("/", func(c echo.Context) error {
				return c.String(200, "Rule Hunter API is running")
			})

			router.NewRuleRouter(s.Echo, store, router.WithPlanner(p)).Bind()

			go func() {
				<-s.ShutdownSignal()
				slog.Info("Shutdown started, cleaning up resources...")
			}()

			return s.Start()
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path of the .env file, overridden by ENV_PATH")

	return cmd
}

// loadPlanner builds the planner from RULES_PATH and HASH_LEN. Without a rule
// set nothing is kept.
func loadPlanner() (*planner.Planner, error) {
	hashLen := planner.DefaultHashLen
	if raw := os.Getenv("HASH_LEN"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HASH_LEN: %w", err)
		}
		hashLen = n
	}

	path := os.Getenv("RULES_PATH")
	if path == "" {
		slog.Warn("RULES_PATH is not set, every entity will be renamed")
		return planner.New(&skiprule.RuleSet{}, hashLen), nil
	}

	rules, err := skiprule.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("Rule set loaded", "name", rules.Name, "rules", len(rules.Rules))
	return planner.New(rules, hashLen), nil
}
