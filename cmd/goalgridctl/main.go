// goalgridctl is an operations helper for GoalGrid deployments. It
// talks straight to the database, so run it with the same config the
// API server uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/Gajendran57/GoalGrid/internal/domain/transfer"
	"github.com/Gajendran57/GoalGrid/internal/domain/user"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/persistence/postgres/connection"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/persistence/postgres/migrations"
	"github.com/Gajendran57/GoalGrid/pkg/config"
	"github.com/Gajendran57/GoalGrid/pkg/logger"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "goalgridctl",
		Short:         "Operations helper for the GoalGrid API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadEnvironment loads .env, the config file and a logger the way the
// API server does, minus the HTTP stack.
func loadEnvironment() (*config.Config, *logger.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewLoggerWithLevel(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, log, nil
}

func connect(cfg *config.Config) (*connection.Database, error) {
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func findAccount(ctx context.Context, db *connection.Database, email string) (*user.User, error) {
	account, err := user.NewRepository(db).FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up %s: %w", email, err)
	}
	if account == nil {
		return nil, fmt.Errorf("no user with email %s", email)
	}
	return account, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadEnvironment()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := connect(cfg)
			if err != nil {
				return err
			}

			if err := migrations.AutoMigrate(db, log.Logger); err != nil {
				return err
			}

			fmt.Println("Migrations applied.")
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [email]",
		Short: "Write a user's habit snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadEnvironment()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := connect(cfg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			account, err := findAccount(ctx, db, args[0])
			if err != nil {
				return err
			}

			svc := transfer.NewService(habits.NewRepository(db), nil, log.Logger)
			snapshot, err := svc.Export(ctx, account.ID)
			if err != nil {
				return err
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(snapshot); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}

			if outPath != "" {
				fmt.Printf("Exported %d habits and %d records to %s\n",
					len(snapshot.Habits), len(snapshot.Records), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [email] [file]",
		Short: "Load a snapshot file into a user's account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadEnvironment()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := connect(cfg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			account, err := findAccount(ctx, db, args[0])
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[1], err)
			}

			var snapshot transfer.Snapshot
			if err := json.Unmarshal(raw, &snapshot); err != nil {
				return fmt.Errorf("parsing %s: %w", args[1], err)
			}

			svc := transfer.NewService(habits.NewRepository(db), nil, log.Logger)
			summary, err := svc.Import(ctx, account.ID, &snapshot)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d habits and %d records (%d skipped).\n",
				summary.HabitsImported, summary.RecordsImported, summary.RecordsSkipped)
			return nil
		},
	}
}
