package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"product-catalog/pkg/postgres"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the product catalog database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newUpCmd(), newPrintCmd())
	return root
}

func newUpCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create the products table and indexes if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := v.GetString("postgres.dsn")
			if dsn == "" {
				return fmt.Errorf("--dsn or POSTGRES_DSN is required")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			db, err := postgres.Connect(ctx, postgres.Config{DSN: dsn})
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}

	cmd.Flags().String("dsn", "", "PostgreSQL connection string (env POSTGRES_DSN)")
	_ = v.BindPFlag("postgres.dsn", cmd.Flags().Lookup("dsn"))
	return cmd
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the schema without applying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), postgres.Schema())
			return err
		},
	}
}
