package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modman/internal/config"
	"modman/internal/db"
	"modman/internal/logging"
	"modman/internal/migrate"
	"modman/internal/scaffold"
	"modman/internal/server"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "modman",
	Short: "Modman CLI",
	Long: `Modman scaffolds CRUD modules and serves them over HTTP.
A module is one directory under app/ holding a model, request schemas,
a persistence adapter, a service, routes, and error types. 'module
create' generates the full skeleton, 'module list' inventories what
exists, and 'serve' runs the API.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("MODMAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().Bool("force", false, "overwrite existing files")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("force", rootCmd.PersistentFlags().Lookup("force"))
}

func registerCommands() {
	rootCmd.AddCommand(moduleCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())
}

func moduleCmd() *cobra.Command {
	mod := &cobra.Command{Use: "module", Short: "Manage app modules"}
	mod.AddCommand(moduleCreateCmd())
	mod.AddCommand(moduleListCmd())
	return mod
}

func appDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", err
	}
	if dir != "" {
		return dir, nil
	}
	cfg, err := config.Load(viper.GetString("workspace"))
	if err != nil {
		return "", err
	}
	return filepath.Join(viper.GetString("workspace"), cfg.App.Dir), nil
}

func moduleCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Scaffold a new CRUD module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := appDir(cmd)
			if err != nil {
				return err
			}
			report, err := scaffold.Scaffold(scaffold.Options{
				Name:  args[0],
				Dir:   dir,
				Force: viper.GetBool("force"),
			})
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				if err := printJSON(report); err != nil {
					return err
				}
			} else {
				printReport(report)
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d file(s) failed", report.Failed)
			}
			return nil
		},
	}
	cmd.Flags().String("dir", "", "application directory (default: workspace app dir)")
	return cmd
}

func printReport(report scaffold.Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"File", "Kind", "Outcome"})
	for _, r := range report.Results {
		outcome := string(r.Outcome)
		if r.Error != "" {
			outcome = outcome + ": " + r.Error
		}
		tw.AppendRow(table.Row{r.FileName, r.Kind, outcome})
	}
	tw.Render()

	fmt.Printf("\nModule %q scaffolded at %s (%d created, %d skipped, %d failed)\n",
		report.Module, report.Dir, report.Created, report.Skipped, report.Failed)
	if report.Failed == 0 {
		fmt.Println("\nNext steps:")
		fmt.Printf("   1. Add a migration creating the %ss table\n", report.Module)
		fmt.Printf("   2. Adjust %s with the module's real fields\n", filepath.Join(report.Dir, "model.go"))
		fmt.Printf("   3. Mount %s.Register in internal/server\n", report.Module)
	}
}

func moduleListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List app modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := appDir(cmd)
			if err != nil {
				return err
			}
			modules, err := scaffold.Scan(dir)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(modules)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Name", "Files", "Complete", "Path"})
			for _, m := range modules {
				tw.AppendRow(table.Row{m.Name, m.Files, m.Complete, m.Path})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().String("dir", "", "application directory (default: workspace app dir)")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr, basePath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := viper.GetString("workspace")
			cfg, err := config.Load(workspace)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if basePath == "" {
				basePath = cfg.Server.BasePath
			}
			log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
			defer log.Sync()

			conn, err := db.Open(db.Config{Workspace: workspace})
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := migrate.Migrate(conn); err != nil {
				return err
			}

			secret := cfg.Auth.Secret
			if env := os.Getenv("MODMAN_JWT_SECRET"); env != "" {
				secret = env
			}
			handler, err := server.New(server.Config{
				DB:       conn,
				BasePath: basePath,
				Auth:     server.AuthConfig{JWTSecret: secret},
				Log:      log,
			})
			if err != nil {
				return err
			}
			srv := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			fmt.Printf("Serving Modman API on http://%s%s (OpenAPI at %s/openapi.json)\n", addr, basePath, basePath)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config server.addr)")
	cmd.Flags().StringVar(&basePath, "base-path", "", "API base path (default: config server.base_path)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("modman", version)
		},
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
