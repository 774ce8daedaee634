// Package core provides the root command and server lifecycle for fittrackd.
package core

import (
	"fmt"
	"os"

	"github.com/da-maltsev/fit-track/src/common/cli"
	"github.com/da-maltsev/fit-track/src/common/logs"
	"github.com/da-maltsev/fit-track/src/common/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// VersionInfo holds version information - set at build time via ldflags
	VersionInfo = version.New()

	// Global logger instance
	log *logs.Logger

	// Configuration file path
	cfgFile string
)

// Linker variables - these are set via ldflags at build time
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fittrackd",
	Short: "Fit-Track API server",
	Long: `fittrackd is the Fit-Track workout tracking API server.

It exposes a REST API for user accounts, an exercise catalog, and per-user
training logs, backed by an in-memory SQLite database persisted to disk.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute runs the root command
func Execute() {
	// Populate VersionInfo from linker variables
	VersionInfo.Version = Version
	VersionInfo.BuildDate = BuildDate
	VersionInfo.GitCommit = GitCommit

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Configuration file flag
	cli.RegisterConfigFlag(rootCmd, &cfgFile, "/etc/fittrackd/fittrackd.yaml")

	// Server flags
	rootCmd.Flags().IntP("port", "p", 8000, "Port to listen on")
	rootCmd.Flags().StringP("bind", "b", "0.0.0.0", "Address to bind to")

	// Logging flags (using common helper)
	cli.RegisterLogFlags(rootCmd)

	// Database flags
	rootCmd.Flags().String("db-path", "~/.fittrackd/fittrackd.db", "Path to persist database on shutdown")

	// Auth flags
	rootCmd.Flags().String("auth-secret", "", "Token signing secret (generated and persisted if empty)")
	rootCmd.Flags().Duration("token-ttl", 0, "Access token lifetime (default 30m)")

	// Backup flags
	rootCmd.Flags().Bool("backup-enabled", false, "Enable periodic database backups")
	rootCmd.Flags().Duration("backup-interval", 0, "Interval between backups (default 6h)")
	rootCmd.Flags().Int("backup-keep", 10, "Number of backups to retain")

	// Storage flags
	rootCmd.Flags().String("storage-type", "local", "Backup storage backend: 'local' or 's3'")
	rootCmd.Flags().String("storage-path", "~/.fittrackd/backups", "Local backup path (for local backend)")

	// S3 storage flags
	rootCmd.Flags().String("s3-endpoint", "", "S3-compatible storage endpoint URL")
	rootCmd.Flags().String("s3-region", "us-east-1", "S3 region")
	rootCmd.Flags().String("s3-bucket", "fittrack-backups", "S3 bucket for database backups")
	rootCmd.Flags().String("s3-access-key", "", "S3 access key ID")
	rootCmd.Flags().String("s3-secret-key", "", "S3 secret access key")
	rootCmd.Flags().Bool("s3-path-style", true, "Use path-style addressing for S3")

	// Bind flags to viper
	_ = viper.BindPFlag("server.port", rootCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.bind", rootCmd.Flags().Lookup("bind"))
	_ = viper.BindPFlag("database.path", rootCmd.Flags().Lookup("db-path"))
	_ = viper.BindPFlag("auth.secret", rootCmd.Flags().Lookup("auth-secret"))
	_ = viper.BindPFlag("auth.token_ttl", rootCmd.Flags().Lookup("token-ttl"))
	_ = viper.BindPFlag("backup.enabled", rootCmd.Flags().Lookup("backup-enabled"))
	_ = viper.BindPFlag("backup.interval", rootCmd.Flags().Lookup("backup-interval"))
	_ = viper.BindPFlag("backup.keep", rootCmd.Flags().Lookup("backup-keep"))
	_ = viper.BindPFlag("storage.type", rootCmd.Flags().Lookup("storage-type"))
	_ = viper.BindPFlag("storage.local.path", rootCmd.Flags().Lookup("storage-path"))
	_ = viper.BindPFlag("storage.s3.endpoint", rootCmd.Flags().Lookup("s3-endpoint"))
	_ = viper.BindPFlag("storage.s3.region", rootCmd.Flags().Lookup("s3-region"))
	_ = viper.BindPFlag("storage.s3.bucket", rootCmd.Flags().Lookup("s3-bucket"))
	_ = viper.BindPFlag("storage.s3.access_key", rootCmd.Flags().Lookup("s3-access-key"))
	_ = viper.BindPFlag("storage.s3.secret_key", rootCmd.Flags().Lookup("s3-secret-key"))
	_ = viper.BindPFlag("storage.s3.path_style", rootCmd.Flags().Lookup("s3-path-style"))

	// Set defaults
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.bind", "0.0.0.0")
	viper.SetDefault("database.path", "~/.fittrackd/fittrackd.db")
	viper.SetDefault("auth.secret", "")
	viper.SetDefault("auth.token_ttl", "30m")
	viper.SetDefault("backup.enabled", false)
	viper.SetDefault("backup.interval", "6h")
	viper.SetDefault("backup.keep", 10)
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local.path", "~/.fittrackd/backups")
	viper.SetDefault("storage.s3.region", "us-east-1")
	viper.SetDefault("storage.s3.bucket", "fittrack-backups")
	viper.SetDefault("storage.s3.path_style", true)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	opts := cli.ConfigOptions{
		ConfigName: "fittrackd",
		ConfigType: "yaml",
		EnvPrefix:  "FITTRACKD",
		SearchPaths: []string{
			"/etc/fittrackd",
			"~/.fittrackd",
		},
	}
	opts.ConfigFile = cfgFile

	if err := cli.InitConfig(opts); err != nil {
		return err
	}

	// Initialize logger using common helper
	log = cli.InitLogger("fittrackd")

	return nil
}
