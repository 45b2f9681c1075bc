// Package dbmanager resolves the single backing-store target for the process.
// The choice between a hosted Postgres instance and the local file-backed
// fallback is made exactly once, at startup; request handlers never branch on
// the engine.
package dbmanager

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nathmakers/storesrv/internal/config"
	"github.com/nathmakers/storesrv/internal/db/dberror"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open resolves the connection target from cfg and returns one long-lived
// gorm handle used for the remainder of the process lifetime.
//
// A hosted Postgres target keeps no persistent pool (the process may be
// frozen between requests on serverless runtimes); the sqlite fallback shares
// a single connection across goroutines.
func Open(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	}

	target := strings.TrimSpace(cfg.DatabaseURL)
	if target == "" || strings.HasPrefix(target, "sqlite") {
		if target == "" && !cfg.AllowLocalFallback {
			return nil, dberror.ErrConfiguration.Msg("no database configured and local fallback is disabled")
		}
		path := sqlitePath()
		log.Ctx(ctx).Info().Str("path", path).Msg("using local sqlite store")
		return openSQLite(path, gormCfg)
	}

	dsn, err := NormalizePostgresURL(target)
	if err != nil {
		return nil, dberror.ErrConfiguration.Msg("invalid database url").Err(err)
	}
	log.Ctx(ctx).Info().Msg("using hosted postgres store")
	return openPostgres(dsn, gormCfg)
}

func openPostgres(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, dberror.ErrConfiguration.Msg("failed to open postgres store").Err(err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, dberror.ErrConfiguration.Err(err)
	}
	// No persistent pool: every request checks a connection out and hands it
	// straight back, tolerating connection-limited hosted databases.
	sqlDB.SetMaxIdleConns(0)
	return gdb, nil
}

func openSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	// Foreign-key enforcement is off by default in sqlite and must be asked
	// for explicitly; cascade deletes depend on it.
	dsn := fmt.Sprintf("file:%s?_fk=1", path)
	gdb, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, dberror.ErrConfiguration.Msg("failed to open sqlite store").Err(err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, dberror.ErrConfiguration.Err(err)
	}
	// One shared connection, permitted across goroutines.
	sqlDB.SetMaxOpenConns(1)
	return gdb, nil
}

// NormalizePostgresURL rewrites a caller-supplied connection URL for the
// postgres driver: credentials are percent-encoded, driver-unsupported query
// parameters are dropped, and encryption in transit is forced.
func NormalizePostgresURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
	default:
		return "", fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("database url has no host")
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}

	var user *url.Userinfo
	if u.User != nil {
		name := u.User.Username()
		if pwd, ok := u.User.Password(); ok {
			user = url.UserPassword(name, pwd)
		} else {
			user = url.User(name)
		}
	}

	normalized := url.URL{
		Scheme:   "postgresql",
		User:     user,
		Host:     host + ":" + port,
		Path:     u.Path,
		RawQuery: "sslmode=require",
	}
	return normalized.String(), nil
}

// sqlitePath picks a writable location for the fallback store: the system
// temporary directory when usable, else a project-relative file.
func sqlitePath() string {
	dir := os.TempDir()
	if dir != "" && dirWritable(dir) {
		return filepath.Join(dir, "storesrv.db")
	}
	return "local.db"
}

func dirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, "storesrv-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
