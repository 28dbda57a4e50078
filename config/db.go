package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"travel-backend/models"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SeedDatabase creates the configured admin when the users table is empty.
// Without SEED_ADMIN_* the first signup is promoted instead.
func SeedDatabase(db *gorm.DB, cfg *AppConfig) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}
	admin := models.User{
		Username: cfg.SeedAdminUsername,
		Email:    strings.ToLower(cfg.SeedAdminEmail),
		Password: string(hash),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}
	log.Printf("✅ Seed admin %s created", admin.Email)
	return nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	mc := mysqlDriver.NewConfig()
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Net = "tcp"
	mc.Addr = u.Hostname() + ":" + port
	mc.DBName = dbName
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	for key, values := range u.Query() {
		if len(values) > 0 {
			mc.Params[key] = values[0]
		}
	}
	return mc.FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	mc := mysqlDriver.NewConfig()
	mc.User = envOrDefault("DB_USER", "root")
	mc.Passwd = envOrDefault("DB_PASS", "")
	mc.Net = "tcp"
	mc.Addr = envOrDefault("DB_HOST", "127.0.0.1") + ":" + envOrDefault("DB_PORT", "3306")
	mc.DBName = envOrDefault("DB_NAME", "travel_db")
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN(), nil
}

func resolvePostgresDSN() string {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		return raw
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOrDefault("DB_HOST", "127.0.0.1"),
		envOrDefault("DB_PORT", "5432"),
		envOrDefault("DB_USER", "postgres"),
		envOrDefault("DB_PASS", ""),
		envOrDefault("DB_NAME", "travel_db"),
		envOrDefault("DB_SSLMODE", "disable"),
	)
}

func dialector(cfg *AppConfig) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case "postgres", "postgresql":
		return postgres.Open(resolvePostgresDSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Migrate creates or updates the schema, parents before children.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Package{},
		&models.Booking{},
		&models.Inquiry{},
	)
}

// ConnectDatabase opens the configured database, migrates it and seeds it.
func ConnectDatabase(cfg *AppConfig) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{Logger: newLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := SeedDatabase(db, cfg); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return db, nil
}
