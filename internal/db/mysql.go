package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/moduhak/moduhak-backend/internal/config"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type MySQLService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMySQLService(log *logger.Logger, cfg config.Database) (*MySQLService, error) {
	serviceLog := log.With("service", "MySQLService")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	serviceLog.Info("Connecting to MySQL...", "host", cfg.Host, "database", cfg.Name)
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to MySQL", "error", err)
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	return &MySQLService{db: gormDB, log: serviceLog}, nil
}

func (s *MySQLService) AutoMigrateAll() error {
	s.log.Info("Auto migrating MySQL tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.Profile{},
		&types.Scenario{},
		&types.LearningLog{},
		&types.Answer{},
		&types.LearningListEntry{},
		&types.Character{},
		&types.LearningReport{},
		&types.Statics{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for MySQL tables", "error", err)
		return err
	}
	return nil
}

func (s *MySQLService) DB() *gorm.DB {
	return s.db
}
