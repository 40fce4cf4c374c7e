package lambda

import (
	"fmt"

	"go.uber.org/zap"

	companyapp "github.com/interbanking/backend/internal/application/company"
	"github.com/interbanking/backend/internal/infrastructure/config"
	"github.com/interbanking/backend/internal/infrastructure/logger"
	"github.com/interbanking/backend/internal/infrastructure/migration"
	"github.com/interbanking/backend/internal/infrastructure/persistence"
)

// DefaultDatabasePath is writable inside the Lambda execution environment.
const DefaultDatabasePath = "/tmp/database.sqlite"

// LoadConfig loads configuration with the Lambda database defaults.
func LoadConfig(opts ...config.Option) (*config.Config, error) {
	defaults := []config.Option{
		config.WithDefault("database.driver", config.DriverSQLite),
		config.WithDefault("database.path", DefaultDatabasePath),
	}
	return config.Load(append(defaults, opts...)...)
}

// NewCompanyService migrates the configured database and wires a company
// service on top of it.
func NewCompanyService(cfg *config.Config, log *zap.Logger) (*companyapp.Service, error) {
	if cfg.Database.AutoMigrate {
		if err := migration.UpDSN(cfg.Database.Driver, cfg.Database.DSN(), log); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	db, err := persistence.NewDatabase(&cfg.Database,
		persistence.WithLogger(logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
			logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))))
	if err != nil {
		return nil, err
	}

	companies := persistence.NewGormCompanyRepository(db.DB)
	transfers := persistence.NewGormTransferRepository(db.DB)
	return companyapp.NewService(companies, transfers), nil
}

// Bootstrap returns an InitFunc that loads configuration and builds the
// company service.
func Bootstrap(log *zap.Logger, opts ...config.Option) InitFunc {
	return func() (CompanyCreator, error) {
		cfg, err := LoadConfig(opts...)
		if err != nil {
			return nil, err
		}
		return NewCompanyService(cfg, log)
	}
}
