package resource

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"highlight-vmaf-service/pkg/config"
)

var (
	mysqlResourceOnce sync.Once
	mysqlSingleton    *MysqlResource
)

// MysqlResource manages the lifecycle of the shared gorm handle. The pool
// is bounded; callers block on acquisition instead of failing fast.
type MysqlResource struct {
	db *gorm.DB
}

// DefaultMysqlResource returns the global MySQL resource instance.
func DefaultMysqlResource() *MysqlResource {
	mysqlResourceOnce.Do(func() {
		mysqlSingleton = &MysqlResource{}
	})
	return mysqlSingleton
}

// MustOpen establishes the database connection using global configuration.
func (r *MysqlResource) MustOpen() {
	if r.db != nil {
		return
	}

	cfg := config.GetGlobalConfig()
	if cfg == nil {
		panic("global config not initialized")
	}

	gormLog := gormlogger.New(
		logrus.StandardLogger(),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{Logger: gormLog})
	if err != nil {
		panic("failed to connect mysql: " + err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic("failed to access sql.DB: " + err.Error())
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	r.db = db
}

// Close releases the pooled connections.
func (r *MysqlResource) Close() {
	if r.db == nil {
		return
	}
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// MainDB exposes the gorm handle.
func (r *MysqlResource) MainDB() *gorm.DB {
	return r.db
}

// SetMainDB overrides the handle, used by tests to point the DAOs at an
// in-memory database.
func (r *MysqlResource) SetMainDB(db *gorm.DB) {
	r.db = db
}
