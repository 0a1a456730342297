package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type Config struct {
	Host      string
	Port      string
	Name      string
	User      string
	Password  string
	DebugMode bool
	Migrate   bool
}

func Connect(cfg Config) (err error) {
	if DB != nil {
		return nil
	}
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.Password)
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "Ошибка подключения к БД")
	}
	if cfg.DebugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		DB = db.Debug()
	} else {
		DB = db
	}
	if cfg.Migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.Info("Сервис успешно подключен к БД")
	return nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	return db.Ping()
}
