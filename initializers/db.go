package initializers

import (
	"devassist-backend/config"
	"devassist-backend/db"

	log "github.com/sirupsen/logrus"
)

// InitDBConnection подключает БД для журнала запросов к ИИ. Без БД сервис работает.
func InitDBConnection() bool {
	if !*config.Conf.Database.Enabled {
		log.Info("БД отключена, журнал запросов к ИИ не ведется")
		return false
	}
	err := db.Connect(db.Config{
		Host:      config.Conf.Database.Host,
		Port:      config.Conf.Database.Port,
		Name:      config.Conf.Database.Name,
		User:      config.Conf.Database.User,
		Password:  config.Conf.Database.Password,
		DebugMode: *config.Conf.Database.DebugMode,
		Migrate:   *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}
	if err = db.PingDB(); err != nil {
		panic(err.Error())
	}
	return true
}
