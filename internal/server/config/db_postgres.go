// Инициализация подключения к PostgreSQL и запуск миграций.
package config

import (
	"database/sql"

	"github.com/achola/yummy-recipes/internal/shared/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает подключение к базе данных по настройкам из конфига,
// проверяет его доступность (Ping) и применяет миграции, если они включены.
//
// Возвращённый *sql.DB передаётся в репозитории при конструировании —
// глобального состояния пакет не держит.
//
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func OpenDB(cfg *Config) (*sql.DB, error) {
	customLog := logger.New("server.log").Sugar()

	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		customLog.Errorf("error to connect db: %v", err)
		return nil, err
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err = db.Ping(); err != nil {
		customLog.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, err
	}

	if !cfg.Migrations.Enabled {
		return db, nil
	}

	// Запуск миграций
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		customLog.Errorf("error creating migration driver: %v", err)
		db.Close()
		return nil, err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.Migrations.Path, "postgres", driver)
	if err != nil {
		customLog.Errorf("error creating migrations: %v", err)
		db.Close()
		return nil, err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		customLog.Errorf("error applying migrations: %v", err)
		db.Close()
		return nil, err
	}

	customLog.Info("migrations applied successfully")
	return db, nil
}
