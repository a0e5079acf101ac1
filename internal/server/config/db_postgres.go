// Package config содержит инициализацию подключения к базе данных сервера
// и доступ к глобальному экземпляру *sql.DB.
//
// Пакет выполняет:
//   - открытие соединения с PostgreSQL (через драйвер pgx);
//   - настройку пула соединений;
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
//
// Примечание: пакет использует глобальную переменную DB. Инициализация должна
// выполняться один раз при запуске сервера.
package config

import (
	"context"
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-courses-api/internal/shared/logger"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// DB — глобальный экземпляр подключения к базе данных.
//
// Инициализируется функцией Init и используется другими пакетами через GetDB.
var DB *sql.DB

// Init открывает подключение к базе данных, настраивает пул,
// проверяет доступность и применяет миграции (если они включены).
//
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func Init(ctx context.Context, db DBConfig, mig MigrationsConfig, log *logger.HTTPLogger) error {
	customLog := log.Sugar()

	var err error
	DB, err = sql.Open("pgx", db.DSN)
	if err != nil {
		customLog.Errorw("error to connect db", zap.Error(err))
		return err
	}

	if db.MaxOpenConns > 0 {
		DB.SetMaxOpenConns(db.MaxOpenConns)
	}
	if db.MaxIdleConns > 0 {
		DB.SetMaxIdleConns(db.MaxIdleConns)
	}
	if db.ConnMaxLifetime > 0 {
		DB.SetConnMaxLifetime(db.ConnMaxLifetime)
	}
	if db.ConnMaxIdleTime > 0 {
		DB.SetConnMaxIdleTime(db.ConnMaxIdleTime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()
	if err = DB.PingContext(pingCtx); err != nil {
		customLog.Errorw("error check db connection", zap.Error(err))
		return err
	}

	if !mig.Enabled {
		customLog.Info("migrations disabled")
		return nil
	}

	// Запуск миграций
	driver, err := postgres.WithInstance(DB, &postgres.Config{})
	if err != nil {
		customLog.Errorw("error creating migration driver", zap.Error(err))
		return err
	}

	// создаём миграции с выбранным драйвером
	m, err := migrate.NewWithDatabaseInstance(mig.Path, "postgres", driver)
	if err != nil {
		customLog.Errorw("error creating migrations", zap.Error(err))
		return err
	}

	// запускаем создание миграций
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		customLog.Errorw("error applying migrations", zap.Error(err))
		return err
	}

	customLog.Info("migrations applied successfully")
	return nil
}

// GetDB возвращает текущий глобальный экземпляр *sql.DB.
//
// Возвращаемое значение может быть nil, если Init ещё не вызывался
// или завершился ошибкой.
func GetDB() *sql.DB {
	return DB
}
