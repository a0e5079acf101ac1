// @title           Courses API
// @version         1.0
// @description     Users own courses. Anyone may read, owners may create, update and delete.
// @description     Credentials are sent on every write request with HTTP Basic authentication.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /
// @schemes http https

// @securityDefinitions.basic BasicAuth
//
// Package main содержит точку входа сервера courses API.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации из ./configs/server.yaml (путь можно переопределить CONFIG_PATH);
//   - подключение к PostgreSQL и применение миграций;
//   - создание репозиториев, сервисов, HTTP-обработчиков и роутера;
//   - запуск сервера (HTTPS, если включён TLS) и graceful shutdown по сигналу.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/config"
	h "github.com/IvanChernomyrdin/go-courses-api/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-courses-api/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-courses-api/swagger/docs"
)

func main() {
	boot := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		boot.Warnf("no .env file loaded, error: %v", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./configs/server.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		boot.Fatal(err)
	}

	httpLogger := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Dir:    cfg.Log.Dir,
	})
	defer func() { _ = httpLogger.Sync() }()
	sugar := httpLogger.Sugar()

	if !cfg.TLS.Enabled {
		sugar.Warn("tls disabled: basic credentials travel in plain text")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных и накатываем миграции
	if err := config.Init(ctx, cfg.DB, cfg.Migrations, httpLogger); err != nil {
		sugar.Fatal(err)
	}
	db := config.GetDB()
	defer func() {
		if db != nil {
			_ = db.Close()
		}
	}()

	repos := service.Repositories{
		Users:   repository.NewUsersRepository(db, cfg.DB.QueryTimeout),
		Courses: repository.NewCoursesRepository(db, cfg.DB.QueryTimeout),
		Health:  repository.NewHealthRepository(db, cfg.DB.QueryTimeout),
	}

	svc, err := service.NewServices(repos, cfg)
	if err != nil {
		sugar.Fatal(err)
	}

	handler := api.NewHandler(svc, httpLogger, cfg.Server.MaxBodyBytes)
	router := h.NewRouter(handler, cfg.CORS)

	addr := cfg.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infof("server started on %s (tls=%t)", addr, cfg.TLS.Enabled)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
