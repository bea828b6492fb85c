// @title           Yummy Recipes API
// @version         1.0
// @description     Backend хранения рецептов (Yummy Recipes).
// @description     Регистрация пользователей, категории и рецепты с поиском и пагинацией.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey TokenAuth
// @in header
// @name X-Access-Token
//
// Package main содержит точку входа серверного приложения Yummy Recipes.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - инициализацию подключения к базе данных и прогон миграций;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - настройку и запуск сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/achola/yummy-recipes/internal/server/api"
	"github.com/achola/yummy-recipes/internal/server/config"
	"github.com/achola/yummy-recipes/internal/server/mail"
	"github.com/achola/yummy-recipes/internal/server/middleware"
	h "github.com/achola/yummy-recipes/internal/server/net/http"
	"github.com/achola/yummy-recipes/internal/server/repository"
	"github.com/achola/yummy-recipes/internal/server/service"
	"github.com/achola/yummy-recipes/internal/shared/logger"

	_ "github.com/achola/yummy-recipes/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}

	// подключаем базу данных и прогоняем миграции
	db, err := config.OpenDB(cfg)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	// создаём репы
	repos := service.Repositories{
		Users:      repository.NewUsersRepository(db),
		Categories: repository.NewCategoriesRepository(db),
		Recipes:    repository.NewRecipesRepository(db),
	}

	// отправка писем сброса пароля, по умолчанию заглушка в лог
	var mailer mail.Mailer
	if cfg.Mail.Enabled {
		mailer = mail.NewSMTPMailer(cfg.Mail)
	} else {
		mailer = mail.NewNoopMailer(logger.New("mail").Sugar())
	}

	// создаём сервис
	svc := service.NewServices(repos, mailer, cfg)
	// создаём jwt
	verifier := middleware.NewJWTVerifier(
		cfg.Auth.JWT.SigningKey,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
	)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier, db)
	// создаём роутер
	router := h.NewRouter(handler)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

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

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
