// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/una-social/onboarding-service/internal/cache"
	"github.com/una-social/onboarding-service/internal/config"
	"github.com/una-social/onboarding-service/internal/db"
	"github.com/una-social/onboarding-service/internal/kratos"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/mail"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/monitoring/prometheus"
	"github.com/una-social/onboarding-service/internal/storage"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/pkg/accounts"
	"github.com/una-social/onboarding-service/pkg/authentication"
	"github.com/una-social/onboarding-service/pkg/colleagues"
	"github.com/una-social/onboarding-service/pkg/invites"
	"github.com/una-social/onboarding-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("onboarding-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		kratos.Config{
			AdminURL:      specs.KratosAdminURL,
			PublicURL:     specs.KratosPublicURL,
			JWTSecret:     specs.ServiceJWTSecret,
			TokenLifetime: specs.TokenLifetime,
		},
		tracer,
		monitor,
		logger,
	)

	var mailService mail.EmailServiceInterface
	if specs.MailAPIKey != "" {
		mailService = mail.NewService(
			mail.Config{
				APIKey:        specs.MailAPIKey,
				Sender:        specs.MailSender,
				Mode:          mail.Mode(specs.MailMode),
				TestRecipient: specs.MailTestRecipient,
			},
			tracer,
			monitor,
			logger,
		)
	} else {
		mailService = mail.NewNoopService(logger)
		logger.Info("Mail delivery is disabled, using noop mail service")
	}

	var colleagueCache cache.CacheInterface
	if specs.RedisURL != "" {
		colleagueCache, err = cache.NewCache(context.Background(), specs.RedisURL, specs.ColleagueCacheTTL, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create redis cache: %v", err)
		}
		defer colleagueCache.Close()
	} else {
		colleagueCache = cache.NewNoopCache()
		logger.Info("Redis is not configured, colleague lookups are uncached")
	}

	verifier, err := newVerifier(specs, kratosClient, tracer, monitor, logger)
	if err != nil {
		return err
	}
	authMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)

	accountsService := accounts.NewService(kratosClient, s, mailService, specs.AllowedEmailDomains, tracer, monitor, logger)
	invitesService := invites.NewService(kratosClient, s, mailService, specs.InviteBaseURL, specs.InviteLifetime, tracer, monitor, logger)
	colleaguesService := colleagues.NewService(s, colleagueCache, tracer, monitor, logger)

	router := web.NewRouter(
		accounts.NewAPI(accountsService, logger),
		invites.NewAPI(invitesService, logger),
		colleagues.NewAPI(colleaguesService, logger),
		authMiddleware,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func newVerifier(
	specs *config.EnvSpec,
	kratosClient *kratos.Client,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (authentication.TokenVerifierInterface, error) {
	switch specs.AuthBackend {
	case "kratos":
		return authentication.NewSessionVerifier(kratosClient, tracer, monitor, logger), nil
	case "jwt":
		return authentication.NewJWTAuthenticator(
			context.Background(),
			specs.JWTIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
	case "noop":
		logger.Warn("Authentication is disabled, accepting any bearer token")
		return authentication.NewNoopVerifier(), nil
	default:
		return nil, fmt.Errorf("unknown auth backend %q", specs.AuthBackend)
	}
}
