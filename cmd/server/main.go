package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	internalaudit "lendflow/internal/audit"
	"lendflow/internal/bureau"
	"lendflow/internal/decision"
	decisionmetrics "lendflow/internal/decision/metrics"
	"lendflow/internal/documents"
	"lendflow/internal/employment"
	jwttoken "lendflow/internal/jwt_token"
	"lendflow/internal/loan/store"
	"lendflow/internal/notify"
	"lendflow/internal/platform/config"
	"lendflow/internal/platform/httpserver"
	"lendflow/internal/platform/kafka"
	"lendflow/internal/platform/logger"
	platformredis "lendflow/internal/platform/redis"
	httptransport "lendflow/internal/transport/http"
	platformaudit "lendflow/pkg/platform/audit"
	auditmemory "lendflow/pkg/platform/audit/store/memory"
	auditpostgres "lendflow/pkg/platform/audit/store/postgres"
	auditworker "lendflow/pkg/platform/audit/worker"
)

const scoreCacheTTL = 15 * time.Minute

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages. Each collaborator is wired
// only when its endpoint is configured; the pipeline skips the rest.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collab := decision.Collaborators{}

	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		collab.Repository = store.NewPostgres(pool)
	} else {
		collab.Repository = store.NewMemory()
	}

	var auditDB *sql.DB
	var auditStore platformaudit.Store
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("audit store connect failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		auditDB = db
		auditStore = auditpostgres.New(db)
	} else {
		auditStore = auditmemory.New()
	}
	collab.Auditor = internalaudit.NewPublisher(auditStore)

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	kafkaClient, err := kafka.New(ctx, cfg.KafkaBrokers, cfg.NotifyTopic, cfg.AuditTopic)
	if err != nil {
		log.Error("kafka connect failed", "error", err)
		os.Exit(1)
	}
	if kafkaClient != nil {
		defer kafkaClient.Close()
		collab.Notifier = notify.NewKafka(kafkaClient, cfg.NotifyTopic)
	} else {
		collab.Notifier = notify.NewMemory()
	}

	if cfg.DocumentsURL != "" {
		collab.Documents = documents.NewClient(cfg.DocumentsURL)
	}
	if cfg.BureauURL != "" {
		opts := []bureau.Option{bureau.WithLogger(log)}
		if redisClient != nil {
			opts = append(opts, bureau.WithCache(bureau.NewScoreCache(redisClient.Client, scoreCacheTTL, log)))
		}
		collab.Bureau = bureau.NewClient(cfg.BureauURL, opts...)
	}
	if cfg.EmploymentURL != "" {
		collab.Employment = employment.NewClient(cfg.EmploymentURL)
	}

	svcOpts := []decision.Option{
		decision.WithLogger(log),
		decision.WithMetrics(decisionmetrics.New()),
	}
	if cfg.MinCreditScore > 0 {
		svcOpts = append(svcOpts, decision.WithMinCreditScore(cfg.MinCreditScore))
	}
	svc := decision.NewService(collab, svcOpts...)

	jwtSvc := jwttoken.NewJWTService(cfg.JWTSigningKey, "lendflow")
	handler := httptransport.NewHandler(svc, log)
	router := httptransport.NewRouter(handler, jwtSvc)
	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting lendflow", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if kafkaClient != nil && auditDB != nil {
		worker := auditworker.New(auditDB, kafkaClient, cfg.AuditTopic, auditworker.WithLogger(log))
		g.Go(func() error {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
