// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"funding-copilot/internal/catalog"
	"funding-copilot/internal/common/camunda"
	"funding-copilot/internal/common/config"
	"funding-copilot/internal/common/database"
	"funding-copilot/internal/common/logger"
	"funding-copilot/internal/common/observability"
	"funding-copilot/internal/models"

	ca "funding-copilot/internal/workers/answer/compose-answer"
	fs "funding-copilot/internal/workers/matching/filter-schemes"
	ri "funding-copilot/internal/workers/matching/rank-investors"
	dl "funding-copilot/internal/workers/query/detect-language"
	ep "funding-copilot/internal/workers/query/extract-profile"
	rd "funding-copilot/internal/workers/retrieval/retrieve-documents"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      config.GetDuration(cfg.Camunda.Timeout),
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init Redis with retry (analysis result cache) ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Load Catalogs ---
	cat, err := loadCatalog(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	zapLog.Info("Catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("investors", len(cat.Investors)),
		zap.Int("schemes", len(cat.Schemes)),
		zap.Int("documents", len(cat.Documents)),
	)

	defaults := models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 4}

	// --- Register Workers ---
	var workers []*camunda.CamundaWorker

	if cfg.Workers[dl.TaskType].Enabled {
		handler := dl.NewHandler(
			&dl.Config{
				Timeout: config.GetDuration(cfg.Workers[dl.TaskType].Timeout),
			},
			log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient, dl.TaskType, cfg.Workers[dl.TaskType], handler.Handle, obs, zapLog))
	}

	if cfg.Workers[ep.TaskType].Enabled {
		handler := ep.NewHandler(
			&ep.Config{
				Timeout:  config.GetDuration(cfg.Workers[ep.TaskType].Timeout),
				Defaults: defaults,
			},
			log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient, ep.TaskType, cfg.Workers[ep.TaskType], handler.Handle, obs, zapLog))
	}

	if cfg.Workers[ri.TaskType].Enabled {
		handler := ri.NewHandler(
			&ri.Config{
				Timeout: config.GetDuration(cfg.Workers[ri.TaskType].Timeout),
			},
			cat.Investors, log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient, ri.TaskType, cfg.Workers[ri.TaskType], handler.Handle, obs, zapLog))
	}

	if cfg.Workers[fs.TaskType].Enabled {
		handler := fs.NewHandler(
			&fs.Config{
				Timeout: config.GetDuration(cfg.Workers[fs.TaskType].Timeout),
			},
			cat.Schemes, log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient, fs.TaskType, cfg.Workers[fs.TaskType], handler.Handle, obs, zapLog))
	}

	if cfg.Workers[rd.TaskType].Enabled {
		handler := rd.NewHandler(
			&rd.Config{
				Timeout: config.GetDuration(cfg.Workers[rd.TaskType].Timeout),
				TopK:    cfg.Analysis.RetrievalK,
			},
			cat.Documents, log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient, rd.TaskType, cfg.Workers[rd.TaskType], handler.Handle, obs, zapLog))
	}

	if cfg.Workers[ca.TaskType].Enabled {
		handler := ca.NewHandler(
			&ca.Config{
				Timeout:  config.GetDuration(cfg.Workers[ca.TaskType].Timeout),
				CacheTTL: time.Duration(cfg.Analysis.CacheTTL) * time.Second,
				Defaults: defaults,
			},
			cat, redisClient.Client, log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient, ca.TaskType, cfg.Workers[ca.TaskType], handler.Handle, obs, zapLog))
	}

	zapLog.Info("All workers registered successfully", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			reqCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()
			if err := camundaClient.HealthCheck(reqCtx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	for _, w := range workers {
		w.Stop()
	}
	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// loadCatalog resolves the configured catalog source. The database source
// reads investors and schemes from Postgres and documents from
// Elasticsearch; both connections retry before the process gives up.
func loadCatalog(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case "embedded":
		return catalog.Default(), nil

	case "file":
		return catalog.Load(cfg.Catalog.Path)

	case "database":
		var pg *database.PostgresClient
		err := retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			return nil, err
		}
		defer pg.Close()

		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			return nil, err
		}

		investors, err := catalog.LoadInvestors(ctx, pg.DB)
		if err != nil {
			return nil, fmt.Errorf("load investors: %w", err)
		}
		schemes, err := catalog.LoadSchemes(ctx, pg.DB)
		if err != nil {
			return nil, fmt.Errorf("load schemes: %w", err)
		}
		documents, err := catalog.LoadDocuments(ctx, esClient.Client, cfg.Catalog.DocumentsIndex)
		if err != nil {
			return nil, fmt.Errorf("load documents: %w", err)
		}

		return &catalog.Catalog{Investors: investors, Schemes: schemes, Documents: documents}, nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
