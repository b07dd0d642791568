// internal/workers/answer/compose-answer/handler.go
package composeanswer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"funding-copilot/internal/catalog"
	cmnerrors "funding-copilot/internal/common/errors"
	"funding-copilot/internal/common/logger"
	"funding-copilot/internal/common/metrics"
	"funding-copilot/internal/engine"
	"funding-copilot/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const TaskType = "compose-answer"

var ErrNoCatalog = errors.New("ANSWER_COMPOSE_FAILED")

type Handler struct {
	config    *Config
	catalog   *catalog.Catalog
	cache     *redis.Client
	logger    logger.Logger
	errorResp *cmnerrors.ErrorHandler
}

// NewHandler builds the composition handler. The cache client may be nil,
// in which case every analysis is computed fresh.
func NewHandler(config *Config, cat *catalog.Catalog, cache *redis.Client, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		catalog:   cat,
		cache:     cache,
		logger:    scoped,
		errorResp: cmnerrors.NewErrorHandler(scoped),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "INVALID_QUERY").Inc()
		h.errorResp.HandleJobError(ctx, client, job,
			cmnerrors.NewInvalidQueryError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "ANSWER_COMPOSE_FAILED").Inc()
		h.errorResp.HandleJobError(ctx, client, job,
			cmnerrors.NewAnswerComposeFailedError(err))
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if h.catalog == nil {
		return nil, fmt.Errorf("%w: no catalog configured", ErrNoCatalog)
	}

	key := h.cacheKey(input)
	if cached := h.lookupCache(ctx, key); cached != nil {
		cached.Cached = true
		return cached, nil
	}

	var result models.AnalysisResult
	if input.Profile != nil {
		result = engine.ComposeAnswerForProfile(input.Query, *input.Profile,
			h.catalog.Investors, h.catalog.Schemes, h.catalog.Documents)
	} else {
		result = engine.ComposeAnswer(input.Query, h.config.Defaults,
			h.catalog.Investors, h.catalog.Schemes, h.catalog.Documents)
	}

	output := &Output{
		AnalysisID: uuid.NewString(),
		Result:     result,
	}

	metrics.AnalysesComposed.WithLabelValues(result.Confidence).Inc()
	h.storeCache(ctx, key, output)

	h.logger.Info("answer composed", map[string]interface{}{
		"analysisId": output.AnalysisID,
		"confidence": result.Confidence,
		"language":   result.Language.Lang,
	})

	return output, nil
}

// cacheKey is a digest of the query plus the optional profile override, so
// an override never collides with the plain-extraction path.
func (h *Handler) cacheKey(input *Input) string {
	sum := sha256.New()
	sum.Write([]byte(input.Query))
	if input.Profile != nil {
		sum.Write([]byte{0})
		payload, _ := json.Marshal(input.Profile)
		sum.Write(payload)
	}
	return "analysis:" + hex.EncodeToString(sum.Sum(nil))
}

func (h *Handler) lookupCache(ctx context.Context, key string) *Output {
	if h.cache == nil {
		return nil
	}

	raw, err := h.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			h.logger.WithError(err).Warn("cache lookup failed", nil)
		}
		metrics.AnalysisCacheRequests.WithLabelValues("miss").Inc()
		return nil
	}

	var output Output
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		h.logger.WithError(err).Warn("cache entry corrupt, recomputing", nil)
		metrics.AnalysisCacheRequests.WithLabelValues("miss").Inc()
		return nil
	}

	metrics.AnalysisCacheRequests.WithLabelValues("hit").Inc()
	return &output
}

func (h *Handler) storeCache(ctx context.Context, key string, output *Output) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(output)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, key, payload, h.config.CacheTTL).Err(); err != nil {
		h.logger.WithError(err).Warn("cache store failed", nil)
	}
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
