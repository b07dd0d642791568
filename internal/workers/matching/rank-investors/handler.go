// internal/workers/matching/rank-investors/handler.go
package rankinvestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"funding-copilot/internal/common/logger"
	"funding-copilot/internal/common/metrics"
	"funding-copilot/internal/engine"
	"funding-copilot/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "rank-investors"

var ErrNoCatalog = errors.New("RANKING_FAILED")

type Handler struct {
	config    *Config
	investors []models.Investor
	logger    logger.Logger
}

func NewHandler(config *Config, investors []models.Investor, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		investors: investors,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, "RANKING_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	investors := input.Investors
	if investors == nil {
		investors = h.investors
	}
	if investors == nil {
		return nil, fmt.Errorf("%w: no investor catalog configured", ErrNoCatalog)
	}

	ranked := engine.RankInvestors(input.Profile, investors)

	output := &Output{RankedInvestors: ranked}
	bestTotal := 0
	if len(ranked) > 0 {
		output.BestInvestor = &ranked[0]
		bestTotal = ranked[0].Total
	}

	h.logger.Info("investors ranked", map[string]interface{}{
		"catalogSize": len(investors),
		"bestTotal":   bestTotal,
	})

	return output, nil
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

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
