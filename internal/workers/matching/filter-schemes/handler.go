// internal/workers/matching/filter-schemes/handler.go
package filterschemes

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

const TaskType = "filter-schemes"

var ErrNoCatalog = errors.New("SCHEME_FILTER_FAILED")

type Handler struct {
	config  *Config
	schemes []models.Scheme
	logger  logger.Logger
}

func NewHandler(config *Config, schemes []models.Scheme, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		schemes: schemes,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, "SCHEME_FILTER_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// Eligible schemes keep their catalog order; the best scheme is simply the
// first eligible one.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	schemes := input.Schemes
	if schemes == nil {
		schemes = h.schemes
	}
	if schemes == nil {
		return nil, fmt.Errorf("%w: no scheme catalog configured", ErrNoCatalog)
	}

	eligible := engine.FilterSchemes(input.Profile, schemes)

	output := &Output{EligibleSchemes: eligible}
	if len(eligible) > 0 {
		output.BestScheme = &eligible[0]
	}

	h.logger.Info("schemes filtered", map[string]interface{}{
		"catalogSize":   len(schemes),
		"eligibleCount": len(eligible),
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
