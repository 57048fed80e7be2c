package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"project-plan-api/internal/metrics"
	"project-plan-api/internal/repository"
)

// StatsJob periodically refreshes the business gauges from the database
type StatsJob struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
	cron        *cron.Cron
}

// NewStatsJob creates a new StatsJob
func NewStatsJob(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, m *metrics.Metrics, logger *zap.Logger) *StatsJob {
	return &StatsJob{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		metrics:     m,
		logger:      logger,
		cron:        cron.New(),
	}
}

// Start schedules the refresh every minute and runs one refresh
// immediately so the gauges are populated right after boot
func (j *StatsJob) Start() error {
	if _, err := j.cron.AddFunc("@every 1m", j.refresh); err != nil {
		return err
	}
	j.cron.Start()
	go j.refresh()

	j.logger.Info("Stats job started")
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish
func (j *StatsJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("Stats job stopped")
}

func (j *StatsJob) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	projects, err := j.projectRepo.Count(ctx)
	if err != nil {
		j.logger.Warn("Failed to count projects for stats", zap.Error(err))
		return
	}
	tasks, err := j.taskRepo.Count(ctx)
	if err != nil {
		j.logger.Warn("Failed to count tasks for stats", zap.Error(err))
		return
	}

	j.metrics.SetProjectsTotal(projects)
	j.metrics.SetTasksTotal(tasks)
}
