package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"project-plan-api/internal/config"
	"project-plan-api/internal/handler"
	"project-plan-api/internal/metrics"
	"project-plan-api/internal/middleware"
)

// Handlers bundles every HTTP handler the router wires up
type Handlers struct {
	Health     *handler.HealthHandler
	Project    *handler.ProjectHandler
	Task       *handler.TaskHandler
	Sprint     *handler.SprintHandler
	Resource   *handler.ResourceHandler
	Baseline   *handler.BaselineHandler
	Change     *handler.ChangeHandler
	Governance *handler.GovernanceHandler
	Settings   *handler.SettingsHandler
	AI         *handler.AIHandler
}

// Setup builds the gin engine with middleware and the full route table
func Setup(cfg *config.Config, h *Handlers, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.Server.BasePath)
	api.Use(middleware.Auth(cfg.JWT.Secret))
	{
		api.GET("/settings", h.Settings.GetSettings)
		api.PUT("/settings", h.Settings.UpdateSettings)

		api.POST("/resources", h.Resource.CreateResource)
		api.GET("/resources", h.Resource.ListResources)
		api.PUT("/resources/:resourceId", h.Resource.UpdateResource)
		api.DELETE("/resources/:resourceId", h.Resource.DeleteResource)

		api.POST("/projects", h.Project.CreateProject)
		api.GET("/projects", h.Project.ListProjects)

		project := api.Group("/projects/:projectId")
		{
			project.GET("", h.Project.GetProject)
			project.PUT("", h.Project.UpdateProject)
			project.DELETE("", h.Project.DeleteProject)

			project.POST("/tasks", h.Task.CreateTasks)
			project.GET("/tasks", h.Task.ListTasks)
			project.PUT("/tasks/:taskId", h.Task.UpdateTask)
			project.DELETE("/tasks/:taskId", h.Task.DeleteTask)

			project.POST("/sprints", h.Sprint.CreateSprint)
			project.GET("/sprints", h.Sprint.ListSprints)
			project.PUT("/sprints/:sprintId", h.Sprint.UpdateSprint)
			project.DELETE("/sprints/:sprintId", h.Sprint.DeleteSprint)

			project.POST("/assignments", h.Resource.CreateAssignment)
			project.GET("/workload", h.Resource.GetTeamWorkload)

			project.POST("/baselines", h.Baseline.CreateBaseline)
			project.GET("/baselines", h.Baseline.ListBaselines)
			project.GET("/baseline-comparison", h.Baseline.GetComparison)

			project.POST("/changes", h.Change.CreateChangeRequest)
			project.GET("/changes", h.Change.ListChangeRequests)
			project.GET("/changes/:changeId", h.Change.GetChangeRequest)
			project.GET("/changes/:changeId/analysis", h.Change.GetAnalysis)
			project.POST("/changes/:changeId/analyze", h.Change.AnalyzeChange)
			project.POST("/changes/:changeId/approve", h.Change.ApproveChange)
			project.POST("/changes/:changeId/reject", h.Change.RejectChange)
			project.GET("/change-history", h.Change.GetHistory)

			project.POST("/risks", h.Governance.CreateRisk)
			project.GET("/risks", h.Governance.ListRisks)
			project.POST("/decisions", h.Governance.CreateDecision)
			project.GET("/decisions", h.Governance.ListDecisions)
			project.POST("/milestones", h.Governance.CreateMilestone)
			project.GET("/milestones", h.Governance.ListMilestones)
			project.GET("/governance", h.Governance.GetGovernance)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/breakdown", h.AI.BreakdownRequirements)
			ai.POST("/sprint-plan", h.AI.PlanSprints)
			ai.POST("/report", h.AI.GenerateReport)
			ai.POST("/advisor", h.AI.Advise)
			ai.POST("/optimize-workload", h.AI.OptimizeWorkload)
		}
	}

	return r
}
