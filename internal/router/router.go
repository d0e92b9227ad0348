// Package router sets up HTTP routes for the API.
package router

import (
	"context"
	"net/http"
	"time"

	_ "braik-api/swagger" // Import generated swagger docs

	"braik-api/internal/authz"
	"braik-api/internal/handler"
	"braik-api/internal/logger"
	"braik-api/internal/metrics"
	"braik-api/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Pinger is a dependency the health endpoint checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	TeamHandler          *handler.TeamHandler
	TeamMemberHandler    *handler.TeamMemberHandler
	InvitationHandler    *handler.TeamInvitationHandler
	AnnouncementHandler  *handler.AnnouncementHandler
	DocumentHandler      *handler.DocumentHandler
	BillingHandler       *handler.BillingHandler
	AIHandler            *handler.AIHandler
	AdminHandler         *handler.AdminHandler
	ImpersonationHandler *handler.ImpersonationHandler
	SystemConfigHandler  *handler.SystemConfigHandler
	AuditLogHandler      *handler.AuditLogHandler

	Sessions       middleware.SessionResolver
	Impersonations middleware.ImpersonationResolver
	Users          middleware.UserLoader
	Authorizer     authz.Authorizer
	Guard          authz.OperationGuard

	HealthChecks       map[string]Pinger
	Metrics            *metrics.Metrics
	Logger             *zap.Logger
	CORSAllowedOrigins []string
	SecureCookies      bool
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))
	r.Use(middleware.RequestMeta())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	r.GET("/health", health(cfg.HealthChecks))

	perm := func(p authz.Permission) gin.HandlerFunc {
		return middleware.TeamPermission(cfg.Authorizer, p)
	}
	op := func(o authz.Operation) gin.HandlerFunc {
		return middleware.TeamOperation(cfg.Guard, o)
	}
	veto := middleware.DenyDuringImpersonation()

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Everything below resolves the session, then an optional support token.
		authed := v1.Group("")
		authed.Use(middleware.Auth(cfg.Sessions))
		authed.Use(middleware.Impersonation(cfg.Impersonations, cfg.Users, cfg.SecureCookies))

		authed.GET("/auth/me", cfg.AuthHandler.Me)

		users := authed.Group("/users")
		{
			users.GET("/me", cfg.UserHandler.GetMe)
			users.PUT("/me", veto, cfg.UserHandler.UpdateMe)
			users.DELETE("/me", veto, cfg.UserHandler.DeleteMe)
		}

		teams := authed.Group("/teams")
		{
			teams.POST("", cfg.TeamHandler.CreateTeam)
			teams.GET("", cfg.TeamHandler.ListTeams)

			team := teams.Group("/:teamId")
			{
				team.GET("", perm(authz.PermViewTeam), op(authz.OpView), cfg.TeamHandler.GetTeam)
				team.PUT("", perm(authz.PermEditTeamSettings), op(authz.OpWrite), cfg.TeamHandler.UpdateTeam)
				team.DELETE("", veto, perm(authz.PermEditTeamSettings), op(authz.OpWrite), cfg.TeamHandler.DeleteTeam)

				members := team.Group("/members")
				{
					members.GET("", perm(authz.PermViewTeam), op(authz.OpView), cfg.TeamMemberHandler.ListMembers)
					members.POST("", perm(authz.PermEditRoster), op(authz.OpWrite), cfg.TeamMemberHandler.AddMember)
					members.PUT("/:userId", perm(authz.PermManageMembers), op(authz.OpWrite), cfg.TeamMemberHandler.UpdateMember)
					members.DELETE("/:userId", perm(authz.PermManageMembers), op(authz.OpWrite), cfg.TeamMemberHandler.RemoveMember)
				}
				team.POST("/leave", perm(authz.PermViewTeam), op(authz.OpView), cfg.TeamMemberHandler.LeaveTeam)

				invitations := team.Group("/invitations")
				{
					invitations.POST("", perm(authz.PermManageMembers), op(authz.OpWrite), cfg.InvitationHandler.CreateInvitation)
					invitations.GET("", perm(authz.PermManageMembers), op(authz.OpWrite), cfg.InvitationHandler.ListTeamInvitations)
					invitations.DELETE("/:id", perm(authz.PermManageMembers), op(authz.OpWrite), cfg.InvitationHandler.CancelInvitation)
				}

				announcements := team.Group("/announcements")
				{
					announcements.GET("", perm(authz.PermViewAnnouncements), op(authz.OpView), cfg.AnnouncementHandler.ListAnnouncements)
					announcements.POST("", perm(authz.PermPostAnnouncements), op(authz.OpWrite), cfg.AnnouncementHandler.CreateAnnouncement)
					announcements.DELETE("/:id", perm(authz.PermPostAnnouncements), op(authz.OpWrite), cfg.AnnouncementHandler.DeleteAnnouncement)
				}

				documents := team.Group("/documents")
				{
					documents.GET("", perm(authz.PermViewDocuments), op(authz.OpView), cfg.DocumentHandler.ListDocuments)
					documents.POST("", perm(authz.PermManageDocuments), op(authz.OpWrite), cfg.DocumentHandler.CreateDocument)
					documents.POST("/:id/confirm", perm(authz.PermManageDocuments), op(authz.OpWrite), cfg.DocumentHandler.ConfirmUpload)
					documents.GET("/:id/url", perm(authz.PermViewDocuments), op(authz.OpView), cfg.DocumentHandler.GetDownloadURL)
					documents.DELETE("/:id", perm(authz.PermManageDocuments), op(authz.OpWrite), cfg.DocumentHandler.DeleteDocument)
				}

				billing := team.Group("/billing")
				{
					billing.GET("", perm(authz.PermManageBilling), op(authz.OpBilling), cfg.BillingHandler.GetBilling)
					billing.POST("/payout-account", veto, perm(authz.PermManageBilling), op(authz.OpBilling), cfg.BillingHandler.ConnectPayoutAccount)
				}

				ai := team.Group("/ai")
				{
					ai.POST("/chat", perm(authz.PermUseAIAssistant), op(authz.OpAI), cfg.AIHandler.Chat)
					ai.GET("/usage", perm(authz.PermUseAIAssistant), op(authz.OpView), cfg.AIHandler.GetUsage)
					ai.GET("/proposals", perm(authz.PermUseAIAssistant), op(authz.OpView), cfg.AIHandler.ListProposals)
					ai.POST("/proposals", perm(authz.PermUseAIAssistant), op(authz.OpAI), cfg.AIHandler.CreateProposal)
					ai.POST("/proposals/:id/execute", perm(authz.PermApproveAIActions), op(authz.OpAI), cfg.AIHandler.ExecuteProposal)
					ai.POST("/proposals/:id/reject", perm(authz.PermApproveAIActions), op(authz.OpAI), cfg.AIHandler.RejectProposal)
				}

				team.GET("/audit-logs", perm(authz.PermViewAuditLog), op(authz.OpView), cfg.AuditLogHandler.ListTeamLogs)
			}
		}

		// User invitations routes
		invitations := authed.Group("/invitations")
		{
			invitations.GET("", cfg.InvitationHandler.ListMyInvitations)
			invitations.POST("/:id/accept", cfg.InvitationHandler.AcceptInvitation)
			invitations.POST("/:id/decline", cfg.InvitationHandler.DeclineInvitation)
		}

		// Ending impersonation must work from inside the impersonated session,
		// where the effective user is not an admin.
		authed.DELETE("/admin/impersonation", cfg.ImpersonationHandler.End)

		admin := authed.Group("/admin")
		admin.Use(middleware.RequirePlatformAdmin())
		{
			admin.GET("/teams", cfg.AdminHandler.ListTeams)
			admin.PUT("/teams/:teamId/status", cfg.AdminHandler.UpdateTeamStatus)
			admin.PUT("/teams/:teamId/ai", cfg.AdminHandler.UpdateTeamAISettings)

			admin.POST("/impersonation", veto, cfg.ImpersonationHandler.Start)
			admin.GET("/impersonation/sessions", cfg.ImpersonationHandler.ListSessions)

			admin.GET("/config/:key", cfg.SystemConfigHandler.Get)
			admin.PUT("/config/:key", cfg.SystemConfigHandler.Put)
			admin.GET("/config/:key/history", cfg.SystemConfigHandler.History)

			admin.GET("/audit-logs", cfg.AuditLogHandler.ListPlatformLogs)
		}
	}

	return r
}

// health reports 503 when any dependency fails its ping.
func health(checks map[string]Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(gin.H, len(checks))
		for name, check := range checks {
			if err := check.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{"status": state, "checks": results})
	}
}
