package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/handlers"
	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/middleware"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	members ports.MemberRepository,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	completionHandler *handlers.CompletionHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	statCategoryHandler *handlers.StatCategoryHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())

	api.GET("/health", healthHandler.CheckHealth)
	api.GET("/health/report", healthHandler.CheckHealthReport)

	authed := api.Group("")
	authed.Use(middleware.IdentityMiddleware(members))
	{
		authed.GET("/tasks", taskHandler.ListTasks)
		authed.GET("/tasks/:id", taskHandler.GetTask)
		authed.POST("/tasks/:id/submissions", completionHandler.SubmitCompletion)
		authed.GET("/tasks/:id/submissions", completionHandler.ListTaskSubmissions)

		authed.GET("/me/completions", completionHandler.ListMyCompletions)

		authed.GET("/leaderboard/members", leaderboardHandler.MemberLeaderboard)
		authed.GET("/leaderboard/teams", leaderboardHandler.TeamLeaderboard)
		authed.GET("/leaderboard/teams/:id/members", leaderboardHandler.TeamMemberLeaderboard)
		authed.GET("/leaderboard/categories/:id", leaderboardHandler.StatsCategoryLeaderboard)
		authed.GET("/leaderboard/me", leaderboardHandler.MyScore)
		authed.GET("/leaderboard/members/:memberId/tasks", leaderboardHandler.MemberTaskBreakdown)
		authed.GET("/leaderboard/team-activity", leaderboardHandler.TeamActivity)

		authed.GET("/stats/categories", statCategoryHandler.ListStatCategories)
	}

	reviewers := authed.Group("")
	reviewers.Use(middleware.RequireReviewer())
	{
		// The review queue lives under /reviews so the pending list does not
		// collide with the :id wildcard in gin's route tree.
		reviewers.GET("/reviews", completionHandler.ListPending)
		reviewers.POST("/reviews/:id", completionHandler.ReviewCompletion)
		reviewers.GET("/members/:memberId/completions", completionHandler.ListMemberCompletions)
		reviewers.POST("/members/:memberId/completions", completionHandler.AdminCreateCompletion)
		reviewers.PATCH("/members/:memberId/completions/:completionId", completionHandler.AdminUpdateCompletion)
		reviewers.DELETE("/members/:memberId/completions/:completionId", completionHandler.AdminDeleteCompletion)
	}

	admins := authed.Group("")
	admins.Use(middleware.RequireAdmin())
	{
		admins.POST("/tasks", taskHandler.CreateTask)
		admins.PATCH("/tasks/:id", taskHandler.UpdateTask)
		admins.POST("/tasks/:id/archive", taskHandler.ArchiveTask)
		admins.POST("/tasks/:id/unarchive", taskHandler.UnarchiveTask)
		admins.DELETE("/tasks/:id", taskHandler.DeleteTask)
		admins.POST("/tasks/:id/variants", taskHandler.CreateVariant)
		admins.PATCH("/tasks/:id/variants/:variantId", taskHandler.UpdateVariant)
		admins.DELETE("/tasks/:id/variants/:variantId", taskHandler.DeleteVariant)

		admins.GET("/admin/stats/categories", statCategoryHandler.ManageStatCategories)
		admins.POST("/stats/categories", statCategoryHandler.CreateStatCategory)
		admins.PATCH("/stats/categories/:id", statCategoryHandler.UpdateStatCategory)
		admins.DELETE("/stats/categories/:id", statCategoryHandler.DeleteStatCategory)
		admins.POST("/stats/categories/:id/components", statCategoryHandler.AddComponent)
		admins.PATCH("/stats/components/:componentId", statCategoryHandler.UpdateComponent)
		admins.DELETE("/stats/components/:componentId", statCategoryHandler.DeleteComponent)
	}
}
