// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"gamelog/internal/cache"
	"gamelog/internal/database"
	"gamelog/internal/handler"
	"gamelog/internal/handler/auth"
	"gamelog/internal/handler/experiences"
	"gamelog/internal/handler/games"
	"gamelog/internal/middleware"
	"gamelog/internal/model"
	"gamelog/internal/service"
	"gamelog/internal/worker"
)

// Setup 建立 service 並註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, tokens *service.Tokens, workers worker.Pool) {
	accounts := service.NewAccounts(db, tokens)
	catalog := service.NewCatalog(db)
	exps := service.NewExperiences(db, workers)

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(accounts))
	api.POST("/auth/login", auth.LoginHandler(accounts))

	// 遊戲目錄：登入即可讀取，寫入限管理員
	apiGames := api.Group("/game", requireAuth)
	apiGames.GET("", games.ListGamesHandler(catalog))
	apiGames.GET("/:id", games.GetGameHandler(catalog))
	apiGames.POST("", games.CreateGameHandler(catalog), requireAdmin)
	apiGames.PUT("/:id", games.UpdateGameHandler(catalog), requireAdmin)
	apiGames.DELETE("/:id", games.DeleteGameHandler(catalog), requireAdmin)

	// 經驗：修改與刪除的擁有者檢查在 service
	apiExps := api.Group("/experience", requireAuth)
	apiExps.POST("", experiences.CreateExperienceHandler(exps))
	apiExps.GET("", experiences.ListExperiencesHandler(exps))
	apiExps.GET("/user/:userId", experiences.ListUserExperiencesHandler(exps))
	apiExps.GET("/game/:gameId", experiences.ListGameExperiencesHandler(exps))
	apiExps.PUT("/:id", experiences.UpdateExperienceHandler(exps))
	apiExps.DELETE("/:id", experiences.DeleteExperienceHandler(exps))
}
