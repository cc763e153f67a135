package router

import (
	"cuentas/api"
	"cuentas/config"
	_ "cuentas/docs"
	"cuentas/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the HTTP engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth())
	v1.Use(middleware.WriteRateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	{
		balanceHandler := api.NewBalanceHandler()
		balance := v1.Group("/balance")
		{
			balance.GET("", balanceHandler.Get)
			balance.POST("/add-to-banco", balanceHandler.AddToBanco)
			balance.POST("/add-to-cajon", balanceHandler.AddToCajon)
			balance.GET("/deposit-history", balanceHandler.DepositHistory)
		}

		expenseHandler := api.NewExpenseHandler()
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.GET("/monthly-summary", expenseHandler.MonthlySummary)
			expenses.GET("/season-summary", expenseHandler.SeasonSummary)
			expenses.POST("/reset-season", expenseHandler.ResetSeason)
			expenses.GET("/by-type/:typeId", expenseHandler.ByType)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		expenseTypeHandler := api.NewExpenseTypeHandler()
		v1.GET("/expense-types", expenseTypeHandler.List)
		v1.POST("/expense-types", expenseTypeHandler.Create)
		v1.DELETE("/expense-types/:id", expenseTypeHandler.Delete)

		budgetHandler := api.NewBudgetHandler()
		v1.GET("/monthly-budgets", budgetHandler.List)
		v1.POST("/monthly-budgets", budgetHandler.Create)
		v1.DELETE("/monthly-budgets/:id", budgetHandler.Delete)

		transferHandler := api.NewTransferHandler()
		v1.GET("/transfers", transferHandler.List)
		v1.POST("/transfers", transferHandler.Create)
		v1.DELETE("/transfers/:id", transferHandler.Delete)

		movementHandler := api.NewMovementHandler()
		movements := v1.Group("/movements")
		{
			movements.GET("", movementHandler.List)
			movements.GET("/ingresos/mes/:fecha", movementHandler.MonthIncome)
			movements.GET("/ingresos/temporada", movementHandler.SeasonIncome)
		}

		exportHandler := api.NewExportHandler()
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	return r
}

// CORSMiddleware allows cross-origin API calls
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
