package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"cuentas/config"
	"cuentas/database"
	"cuentas/middleware"
	"cuentas/models"
	"cuentas/router"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// @title Cuentas API
// @version 1.0
// @description Libro de cuentas personal con dos bolsillos (banco y cajón): depósitos, gastos, transferencias, resúmenes y exportación
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
	issueToken  uint
)

func init() {
	flag.StringVar(&configFile, "config", "", "external config file (optional)")
	flag.StringVar(&configFile, "c", "", "external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
	flag.UintVar(&issueToken, "issue-token", 0, "print a bearer token for the given user id and exit (development)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("cuentas v1.0.0")
		return
	}

	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	// amounts are JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port from flag: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("init database: %v", err)
	}

	middleware.InitJWT(cfg)

	if issueToken != 0 {
		printToken(cfg, issueToken)
		return
	}

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  cuentas started")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:      http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// printToken ensures the user row exists and prints a signed token for it
func printToken(cfg *config.Config, userID uint) {
	user := models.User{ID: userID}
	if err := database.DB.Where(models.User{ID: userID}).
		Attrs(models.User{Name: fmt.Sprintf("user%d", userID), Email: fmt.Sprintf("user%d@localhost", userID)}).
		FirstOrCreate(&user).Error; err != nil {
		log.Fatalf("load user %d: %v", userID, err)
	}

	token, err := middleware.GenerateToken(user.ID, user.Name, cfg.JWT.ExpireTime)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
