package main

import (
	_ "budget_service/docs"
	"budget_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Budget Request Service API
// @version         1.0
// @description     Budget requests computed from questionnaire answers, with pre sale and financial approval.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
