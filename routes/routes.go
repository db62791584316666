package routes

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jerekarp/hyte-backend/controllers"
	"github.com/jerekarp/hyte-backend/middlewares"
	"github.com/jerekarp/hyte-backend/services"
)

var durationPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

var registerValidatorsOnce sync.Once

// registerValidators adds the hhmmss rule for activity durations to
// Gin's binding engine.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("hhmmss", func(fl validator.FieldLevel) bool {
				return durationPattern.MatchString(fl.Field().String())
			})
		}
	})
}

func SetupRouter() *gin.Engine {
	registerValidators()

	r := gin.Default()
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	users := api.Group("/users")
	users.Use(middlewares.AuthMiddleware())
	{
		users.GET("/me", controllers.GetProfile)
	}

	entries := api.Group("/entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.GET("", controllers.GetEntries)
		entries.POST("", controllers.PostEntry)
		entries.GET("/:id", controllers.GetEntryByID)
		entries.PUT("/:id", controllers.PutEntry)
		entries.DELETE("/:id", controllers.DeleteEntry)
	}

	activities := api.Group("/activities")
	activities.Use(middlewares.AuthMiddleware())
	{
		activities.GET("", controllers.GetActivities)
		activities.POST("", controllers.PostActivity)
		activities.GET("/:id", controllers.GetActivityByID)
		activities.PUT("/:id", controllers.PutActivity)
		activities.DELETE("/:id", controllers.DeleteActivity)
	}

	measurements := api.Group("/measurements")
	measurements.Use(middlewares.AuthMiddleware())
	{
		measurements.GET("", controllers.GetMeasurements)
		measurements.POST("", controllers.PostMeasurement)
		measurements.GET("/:id", controllers.GetMeasurementByID)
		measurements.PUT("/:id", controllers.PutMeasurement)
		measurements.DELETE("/:id", controllers.DeleteMeasurement)
	}

	// Demo resource, in-memory and unauthenticated like the original mock.
	itemController := controllers.NewItemController(services.NewItemStore())
	items := api.Group("/items")
	{
		items.GET("", itemController.GetItems)
		items.POST("", itemController.PostItem)
		items.GET("/:id", itemController.GetItemByID)
		items.PUT("/:id", itemController.PutItem)
		items.DELETE("/:id", itemController.DeleteItem)
	}

	return r
}
