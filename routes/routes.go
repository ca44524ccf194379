package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"concierge-backend/controllers"
	"concierge-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rc *controllers.RoomController,
	sc *controllers.ServiceController,
	mc *controllers.MenuController,
	oc *controllers.OrderController,
	ac *controllers.AdController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/login", controllers.Login)

		protected := api.Group("")
		protected.Use(middleware.Auth(), middleware.HotelScope())
		{
			hotels := protected.Group("/hotels")
			{
				hotels.GET("", controllers.GetHotels)
				hotels.POST("", controllers.CreateHotel)
				hotels.PUT("/:id", controllers.UpdateHotel)
				hotels.DELETE("/:id", controllers.DeleteHotel)
			}

			rooms := protected.Group("/rooms")
			{
				rooms.GET("", rc.GetRooms)
				rooms.POST("", rc.CreateRoom)
				rooms.PUT("/:id", rc.UpdateRoom)
				rooms.DELETE("/:id", rc.DeleteRoom)
				rooms.POST("/bulk-upload", rc.BulkUpload)
			}

			devices := protected.Group("/devices")
			{
				devices.GET("", controllers.GetDevices)
				devices.POST("", controllers.CreateDevice)
				devices.PUT("/:id", controllers.UpdateDevice)
				devices.DELETE("/:id", controllers.DeleteDevice)
			}

			svcs := protected.Group("/services")
			{
				svcs.GET("", sc.GetServices)
				svcs.GET("/:id", sc.GetService)
				svcs.POST("", sc.CreateService)
				svcs.PUT("/:id", sc.UpdateService)
				svcs.DELETE("/:id", sc.DeleteService)
			}

			menu := protected.Group("/menu")
			{
				menu.POST("/categories", mc.CreateCategory)

				menu.POST("/items", mc.CreateItem)
				menu.PUT("/items/:id", mc.UpdateItem)
				menu.DELETE("/items/:id", mc.DeleteItem)

				menu.POST("/modifiers", mc.CreateModifier)
				menu.PUT("/modifiers/:id", mc.UpdateModifier)
				menu.DELETE("/modifiers/:id", mc.DeleteModifier)

				menu.POST("/options", mc.CreateOption)
				menu.PUT("/options/:id", mc.UpdateOption)
				menu.DELETE("/options/:id", mc.DeleteOption)
			}

			orders := protected.Group("/orders")
			{
				orders.GET("", oc.GetOrders)
				orders.POST("", oc.CreateOrder)
				orders.PATCH("/:id/status", oc.UpdateOrderStatus)
			}

			ads := protected.Group("/ads")
			{
				ads.GET("", ac.GetAds)
				ads.POST("", ac.CreateAd)
				ads.PUT("/:id", ac.UpdateAd)
				ads.DELETE("/:id", ac.DeleteAd)
			}

			facilities := protected.Group("/facilities")
			{
				facilities.GET("", controllers.GetFacilities)
				facilities.POST("", controllers.CreateFacility)
				facilities.PUT("/:id", controllers.UpdateFacility)
				facilities.DELETE("/:id", controllers.DeleteFacility)
			}

			pois := protected.Group("/pois")
			{
				pois.GET("", controllers.GetPOIs)
				pois.POST("", controllers.CreatePOI)
				pois.PUT("/:id", controllers.UpdatePOI)
				pois.DELETE("/:id", controllers.DeletePOI)
			}

			users := protected.Group("/users")
			{
				users.GET("", controllers.GetUsers)
				users.POST("", controllers.CreateUser)
				users.PUT("/:id", controllers.UpdateUser)
				users.DELETE("/:id", controllers.DeleteUser)
			}

			settings := protected.Group("/hotel-settings")
			{
				settings.GET("/by-hotel/:id", controllers.GetHotelSettingByHotel)
				settings.POST("/upsert", controllers.UpsertHotelSetting)
			}

			protected.POST("/upload", controllers.Upload)
		}
	}

	return r
}
