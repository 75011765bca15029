package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramadhanip/optik-care-app/controllers"
	"github.com/ramadhanip/optik-care-app/middlewares"
	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, recommender services.FrameRecommender) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	dashboardCtrl := controllers.NewDashboardController(db)
	productCtrl := controllers.NewProductController(db)
	appointmentCtrl := controllers.NewAppointmentController(db)
	prescriptionCtrl := controllers.NewPrescriptionController(db)
	faceAnalysisCtrl := controllers.NewFaceAnalysisController(db, recommender)
	storeCtrl := controllers.NewStoreController(db)

	r.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public
	r.POST("/register", middlewares.NewStrictRateLimiter(), userCtrl.Register)
	r.POST("/login", middlewares.NewStrictRateLimiter(), userCtrl.Login)
	r.GET("/", middlewares.OptionalAuthMiddleware(), dashboardCtrl.GetDashboard)
	r.GET("/dashboard", middlewares.OptionalAuthMiddleware(), dashboardCtrl.GetDashboard)
	r.GET("/catalog", productCtrl.Catalog)
	r.GET("/products/:product_id", productCtrl.GetProductByID)
	r.GET("/ros", appointmentCtrl.ListAvailableROs)

	// Butuh login
	authorized := r.Group("")
	authorized.Use(middlewares.AuthMiddleware())
	{
		authorized.GET("/profile", userCtrl.GetProfile)

		authorized.POST("/appointments", appointmentCtrl.CreateAppointment)
		authorized.GET("/appointments", appointmentCtrl.ListMyAppointments)
		authorized.GET("/appointments/assigned", appointmentCtrl.ListAssignedAppointments)
		authorized.PATCH("/appointments/:appointment_id/status", appointmentCtrl.UpdateAppointmentStatus)

		authorized.POST("/prescriptions", prescriptionCtrl.CreatePrescription)
		authorized.GET("/prescriptions", prescriptionCtrl.ListMyPrescriptions)
		authorized.GET("/prescriptions/authored", prescriptionCtrl.ListAuthoredPrescriptions)
		authorized.GET("/prescriptions/:prescription_id", prescriptionCtrl.GetPrescriptionByID)

		authorized.POST("/face-analysis", faceAnalysisCtrl.CreateFaceAnalysis)
		authorized.GET("/face-analysis", faceAnalysisCtrl.ListMyAnalyses)

		store := authorized.Group("/store")
		store.Use(middlewares.RequireRoles(models.RoleOptikStore))
		{
			store.POST("", storeCtrl.CreateStore)
			store.GET("", storeCtrl.GetMyStore)
			store.PATCH("", storeCtrl.UpdateStore)
			store.POST("/products", storeCtrl.CreateProduct)
			store.GET("/products", storeCtrl.ListStoreProducts)
			store.PATCH("/products/:product_id", storeCtrl.UpdateProduct)
			store.DELETE("/products/:product_id", storeCtrl.DeactivateProduct)
			store.POST("/products/:product_id/images", storeCtrl.UploadProductImage)
			store.GET("/orders", storeCtrl.ListStoreOrders)
		}
	}

	// File statis hasil upload
	r.Static("/uploads", "./public/uploads")

	return r
}
