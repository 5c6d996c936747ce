package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tahsin/lingora/internal/app/controllers"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/app/models/dto"
	"github.com/tahsin/lingora/internal/middleware"
)

// SetupRouter configures all application routes. The route surface is flat:
// every handler gates uniformly on authentication first and role second, so
// the groups below encode the full access matrix.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	classController *controllers.ClassController,
	instructorController *controllers.InstructorController,
	cartController *controllers.CartController,
	paymentController *controllers.PaymentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.SuccessResponse{Message: "Lingora language school is running"},
			Timestamp: time.Now(),
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	router.POST("/jwt", authController.IssueToken)
	router.POST("/users", userController.CreateUser)
	router.GET("/classes", classController.GetClasses)
	router.GET("/instructors", instructorController.GetAllInstructors)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/myclasses", classController.GetClasses)

		authenticated.GET("/users/admin/:email", userController.CheckAdmin)
		authenticated.GET("/users/instructor/:email", userController.CheckInstructor)

		authenticated.GET("/carts", cartController.GetCartItems)
		authenticated.POST("/carts", cartController.AddCartItem)
		authenticated.DELETE("/carts/:id", cartController.RemoveCartItem)

		authenticated.POST("/create-payment-intent", paymentController.CreateIntent)
		authenticated.POST("/payments", paymentController.SettlePayment)

		// Instructor-only routes
		instructorProtected := authenticated.Group("")
		instructorProtected.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			instructorProtected.POST("/classes", classController.CreateClass)
		}

		// Admin-only routes
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.GET("/users", userController.GetAllUsers)
			adminProtected.PATCH("/users/admin/:id", userController.PromoteToAdmin)
			adminProtected.PATCH("/users/instructor/:id", userController.PromoteToInstructor)
			adminProtected.DELETE("/users/:id", userController.DeleteUser)
			adminProtected.PATCH("/classes/:id", classController.ApplyAction)
		}
	}
}
