package routes

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/configs"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/controllers"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/middlewares"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/cart"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/tracking"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/repository"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/services"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	prodRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reelRepo := repository.NewReelRepository(db)

	// Session state (volatile, memory-only by design)
	carts := cart.NewStore()
	trackers := tracking.NewRegistry()

	// Tracking push: simulated feed behind the StatusSource interface
	trackHub := ws.NewTrackHub(trackers, tracking.NewSimulator())

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(carts, prodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, prodRepo, carts, trackers, trackHub)
	checkoutSvc := services.NewCheckoutService(carts)
	reelSvc := services.NewReelService(reelRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restRepo)
	catCtrl := controllers.NewCategoryController(catRepo)
	prodCtrl := controllers.NewProductController(prodRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	reelCtrl := controllers.NewReelController(reelSvc)
	userCtrl := controllers.NewUserController(userRepo)
	trackCtrl := controllers.NewTrackingController(trackers)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	staff := middlewares.AuthMiddleware(cfg.JWTSecret, "staff")
	optional := middlewares.OptionalAuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register/", authCtrl.Register)
		a.POST("/login/", authCtrl.Login)
		a.GET("/profile/", auth, authCtrl.Profile)
		a.PATCH("/profile/", auth, authCtrl.UpdateProfile)
	}

	// Public catalog
	r.GET("/restaurants/", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/categories/", catCtrl.List)
	r.GET("/categories/:id", catCtrl.Detail)
	r.GET("/products/", prodCtrl.List)
	r.GET("/products/:id", prodCtrl.Detail)

	// Reels feed (personalized when a token is present)
	r.GET("/reels/", optional, reelCtrl.List)
	r.POST("/reels/:id/view/", reelCtrl.View)

	// Session cart
	cartGrp := r.Group("/cart", auth)
	{
		cartGrp.GET("", cartCtrl.Get)
		cartGrp.POST("/items", cartCtrl.Add)
		cartGrp.POST("/items/:id/increment", cartCtrl.Increment)
		cartGrp.POST("/items/:id/decrement", cartCtrl.Decrement)
		cartGrp.DELETE("/items/:id", cartCtrl.Remove)
		cartGrp.DELETE("", cartCtrl.Clear)
	}

	// Orders + checkout + tracking
	u := r.Group("/", auth)
	{
		u.POST("/orders/", orderCtrl.Create)
		u.GET("/orders/", orderCtrl.List)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/checkout/whatsapp", checkoutCtrl.WhatsApp)
		u.GET("/track", trackCtrl.Get)
		u.POST("/reels/:id/save/", reelCtrl.Save)
		u.DELETE("/reels/:id/save/", reelCtrl.Unsave)
		u.GET("/reels/saved/", reelCtrl.Saved)
	}

	// Tracking push feed
	r.GET("/ws/track", middlewares.WSAuthMiddleware(cfg.JWTSecret), trackHub.HandleWebSocket)

	// Admin (staff only)
	admin := r.Group("/", staff)
	{
		admin.POST("/restaurants/", restCtrl.Create)
		admin.PATCH("/restaurants/:id", restCtrl.Update)
		admin.DELETE("/restaurants/:id", restCtrl.Delete)

		admin.POST("/categories/", catCtrl.Create)
		admin.PATCH("/categories/:id", catCtrl.Update)
		admin.DELETE("/categories/:id", catCtrl.Delete)

		admin.POST("/products/", prodCtrl.Create)
		admin.PATCH("/products/:id", prodCtrl.Update)
		admin.DELETE("/products/:id", prodCtrl.Delete)

		admin.POST("/reels/", reelCtrl.Create)
		admin.PATCH("/reels/:id", reelCtrl.Update)
		admin.DELETE("/reels/:id", reelCtrl.Delete)

		admin.GET("/users/", userCtrl.List)
		admin.GET("/users/:id", userCtrl.Detail)
		admin.PATCH("/users/:id", userCtrl.Update)
		admin.DELETE("/users/:id", userCtrl.Delete)

		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}
}
