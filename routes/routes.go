package routes

import (
	"github.com/PatrickBizetto/delivery-api-patrick/configs"
	"github.com/PatrickBizetto/delivery-api-patrick/controllers"
	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/middlewares"
	"github.com/PatrickBizetto/delivery-api-patrick/pkg/cache"
	"github.com/PatrickBizetto/delivery-api-patrick/repository"
	"github.com/PatrickBizetto/delivery-api-patrick/services"
	"github.com/PatrickBizetto/delivery-api-patrick/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, cc cache.Cache, hub *ws.OrderFeedHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, clientRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL)
	clientSvc := services.NewClientService(clientRepo)
	restSvc := services.NewRestaurantService(restRepo, productRepo)
	productSvc := services.NewProductService(productRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, clientRepo, restRepo, productRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	clientCtrl := controllers.NewClientController(clientSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	productCtrl := controllers.NewProductController(productSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cc, hub)

	auth := middlewares.AuthMiddleware
	secret := cfg.JWTSecret

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(secret), authCtrl.Me)
	}

	// Clientes
	clientes := api.Group("/clientes")
	{
		clientes.POST("", auth(secret, entity.RoleAdmin), clientCtrl.Create)
		clientes.GET("", auth(secret, entity.RoleAdmin), clientCtrl.ListActive)
		clientes.GET("/:id", auth(secret), clientCtrl.Detail)
		clientes.PUT("/:id", auth(secret, entity.RoleAdmin), clientCtrl.Update)
		clientes.PATCH("/:id/status", auth(secret, entity.RoleAdmin), clientCtrl.ToggleActive)
	}

	// Restaurantes
	restaurantes := api.Group("/restaurantes")
	{
		restaurantes.POST("", auth(secret, entity.RoleAdmin), restCtrl.Create)
		restaurantes.GET("", restCtrl.List)
		restaurantes.GET("/:id", restCtrl.Detail)
		restaurantes.PUT("/:id", auth(secret, entity.RoleAdmin, entity.RoleRestaurante), restCtrl.Update)
		restaurantes.PATCH("/:id/status", auth(secret, entity.RoleAdmin), restCtrl.ToggleActive)
		restaurantes.GET("/:id/produtos", restCtrl.Products)
		restaurantes.GET("/:id/taxa-entrega/:cep", auth(secret), restCtrl.DeliveryFee)
	}

	// Produtos
	produtos := api.Group("/produtos")
	{
		produtos.POST("", auth(secret, entity.RoleAdmin, entity.RoleRestaurante), productCtrl.Create)
		produtos.GET("", productCtrl.List)
		produtos.GET("/:id", productCtrl.Detail)
		produtos.PUT("/:id", auth(secret, entity.RoleAdmin, entity.RoleRestaurante), productCtrl.Update)
		produtos.DELETE("/:id", auth(secret, entity.RoleAdmin, entity.RoleRestaurante), productCtrl.Delete)
		produtos.PATCH("/:id/disponibilidade", auth(secret, entity.RoleAdmin, entity.RoleRestaurante), productCtrl.ToggleAvailability)
	}

	// Pedidos
	pedidos := api.Group("/pedidos", auth(secret))
	{
		pedidos.POST("", orderCtrl.Create)
		pedidos.GET("", auth(secret, entity.RoleAdmin), orderCtrl.List)
		pedidos.GET("/:id", orderCtrl.Detail)
		pedidos.PATCH("/:id/status", orderCtrl.UpdateStatus)
		pedidos.DELETE("/:id", orderCtrl.Cancel)
		pedidos.GET("/cliente/:clienteId", orderCtrl.ListByClient)
		pedidos.GET("/restaurante/:restauranteId", orderCtrl.ListByRestaurant)
		pedidos.POST("/calcular", orderCtrl.Calculate)
	}

	// Live order feed for restaurant staff
	r.GET("/ws/restaurantes/:id/pedidos", middlewares.WSAuthMiddleware(secret), hub.HandleWebSocket)
}
