package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-dayflow-hrms/internal/authz"
	"go-dayflow-hrms/internal/config"
	"go-dayflow-hrms/internal/handler"
	"go-dayflow-hrms/internal/middleware"
	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/service"
	"go-dayflow-hrms/internal/session"
	"go-dayflow-hrms/internal/store"
	"go-dayflow-hrms/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Seed the in-memory dataset
	userStore := store.NewUserStore(store.SeedUsers())
	attendanceStore := store.NewAttendanceStore(store.SeedAttendance())
	leaveStore := store.NewLeaveStore(store.SeedLeaves())
	salaryStore := store.NewSalaryStore(store.SeedSalaries())
	log.Println("In-memory dataset seeded")

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	sessions := session.NewRegistry()
	guard := authz.NewGuard(cfg.EnforceRouteRoles)

	authService := service.NewAuthService(userStore, attendanceStore, sessions, wsHub, cfg.SimulatedLatency)
	leaveService := service.NewLeaveService(leaveStore, wsHub, cfg.SimulatedLatency)
	attendanceService := service.NewAttendanceService(attendanceStore, sessions)
	payrollService := service.NewPayrollService(salaryStore, userStore)
	userService := service.NewUserService(userStore)
	dashService := service.NewDashboardService(userStore, attendanceStore, leaveStore)

	authHandler := handler.NewAuthHandler(authService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	payrollHandler := handler.NewPayrollHandler(payrollService)
	userHandler := handler.NewUserHandler(userService)
	dashHandler := handler.NewDashboardHandler(dashService)
	navHandler := handler.NewNavigationHandler(guard)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Dayflow HRMS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/signup", authHandler.Signup)

	// ============ PROTECTED ROUTES ============
	// All routes below require an active session
	protected := api.Group("", middleware.RequireAuth(sessions))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Post("/auth/view-as", authHandler.ViewAs)
	protected.Post("/auth/heartbeat", authHandler.Heartbeat)

	protected.Get("/navigation", navHandler.Items)
	protected.Get("/navigation/guard", navHandler.Evaluate)

	protected.Get("/dashboard/stats", dashHandler.Stats)

	protected.Get("/profile", userHandler.OwnProfile)
	protected.Get("/profile/:userId", userHandler.Profile)

	protected.Get("/attendance", attendanceHandler.History)
	protected.Post("/attendance/check-in", attendanceHandler.CheckIn)
	protected.Post("/attendance/check-out", attendanceHandler.CheckOut)

	protected.Get("/leaves", leaveHandler.History)
	protected.Post("/leaves", leaveHandler.Submit)

	protected.Get("/payroll", payrollHandler.Slip)

	// Admin routes (role checks honor the enforcement flag)
	protected.Get("/employees", middleware.RequireRole(guard, model.RoleAdmin), userHandler.Directory)
	protected.Get("/leaves/pending", middleware.RequireRole(guard, model.RoleAdmin), leaveHandler.Pending)
	protected.Post("/leaves/:id/decision", middleware.RequireRole(guard, model.RoleAdmin), leaveHandler.Decide)
	protected.Get("/payroll/all", middleware.RequireRole(guard, model.RoleAdmin), payrollHandler.All)
	protected.Put("/payroll/:userId", middleware.RequireRole(guard, model.RoleAdmin), payrollHandler.Update)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
