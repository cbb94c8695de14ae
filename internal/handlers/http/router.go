package http

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/academia-backend/docs" // registra a documentação OpenAPI
	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/handlers/middleware"
	"github.com/rafabene/academia-backend/internal/infrastructure/i18n"
)

// Handlers agrupa os handlers montados no router
type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Students      *StudentHandler
	Instructors   *InstructorHandler
	Treinos       *TreinoHandler
	Payments      *PaymentHandler
	Notifications *NotificationHandler
	Dashboard     *DashboardHandler
	Health        *HealthHandler
}

// RouterConfig reúne as dependências transversais do router
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins string
	Logger         ports.Logger
	I18n           *i18n.Service
	Auth           *middleware.AuthMiddleware
	EnableSwagger  bool
}

// NewRouter monta o engine do Gin com middlewares e rotas da API
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.Use(
		Recovery(cfg.Logger),
		middleware.RequestLogger(cfg.Logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.BaseURL(cfg.BaseURL),
		middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage(),
		ErrorHandler(cfg.Logger),
	)

	router.GET("/health", h.Health.Health)
	if cfg.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", cfg.Auth.RequireAuth(), h.Auth.Me)
	}

	protected := v1.Group("", cfg.Auth.RequireAuth())

	users := protected.Group("/users")
	{
		users.GET("", middleware.RequirePermission(entities.PermissionUserRead), h.Users.ListUsers)
		users.GET("/:id", middleware.RequirePermission(entities.PermissionUserRead), h.Users.GetUser)
		users.POST("", middleware.RequirePermission(entities.PermissionUserWrite), h.Users.CreateUser)
		users.PUT("/:id", middleware.RequirePermission(entities.PermissionUserWrite), h.Users.UpdateUser)
		users.DELETE("/:id", middleware.RequirePermission(entities.PermissionUserDelete), h.Users.DeleteUser)
	}

	students := protected.Group("/students")
	{
		read := middleware.RequirePermission(entities.PermissionStudentRead)
		write := middleware.RequirePermission(entities.PermissionStudentWrite)

		students.GET("", read, h.Students.ListStudents)
		students.GET("/:id", read, h.Students.GetStudent)
		students.POST("", write, h.Students.CreateStudent)
		students.PUT("/:id", write, h.Students.UpdateStudent)
		students.DELETE("/:id", write, h.Students.DeleteStudent)
		students.GET("/:id/instructors", read, h.Students.ListInstructors)
		students.POST("/:id/instructors", write, h.Students.AssignInstructor)
		students.GET("/:id/checkins", read, h.Students.ListCheckIns)
		students.POST("/:id/checkins", read, h.Students.CheckIn)
	}

	instructors := protected.Group("/instructors")
	{
		read := middleware.RequirePermission(entities.PermissionInstructorRead)
		write := middleware.RequirePermission(entities.PermissionInstructorWrite)

		instructors.GET("", read, h.Instructors.ListInstructors)
		instructors.GET("/:id", read, h.Instructors.GetInstructor)
		instructors.POST("", write, h.Instructors.CreateInstructor)
		instructors.PUT("/:id", write, h.Instructors.UpdateInstructor)
		instructors.DELETE("/:id", write, h.Instructors.DeleteInstructor)
	}

	treinos := protected.Group("/treinos")
	{
		read := middleware.RequirePermission(entities.PermissionTreinoRead)
		write := middleware.RequirePermission(entities.PermissionTreinoWrite)

		treinos.GET("", read, h.Treinos.ListTreinos)
		treinos.GET("/:id", read, h.Treinos.GetTreino)
		treinos.POST("", write, h.Treinos.CreateTreino)
		treinos.PUT("/:id", write, h.Treinos.UpdateTreino)
		treinos.DELETE("/:id", write, h.Treinos.DeleteTreino)
	}

	payments := protected.Group("/payments")
	{
		read := middleware.RequirePermission(entities.PermissionPaymentRead)
		write := middleware.RequirePermission(entities.PermissionPaymentWrite)

		payments.GET("", read, h.Payments.ListPayments)
		payments.GET("/:id", read, h.Payments.GetPayment)
		payments.POST("", write, h.Payments.CreatePayment)
		payments.PUT("/:id", write, h.Payments.UpdatePayment)
		payments.DELETE("/:id", write, h.Payments.DeletePayment)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notifications.ListNotifications)
		notifications.GET("/stream", h.Notifications.Stream)
		notifications.POST("", middleware.RequirePermission(entities.PermissionNotificationWrite), h.Notifications.CreateNotification)
		notifications.PATCH("/:id/read", h.Notifications.MarkAsRead)
		notifications.DELETE("/:id", h.Notifications.DeleteNotification)
	}

	protected.GET("/dashboard", middleware.RequirePermission(entities.PermissionDashboardRead), h.Dashboard.GetSummary)

	return router
}

// useJSONFieldNames faz o validator reportar campos pelo nome JSON/form
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
}
