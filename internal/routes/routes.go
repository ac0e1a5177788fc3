package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/audit"
	"github.com/plateful/restaurant-admin/internal/config"
	"github.com/plateful/restaurant-admin/internal/handlers"
	infraRepo "github.com/plateful/restaurant-admin/internal/infra/repository"
	"github.com/plateful/restaurant-admin/internal/mailer"
	"github.com/plateful/restaurant-admin/internal/middleware"
	"github.com/plateful/restaurant-admin/internal/photostore"
	ucAccount "github.com/plateful/restaurant-admin/internal/usecase/account"
	ucMenu "github.com/plateful/restaurant-admin/internal/usecase/menu"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	photos photostore.Store,
	mail mailer.Mailer,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	menuRepo := infraRepo.NewMenuGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — ACCOUNTS
	// ======================================================
	registerOwnerUC := ucAccount.NewRegisterOwner(
		accountRepo,
		photos,
		auditDispatcher,
	)

	createUserUC := ucAccount.NewCreateUser(
		accountRepo,
		photos,
		auditDispatcher,
	)

	approveUserUC := ucAccount.NewApproveUser(accountRepo, auditDispatcher)

	deleteUserUC := ucAccount.NewDeleteUser(
		accountRepo,
		photos,
		auditDispatcher,
	)

	updateProfileUC := ucAccount.NewUpdateProfile(accountRepo, auditDispatcher)
	changePasswordUC := ucAccount.NewChangePassword(accountRepo, auditDispatcher)

	requestResetUC := ucAccount.NewRequestReset(
		accountRepo,
		mail,
		cfg.PublicBaseURL,
		auditDispatcher,
	)

	redeemResetUC := ucAccount.NewRedeemReset(
		accountRepo,
		mail,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — MENU
	// ======================================================
	listDishesUC := ucMenu.NewListDishes(menuRepo)
	createDishUC := ucMenu.NewCreateDish(menuRepo, auditDispatcher)
	updateDishUC := ucMenu.NewUpdateDish(menuRepo, auditDispatcher)
	deleteDishUC := ucMenu.NewDeleteDish(menuRepo, auditDispatcher)
	listCategoriesUC := ucMenu.NewListCategories(menuRepo)
	createCategoryUC := ucMenu.NewCreateCategory(menuRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, registerOwnerUC)
	userHandler := handlers.NewUserHandler(
		db,
		createUserUC,
		approveUserUC,
		deleteUserUC,
		changePasswordUC,
	)
	profileHandler := handlers.NewProfileHandler(db, updateProfileUC)
	dishHandler := handlers.NewDishHandler(
		listDishesUC,
		createDishUC,
		updateDishUC,
		deleteDishUC,
		listCategoriesUC,
		createCategoryUC,
	)
	emailHandler := handlers.NewEmailHandler(mail, requestResetUC, redeemResetUC)
	imageHandler := handlers.NewImageHandler(db, cfg, photos, updateProfileUC)
	auditHandler := handlers.NewAuditHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		// Register and login reject callers that already hold a valid
		// token, so they run behind the optional variant.
		guest := api.Group("/")
		guest.Use(middleware.OptionalAuthMiddleware(db, cfg))
		{
			guest.POST("/auth/register", authHandler.Register)
			guest.POST("/auth/login", authHandler.Login)
		}

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/emails/request-reset", emailHandler.RequestReset)
		api.GET("/emails/reset-password", emailHandler.ResetPassword)
		api.GET("/images", imageHandler.Get)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(db, cfg))
		{
			secured.GET("/users", userHandler.List)
			secured.POST("/users", userHandler.Create)
			secured.POST("/users/approve", userHandler.Approve)
			secured.DELETE("/users", userHandler.Delete)
			secured.POST("/users/change-password", userHandler.ChangePassword)

			secured.GET("/restaurants", profileHandler.ListRestaurants)
			secured.GET("/profile", profileHandler.Get)
			secured.PUT("/profile", profileHandler.Update)

			secured.GET("/dishes", dishHandler.ListDishes)
			secured.POST("/dishes", dishHandler.CreateDish)
			secured.PUT("/dishes/:dish_id", dishHandler.UpdateDish)
			secured.DELETE("/dishes/:dish_id", dishHandler.DeleteDish)

			secured.GET("/categories", dishHandler.ListCategories)
			secured.POST("/categories", dishHandler.CreateCategory)

			secured.POST("/emails/send", emailHandler.Send)
			secured.POST("/images", imageHandler.Upload)

			secured.GET("/audit-logs", auditHandler.List)
		}
	}
}
