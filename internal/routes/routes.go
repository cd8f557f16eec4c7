package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/config"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/handlers"
	infraRepo "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/infra/repository"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/middleware"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
	ucBooking "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/usecase/booking"
	ucReview "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/usecase/review"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	zlog *zap.Logger,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, zlog)

	notifyDispatcher := notify.NewDispatcher(db, zlog)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		zlog,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		zlog,
	)

	rejectBookingUC := ucBooking.NewRejectBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		zlog,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		zlog,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		zlog,
	)

	setMeetingLinkUC := ucBooking.NewSetMeetingLink(
		bookingRepo,
		auditDispatcher,
		zlog,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
		zlog,
	)

	// ======================================================
	// USE CASES — REVIEWS
	// ======================================================
	submitReviewUC := ucReview.NewSubmitReview(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		zlog,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	tutorProfileHandler := handlers.NewTutorProfileHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		confirmBookingUC,
		rejectBookingUC,
		cancelBookingUC,
		completeBookingUC,
		setMeetingLinkUC,
		deleteBookingUC,
	)

	reviewHandler := handlers.NewReviewHandler(db, submitReviewUC)
	notificationHandler := handlers.NewNotificationHandler(db)

	publicHandler := handlers.NewPublicHandler(db, rdb, zlog)

	adminHandler := handlers.NewAdminHandler(db, notifyDispatcher, auditDispatcher, zlog)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/tutors", publicHandler.ListTutors)
			publicAPI.GET("/tutors/:id", publicHandler.GetTutor)
			publicAPI.GET("/tutors/:id/reviews", reviewHandler.ListForTutor)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		userStatus := func(ctx context.Context, id uint) (string, error) {
			var user models.User
			if err := db.WithContext(ctx).Select("status").First(&user, id).Error; err != nil {
				return "", err
			}
			return user.Status, nil
		}

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, userStatus))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// TUTOR SELF-SERVICE
			// ------------------------------
			tutor := secured.Group("/me")
			tutor.Use(middleware.RequireRole(models.RoleTeacher))
			{
				tutor.GET("/tutor-profile", tutorProfileHandler.GetMine)
				tutor.PATCH("/tutor-profile", tutorProfileHandler.UpdateMine)

				tutor.GET("/availability", availabilityHandler.Get)
				tutor.PUT("/availability", availabilityHandler.Update)
				tutor.POST("/availability", availabilityHandler.Create)
				tutor.DELETE("/availability/:id", availabilityHandler.Delete)

				tutor.GET("/bookings/day", bookingHandler.ListByDate)
			}

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.GET("/me/bookings/:id", bookingHandler.Get)
			secured.PATCH("/me/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/me/bookings/:id/reject", bookingHandler.Reject)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/me/bookings/:id/meeting-link", bookingHandler.SetMeetingLink)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)

			secured.POST("/me/bookings/:id/review", reviewHandler.Submit)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/me/notifications", notificationHandler.ListMine)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)

				admin.GET("/tutors/pending", adminHandler.ListPendingTutors)
				admin.PATCH("/tutors/:id/approve", adminHandler.ApproveTutor)
				admin.PATCH("/tutors/:id/reject", adminHandler.RejectTutor)

				admin.GET("/metrics", adminHandler.Metrics)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
