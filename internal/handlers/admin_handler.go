package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/middleware"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db     *gorm.DB
	notify notify.Sink
	audit  audit.Sink
	logger *zap.Logger
}

func NewAdminHandler(
	db *gorm.DB,
	notifier notify.Sink,
	auditor audit.Sink,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		db:     db,
		notify: notifier,
		audit:  auditor,
		logger: logger,
	}
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := c.Query("role")
	status := c.Query("status")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.User{})

	if role != "" {
		q = q.Where("role = ?", role)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "user_count_failed", "Could not count users.")
		return
	}

	var users []models.User
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {

		httperr.Internal(c, "user_list_failed", "Could not list users.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"users": users,
	})
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status.")
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(userID)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	user.Status = req.Status
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_status_changed",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"status": req.Status},
	})

	c.JSON(200, user)
}

// ======================================================
// TUTOR APPLICATIONS
// ======================================================

func (h *AdminHandler) ListPendingTutors(c *gin.Context) {
	var profiles []models.TutorProfile
	if err := h.db.
		Preload("User").
		Where("is_approved = ? AND rejection_reason = ''", false).
		Order("created_at ASC").
		Find(&profiles).Error; err != nil {

		httperr.Internal(c, "failed_to_list_applications", "Could not list applications.")
		return
	}

	c.JSON(200, profiles)
}

func (h *AdminHandler) ApproveTutor(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	tutorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_tutor_id", "Invalid tutor id.")
		return
	}

	var profile models.TutorProfile
	if err := h.db.Where("user_id = ?", uint(tutorID)).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Tutor profile not found.")
		return
	}

	profile.IsApproved = true
	profile.RejectionReason = ""
	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_approve_tutor", "Could not approve tutor.")
		return
	}

	h.logger.Info("tutor approved",
		zap.Uint("tutor_id", profile.UserID),
		zap.Uint("admin_id", adminID),
	)

	h.notify.Dispatch(notify.Event{
		UserID:  profile.UserID,
		Event:   notify.EventTutorApproved,
		Message: "Your tutor application has been approved.",
	})

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "tutor_approved",
		Entity:   "tutor_profile",
		EntityID: &profile.ID,
	})

	c.JSON(200, profile)
}

type RejectTutorRequest struct {
	Reason string `json:"reason"`
}

// RejectTutor declines a pending application. The profile row stays with
// the reason recorded; editing it re-queues the application.
func (h *AdminHandler) RejectTutor(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	tutorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_tutor_id", "Invalid tutor id.")
		return
	}

	var req RejectTutorRequest
	_ = c.ShouldBindJSON(&req)

	var profile models.TutorProfile
	if err := h.db.Where("user_id = ?", uint(tutorID)).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Tutor profile not found.")
		return
	}

	if profile.IsApproved {
		httperr.BadRequest(c, "invalid_state", "Only pending applications can be rejected.")
		return
	}

	profile.RejectionReason = req.Reason
	if profile.RejectionReason == "" {
		profile.RejectionReason = "not specified"
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_reject_tutor", "Could not reject tutor.")
		return
	}

	h.notify.Dispatch(notify.Event{
		UserID:  profile.UserID,
		Event:   notify.EventTutorRejected,
		Message: rejectionMessage(req.Reason),
	})

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "tutor_rejected",
		Entity:   "tutor_profile",
		EntityID: &profile.ID,
		Metadata: map[string]any{"reason": req.Reason},
	})

	c.JSON(200, gin.H{"status": "rejected"})
}

func rejectionMessage(reason string) string {
	if reason == "" {
		return "Your tutor application has been declined."
	}
	return "Your tutor application has been declined: " + reason
}

// ======================================================
// METRICS
// ======================================================

func (h *AdminHandler) Metrics(c *gin.Context) {
	var userCount, tutorCount int64
	if err := h.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		httperr.Internal(c, "metrics_failed", "Could not compute metrics.")
		return
	}
	if err := h.db.Model(&models.TutorProfile{}).
		Where("is_approved = ?", true).
		Count(&tutorCount).Error; err != nil {

		httperr.Internal(c, "metrics_failed", "Could not compute metrics.")
		return
	}

	bookingsByStatus := map[string]int64{}
	rows := []struct {
		Status string
		Count  int64
	}{}
	if err := h.db.Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {

		httperr.Internal(c, "metrics_failed", "Could not compute metrics.")
		return
	}
	for _, r := range rows {
		bookingsByStatus[r.Status] = r.Count
	}

	var revenue float64
	if err := h.db.Model(&models.Booking{}).
		Select("COALESCE(SUM(price), 0)").
		Where("status = ?", "completed").
		Scan(&revenue).Error; err != nil {

		httperr.Internal(c, "metrics_failed", "Could not compute metrics.")
		return
	}

	var reviewCount int64
	if err := h.db.Model(&models.Review{}).Count(&reviewCount).Error; err != nil {
		httperr.Internal(c, "metrics_failed", "Could not compute metrics.")
		return
	}

	c.JSON(200, gin.H{
		"users":              userCount,
		"approved_tutors":    tutorCount,
		"bookings_by_status": bookingsByStatus,
		"completed_revenue":  revenue,
		"reviews":            reviewCount,
	})
}
