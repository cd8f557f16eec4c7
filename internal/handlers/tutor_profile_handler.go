package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/middleware"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

type TutorProfileHandler struct {
	db *gorm.DB
}

func NewTutorProfileHandler(db *gorm.DB) *TutorProfileHandler {
	return &TutorProfileHandler{db: db}
}

type UpdateTutorProfileRequest struct {
	Bio        *string  `json:"bio"`
	Subjects   *string  `json:"subjects"`
	HourlyRate *float64 `json:"hourly_rate"`
}

func (h *TutorProfileHandler) GetMine(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	var profile models.TutorProfile
	if err := h.db.Where("user_id = ?", tutorID).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Tutor profile not found.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMine edits the tutor-editable fields only. Approval state and the
// derived aggregates are never writable here.
func (h *TutorProfileHandler) UpdateMine(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateTutorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	var profile models.TutorProfile
	if err := h.db.Where("user_id = ?", tutorID).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Tutor profile not found.")
		return
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Subjects != nil {
		profile.Subjects = *req.Subjects
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			httperr.BadRequest(c, "invalid_hourly_rate", "Hourly rate must be positive.")
			return
		}
		profile.HourlyRate = *req.HourlyRate
	}

	// Editing a rejected application re-queues it for admin review.
	if !profile.IsApproved && profile.RejectionReason != "" {
		profile.RejectionReason = ""
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}
