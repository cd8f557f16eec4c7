package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/middleware"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

type AvailabilitySlotConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AvailabilityUpdateRequest struct {
	Slots []AvailabilitySlotConfig `json:"slots" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	var slots []models.Availability
	if err := h.db.
		Where("tutor_id = ?", tutorID).
		Order("weekday ASC, start_time ASC").
		Find(&slots).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// Update replaces the tutor's whole weekly schedule in one shot, after
// validating each window and the no-overlap rule per weekday.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.Availability
	for _, s := range req.Slots {
		if err := domain.ValidateSlot(s.Weekday, s.StartTime, s.EndTime); err != nil {
			httperr.WriteBusiness(c, err)
			return
		}

		toCreate = append(toCreate, models.Availability{
			TutorID:   tutorID,
			Weekday:   s.Weekday,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	for i := range toCreate {
		for j := i + 1; j < len(toCreate); j++ {
			if domain.SlotsOverlap(toCreate[i], toCreate[j]) {
				httperr.WriteBusiness(c, httperr.ErrBusiness("availability_overlap"))
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tutor_id = ?", tutorID).Delete(&models.Availability{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Create adds a single window to the existing schedule.
func (h *AvailabilityHandler) Create(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	var req AvailabilitySlotConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := domain.ValidateSlot(req.Weekday, req.StartTime, req.EndTime); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	slot := models.Availability{
		TutorID:   tutorID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	var existing []models.Availability
	if err := h.db.
		Where("tutor_id = ? AND weekday = ?", tutorID, req.Weekday).
		Find(&existing).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	for _, e := range existing {
		if domain.SlotsOverlap(slot, e) {
			httperr.WriteBusiness(c, httperr.ErrBusiness("availability_overlap"))
			return
		}
	}

	if err := h.db.Create(&slot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability"})
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_slot_id"})
		return
	}

	res := h.db.
		Where("id = ? AND tutor_id = ?", uint(id), tutorID).
		Delete(&models.Availability{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_availability"})
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "slot_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
