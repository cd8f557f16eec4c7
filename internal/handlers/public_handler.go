package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/dto"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httpresp"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated tutor directory. The listing
// is read-through cached in redis; all booking-path reads stay on the
// database.
type PublicHandler struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.Logger
}

func NewPublicHandler(db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{db: db, rdb: rdb, logger: logger}
}

const tutorDirectoryTTL = 60 * time.Second

// ======================================================
// LIST TUTORS
// ======================================================

func (h *PublicHandler) ListTutors(c *gin.Context) {
	subject := c.Query("subject")
	cacheKey := "tutors:directory:" + subject

	if h.rdb != nil {
		if cached, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var out []dto.TutorListDTO
			if json.Unmarshal([]byte(cached), &out) == nil {
				httpresp.List(c, out)
				return
			}
		}
	}

	q := h.db.
		Model(&models.TutorProfile{}).
		Preload("User").
		Where("is_approved = ?", true)

	if subject != "" {
		q = q.Where("subjects ILIKE ?", "%"+subject+"%")
	}

	var profiles []models.TutorProfile
	if err := q.
		Order("rating_avg DESC, rating_count DESC").
		Limit(100).
		Find(&profiles).Error; err != nil {

		httperr.Internal(c, "failed_to_list_tutors", "Could not list tutors.")
		return
	}

	out := make([]dto.TutorListDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.TutorListDTO{
			UserID:        p.UserID,
			Name:          p.User.Name,
			Bio:           p.Bio,
			Subjects:      p.Subjects,
			HourlyRate:    p.HourlyRate,
			RatingAvg:     p.RatingAvg,
			RatingCount:   p.RatingCount,
			SessionsCount: p.SessionsCount,
		})
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(out); err == nil {
			if err := h.rdb.Set(c.Request.Context(), cacheKey, payload, tutorDirectoryTTL).Err(); err != nil {
				h.logger.Warn("tutor directory cache write failed", zap.Error(err))
			}
		}
	}

	httpresp.List(c, out)
}

// ======================================================
// TUTOR DETAIL
// ======================================================

func (h *PublicHandler) GetTutor(c *gin.Context) {
	tutorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_tutor_id", "Invalid tutor id.")
		return
	}

	var profile models.TutorProfile
	if err := h.db.
		Preload("User").
		Where("user_id = ? AND is_approved = ?", uint(tutorID), true).
		First(&profile).Error; err != nil {

		httperr.NotFound(c, "tutor_not_found", "Tutor not found.")
		return
	}

	var slots []models.Availability
	h.db.
		Where("tutor_id = ?", profile.UserID).
		Order("weekday ASC, start_time ASC").
		Find(&slots)

	c.JSON(200, gin.H{
		"tutor": dto.TutorListDTO{
			UserID:        profile.UserID,
			Name:          profile.User.Name,
			Bio:           profile.Bio,
			Subjects:      profile.Subjects,
			HourlyRate:    profile.HourlyRate,
			RatingAvg:     profile.RatingAvg,
			RatingCount:   profile.RatingCount,
			SessionsCount: profile.SessionsCount,
		},
		"availability": slots,
	})
}
