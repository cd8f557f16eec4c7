package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httpresp"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	ucReview "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/usecase/review"
)

type ReviewHandler struct {
	db       *gorm.DB
	submitUC *ucReview.SubmitReview
}

func NewReviewHandler(db *gorm.DB, submitUC *ucReview.SubmitReview) *ReviewHandler {
	return &ReviewHandler{db: db, submitUC: submitUC}
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	actor := actorFromContext(c)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review data.")
		return
	}

	rv, err := h.submitUC.Execute(c.Request.Context(), ucReview.SubmitReviewInput{
		Actor:     actor,
		BookingID: uint(bookingID),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, rv)
}

// ListForTutor is the public review feed on a tutor's page.
func (h *ReviewHandler) ListForTutor(c *gin.Context) {
	tutorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_tutor_id", "Invalid tutor id.")
		return
	}

	var reviews []models.Review
	if err := h.db.
		Where("tutor_id = ?", uint(tutorID)).
		Order("created_at DESC").
		Limit(100).
		Find(&reviews).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}
