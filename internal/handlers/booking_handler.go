package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/dto"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httpresp"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	ucBooking "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	createUC      *ucBooking.CreateBooking
	confirmUC     *ucBooking.ConfirmBooking
	rejectUC      *ucBooking.RejectBooking
	cancelUC      *ucBooking.CancelBooking
	completeUC    *ucBooking.CompleteBooking
	meetingLinkUC *ucBooking.SetMeetingLink
	deleteUC      *ucBooking.DeleteBooking
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	rejectUC *ucBooking.RejectBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	meetingLinkUC *ucBooking.SetMeetingLink,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		db:            db,
		createUC:      createUC,
		confirmUC:     confirmUC,
		rejectUC:      rejectUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		meetingLinkUC: meetingLinkUC,
		deleteUC:      deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	TutorID     uint   `json:"tutor_id" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason"`
}

type CancelBookingRequest struct {
	Note string `json:"note"`
}

type MeetingLinkRequest struct {
	URL string `json:"url" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	actor := actorFromContext(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	startAt, err := parseDateTime(req.Date, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	endAt, err := parseDateTime(req.Date, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Actor:       actor,
		TutorID:     req.TutorID,
		Subject:     req.Subject,
		Description: req.Description,
		StartAt:     startAt,
		EndAt:       endAt,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	actor := actorFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var b models.Booking
	if err := h.db.
		Preload("Student").
		Preload("Tutor").
		First(&b, uint(id)).Error; err != nil {

		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	if !actor.MayRead(&b) {
		httperr.Forbidden(c, "forbidden", "You are not allowed to view this booking.")
		return
	}

	c.JSON(200, gin.H{
		"booking":             b,
		"allowed_transitions": domain.AllowedTransitions(actor, &b),
	})
}

// ListMine returns the caller's bookings, as student or as tutor
// depending on their role.
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor := actorFromContext(c)

	q := h.db.
		Preload("Student").
		Preload("Tutor").
		Order("start_at DESC")

	switch actor.Role {
	case models.RoleTeacher:
		q = q.Where("tutor_id = ?", actor.ID)
	default:
		q = q.Where("student_id = ?", actor.ID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			StartAt:     b.StartAt,
			EndAt:       b.EndAt,
			Status:      b.Status,
			Subject:     b.Subject,
			Price:       b.Price,
			StudentName: b.Student.Name,
			TutorName:   b.Tutor.Name,
		})
	}

	httpresp.List(c, out)
}

// ListByDate is the tutor's day view.
func (h *BookingHandler) ListByDate(c *gin.Context) {
	actor := actorFromContext(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	var bookings []models.Booking
	h.db.
		Preload("Student").
		Where(
			"tutor_id = ? AND start_at >= ? AND start_at < ?",
			actor.ID, start, end,
		).
		Order("start_at ASC").
		Find(&bookings)

	c.JSON(200, bookings)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	b, err := h.confirmUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req RejectBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.rejectUC.Execute(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancelUC.Execute(c.Request.Context(), actor, id, req.Note)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) SetMeetingLink(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req MeetingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A meeting link URL is required.")
		return
	}

	b, err := h.meetingLinkUC.Execute(c.Request.Context(), actor, id, req.URL)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "deleted"})
}
