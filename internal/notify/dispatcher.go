package notify

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

// Named events emitted after successful state transitions. Delivery beyond
// the in-app notification row (email, push) is out of scope here.
const (
	EventBookingRequested = "booking_requested"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingRejected  = "booking_rejected"
	EventBookingCancelled = "booking_cancelled"
	EventReviewSubmitted  = "review_submitted"
	EventTutorApproved    = "tutor_approved"
	EventTutorRejected    = "tutor_rejected"
)

type Event struct {
	UserID    uint
	Event     string
	Message   string
	BookingID *uint
}

// Sink is what use cases depend on; Dispatcher implements it.
type Sink interface {
	Dispatch(ev Event)
}

// Dispatcher persists notifications off the request path through a
// buffered queue, mirroring the audit pipeline. A full queue drops the
// event rather than blocking an API response.
type Dispatcher struct {
	db     *gorm.DB
	logger *zap.Logger
	queue  chan Event
}

func NewDispatcher(db *gorm.DB, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		db:     db,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		n := models.Notification{
			UserID:    ev.UserID,
			Event:     ev.Event,
			Message:   ev.Message,
			BookingID: ev.BookingID,
		}

		if err := d.db.Create(&n).Error; err != nil {
			d.logger.Error("notification write failed",
				zap.String("event", ev.Event),
				zap.Uint("user_id", ev.UserID),
				zap.Error(err),
			)
			continue
		}

		d.logger.Info("notification dispatched",
			zap.String("event", ev.Event),
			zap.Uint("user_id", ev.UserID),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("notification queue full, dropping event",
			zap.String("event", ev.Event),
		)
	}
}

var _ Sink = (*Dispatcher)(nil)
