package notification

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/velvetnails/salon-scheduler/internal/models"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher queues emails and delivers them off the request path. A booking
// commits whether or not its confirmation email ever leaves the building;
// failures are logged and recorded, never surfaced to the caller.
type Dispatcher struct {
	sender Sender
	db     *gorm.DB
	link   string
	queue  chan Email
}

func NewDispatcher(sender Sender, db *gorm.DB, bookingLink string) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		db:     db,
		link:   bookingLink,
		queue:  make(chan Email, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for em := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		providerID, err := d.sender.Send(ctx, em.To, em.Subject, em.Body)
		cancel()

		status := "sent"
		if err != nil {
			status = "failed"
			log.Println("notification error:", err)
		}

		record := models.Notification{
			To:         em.To,
			Subject:    em.Subject,
			Body:       em.Body,
			ProviderID: providerID,
			Status:     status,
		}
		if err := d.db.Create(&record).Error; err != nil {
			log.Println("notification record error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(em Email) {
	select {
	case d.queue <- em:
	default:
		log.Println("notification queue full, dropping email")
	}
}

// AppointmentBooked enqueues the confirmation email for a fresh booking.
func (d *Dispatcher) AppointmentBooked(ap *models.Appointment) {
	body, err := RenderConfirmation(ap, d.link)
	if err != nil {
		log.Println("notification template error:", err)
		return
	}

	d.Dispatch(Email{
		To:      ap.Client.Email,
		Subject: "Your appointment is booked!",
		Body:    body,
	})
}
