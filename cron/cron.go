package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Every morning at 08:00, remind customers about today's accepted bookings
	_, err := c.AddFunc("0 8 * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders notifies customers whose accepted bookings are
// scheduled for today.
func sendBookingReminders() {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := db.DB.Preload("Customer").Preload("Service").
		Where("status = ? AND scheduled_date >= ? AND scheduled_date < ?",
			models.StatusAccepted, dayStart, dayEnd).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for i := range bookings {
		booking := &bookings[i]
		utils.NotifyUser(db.DB, booking.Customer, &booking.ID, models.NotificationBookingReminder,
			"Booking reminder",
			fmt.Sprintf("Your %s booking is scheduled for today (%s).",
				booking.Service.Title, booking.PreferredTime))
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Customer.Email)
	}
}
