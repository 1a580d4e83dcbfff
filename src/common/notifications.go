package common

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"airtracker/src/config"
	"airtracker/src/db"
	"airtracker/src/lib"
	"airtracker/src/models"
)

// sendMail is swapped out in tests.
var sendMail = lib.SendMail

const mailFromName = "Airport Tracker"

func mailFrom() string {
	return os.Getenv("EMAIL_FROM")
}

// OrderConfirmationBody expects the order's tickets with
// Flight.Route.Source and Flight.Route.Destination preloaded.
func OrderConfirmationBody(order *models.Order) string {
	var b strings.Builder
	b.WriteString("Your order is successfully created!\n")
	b.WriteString("Information about tickets:\n")
	for i := range order.Tickets {
		ticket := &order.Tickets[i]
		fmt.Fprintf(&b, "Passenger: %s\n", ticket.PassengerName())
		fmt.Fprintf(&b, "Seat: %s\n", ticket.Seat())
		fmt.Fprintf(&b, "Flight: %s\n", ticket.Flight.Route.ShortWay())
		fmt.Fprintf(&b, "Departure Time: %s\n\n", ticket.Flight.DepartureTime.Format(config.TIME_PARSE_FORMAT))
	}
	return b.String()
}

// SendOrderConfirmationEmail mails the order summary to the owner. Errors
// propagate so the create request can surface them.
func SendOrderConfirmationEmail(order *models.Order) error {
	return sendMail(&lib.SendMailInput{
		From:     mailFrom(),
		FromName: mailFromName,
		To:       []string{order.User.Email},
		Subject:  "Order Confirmation",
		Body:     OrderConfirmationBody(order),
	})
}

// DepartsTomorrow reports whether departure falls on the calendar day after
// now, ignoring time of day.
func DepartsTomorrow(departure, now time.Time) bool {
	tomorrow := now.AddDate(0, 0, 1)
	y1, m1, d1 := departure.Date()
	y2, m2, d2 := tomorrow.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TomorrowFlightReminderBody expects Flight.Route.Source and
// Flight.Route.Destination preloaded.
func TomorrowFlightReminderBody(ticket *models.Ticket) string {
	return fmt.Sprintf(
		"Hello, dear customer!\nYour flight from %s to %s will depart tomorrow at %s",
		ticket.Flight.Route.Source.Name,
		ticket.Flight.Route.Destination.Name,
		ticket.Flight.DepartureTime.Format(config.TIME_PARSE_FORMAT),
	)
}

func reminderSentKey(ticketID uint, now time.Time) string {
	return fmt.Sprintf("reminder:%d:%s", ticketID, now.Format(config.DATE_PARSE_FORMAT))
}

// SendTomorrowFlightReminders scans all tickets and mails each order owner
// whose flight departs tomorrow. Send failures are logged and swallowed; a
// redis mark keeps a re-run within the same day from mailing twice.
func SendTomorrowFlightReminders(now time.Time) {
	gdb := db.GetDb()
	var tickets []models.Ticket
	if err := gdb.
		Model(&models.Ticket{}).
		Preload("Flight.Route.Source").
		Preload("Flight.Route.Destination").
		Preload("Order.User").
		Find(&tickets).
		Error; err != nil {
		log.Printf("Error loading tickets for reminders: %s\n", err.Error())
		return
	}
	rd := lib.GetRedisClient()
	for i := range tickets {
		ticket := &tickets[i]
		if !DepartsTomorrow(ticket.Flight.DepartureTime, now) {
			continue
		}
		if rd != nil {
			ok, err := rd.SetNX(context.Background(), reminderSentKey(ticket.ID, now), "1", 48*time.Hour).Result()
			if err != nil {
				log.Printf("Error marking reminder for ticket %d: %s\n", ticket.ID, err.Error())
			} else if !ok {
				continue
			}
		}
		err := sendMail(&lib.SendMailInput{
			From:     mailFrom(),
			FromName: mailFromName,
			To:       []string{ticket.Order.User.Email},
			Subject:  "Notification about tomorrow flight",
			Body:     TomorrowFlightReminderBody(ticket),
		})
		if err != nil {
			log.Printf("Error sending reminder for ticket %d: %s\n", ticket.ID, err.Error())
		}
	}
}
