package boot

import (
	"log"
	"os"
	"strconv"
	"time"

	"airtracker/src/common"
	"airtracker/src/db"
	"airtracker/src/lib"
	"airtracker/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Crew{},
		&models.Country{},
		&models.City{},
		&models.Facility{},
		&models.Airport{},
		&models.Route{},
		&models.AirplaneType{},
		&models.Airplane{},
		&models.Flight{},
		&models.Order{},
		&models.Ticket{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler registers the daily departure-reminder job and starts the
// scheduler. The hour is configurable through REMINDER_HOUR (default 9, in
// server time).
func InitScheduler() {
	hour := 9
	if v, err := strconv.Atoi(os.Getenv("REMINDER_HOUR")); err == nil && v >= 0 && v < 24 {
		hour = v
	}
	id, err := lib.CreateDailyJob(uint(hour), 0, func() {
		common.SendTomorrowFlightReminders(time.Now())
	})
	if err != nil {
		log.Printf("Error creating reminder job: %s\n", err.Error())
		return
	}
	log.Printf("Reminder job scheduled: %s\n", *id)

	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	sched.Start()
}
