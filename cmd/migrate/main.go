package main

import (
	"log"
	"time"

	"gorm.io/gorm"

	"diet-coach-be/internal/config"
	"diet-coach-be/internal/model"
	"diet-coach-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.DietProfile{},
		&model.FoodLog{},
		&model.ExerciseLog{},
		&model.WaterLog{},
		&model.Activity{},
		&model.Transaction{},
		&model.GoogleAuth{},
		&model.ChatMessage{},
		&model.Group{},
		&model.GroupMember{},
		&model.Challenge{},
		&model.ChallengeParticipant{},
	)
	if err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	seedCommunity(db)

	log.Println("✅ Migration complete")
}

// seedCommunity inserts the starter groups and challenges, skipping any that
// already exist. Reruns are safe.
func seedCommunity(db *gorm.DB) {
	now := time.Now()
	challenges := []model.Challenge{
		{
			Title:       "7-Day No Sugar Challenge",
			Description: "Avoid added sugar for a week to reset your taste buds.",
			StartDate:   now,
			EndDate:     now.AddDate(0, 0, 7),
			TargetType:  "NO_SUGAR",
			TargetValue: 7,
		},
		{
			Title:       "10k Steps Daily",
			Description: "Walk 10,000 steps every day for better heart health.",
			StartDate:   now,
			EndDate:     now.AddDate(0, 0, 30),
			TargetType:  "STEPS",
			TargetValue: 10000,
		},
		{
			Title:       "Hydration Hero",
			Description: "Drink 8 glasses of water daily.",
			StartDate:   now,
			EndDate:     now.AddDate(0, 0, 14),
			TargetType:  "WATER",
			TargetValue: 8,
		},
	}
	for i := range challenges {
		err := db.Where(model.Challenge{Title: challenges[i].Title}).
			FirstOrCreate(&challenges[i]).Error
		if err != nil {
			log.Printf("Seeding challenge %q failed: %v", challenges[i].Title, err)
		}
	}

	groups := []model.Group{
		{Name: "Jakarta Healthy Living", Description: "Community for healthy lifestyle enthusiasts in Jakarta.", Category: "CITY"},
		{Name: "Surabaya Diet Club", Description: "Support group for dieters in Surabaya.", Category: "CITY"},
		{Name: "New Moms Diet", Description: "Post-pregnancy weight loss support.", Category: "AGE"},
		{Name: "Keto Warriors", Description: "For those following the Ketogenic diet.", Category: "GOAL"},
	}
	for i := range groups {
		err := db.Where(model.Group{Name: groups[i].Name}).
			FirstOrCreate(&groups[i]).Error
		if err != nil {
			log.Printf("Seeding group %q failed: %v", groups[i].Name, err)
		}
	}
}
