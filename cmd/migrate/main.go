package main

import (
	"log"

	"grafono-backend/app/config"
	"grafono-backend/app/database"
)

func main() {
	log.Println("Running migrations...")

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Migrations completed successfully")
}
