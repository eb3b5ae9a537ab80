package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"hotelsite/internal/config"
	"hotelsite/internal/database"
	"hotelsite/internal/domain"
	jwtsvc "hotelsite/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM enquiries")
	db.Exec("DELETE FROM subscribers")
	db.Exec("DELETE FROM gallery_images")

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")
	types := []domain.RoomType{
		{Name: "Standard", NightlyRate: 2000, Capacity: 2, Description: "Queen bed, garden view"},
		{Name: "Deluxe", NightlyRate: 3000, Capacity: 3, Description: "King bed, balcony, sea view"},
		{Name: "Suite", NightlyRate: 5500, Capacity: 4, Description: "Separate living room, two bathrooms"},
	}
	for i := range types {
		db.Create(&types[i])
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{Number: "101", Type: "Standard", Status: domain.RoomAvailable},
		{Number: "102", Type: "Standard", Status: domain.RoomAvailable},
		{Number: "103", Type: "Standard", Status: domain.RoomMaintenance},
		{Number: "201", Type: "Deluxe", Status: domain.RoomAvailable},
		{Number: "202", Type: "Deluxe", Status: domain.RoomAvailable},
		{Number: "301", Type: "Suite", Status: domain.RoomAvailable},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	today := time.Now().UTC().Truncate(24 * time.Hour)

	create := func(room domain.Room, in, out time.Time, status domain.BookingStatus, source domain.BookingSource, guest, email string) {
		nights := int(out.Sub(in).Hours() / 24)
		var rate float64
		for _, t := range types {
			if t.Name == room.Type {
				rate = t.NightlyRate
			}
		}
		b := domain.Booking{
			RoomID:        room.ID,
			CheckIn:       in,
			CheckOut:      out,
			Status:        status,
			GuestName:     guest,
			GuestEmail:    email,
			GuestPhone:    "+44 20 7946 0100",
			NumGuests:     2,
			TotalPrice:    float64(nights) * rate,
			BookingSource: source,
		}
		db.Create(&b)
	}

	create(rooms[0], today.AddDate(0, 0, -5), today.AddDate(0, 0, -2), domain.BookingConfirmed, domain.SourceWebsite, "Priya Nair", "priya@example.com")
	create(rooms[3], today.AddDate(0, 0, 1), today.AddDate(0, 0, 4), domain.BookingConfirmed, domain.SourceDashboard, "Tom Walker", "tom@example.com")
	create(rooms[4], today.AddDate(0, 0, 2), today.AddDate(0, 0, 3), domain.BookingPending, domain.SourcePhone, "Ana Costa", "ana@example.com")
	create(rooms[5], today.AddDate(0, 0, 7), today.AddDate(0, 0, 14), domain.BookingConfirmed, domain.SourceWebsite, "Jonas Berg", "jonas@example.com")
	create(rooms[3], today.AddDate(0, 0, -3), today.AddDate(0, 0, -1), domain.BookingCancelled, domain.SourceWalkIn, "Mei Lin", "mei@example.com")

	// ================== GALLERY ==================
	log.Println("Creating gallery...")
	images := []domain.GalleryImage{
		{URL: "https://cdn.example.com/gallery/lobby.jpg", Caption: "Lobby", SortOrder: 1},
		{URL: "https://cdn.example.com/gallery/pool.jpg", Caption: "Pool at sunset", SortOrder: 2},
		{URL: "https://cdn.example.com/gallery/suite.jpg", Caption: "Suite interior", SortOrder: 3},
	}
	for i := range images {
		db.Create(&images[i])
	}

	// Dev operator token so the dashboard can be exercised without the IdP.
	if cfg.AppEnv != "production" {
		j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)
		token, err := j.Mint(1, "operator")
		if err != nil {
			log.Println("token mint failed:", err)
		} else {
			fmt.Fprintf(os.Stderr, "Dev operator token:\n%s\n", token)
		}
	}

	log.Println("Seed completed!")
}
