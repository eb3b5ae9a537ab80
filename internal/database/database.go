package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver

	"hotelsite/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema. On PostgreSQL it also installs the exclusion
// constraint that rejects two non-cancelled bookings on the same room with
// intersecting [check_in, check_out) ranges, so double-booking is impossible
// even across concurrent sessions. SQLite (dev/test) has no equivalent and
// relies on the service-level availability re-check.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.RoomType{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Enquiry{},
		&domain.Subscriber{},
		&domain.GalleryImage{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	var cnt int64
	if err := db.Raw(
		`SELECT COUNT(1) FROM pg_constraint WHERE conname = 'no_overlapping_stays'`,
	).Scan(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	return db.Exec(`
ALTER TABLE bookings
  ADD CONSTRAINT no_overlapping_stays
  EXCLUDE USING gist (
    room_id WITH =,
    daterange(check_in::date, check_out::date, '[)') WITH &&
  )
  WHERE (status <> 'cancelled')
`).Error
}
