package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_06_02_000000_create_booking_tables",
			Up: func(db *gorm.DB) error {
				// bookings; the partial unique index lets cancelled rows
				// free their slot while confirmed rows keep it locked
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS bookings (
						id SERIAL PRIMARY KEY,
						user_name VARCHAR(255) NOT NULL,
						phone_number VARCHAR(30) NOT NULL,
						booking_date VARCHAR(10) NOT NULL,
						time_slot VARCHAR(10) NOT NULL,
						table_number INT NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
						notes TEXT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_bookings_booking_date ON bookings(booking_date);
					CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status);
					CREATE INDEX IF NOT EXISTS idx_bookings_deleted_at ON bookings(deleted_at);
					CREATE UNIQUE INDEX IF NOT EXISTS unique_booking
						ON bookings (booking_date, time_slot, table_number)
						WHERE status = 'confirmed' AND deleted_at IS NULL;
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS blocked_slots (
						id SERIAL PRIMARY KEY,
						blocked_date VARCHAR(10) NOT NULL,
						time_slot VARCHAR(10) NULL,
						table_number INT NULL,
						reason VARCHAR(255) NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_blocked_slots_blocked_date ON blocked_slots(blocked_date);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS blocked_slots CASCADE").Error; err != nil {
					return err
				}
				return db.Exec("DROP TABLE IF EXISTS bookings CASCADE").Error
			},
		},
		{
			Name: "2025_06_02_000001_create_tournament_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS tournaments (
						id SERIAL PRIMARY KEY,
						tournament_name VARCHAR(255) NOT NULL,
						date VARCHAR(10) NOT NULL,
						description TEXT NULL,
						entry_fee FLOAT NULL,
						prize_pool VARCHAR(255) NULL,
						max_participants INT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'upcoming',
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_tournaments_date ON tournaments(date);
					CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments(status);
					CREATE INDEX IF NOT EXISTS idx_tournaments_deleted_at ON tournaments(deleted_at);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS tournament_registrations (
						id SERIAL PRIMARY KEY,
						tournament_id INTEGER NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						player_name VARCHAR(100) NOT NULL,
						phone_number VARCHAR(30) NOT NULL,
						email VARCHAR(255) NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_tournament_registrations_tournament_id
						ON tournament_registrations(tournament_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS tournament_registrations CASCADE").Error; err != nil {
					return err
				}
				return db.Exec("DROP TABLE IF EXISTS tournaments CASCADE").Error
			},
		},
		{
			Name: "2025_06_02_000002_create_content_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS pricing (
						id SERIAL PRIMARY KEY,
						title VARCHAR(255) NOT NULL,
						price FLOAT NOT NULL,
						duration VARCHAR(100) NULL,
						description TEXT NULL,
						features JSONB DEFAULT '[]'::jsonb,
						is_popular BOOLEAN DEFAULT false,
						active BOOLEAN DEFAULT true,
						sort_order INT DEFAULT 0,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_pricing_active ON pricing(active);
					CREATE INDEX IF NOT EXISTS idx_pricing_deleted_at ON pricing(deleted_at);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS gallery (
						id SERIAL PRIMARY KEY,
						image_url VARCHAR(512) NOT NULL,
						storage_path VARCHAR(512) NOT NULL,
						caption VARCHAR(255) NULL,
						order_index INT DEFAULT 0,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_gallery_deleted_at ON gallery(deleted_at);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS slideshow (
						id SERIAL PRIMARY KEY,
						image_url VARCHAR(512) NOT NULL,
						storage_path VARCHAR(512) NOT NULL,
						tagline VARCHAR(255) NULL,
						order_index INT DEFAULT 0,
						active BOOLEAN DEFAULT true,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_slideshow_active ON slideshow(active);
					CREATE INDEX IF NOT EXISTS idx_slideshow_deleted_at ON slideshow(deleted_at);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS contact_messages (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						email VARCHAR(255) NOT NULL,
						message TEXT NOT NULL,
						is_read BOOLEAN DEFAULT false,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_contact_messages_is_read ON contact_messages(is_read);
					CREATE INDEX IF NOT EXISTS idx_contact_messages_deleted_at ON contact_messages(deleted_at);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS settings (
						id SERIAL PRIMARY KEY,
						club_name VARCHAR(255) NOT NULL,
						address VARCHAR(512) NOT NULL,
						opening_hours VARCHAR(255) NOT NULL,
						contact_number VARCHAR(30) NULL,
						whatsapp_number VARCHAR(30) NULL,
						google_maps_link VARCHAR(512) NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				for _, table := range []string{"settings", "contact_messages", "slideshow", "gallery", "pricing"} {
					if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
