package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	intconfig "bluevoyager/internal/config"
	intdb "bluevoyager/internal/db"
	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// EnsureSchema creates the bookings table when it does not exist yet, and
// backfills the voyage_id column on tables created before it was added.
func (r BookingRepository) EnsureSchema() error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(db, "bookings") {
		if !intdb.HasColumn(db, "bookings", "voyage_id") {
			_, err := db.Exec(`ALTER TABLE bookings ADD COLUMN voyage_id BIGINT NOT NULL DEFAULT 0 AFTER cabin_name`)
			return err
		}
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference VARCHAR(64) NOT NULL,
	cabin_id VARCHAR(50) NOT NULL,
	cabin_name VARCHAR(255) NOT NULL,
	voyage_id BIGINT NOT NULL DEFAULT 0,
	check_in DATE NOT NULL,
	check_out DATE NOT NULL,
	guests INT NOT NULL DEFAULT 1,
	full_name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL,
	total BIGINT NOT NULL DEFAULT 0,
	status VARCHAR(50) NOT NULL DEFAULT 'confirmed',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_reference (reference),
	KEY idx_cabin_checkin (cabin_id, check_in)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}

// Create stores a confirmed booking and returns its row id.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, fmt.Errorf("db not available")
	}
	res, err := db.Exec(`
		INSERT INTO bookings
			(reference, cabin_id, cabin_name, voyage_id, check_in, check_out, guests, full_name, email, phone, total, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		b.Reference, b.CabinID, b.CabinName, b.VoyageID,
		b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
		b.Guests, b.FullName, b.Email, b.Phone, b.Total, b.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByReference fetches one booking by its public reference.
func (r BookingRepository) GetByReference(ref string) (models.Booking, error) {
	db := r.db()
	if db == nil {
		return models.Booking{}, fmt.Errorf("db not available")
	}

	var (
		b                 models.Booking
		checkIn, checkOut string
		created           sql.NullString
	)
	err := db.QueryRow(`
		SELECT id, reference, cabin_id, cabin_name, voyage_id, check_in, check_out,
		       guests, full_name, email, phone, total, status, created_at
		FROM bookings
		WHERE reference = ?
		LIMIT 1
	`, ref).Scan(
		&b.ID, &b.Reference, &b.CabinID, &b.CabinName, &b.VoyageID,
		&checkIn, &checkOut, &b.Guests, &b.FullName, &b.Email, &b.Phone,
		&b.Total, &b.Status, &created,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}

	b.CheckIn, _ = parseDay(checkIn)
	b.CheckOut, _ = parseDay(checkOut)
	if created.Valid {
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", created.String, time.Local); err == nil {
			b.CreatedAt = t
		}
	}
	return b, nil
}

// List returns the most recent bookings, newest first.
func (r BookingRepository) List(limit int) ([]models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	rows, err := db.Query(`
		SELECT id, reference, cabin_id, cabin_name, voyage_id, check_in, check_out,
		       guests, full_name, email, phone, total, status
		FROM bookings
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var (
			b                 models.Booking
			checkIn, checkOut string
		)
		if err := rows.Scan(
			&b.ID, &b.Reference, &b.CabinID, &b.CabinName, &b.VoyageID,
			&checkIn, &checkOut, &b.Guests, &b.FullName, &b.Email, &b.Phone,
			&b.Total, &b.Status,
		); err != nil {
			return nil, err
		}
		b.CheckIn, _ = parseDay(checkIn)
		b.CheckOut, _ = parseDay(checkOut)
		out = append(out, b)
	}
	return out, rows.Err()
}

// BookedDays returns the day-of-month numbers of the given month that are
// covered by a confirmed booking. voyageID 0 matches every voyage.
func (r BookingRepository) BookedDays(voyageID int64, year int, month time.Month) (map[int]bool, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "bookings") {
		return map[int]bool{}, nil
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	query := `
		SELECT check_in, check_out FROM bookings
		WHERE status = 'confirmed' AND check_in <= ? AND check_out >= ?
	`
	args := []any{last.Format("2006-01-02"), first.Format("2006-01-02")}
	if voyageID > 0 {
		query += ` AND voyage_id = ?`
		args = append(args, voyageID)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocked := map[int]bool{}
	for rows.Next() {
		var inStr, outStr string
		if err := rows.Scan(&inStr, &outStr); err != nil {
			return nil, err
		}
		in, err1 := parseDay(inStr)
		out, err2 := parseDay(outStr)
		if err1 != nil || err2 != nil {
			continue
		}
		for d := in; !d.After(out); d = d.AddDate(0, 0, 1) {
			if d.Year() == year && d.Month() == month {
				blocked[d.Day()] = true
			}
		}
	}
	return blocked, rows.Err()
}

func parseDay(s string) (time.Time, error) {
	// MySQL DATE columns come back as "2006-01-02"; with parseTime drivers
	// they may carry a time suffix.
	if len(s) > 10 {
		s = s[:10]
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
