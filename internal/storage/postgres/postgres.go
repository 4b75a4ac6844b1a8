package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"salonBooker/internal/config"
	"salonBooker/internal/models"
	"salonBooker/internal/storage"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS services (
			id    TEXT PRIMARY KEY,
			name  TEXT NOT NULL,
			price NUMERIC(10, 2) NOT NULL
		);
		CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS bookings (
			id         BIGINT PRIMARY KEY,
			username   TEXT NOT NULL DEFAULT '',
			name       TEXT NOT NULL,
			phone      TEXT NOT NULL DEFAULT '',
			service_id TEXT NOT NULL,
			date       TEXT NOT NULL,
			time       TEXT NOT NULL,
			status     TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`

	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Services() ([]models.Service, error) {
	query := `
		SELECT id, name, price
		FROM services
		ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var svc models.Service
		if err = rows.Scan(&svc.ID, &svc.Name, &svc.Price); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, svc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	return services, nil
}

func (s *Storage) Users() ([]models.User, error) {
	query := `
		SELECT username, password
		FROM users
		ORDER BY username`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.Username, &u.Password); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (s *Storage) SaveUsers(users []models.User) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password`

	for _, u := range users {
		if _, err = tx.Exec(query, u.Username, u.Password); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Storage) Bookings() ([]models.Booking, error) {
	query := `
		SELECT id, username, name, phone, service_id, date, time, status, created_at
		FROM bookings
		ORDER BY created_at ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err = rows.Scan(
			&b.ID,
			&b.Username,
			&b.Name,
			&b.Phone,
			&b.ServiceID,
			&b.Date,
			&b.Time,
			&b.Status,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) AppendBooking(b models.Booking) error {
	query := `
		INSERT INTO bookings (id, username, name, phone, service_id, date, time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.DB.Exec(query,
		b.ID, b.Username, b.Name, b.Phone, b.ServiceID, b.Date, b.Time, b.Status, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (s *Storage) UpdateBooking(b models.Booking) error {
	query := `
		UPDATE bookings
		SET username = $2, name = $3, phone = $4, service_id = $5,
		    date = $6, time = $7, status = $8, created_at = $9
		WHERE id = $1`

	result, err := s.DB.Exec(query,
		b.ID, b.Username, b.Name, b.Phone, b.ServiceID, b.Date, b.Time, b.Status, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}
