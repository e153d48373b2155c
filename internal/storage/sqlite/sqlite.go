// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/storage"
)

// MemoryDSN opens a private in-memory database that lives as long as the store.
const MemoryDSN = ":memory:"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore for the given data source.
// File-backed sources get their parent directory created. Migrations run automatically.
func New(dsn string) (*SQLiteStore, error) {
	if isFilePath(dsn) {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection, so keep exactly one.
	// Queries below never hold rows open while issuing another statement.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func isFilePath(dsn string) bool {
	return dsn != MemoryDSN && !strings.HasPrefix(dsn, "file:")
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateMember persists a new member to the database.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}
	if member.Avatar == "" {
		member.Avatar = models.Initials(member.Name)
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members (id, name, email, color, avatar, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		member.ID, member.Name, nullable(member.Email), nullable(member.Color), member.Avatar, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

// UpdateMember updates name, contact, color and avatar of an existing member.
func (s *SQLiteStore) UpdateMember(ctx context.Context, member *models.Member) error {
	if member.Avatar == "" {
		member.Avatar = models.Initials(member.Name)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE members SET name = ?, email = ?, color = ?, avatar = ? WHERE id = ?",
		member.Name, nullable(member.Email), nullable(member.Color), member.Avatar, member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("member %s: %w", member.ID, storage.ErrNotFound)
	}

	return nil
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, color, avatar, created_at FROM members WHERE id = ?",
		memberID,
	)

	member, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// ListMembers retrieves every member in insertion order.
func (s *SQLiteStore) ListMembers(ctx context.Context) ([]*models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, color, avatar, created_at FROM members ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMember(row scanner) (*models.Member, error) {
	member := &models.Member{}
	var email, color sql.NullString

	if err := row.Scan(&member.ID, &member.Name, &email, &color, &member.Avatar, &member.CreatedAt); err != nil {
		return nil, err
	}
	member.Email = email.String
	member.Color = color.String

	return member, nil
}

// nullable stores empty optional strings as NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
