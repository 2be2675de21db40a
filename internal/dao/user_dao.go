package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/models"
)

// UserDAO handles database operations for users
type UserDAO struct {
	db *database.DB
}

// NewUserDAO creates a new UserDAO instance
func NewUserDAO(db *database.DB) *UserDAO {
	return &UserDAO{db: db}
}

// Create inserts a new user. The generated ID is written back into the model.
// A duplicate email violates the unique index and maps to ErrDuplicateEmail.
func (dao *UserDAO) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO PG_USER (NAME, ROLE, EMAIL) VALUES (?, ?, ?)`

	result, err := dao.db.ExecContext(ctx, query, user.Name, user.Role, user.Email)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when the user does not
// exist; callers substitute display placeholders for missing users.
func (dao *UserDAO) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ID, NAME, ROLE, EMAIL FROM PG_USER WHERE ID = ?`

	var user models.User
	err := dao.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ExistsByEmail checks whether a user is already registered with the email
func (dao *UserDAO) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM PG_USER WHERE EMAIL = ?)`

	var exists bool
	err := dao.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, fmt.Errorf("failed to check user email: %w", err)
	}

	return exists, nil
}

// List retrieves all users
func (dao *UserDAO) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ID, NAME, ROLE, EMAIL FROM PG_USER ORDER BY ID`

	var users []models.User
	err := dao.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
