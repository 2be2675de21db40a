package dao

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/demohealth/privacy-governance-api/internal/models"
)

// TestUserDAOCreate tests user insertion and ID write-back
func TestUserDAOCreate(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewUserDAO(db)

	user := &models.User{Name: "Dr. Youssef", Role: "doctor", Email: "youssef@demohealth.example"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO PG_USER (NAME, ROLE, EMAIL) VALUES (?, ?, ?)")).
		WithArgs(user.Name, user.Role, user.Email).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := dao.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUserDAOCreateDuplicateEmail tests the unique-index violation mapping
func TestUserDAOCreateDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewUserDAO(db)

	user := &models.User{Name: "Dr. Youssef", Role: "doctor", Email: "youssef@demohealth.example"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO PG_USER")).
		WithArgs(user.Name, user.Role, user.Email).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := dao.Create(context.Background(), user)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

// TestUserDAOGetByIDMissing tests that an unknown id yields (nil, nil)
func TestUserDAOGetByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewUserDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, NAME, ROLE, EMAIL FROM PG_USER WHERE ID = ?")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	user, err := dao.GetByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, user)
}

// TestUserDAOExistsByEmail tests the registered-email check
func TestUserDAOExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewUserDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM PG_USER WHERE EMAIL = ?)")).
		WithArgs("clara@demohealth.example").
		WillReturnRows(sqlmock.NewRows([]string{"EXISTS"}).AddRow(true))

	exists, err := dao.ExistsByEmail(context.Background(), "clara@demohealth.example")

	assert.NoError(t, err)
	assert.True(t, exists)
}

// TestUserDAOList tests listing users in insertion order
func TestUserDAOList(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewUserDAO(db)

	rows := sqlmock.NewRows([]string{"ID", "NAME", "ROLE", "EMAIL"}).
		AddRow(1, "Dr. Youssef", "doctor", "youssef@demohealth.example").
		AddRow(2, "Nurse Clara", "nurse", "clara@demohealth.example")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, NAME, ROLE, EMAIL FROM PG_USER ORDER BY ID")).
		WillReturnRows(rows)

	users, err := dao.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Nurse Clara", users[1].Name)
}
