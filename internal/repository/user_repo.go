package repository

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"barberpro/internal/db"
)

type UserRepository interface {
	GetByEmail(email string) (*db.User, error)
	CreateUser(name, email, password, role string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(database *sql.DB) UserRepository {
	return &userRepository{db: database}
}

func (r *userRepository) GetByEmail(email string) (*db.User, error) {
	var user db.User
	err := r.db.QueryRow(`
		SELECT id, name, email, password_hash, role, active
		FROM users WHERE email = $1`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUser(name, email, password, role string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO users (name, email, password_hash, role, active, created_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW())`
	_, err = r.db.Exec(query, name, email, hashedPassword, role)
	return err
}
