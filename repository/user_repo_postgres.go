package repository

import (
	"database/sql"
	"time"

	"budgettracker/models"

	"github.com/lib/pq"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = newID()
	}
	if user.Avatar == "" {
		user.Avatar = models.DefaultAvatar
	}
	if user.Role == "" {
		user.Role = "user"
	}
	now := time.Now().UTC()
	if user.LastLoginAt.IsZero() {
		user.LastLoginAt = now
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO users
		(id, name, organisation_name, email, avatar, password, role,
		 forgot_password_reset_token, forgot_password_reset_expires,
		 last_login_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, user.ID, user.Name, user.OrganisationName, user.Email, user.Avatar,
		user.Password, user.Role, user.ForgotPasswordResetToken,
		user.ForgotPasswordResetExpires, user.LastLoginAt, user.CreatedAt, user.UpdatedAt)
	return err
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := r.scanUser(r.DB.QueryRow(userSelect+` WHERE email=$1`, email), user)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepo) GetUsersByIDs(ids []string) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}

	rows, err := r.DB.Query(userSelect+` WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := r.scanUser(rows, user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepo) UpdateUser(user *models.User) error {
	user.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Exec(`
		UPDATE users
		SET name=$1, organisation_name=$2, avatar=$3, password=$4, role=$5,
		    last_login_at=$6, updated_at=$7
		WHERE id=$8
	`, user.Name, user.OrganisationName, user.Avatar, user.Password, user.Role,
		user.LastLoginAt, user.UpdatedAt, user.ID)
	return err
}

const userSelect = `
	SELECT id, name, organisation_name, email, avatar, password, role,
	       forgot_password_reset_token, forgot_password_reset_expires,
	       last_login_at, created_at, updated_at
	FROM users
`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresUserRepo) scanUser(row rowScanner, user *models.User) error {
	var resetExpires sql.NullTime
	var lastLogin sql.NullTime

	err := row.Scan(&user.ID, &user.Name, &user.OrganisationName, &user.Email,
		&user.Avatar, &user.Password, &user.Role,
		&user.ForgotPasswordResetToken, &resetExpires,
		&lastLogin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	if resetExpires.Valid {
		user.ForgotPasswordResetExpires = &resetExpires.Time
	}
	if lastLogin.Valid {
		user.LastLoginAt = lastLogin.Time
	}
	return nil
}
