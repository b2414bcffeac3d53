package models

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID          uuid.UUID  `db:"id"`
	Username    string     `db:"username"`
	Password    string     `db:"password"`
	Role        string     `db:"role"`
	LastLoginAt *time.Time `db:"last_login_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
