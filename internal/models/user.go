package models

import "time"

// User — модель пользователя в системе.
//
// Role — имя группы прав на момент чтения из БД (join с permission_groups);
// оно попадает в claims токенов при выпуске и перечитывается при refresh,
// поэтому смена группы вступает в силу при следующей ротации.
type User struct {
	ID                int64
	Username          string
	Nickname          string
	Email             string
	PasswordHash      string
	PermissionGroupID int64
	Role              string
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
