package entities

import (
	"fmt"
	"time"
)

// UserStatus indica se a conta está ativa
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User representa um jogador (ou administrador) da plataforma
type User struct {
	ID            uint
	FullName      string
	UserName      string
	Email         string
	Level         int
	LevelName     string // redundante com Level, pode divergir
	Latitude      *float64
	Longitude     *float64
	Role          Role
	Status        UserStatus
	Image         *string
	MatchesPlayed int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// HasLocation verifica se latitude e longitude estão preenchidas
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// IsActiveMember indica se o usuário aparece na descoberta de membros
func (u *User) IsActiveMember() bool {
	return u.Status == UserStatusActive && u.Role == RoleMember
}

// LevelLabel monta o formato "N(Nome)" usado pelos clientes
func (u *User) LevelLabel() string {
	return fmt.Sprintf("%d(%s)", u.Level, u.LevelName)
}
