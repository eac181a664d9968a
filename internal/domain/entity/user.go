package entity

import "time"

// User representa un titular del sistema (puede poseer cuentas PF y PJ).
type User struct {
	ID           string
	Name         string
	Lastname     string
	Document     string // CPF, único en el sistema
	Phone        string
	Email        string // único en el sistema
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
