package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleConsulta  = "consulta"
)

// Páginas de la aplicación que se habilitan por usuario (AllowedPages).
const (
	PageInbound  = "inbound"
	PageOutbound = "outbound"
	PageStock    = "stock"
	PageRevenue  = "revenue"
	PageMaster   = "master"
)

// User representa un usuario del sistema. Al núcleo solo le importan la identidad,
// el rol y las páginas habilitadas; la integración con el proveedor de auth queda fuera.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string   // admin, bodeguero, consulta
	AllowedPages []string // páginas habilitadas
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
