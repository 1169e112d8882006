package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User - staff accounts that can log into the admin panel
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"`    // Never return this in JSON
	Role         string    `json:"role"` // 'admin', 'staff'
	CreatedAt    time.Time `json:"created_at"`
}

// Socio - a club member. CI (national identity number) is the business key;
// pagos reference it rather than the surrogate ID.
type Socio struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CI        string    `gorm:"uniqueIndex;size:20" json:"ci"`
	Nombre    string    `json:"nombre"`
	Celular   string    `json:"celular"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

// Pago - one monthly fee payment. The dashboard assumes at most one per
// (socio, mes, año); the API does not enforce it.
type Pago struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SocioCI   string          `gorm:"index;size:20" json:"socio"`
	Mes       int             `json:"mes"`
	Anio      int             `gorm:"column:anio" json:"año"`
	Monto     decimal.Decimal `gorm:"type:decimal(10,2)" json:"monto"`
	FechaPago Fecha           `gorm:"type:date" json:"fecha_pago"`
}

// Producto - an inventory item sold at the front desk
type Producto struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Nombre      string          `json:"nombre"`
	PrecioCosto decimal.Decimal `gorm:"type:decimal(10,2)" json:"precio_costo"`
	PrecioVenta decimal.Decimal `gorm:"type:decimal(10,2)" json:"precio_venta"`
	Stock       int             `json:"stock"`
	FotoURL     string          `json:"foto"`
}

// Venta - a single-product sale. Creating one decrements Producto.Stock.
type Venta struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ProductoID uint            `gorm:"index" json:"producto"`
	Cantidad   int             `json:"cantidad"`
	TotalVenta decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_venta"`
	FechaVenta Fecha           `gorm:"type:date" json:"fecha_venta"`
}

// Gasto - a club expense, counted against the month it falls in
type Gasto struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	Concepto string          `json:"concepto"`
	Monto    decimal.Decimal `gorm:"type:decimal(10,2)" json:"monto"`
	Fecha    Fecha           `gorm:"type:date" json:"fecha"`
}
