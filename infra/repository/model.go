package repository

import (
	"database/sql/driver"
	"time"

	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Numeric is an exact decimal column. Postgres stores it as numeric; SQLite has no
// exact decimal type and would coerce numeric text to a float, so there it is kept as text.
type Numeric struct {
	decimal.Decimal
}

// Value writes the decimal in its exact string form.
func (n Numeric) Value() (driver.Value, error) {
	return n.Decimal.String(), nil
}

// Scan reads a numeric, text or blob column.
func (n *Numeric) Scan(src any) error {
	return n.Decimal.Scan(src)
}

// GormDBDataType picks the column type for the connected dialect.
func (Numeric) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "decimal(20,8)"
}

// Actor is the common row for every actor kind.
type Actor struct {
	InternalKey uint      `gorm:"primaryKey;autoIncrement"`
	PublicID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Kind        string    `gorm:"size:32;not null"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Actor model.
func (Actor) TableName() string {
	return "actors"
}

// Person holds the person-specific columns of an actor.
type Person struct {
	ActorKey  uint   `gorm:"primaryKey;autoIncrement:false"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Actor     Actor  `gorm:"foreignKey:ActorKey;references:InternalKey;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Person model.
func (Person) TableName() string {
	return "persons"
}

// Account represents an account record in the database.
type Account struct {
	InternalKey uint            `gorm:"primaryKey;autoIncrement"`
	PublicID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Number      string          `gorm:"size:64;uniqueIndex;not null"`
	Currency    currency.Code   `gorm:"type:varchar(16);not null"`
	Balance     Numeric         `gorm:"not null"`
	OwnerKey    uint            `gorm:"index;not null"`
	Owner       Actor           `gorm:"foreignKey:OwnerKey;references:InternalKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Models lists every model in migration order.
func Models() []any {
	return []any{&Actor{}, &Person{}, &Account{}}
}

// actorRow is the flattened actors/persons join used to hydrate actors.
type actorRow struct {
	InternalKey uint
	PublicID    uuid.UUID
	Kind        string
	FirstName   string
	LastName    string
}
