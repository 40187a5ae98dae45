package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event is one slot on the agenda. Events are hard-deleted; roster records
// below use an Active flag instead, because schedule entries are ephemeral
// while roster entries are historical.
//
// Date/Time are stored as zero-padded strings ("2006-01-02", "15:04") so that
// lexicographic comparison matches chronological order. (Date, Time, Teacher)
// is unique while Teacher is non-empty; see db.Init for the backstop index.
type Event struct {
	ID        string    `gorm:"primaryKey;size:24" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Date string `gorm:"size:10;not null;index" json:"fecha"`
	Time string `gorm:"size:5;not null" json:"time"`

	// Legacy composed fields, kept for records written before the schema
	// grew structured columns. Title is "<niño> - <clase>".
	Title       string `json:"title"`
	Description string `json:"description"`

	ChildName       string `json:"nombreNino"`
	Class           string `json:"clase"`
	Teacher         string `json:"maestro"`
	Characteristics string `json:"caracteristicas"`
	GuardianName    string `json:"nombreTutor"`
	GuardianPhone   string `json:"celularTutor"`

	// Advisory only: the session that created the event.
	OwnerID string `json:"userId"`
}

type Peque struct {
	ID        string    `gorm:"primaryKey;size:24" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name      string     `gorm:"not null" json:"nombreCompleto"`
	BirthDate *time.Time `json:"fechaNacimiento,omitempty"`
	Age       string     `json:"edad,omitempty"` // legacy free-text age
	Behavior  string     `json:"comportamiento,omitempty"`

	Characteristics string                      `json:"caracteristicas,omitempty"`
	BloodType       string                      `json:"tipoSangre,omitempty"`
	Allergies       string                      `json:"alergias,omitempty"`
	Services        datatypes.JSONSlice[string] `json:"servicios,omitempty"`

	Tutor1Name  string `json:"nombreTutor1,omitempty"`
	Tutor1Phone string `json:"celularTutor1,omitempty"`
	Tutor1Email string `json:"correoTutor1,omitempty"`
	Tutor2Name  string `json:"nombreTutor2,omitempty"`
	Tutor2Phone string `json:"celularTutor2,omitempty"`
	Tutor2Email string `json:"correoTutor2,omitempty"`

	PayDay *int `json:"fechaPago,omitempty"` // day of month, 1..31

	Active bool `gorm:"default:true;index" json:"activo"`
}

type Maestro struct {
	ID        string    `gorm:"primaryKey;size:24" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name  string `gorm:"not null" json:"nombreCompleto"`
	Age   string `json:"edad"`
	Phone string `json:"celular"`

	Active bool `gorm:"default:true;index" json:"activo"`
}

type Producto struct {
	ID        string    `gorm:"primaryKey;size:24" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name            string  `gorm:"not null" json:"nombre"`
	Quantity        int     `json:"cantidad"`
	Price           float64 `json:"precio"`
	Characteristics string  `json:"caracteristicas,omitempty"`

	Active bool `gorm:"default:true;index" json:"activo"`
}

// Role: "admin" or "user"
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
