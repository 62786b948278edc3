package user

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// AffiliationTrainer marks staff members who teach classes. Trainers are
// excluded from membership compliance and inactivity alerting.
const AffiliationTrainer = "Entrenador(a)"

type User struct {
	ID               string     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Document         *string    `db:"document" json:"document,omitempty"`
	Phone            *string    `db:"phone" json:"phone,omitempty"`
	Email            *string    `db:"email" json:"email,omitempty"`
	Birthdate        *time.Time `db:"birthdate" json:"birthdate,omitempty"`
	EPS              *string    `db:"eps" json:"eps,omitempty"`
	RH               *string    `db:"rh" json:"rh,omitempty"`
	EmergencyContact *string    `db:"emergency_contact" json:"emergency_contact,omitempty"`
	EmergencyPhone   *string    `db:"emergency_phone" json:"emergency_phone,omitempty"`
	ClassTime        *string    `db:"class_time" json:"class_time,omitempty"`
	AffiliationType  string     `db:"affiliation_type" json:"affiliation_type"`
	Status           Status     `db:"status" json:"status"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateUserRequest struct {
	Name             string  `json:"name" binding:"required"`
	Document         *string `json:"document,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty" binding:"omitempty,email"`
	Birthdate        *string `json:"birthdate,omitempty"`
	EPS              *string `json:"eps,omitempty"`
	RH               *string `json:"rh,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty"`
	ClassTime        *string `json:"class_time,omitempty"`
	AffiliationType  string  `json:"affiliation_type"`
}

type UpdateUserRequest struct {
	Name             string  `json:"name" binding:"required"`
	Document         *string `json:"document,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty" binding:"omitempty,email"`
	Birthdate        *string `json:"birthdate,omitempty"`
	EPS              *string `json:"eps,omitempty"`
	RH               *string `json:"rh,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty"`
	ClassTime        *string `json:"class_time,omitempty"`
	AffiliationType  string  `json:"affiliation_type"`
	Status           Status  `json:"status" binding:"required,oneof=active inactive"`
}
