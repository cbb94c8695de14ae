package entities

import (
	"errors"
	"time"
)

// Instructor estende um User com o perfil profissional
type Instructor struct {
	ID             uint64
	UserID         uint64
	User           *User
	Phone          string
	Bio            string
	PhotoURL       *string
	Specialization string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate valida regras de negócio da entidade Instructor
func (i *Instructor) Validate() error {
	if i.UserID == 0 {
		return errors.New("user_id is required")
	}
	if len(i.Phone) > 20 {
		return errors.New("phone must have at most 20 characters")
	}
	return nil
}

// StudentInstructor vincula um aluno a um instrutor.
// O par (StudentID, InstructorID) é único.
type StudentInstructor struct {
	ID           uint64
	StudentID    uint64
	InstructorID uint64
	AssignedDate time.Time
}
