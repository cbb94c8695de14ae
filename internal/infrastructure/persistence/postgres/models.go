package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Os models GORM espelham o schema criado pelas migrations; nenhum deles é
// usado com AutoMigrate.

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           uint64    `gorm:"primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password"`
	Role         string    `gorm:"column:role"`
	Status       string    `gorm:"column:status"`
	Gender       *string   `gorm:"column:gender"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// StudentModel é o model GORM para alunos
type StudentModel struct {
	ID              uint64     `gorm:"primaryKey"`
	UserID          uint64     `gorm:"column:user_id"`
	User            *UserModel `gorm:"foreignKey:UserID"`
	PlanType        string     `gorm:"column:plan_type"`
	StartDate       *time.Time `gorm:"column:start_date;type:date"`
	EndDate         *time.Time `gorm:"column:end_date;type:date"`
	PaymentStatus   string     `gorm:"column:payment_status"`
	LastPaymentDate *time.Time `gorm:"column:last_payment_date;type:date"`
	NextPaymentDate *time.Time `gorm:"column:next_payment_date;type:date"`
	Height          *float64   `gorm:"column:height"`
	Weight          *float64   `gorm:"column:weight"`
	PaymentMethod   *string    `gorm:"column:payment_method"`
	AmountPaid      *float64   `gorm:"column:amount_paid"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}

// InstructorModel é o model GORM para instrutores
type InstructorModel struct {
	ID             uint64     `gorm:"primaryKey"`
	UserID         uint64     `gorm:"column:user_id"`
	User           *UserModel `gorm:"foreignKey:UserID"`
	Phone          string     `gorm:"column:phone"`
	Bio            string     `gorm:"column:bio"`
	PhotoURL       *string    `gorm:"column:photo_url"`
	Specialization string     `gorm:"column:specialization"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (InstructorModel) TableName() string {
	return "instructors"
}

// StudentInstructorModel é a tabela de junção aluno x instrutor
type StudentInstructorModel struct {
	ID           uint64    `gorm:"primaryKey"`
	StudentID    uint64    `gorm:"column:student_id"`
	InstructorID uint64    `gorm:"column:instructor_id"`
	AssignedDate time.Time `gorm:"column:assigned_date;default:now()"`
}

func (StudentInstructorModel) TableName() string {
	return "student_instructors"
}

// TreinoModel é o model GORM para fichas de treino
type TreinoModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Titulo      string         `gorm:"column:titulo"`
	Descricao   string         `gorm:"column:descricao"`
	Categoria   string         `gorm:"column:categoria"`
	Exercicios  datatypes.JSON `gorm:"column:exercicios;type:jsonb"`
	AlunoID     uint64         `gorm:"column:aluno_id"`
	InstrutorID uint64         `gorm:"column:instrutor_id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (TreinoModel) TableName() string {
	return "treinos"
}

// NotificationModel é o model GORM para notificações
type NotificationModel struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"column:user_id"`
	Type      string    `gorm:"column:type"`
	Title     string    `gorm:"column:title"`
	Read      bool      `gorm:"column:read"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// PaymentModel é o model GORM para pagamentos
type PaymentModel struct {
	ID          uint64    `gorm:"primaryKey"`
	StudentID   uint64    `gorm:"column:student_id"`
	Amount      float64   `gorm:"column:amount"`
	PaymentDate time.Time `gorm:"column:payment_date;type:date"`
	Status      string    `gorm:"column:status"`
	Method      *string   `gorm:"column:method"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// AttendanceModel é o model GORM para check-ins
type AttendanceModel struct {
	ID        uint64    `gorm:"primaryKey"`
	StudentID uint64    `gorm:"column:student_id"`
	CheckIn   time.Time `gorm:"column:check_in"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
