package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// StudentRepository implementa repositories.StudentRepository
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository cria um novo StudentRepository
func NewStudentRepository(db *gorm.DB) repositories.StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, student *entities.Student) error {
	model := toStudentModel(student)

	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrProfileAlreadyExists)
	}

	student.ID = model.ID
	student.CreatedAt = model.CreatedAt
	student.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id uint64) (*entities.Student, error) {
	return r.findOne(ctx, "students.id = ?", id)
}

func (r *StudentRepository) FindByUserID(ctx context.Context, userID uint64) (*entities.Student, error) {
	return r.findOne(ctx, "students.user_id = ?", userID)
}

func (r *StudentRepository) findOne(ctx context.Context, where string, args ...any) (*entities.Student, error) {
	var model StudentModel

	if err := getDB(ctx, r.db).Preload("User").Where(where, args...).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toStudentEntity(&model)
}

func (r *StudentRepository) Update(ctx context.Context, student *entities.Student) error {
	model := toStudentModel(student)

	if err := getDB(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return translateError(err, domainerrors.ErrProfileAlreadyExists)
	}
	student.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id uint64) error {
	return getDB(ctx, r.db).Delete(&StudentModel{}, id).Error
}

func (r *StudentRepository) List(ctx context.Context, filters repositories.StudentFilters) ([]*entities.Student, error) {
	var models []*StudentModel

	query := getDB(ctx, r.db).Model(&StudentModel{}).Preload("User")

	if filters.PaymentStatus != nil {
		query = query.Where("payment_status = ?", string(*filters.PaymentStatus))
	}
	if filters.PlanType != nil {
		query = query.Where("plan_type = ?", string(*filters.PlanType))
	}

	limit, offset := filters.LimitOffset()
	if err := paginate(query.Order("id"), limit, offset).Find(&models).Error; err != nil {
		return nil, err
	}

	students := make([]*entities.Student, 0, len(models))
	for _, model := range models {
		student, err := toStudentEntity(model)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, nil
}

// AssignInstructor cria o vínculo aluno x instrutor. O índice único
// uq_student_instructor rejeita o mesmo par duas vezes.
func (r *StudentRepository) AssignInstructor(ctx context.Context, link *entities.StudentInstructor) error {
	model := &StudentInstructorModel{
		StudentID:    link.StudentID,
		InstructorID: link.InstructorID,
		AssignedDate: link.AssignedDate,
	}

	// assigned_date zerado fica com o default do banco (RETURNING)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrInstructorAlreadyAssigned)
	}

	link.ID = model.ID
	link.AssignedDate = model.AssignedDate
	return nil
}

func (r *StudentRepository) ListInstructors(ctx context.Context, studentID uint64) ([]*entities.Instructor, error) {
	var models []*InstructorModel

	err := getDB(ctx, r.db).
		Model(&InstructorModel{}).
		Select("instructors.*").
		Preload("User").
		Joins("JOIN student_instructors si ON si.instructor_id = instructors.id").
		Where("si.student_id = ?", studentID).
		Order("si.assigned_date").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	instructors := make([]*entities.Instructor, 0, len(models))
	for _, model := range models {
		instructor, err := toInstructorEntity(model)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}
	return instructors, nil
}

// AttendanceRepository implementa repositories.AttendanceRepository
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository cria um novo AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) repositories.AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *entities.Attendance) error {
	model := &AttendanceModel{StudentID: attendance.StudentID, CheckIn: attendance.CheckIn}
	if model.CheckIn.IsZero() {
		model.CheckIn = r.db.NowFunc()
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrConflict)
	}
	attendance.ID = model.ID
	attendance.CheckIn = model.CheckIn
	return nil
}

func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID uint64, page repositories.Pagination) ([]*entities.Attendance, error) {
	var models []*AttendanceModel

	limit, offset := page.LimitOffset()
	query := getDB(ctx, r.db).Where("student_id = ?", studentID).Order("check_in DESC")
	if err := paginate(query, limit, offset).Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Attendance, 0, len(models))
	for _, m := range models {
		result = append(result, &entities.Attendance{ID: m.ID, StudentID: m.StudentID, CheckIn: m.CheckIn})
	}
	return result, nil
}

// Conversores
func toStudentModel(s *entities.Student) *StudentModel {
	return &StudentModel{
		ID:              s.ID,
		UserID:          s.UserID,
		PlanType:        string(s.PlanType),
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		PaymentStatus:   string(s.PaymentStatus),
		LastPaymentDate: s.LastPaymentDate,
		NextPaymentDate: s.NextPaymentDate,
		Height:          s.Height,
		Weight:          s.Weight,
		PaymentMethod:   s.PaymentMethod,
		AmountPaid:      s.AmountPaid,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toStudentEntity(m *StudentModel) (*entities.Student, error) {
	student := &entities.Student{
		ID:              m.ID,
		UserID:          m.UserID,
		PlanType:        entities.PlanType(m.PlanType),
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		PaymentStatus:   entities.PaymentStatus(m.PaymentStatus),
		LastPaymentDate: m.LastPaymentDate,
		NextPaymentDate: m.NextPaymentDate,
		Height:          m.Height,
		Weight:          m.Weight,
		PaymentMethod:   m.PaymentMethod,
		AmountPaid:      m.AmountPaid,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if m.User != nil {
		user, err := toUserEntity(m.User)
		if err != nil {
			return nil, err
		}
		student.User = user
	}
	return student, nil
}
