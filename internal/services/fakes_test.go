package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/infrastructure/logging"
)

func testLogger() ports.Logger {
	return logging.NewSlogLoggerWithWriter(io.Discard, "error")
}

type fakeUserRepo struct {
	users  map[uint64]*entities.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint64]*entities.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entities.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domainerrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email.String() == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entities.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint64) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _ repositories.UserFilters) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeStudentRepo struct {
	students map[uint64]*entities.Student
	links    []*entities.StudentInstructor
	nextID   uint64
	updates  int
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[uint64]*entities.Student{}}
}

func (r *fakeStudentRepo) Create(_ context.Context, s *entities.Student) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.students[s.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id uint64) (*entities.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStudentRepo) FindByUserID(_ context.Context, userID uint64) (*entities.Student, error) {
	for _, s := range r.students {
		if s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, s *entities.Student) error {
	r.updates++
	cp := *s
	r.students[s.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id uint64) error {
	delete(r.students, id)
	return nil
}

func (r *fakeStudentRepo) List(_ context.Context, _ repositories.StudentFilters) ([]*entities.Student, error) {
	out := make([]*entities.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStudentRepo) AssignInstructor(_ context.Context, link *entities.StudentInstructor) error {
	for _, l := range r.links {
		if l.StudentID == link.StudentID && l.InstructorID == link.InstructorID {
			return domainerrors.ErrInstructorAlreadyAssigned
		}
	}
	link.ID = uint64(len(r.links) + 1)
	r.links = append(r.links, link)
	return nil
}

func (r *fakeStudentRepo) ListInstructors(_ context.Context, studentID uint64) ([]*entities.Instructor, error) {
	var out []*entities.Instructor
	for _, l := range r.links {
		if l.StudentID == studentID {
			out = append(out, &entities.Instructor{ID: l.InstructorID})
		}
	}
	return out, nil
}

type fakeInstructorRepo struct {
	instructors map[uint64]*entities.Instructor
	nextID      uint64
}

func newFakeInstructorRepo() *fakeInstructorRepo {
	return &fakeInstructorRepo{instructors: map[uint64]*entities.Instructor{}}
}

func (r *fakeInstructorRepo) Create(_ context.Context, i *entities.Instructor) error {
	r.nextID++
	i.ID = r.nextID
	cp := *i
	r.instructors[i.ID] = &cp
	return nil
}

func (r *fakeInstructorRepo) FindByID(_ context.Context, id uint64) (*entities.Instructor, error) {
	i, ok := r.instructors[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInstructorRepo) FindByUserID(_ context.Context, userID uint64) (*entities.Instructor, error) {
	for _, i := range r.instructors {
		if i.UserID == userID {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInstructorRepo) Update(_ context.Context, i *entities.Instructor) error {
	cp := *i
	r.instructors[i.ID] = &cp
	return nil
}

func (r *fakeInstructorRepo) Delete(_ context.Context, id uint64) error {
	delete(r.instructors, id)
	return nil
}

func (r *fakeInstructorRepo) List(_ context.Context, f repositories.InstructorFilters) ([]*entities.Instructor, error) {
	var out []*entities.Instructor
	for _, i := range r.instructors {
		if f.Specialization == "" || strings.Contains(strings.ToLower(i.Specialization), strings.ToLower(f.Specialization)) {
			out = append(out, i)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	entries []*entities.Attendance
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a *entities.Attendance) error {
	a.ID = uint64(len(r.entries) + 1)
	r.entries = append(r.entries, a)
	return nil
}

func (r *fakeAttendanceRepo) ListByStudent(_ context.Context, studentID uint64, _ repositories.Pagination) ([]*entities.Attendance, error) {
	var out []*entities.Attendance
	for _, a := range r.entries {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	items  map[uint64]*entities.Notification
	nextID uint64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{items: map[uint64]*entities.Notification{}}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entities.Notification) error {
	r.nextID++
	n.ID = r.nextID
	cp := *n
	r.items[n.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id uint64) (*entities.Notification, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, id uint64) error {
	n, ok := r.items[id]
	if !ok {
		return domainerrors.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id uint64) error {
	delete(r.items, id)
	return nil
}

func (r *fakeNotificationRepo) List(_ context.Context, f repositories.NotificationFilters) ([]*entities.Notification, error) {
	var out []*entities.Notification
	for _, n := range r.items {
		if n.UserID == f.UserID && (!f.UnreadOnly || !n.Read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, n := range r.items {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

type fakePaymentRepo struct {
	items     map[uint64]*entities.Payment
	nextID    uint64
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{items: map[uint64]*entities.Payment{}}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entities.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uint64) (*entities.Payment, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p *entities.Payment) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uint64) error {
	delete(r.items, id)
	return nil
}

func (r *fakePaymentRepo) List(_ context.Context, _ repositories.PaymentFilters) ([]*entities.Payment, error) {
	var out []*entities.Payment
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

type fakeTreinoRepo struct {
	items map[uuid.UUID]*entities.Treino
}

func newFakeTreinoRepo() *fakeTreinoRepo {
	return &fakeTreinoRepo{items: map[uuid.UUID]*entities.Treino{}}
}

func (r *fakeTreinoRepo) Create(_ context.Context, t *entities.Treino) error {
	t.ID = uuid.New()
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTreinoRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Treino, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTreinoRepo) Update(_ context.Context, t *entities.Treino) error {
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTreinoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeTreinoRepo) List(_ context.Context, f repositories.TreinoFilters) ([]*entities.Treino, error) {
	var out []*entities.Treino
	for _, t := range r.items {
		if f.AlunoID != nil && t.AlunoID != *f.AlunoID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// fakeUnitOfWork executa a função diretamente e conta commits e rollbacks
type fakeUnitOfWork struct {
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (u *fakeUnitOfWork) Rollback(context.Context) error                     { return nil }

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(u *entities.User) (string, error) {
	return "token-" + u.Email.String(), nil
}

type recordingPublisher struct {
	published []*entities.Notification
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, n *entities.Notification) error {
	p.published = append(p.published, n)
	return p.err
}
