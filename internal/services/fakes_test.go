package services_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
)

// memoryRepository guarda funcionários em memória
type memoryRepository struct {
	mu        sync.Mutex
	employees []*entities.Employee
	nextID    uint
	createErr error
	listErr   error
}

func (r *memoryRepository) Create(_ context.Context, employee *entities.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	employee.ID = r.nextID
	stored := *employee
	r.employees = append(r.employees, &stored)
	return nil
}

func (r *memoryRepository) ExistsByEmailOrCPF(_ context.Context, email, cpf string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.Email == email || e.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entities.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

// recordingUnitOfWork executa fn e registra commits e rollbacks
type recordingUnitOfWork struct {
	commits   int
	rollbacks int
}

func (u *recordingUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

func (u *recordingUnitOfWork) Commit(context.Context) error {
	u.commits++
	return nil
}

func (u *recordingUnitOfWork) Rollback(context.Context) error {
	u.rollbacks++
	return nil
}

func (u *recordingUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

// stubIssuer devolve um token fixo
type stubIssuer struct {
	issued []entities.SessionUser
	err    error
}

func (s *stubIssuer) Issue(user entities.SessionUser) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	s.issued = append(s.issued, user)
	return "signed-token", time.Unix(1700000000, 0), nil
}

// stubMigrator conta as chamadas a EnsureSchema
type stubMigrator struct {
	calls int
	err   error
}

func (m *stubMigrator) EnsureSchema(context.Context) error {
	m.calls++
	return m.err
}

var errDiskFull = errors.New("disk full")
