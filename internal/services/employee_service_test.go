package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/docgestor-backend/internal/domain/errors"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/logging"
	"github.com/rafabene/docgestor-backend/internal/services"
)

func anaInput() services.CreateEmployeeInput {
	return services.CreateEmployeeInput{
		Name:       "Ana",
		Email:      "ana@x.com",
		CPF:        "12345678901",
		Position:   "Dev",
		Department: "TI",
		HireDate:   "2024-01-10",
	}
}

var _ = Describe("EmployeeService", func() {
	var (
		repo    *memoryRepository
		uow     *recordingUnitOfWork
		service *services.EmployeeService
		ctx     context.Context
	)

	BeforeEach(func() {
		repo = &memoryRepository{}
		uow = &recordingUnitOfWork{}
		service = services.NewEmployeeService(repo, uow, logging.NewNopLogger())
		ctx = context.Background()
	})

	Describe("CreateEmployee", func() {
		It("assigns an id and the default status", func() {
			employee, err := service.CreateEmployee(ctx, anaInput())

			Expect(err).NotTo(HaveOccurred())
			Expect(employee.ID).To(Equal(uint(1)))
			Expect(employee.Status).To(Equal(entities.DefaultEmployeeStatus))
			Expect(uow.commits).To(Equal(1))
		})

		It("keeps an explicit status", func() {
			input := anaInput()
			input.Status = "OK"

			employee, err := service.CreateEmployee(ctx, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(employee.Status).To(Equal("OK"))
		})

		It("rejects a duplicate email", func() {
			_, err := service.CreateEmployee(ctx, anaInput())
			Expect(err).NotTo(HaveOccurred())

			input := anaInput()
			input.CPF = "99999999999"
			_, err = service.CreateEmployee(ctx, input)

			Expect(err).To(MatchError(domainerrors.ErrEmployeeAlreadyExists))
			Expect(uow.rollbacks).To(Equal(1))
		})

		It("rejects a duplicate cpf", func() {
			_, err := service.CreateEmployee(ctx, anaInput())
			Expect(err).NotTo(HaveOccurred())

			input := anaInput()
			input.Email = "outra@x.com"
			_, err = service.CreateEmployee(ctx, input)

			Expect(err).To(MatchError(domainerrors.ErrEmployeeAlreadyExists))
		})

		It("wraps storage faults and rolls back", func() {
			repo.createErr = errDiskFull

			_, err := service.CreateEmployee(ctx, anaInput())

			Expect(errors.Is(err, domainerrors.ErrStorage)).To(BeTrue())
			Expect(errors.Is(err, errDiskFull)).To(BeTrue())
			Expect(err.Error()).To(Equal("Erro ao salvar no banco de dados: disk full"))
			Expect(uow.rollbacks).To(Equal(1))
			Expect(uow.commits).To(BeZero())
		})
	})

	Describe("ListEmployees", func() {
		It("returns an empty list when nothing is stored", func() {
			employees, err := service.ListEmployees(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(employees).NotTo(BeNil())
			Expect(employees).To(BeEmpty())
		})

		It("returns records in creation order", func() {
			_, err := service.CreateEmployee(ctx, anaInput())
			Expect(err).NotTo(HaveOccurred())

			second := anaInput()
			second.Email, second.CPF = "bia@x.com", "10987654321"
			_, err = service.CreateEmployee(ctx, second)
			Expect(err).NotTo(HaveOccurred())

			employees, err := service.ListEmployees(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(employees).To(HaveLen(2))
			Expect(employees[0].Email).To(Equal("ana@x.com"))
			Expect(employees[1].Email).To(Equal("bia@x.com"))
		})

		It("is idempotent without intervening writes", func() {
			_, err := service.CreateEmployee(ctx, anaInput())
			Expect(err).NotTo(HaveOccurred())

			first, err := service.ListEmployees(ctx)
			Expect(err).NotTo(HaveOccurred())
			second, err := service.ListEmployees(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
		})

		It("wraps storage faults", func() {
			repo.listErr = errDiskFull

			_, err := service.ListEmployees(ctx)

			Expect(errors.Is(err, domainerrors.ErrStorage)).To(BeTrue())
		})
	})

	Describe("SeedSampleEmployees", func() {
		It("inserts the samples once", func() {
			created, err := service.SeedSampleEmployees(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(Equal(3))

			created, err = service.SeedSampleEmployees(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeZero())

			employees, err := service.ListEmployees(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(employees).To(HaveLen(3))
		})
	})
})
