package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/logging"
	"github.com/rafabene/docgestor-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		issuer  *stubIssuer
		service *services.AuthService
	)

	BeforeEach(func() {
		issuer = &stubIssuer{}
		service = services.NewAuthService(issuer, logging.NewNopLogger())
	})

	DescribeTable("resolves the fixed users",
		func(email any, id int, name string, role entities.Role) {
			result, err := service.Login(context.Background(), services.LoginInput{Email: email})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Token).To(Equal("signed-token"))
			Expect(result.User.ID).To(Equal(id))
			Expect(result.User.Name).To(Equal(name))
			Expect(result.User.Role).To(Equal(role))
			if email == nil {
				Expect(result.User.Email).To(BeNil())
			} else {
				Expect(result.User.Email).To(Equal(email))
			}
			Expect(issuer.issued).To(HaveLen(1))
		},
		Entry("admin", "admin@docgestor.com", 1, "Admin", entities.RoleAdmin),
		Entry("regular user", "user@docgestor.com", 2, "Usuário Comum", entities.RoleUser),
		Entry("unknown email", "x@y.com", 999, "Visitante", entities.RoleUser),
		Entry("missing email", nil, 999, "Visitante", entities.RoleUser),
		Entry("case differs", "ADMIN@docgestor.com", 999, "Visitante", entities.RoleUser),
		Entry("number", float64(123), 999, "Visitante", entities.RoleUser),
		Entry("array", []any{"admin@docgestor.com"}, 999, "Visitante", entities.RoleUser),
	)

	It("propagates signing failures", func() {
		issuer.err = errDiskFull

		_, err := service.Login(context.Background(), services.LoginInput{})

		Expect(err).To(MatchError(errDiskFull))
	})

	It("does not share state between resolutions", func() {
		first := services.ResolveSimulatedUser("a@b.com")
		second := services.ResolveSimulatedUser(nil)

		Expect(first.Email).To(Equal("a@b.com"))
		Expect(second.Email).To(BeNil())
	})
})

var _ = Describe("SchemaService", func() {
	It("delegates to the migrator every time", func() {
		migrator := &stubMigrator{}
		service := services.NewSchemaService(migrator, logging.NewNopLogger())

		Expect(service.EnsureSchema(context.Background())).To(Succeed())
		Expect(service.EnsureSchema(context.Background())).To(Succeed())
		Expect(migrator.calls).To(Equal(2))
	})

	It("returns migrator errors", func() {
		migrator := &stubMigrator{err: errDiskFull}
		service := services.NewSchemaService(migrator, logging.NewNopLogger())

		Expect(service.EnsureSchema(context.Background())).To(MatchError(errDiskFull))
	})
})
