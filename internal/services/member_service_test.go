package services_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

var _ = Describe("MemberService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *services.MemberService
		me      *entities.User
	)

	// Lisboa; 0.01 grau de latitude ~ 1.1 km
	const lat, lng = 38.7223, -9.1393

	at := func(dLat float64) (*float64, *float64) {
		return ptr(lat + dLat), ptr(lng)
	}

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		service = services.NewMemberService(postgres.NewUserRepository(db), ports.NopLogger{})

		la, lo := at(0)
		me = seedUser(db, &entities.User{FullName: "Eu Mesmo", UserName: "eu", Level: 2, LevelName: "Lower-Intermediate", Latitude: la, Longitude: lo})
	})

	Describe("Level", func() {
		It("retorna o nível no formato N(Nome)", func() {
			level, err := service.Level(ctx, me)
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal("2(Lower-Intermediate)"))
		})

		It("exige usuário autenticado", func() {
			_, err := service.Level(ctx, nil)
			Expect(err).To(MatchError(errors.ErrUnauthenticated))
		})
	})

	Describe("NearbyMembers", func() {
		It("ordena por distância e ignora quem está fora do raio", func() {
			la, lo := at(0.05)
			far := seedUser(db, &entities.User{FullName: "Longe", UserName: "longe", Latitude: la, Longitude: lo})
			la, lo = at(0.01)
			near := seedUser(db, &entities.User{FullName: "Perto", UserName: "perto", Latitude: la, Longitude: lo})
			la, lo = at(0.5)
			seedUser(db, &entities.User{FullName: "Fora", UserName: "fora", Latitude: la, Longitude: lo})

			nearby, err := service.NearbyMembers(ctx, me)
			Expect(err).NotTo(HaveOccurred())
			Expect(nearby).To(HaveLen(2))
			Expect(nearby[0].User.ID).To(Equal(near.ID))
			Expect(nearby[1].User.ID).To(Equal(far.ID))
			Expect(nearby[0].DistanceKm).To(BeNumerically("~", 1.11, 0.01))
			Expect(nearby[1].DistanceKm).To(BeNumerically("<=", services.NearbyRadiusKm))
		})

		It("ignora admins e usuários inativos", func() {
			la, lo := at(0.01)
			seedUser(db, &entities.User{FullName: "Admin", UserName: "admin", Role: entities.RoleAdmin, Latitude: la, Longitude: lo})
			seedUser(db, &entities.User{FullName: "Inativo", UserName: "inativo", Status: entities.UserStatusInactive, Latitude: la, Longitude: lo})

			_, err := service.NearbyMembers(ctx, me)
			Expect(err).To(MatchError(errors.ErrNoNearbyMembers))
		})

		It("exige localização do usuário", func() {
			noLocation := seedUser(db, &entities.User{FullName: "Sem GPS", UserName: "semgps"})
			_, err := service.NearbyMembers(ctx, noLocation)
			Expect(err).To(MatchError(errors.ErrUserLocationMissing))
		})
	})

	Describe("SearchMembers", func() {
		BeforeEach(func() {
			for i := 0; i < services.MemberSearchPageSize+5; i++ {
				seedUser(db, &entities.User{FullName: fmt.Sprintf("Maria %02d", i), UserName: fmt.Sprintf("maria%d", i)})
			}
			seedUser(db, &entities.User{FullName: "100%_Joao", UserName: "joao"})
		})

		It("pagina de 20 em 20 sem diferenciar maiúsculas", func() {
			page, err := service.SearchMembers(ctx, "MARIA", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Members).To(HaveLen(services.MemberSearchPageSize))
			Expect(page.Total).To(BeEquivalentTo(services.MemberSearchPageSize + 5))
			Expect(page.TotalPages).To(Equal(2))

			page, err = service.SearchMembers(ctx, "maria", 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Members).To(HaveLen(5))
			Expect(page.Page).To(Equal(2))
		})

		It("trata curingas do LIKE como texto", func() {
			page, err := service.SearchMembers(ctx, "%_", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Members).To(HaveLen(1))
			Expect(page.Members[0].UserName).To(Equal("joao"))
		})

		It("retorna not found sem resultados", func() {
			_, err := service.SearchMembers(ctx, "ninguém", 1)
			Expect(err).To(MatchError(errors.ErrNoMembersFound))
		})

		It("exige palavra-chave", func() {
			_, err := service.SearchMembers(ctx, "   ", 1)
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})
	})
})
