package services_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports/mocks"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

var _ = Describe("ProfileService", func() {
	var (
		ctx          context.Context
		db           *gorm.DB
		geocoder     *mocks.MockGeocoder
		matchService *services.PadelMatchService
		service      *services.ProfileService
		owner        *entities.User
		guest        *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		geocoder = mocks.NewMockGeocoder(gomock.NewController(GinkgoT()))

		userRepo := postgres.NewUserRepository(db)
		matchRepo := postgres.NewPadelMatchRepository(db)
		groupRepo := postgres.NewGroupRepository(db)

		matchService = services.NewPadelMatchService(matchRepo, groupRepo, userRepo, postgres.NewUnitOfWork(db), ports.NopLogger{})
		service = services.NewProfileService(userRepo, matchRepo, groupRepo, geocoder, 2, ports.NopLogger{})

		owner = seedUser(db, &entities.User{FullName: "Dono", UserName: "dono", Level: 3, LevelName: "Upper-Intermediate"})
		guest = seedUser(db, &entities.User{FullName: "Convidado", UserName: "convidado"})
	})

	createMatch := func(lat float64, members ...uint) *entities.PadelMatch {
		created, err := matchService.CreateMatch(ctx, owner, services.CreateMatchInput{
			Latitude:      lat,
			Longitude:     -9.1,
			MindText:      "x",
			SelectedLevel: "3(Upper-Intermediate)",
			MemberIDs:     members,
		})
		Expect(err).NotTo(HaveOccurred())
		return created.Match
	}

	Describe("MyProfile", func() {
		It("traz endereços na ordem das partidas e a ocupação do grupo", func() {
			first := createMatch(38.1, guest.ID)
			second := createMatch(38.2)
			third := createMatch(38.3)

			geocoder.EXPECT().ReverseGeocode(gomock.Any(), 38.1, -9.1).Return("Rua Um, Lisboa", nil)
			geocoder.EXPECT().ReverseGeocode(gomock.Any(), 38.2, -9.1).Return("", ports.ErrLocationNotFound)
			geocoder.EXPECT().ReverseGeocode(gomock.Any(), 38.3, -9.1).Return("", stderrors.New("timeout"))

			profile, err := service.MyProfile(ctx, owner)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.User.ID).To(Equal(owner.ID))
			Expect(profile.JoinedMatches).To(BeEmpty())
			Expect(profile.CreatedMatches).To(HaveLen(3))

			Expect(profile.CreatedMatches[0].Match.ID).To(Equal(first.ID))
			Expect(profile.CreatedMatches[0].LocationAddress).To(Equal("Rua Um, Lisboa"))
			Expect(profile.CreatedMatches[0].PlayerCount).To(BeEquivalentTo(2))
			Expect(profile.CreatedMatches[0].Join).To(BeTrue())

			Expect(profile.CreatedMatches[1].Match.ID).To(Equal(second.ID))
			Expect(profile.CreatedMatches[1].LocationAddress).To(Equal(services.LocationNotFound))
			Expect(profile.CreatedMatches[2].Match.ID).To(Equal(third.ID))
			Expect(profile.CreatedMatches[2].LocationAddress).To(Equal(services.LocationLookupFailed))
		})

		It("separa partidas em que o usuário pediu entrada", func() {
			match := createMatch(38.5)
			_, err := matchService.JoinMatch(ctx, guest, match.ID)
			Expect(err).NotTo(HaveOccurred())

			geocoder.EXPECT().ReverseGeocode(gomock.Any(), 38.5, -9.1).Return("Praça", nil)

			profile, err := service.MyProfile(ctx, guest)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.CreatedMatches).To(BeEmpty())
			Expect(profile.JoinedMatches).To(HaveLen(1))
			Expect(profile.JoinedMatches[0].Match.ID).To(Equal(match.ID))
			Expect(profile.JoinedMatches[0].PlayerCount).To(BeEquivalentTo(1))
		})

		It("exige usuário autenticado", func() {
			_, err := service.MyProfile(ctx, nil)
			Expect(err).To(MatchError(errors.ErrUnauthenticated))
		})
	})

	Describe("OtherProfile", func() {
		It("retorna not found para usuário inexistente", func() {
			_, err := service.OtherProfile(ctx, 999)
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("monta o perfil de outro usuário", func() {
			profile, err := service.OtherProfile(ctx, guest.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.User.UserName).To(Equal("convidado"))
			Expect(profile.CreatedMatches).To(BeEmpty())
		})
	})

	Describe("LevelProgress", func() {
		It("calcula níveis anteriores e próximo", func() {
			progress, err := service.LevelProgress(ctx, owner)
			Expect(err).NotTo(HaveOccurred())
			Expect(progress.Current.Level).To(Equal(3))
			Expect(progress.Before).To(HaveLen(2))
			Expect(progress.Next.LevelName).To(Equal("Advanced"))
		})
	})
})
