package services_test

import (
	"context"
	stderrors "errors"
	"time"

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

var _ = Describe("TrailMatchService", func() {
	var (
		ctx       context.Context
		db        *gorm.DB
		notifier  *mocks.MockNotifier
		trailRepo interface {
			FindByID(context.Context, uint) (*entities.TrailMatch, error)
		}
		service *services.TrailMatchService
		user    *entities.User
		today   time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		notifier = mocks.NewMockNotifier(gomock.NewController(GinkgoT()))

		repo := postgres.NewTrailMatchRepository(db)
		trailRepo = repo
		today = time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
		service = services.NewTrailMatchService(repo, postgres.NewUserRepository(db), notifier, ports.NopLogger{}).
			WithClock(func() time.Time { return today.Add(12 * time.Hour) })

		user = seedUser(db, &entities.User{FullName: "Rita Alves", UserName: "rita"})
	})

	Describe("CheckStatus", func() {
		It("grava false quando a data já passou", func() {
			tm := seedTrailMatch(db, user.ID, today.AddDate(0, 0, -1), true)

			status, err := service.CheckStatus(ctx, tm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(BeFalse())

			stored, err := trailRepo.FindByID(ctx, tm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(BeFalse())
		})

		It("mantém o status de trail matches futuras", func() {
			tm := seedTrailMatch(db, user.ID, today.AddDate(0, 0, 3), true)

			status, err := service.CheckStatus(ctx, tm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(BeTrue())
		})

		It("retorna not found para id inexistente", func() {
			_, err := service.CheckStatus(ctx, 77)
			Expect(err).To(MatchError(errors.ErrTrailMatchNotFound))
		})
	})

	Describe("Accept e Deny", func() {
		It("atualiza o status e avisa usuário e voluntários", func() {
			v1 := seedVolunteer(db, "vera")
			v2 := seedVolunteer(db, "vitor")
			tm := seedTrailMatch(db, user.ID, today.AddDate(0, 0, 2), false, v1.ID, v2.ID)

			var sent []*entities.Notification
			notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(3).
				DoAndReturn(func(_ context.Context, n *entities.Notification) error {
					sent = append(sent, n)
					return nil
				})

			Expect(service.Accept(ctx, tm.ID)).To(Succeed())

			stored, err := trailRepo.FindByID(ctx, tm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(BeTrue())

			Expect(sent[0].Recipient).To(Equal(entities.Recipient{Type: entities.NotifiableUser, ID: user.ID}))
			Expect(sent[1].Recipient.Type).To(Equal(entities.NotifiableVolunteer))
			Expect(sent[2].Recipient.Type).To(Equal(entities.NotifiableVolunteer))
			Expect([]uint{sent[1].Recipient.ID, sent[2].Recipient.ID}).To(ConsistOf(v1.ID, v2.ID))
			Expect(sent[0].Title).To(Equal("Trail Match Accepted"))
			Expect(sent[0].Message).To(Equal("Rita Alves has accepted the trail match."))
			Expect(sent[0].Data).To(HaveKeyWithValue("status", true))
		})

		It("falha de notificação não desfaz a recusa", func() {
			tm := seedTrailMatch(db, user.ID, today.AddDate(0, 0, 2), true)

			notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(stderrors.New("smtp down"))

			Expect(service.Deny(ctx, tm.ID)).To(Succeed())

			stored, err := trailRepo.FindByID(ctx, tm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(BeFalse())
		})

		It("retorna not found sem notificar", func() {
			Expect(service.Accept(ctx, 404)).To(MatchError(errors.ErrTrailMatchNotFound))
		})
	})

	Describe("Details", func() {
		It("lista as trail matches com clube e voluntários", func() {
			v := seedVolunteer(db, "vera")
			seedTrailMatch(db, user.ID, today, true, v.ID)

			matches, err := service.Details(ctx, user)
			Expect(err).NotTo(HaveOccurred())
			Expect(matches).To(HaveLen(1))
			Expect(matches[0].Club).NotTo(BeNil())
			Expect(matches[0].Club.ClubName).To(Equal("Padel Club"))
			Expect(matches[0].Volunteers).To(HaveLen(1))
			Expect(matches[0].User.ID).To(Equal(user.ID))
		})

		It("retorna not found sem trail matches", func() {
			_, err := service.Details(ctx, user)
			Expect(err).To(MatchError(errors.ErrNoTrailMatches))
		})
	})

	Describe("SubmitRequest e LatestRequest", func() {
		It("não grava nada sem administrador", func() {
			_, err := service.SubmitRequest(ctx, user, "4(Advanced)")
			Expect(err).To(MatchError(errors.ErrNoAdminAvailable))

			var count int64
			Expect(db.Table("trail_match_requests").Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("grava o pedido pendente e avisa o administrador", func() {
			admin := seedUser(db, &entities.User{FullName: "Admin", UserName: "admin", Role: entities.RoleAdmin})

			notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n *entities.Notification) error {
					Expect(n.Recipient.ID).To(Equal(admin.ID))
					Expect(n.Type).To(Equal(entities.NotificationTrailMatchRequest))
					Expect(n.Data).To(HaveKeyWithValue("request_level", "4(Advanced)"))
					return nil
				})

			req, err := service.SubmitRequest(ctx, user, " 4(Advanced) ")
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Status).To(Equal(entities.TrailRequestStatusPending))

			latest, err := service.LatestRequest(ctx, user)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.ID).To(Equal(req.ID))
			Expect(latest.RequestLevel).To(Equal("4(Advanced)"))
		})

		It("exige o nível pedido", func() {
			_, err := service.SubmitRequest(ctx, user, "  ")
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("retorna not found sem pedidos", func() {
			_, err := service.LatestRequest(ctx, user)
			Expect(err).To(MatchError(errors.ErrTrailRequestNotFound))
		})
	})
})
