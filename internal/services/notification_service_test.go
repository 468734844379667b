package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports/mocks"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

var _ = Describe("NotificationService", func() {
	var (
		ctx         context.Context
		broadcaster *mocks.MockBroadcaster
		service     *services.NotificationService
		user        *entities.User
		other       *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := newTestDB()
		broadcaster = mocks.NewMockBroadcaster(gomock.NewController(GinkgoT()))
		service = services.NewNotificationService(postgres.NewNotificationRepository(db), broadcaster, ports.NopLogger{})

		user = seedUser(db, &entities.User{FullName: "Nina", UserName: "nina"})
		other = seedUser(db, &entities.User{FullName: "Otto", UserName: "otto"})
	})

	notifyUser := func(id uint, title string) *entities.Notification {
		n := &entities.Notification{
			Recipient: entities.Recipient{Type: entities.NotifiableUser, ID: id},
			Type:      entities.NotificationTrailMatchStatus,
			Title:     title,
			Message:   "mensagem",
		}
		Expect(service.Notify(ctx, n)).To(Succeed())
		return n
	}

	It("grava e publica no canal do destinatário", func() {
		broadcaster.EXPECT().
			Publish(ports.RecipientTopic("user", user.ID), services.EventNotificationCreated, gomock.Any()).
			Do(func(_ string, _ string, payload any) {
				event, ok := payload.(services.NotificationEvent)
				Expect(ok).To(BeTrue())
				Expect(event.Title).To(Equal("Olá"))
				Expect(event.Data).NotTo(BeNil())
			})

		n := notifyUser(user.ID, "Olá")
		Expect(n.ID).To(HaveLen(36))

		items, err := service.List(ctx, user)
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(1))
		Expect(items[0].ID).To(Equal(n.ID))
		Expect(items[0].IsRead()).To(BeFalse())
	})

	It("marca como lida apenas notificações do próprio usuário", func() {
		broadcaster.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
		n := notifyUser(user.ID, "Sua")

		Expect(service.MarkRead(ctx, other, n.ID)).To(MatchError(errors.ErrNotificationNotFound))
		Expect(service.MarkRead(ctx, user, n.ID)).To(Succeed())
		// Marcar de novo não é erro
		Expect(service.MarkRead(ctx, user, n.ID)).To(Succeed())

		items, err := service.List(ctx, user)
		Expect(err).NotTo(HaveOccurred())
		Expect(items[0].IsRead()).To(BeTrue())

		others, err := service.List(ctx, other)
		Expect(err).NotTo(HaveOccurred())
		Expect(others).To(BeEmpty())
	})

	It("id inválido vira not found", func() {
		Expect(service.MarkRead(ctx, user, "nao-e-uuid")).To(MatchError(errors.ErrNotificationNotFound))
	})

	It("exige usuário autenticado", func() {
		_, err := service.List(ctx, nil)
		Expect(err).To(MatchError(errors.ErrUnauthenticated))
	})
})
