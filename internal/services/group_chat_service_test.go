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

var _ = Describe("GroupChatService", func() {
	var (
		ctx         context.Context
		broadcaster *mocks.MockBroadcaster
		service     *services.GroupChatService
		owner       *entities.User
		friend      *entities.User
		stranger    *entities.User
		group       *entities.Group
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := newTestDB()
		broadcaster = mocks.NewMockBroadcaster(gomock.NewController(GinkgoT()))

		userRepo := postgres.NewUserRepository(db)
		groupRepo := postgres.NewGroupRepository(db)
		matchService := services.NewPadelMatchService(postgres.NewPadelMatchRepository(db), groupRepo, userRepo, postgres.NewUnitOfWork(db), ports.NopLogger{})
		service = services.NewGroupChatService(groupRepo, broadcaster, ports.NopLogger{})

		owner = seedUser(db, &entities.User{FullName: "Dona", UserName: "dona"})
		friend = seedUser(db, &entities.User{FullName: "Amigo", UserName: "amigo"})
		stranger = seedUser(db, &entities.User{FullName: "Estranho", UserName: "estranho"})

		created, err := matchService.CreateMatch(ctx, owner, services.CreateMatchInput{
			MindText: "x", SelectedLevel: "1(Beginner)", MemberIDs: []uint{friend.ID},
		})
		Expect(err).NotTo(HaveOccurred())
		group = created.Group
	})

	It("envia, publica e lista em ordem cronológica", func() {
		topic := ports.GroupTopic(group.ID)
		broadcaster.EXPECT().Publish(topic, services.EventMessageCreated, gomock.Any()).Times(2)

		_, err := service.SendMessage(ctx, owner, group.ID, services.SendMessageInput{Message: "primeira"})
		Expect(err).NotTo(HaveOccurred())
		msg, err := service.SendMessage(ctx, friend, group.ID, services.SendMessageInput{Message: " ", Images: []string{"a.png", " "}})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Images).To(Equal([]string{"a.png"}))

		messages, err := service.ListMessages(ctx, owner, group.ID, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(messages).To(HaveLen(2))
		Expect(messages[0].Message).To(Equal("primeira"))
		Expect(messages[1].UserID).To(Equal(friend.ID))

		latest, err := service.ListMessages(ctx, owner, group.ID, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(latest).To(HaveLen(1))
		Expect(latest[0].ID).To(Equal(msg.ID))
	})

	It("marca como lidas só as mensagens dos outros", func() {
		broadcaster.EXPECT().Publish(gomock.Any(), services.EventMessageCreated, gomock.Any()).Times(2)
		broadcaster.EXPECT().Publish(ports.GroupTopic(group.ID), services.EventMessagesRead, gomock.Any()).Times(1)

		_, err := service.SendMessage(ctx, owner, group.ID, services.SendMessageInput{Message: "oi"})
		Expect(err).NotTo(HaveOccurred())
		_, err = service.SendMessage(ctx, friend, group.ID, services.SendMessageInput{Message: "olá"})
		Expect(err).NotTo(HaveOccurred())

		updated, err := service.MarkRead(ctx, owner, group.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated).To(BeEquivalentTo(1))

		// Nada novo: não publica de novo
		updated, err = service.MarkRead(ctx, owner, group.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated).To(BeZero())
	})

	It("bloqueia quem não é membro", func() {
		_, err := service.SendMessage(ctx, stranger, group.ID, services.SendMessageInput{Message: "oi"})
		Expect(err).To(MatchError(errors.ErrNotGroupMember))
	})

	It("retorna not found para grupo inexistente", func() {
		_, err := service.ListMessages(ctx, owner, 999, 10)
		Expect(err).To(MatchError(errors.ErrGroupNotFound))
	})

	It("rejeita mensagem vazia", func() {
		_, err := service.SendMessage(ctx, owner, group.ID, services.SendMessageInput{Message: "  "})
		Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
	})
})
