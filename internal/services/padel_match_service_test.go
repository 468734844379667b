package services_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/repositories"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// failingGroupRepo falha ao anexar membros para forçar o rollback
type failingGroupRepo struct {
	repositories.GroupRepository
}

func (failingGroupRepo) AttachMembers(context.Context, uint, []uint) error {
	return stderrors.New("attach failed")
}

var _ = Describe("PadelMatchService", func() {
	var (
		ctx       context.Context
		db        *gorm.DB
		groupRepo repositories.GroupRepository
		service   *services.PadelMatchService
		creator   *entities.User
		ana       *entities.User
		bruno     *entities.User
	)

	newService := func(groups repositories.GroupRepository) *services.PadelMatchService {
		return services.NewPadelMatchService(
			postgres.NewPadelMatchRepository(db),
			groups,
			postgres.NewUserRepository(db),
			postgres.NewUnitOfWork(db),
			ports.NopLogger{},
		)
	}

	countRows := func(table string) int64 {
		var n int64
		Expect(db.Table(table).Count(&n).Error).To(Succeed())
		return n
	}

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		groupRepo = postgres.NewGroupRepository(db)
		service = newService(groupRepo)

		creator = seedUser(db, &entities.User{FullName: "Carla Dias", UserName: "carla"})
		ana = seedUser(db, &entities.User{FullName: "Ana Lima", UserName: "ana"})
		bruno = seedUser(db, &entities.User{FullName: "Bruno Reis", UserName: "bruno"})
	})

	Describe("CreateMatch", func() {
		input := func(members ...uint) services.CreateMatchInput {
			return services.CreateMatchInput{
				Latitude:      38.72,
				Longitude:     -9.14,
				MindText:      "Jogo amistoso",
				SelectedLevel: "3(Upper-Intermediate)",
				MemberIDs:     members,
			}
		}

		It("cria partida e grupo com convidados e criador", func() {
			created, err := service.CreateMatch(ctx, creator, input(ana.ID, bruno.ID, ana.ID))
			Expect(err).NotTo(HaveOccurred())

			Expect(created.Match.ID).NotTo(BeZero())
			Expect(created.Match.Level).To(Equal(3))
			Expect(created.Match.LevelName).To(Equal("Upper-Intermediate"))
			Expect(created.Group.Name).To(Equal("carla"))
			Expect(created.Group.Image).To(Equal(entities.DefaultGroupImage))
			Expect(created.MemberIDs).To(Equal([]uint{ana.ID, bruno.ID, creator.ID}))

			count, err := groupRepo.CountMembers(ctx, created.Group.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeEquivalentTo(3))
		})

		It("rejeita nome de nível longo demais", func() {
			in := input()
			in.SelectedLevel = "2(" + strings.Repeat("x", entities.MaxLevelNameLength+1) + ")"
			_, err := service.CreateMatch(ctx, creator, in)
			Expect(err).To(MatchError(errors.ErrLevelNameTooLong))
			Expect(countRows("padel_matches")).To(BeZero())
		})

		It("rejeita nível fora do formato", func() {
			in := input()
			in.SelectedLevel = "avançado"
			_, err := service.CreateMatch(ctx, creator, in)
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("rejeita convidados inexistentes", func() {
			_, err := service.CreateMatch(ctx, creator, input(ana.ID, 9999))

			var de *errors.DomainError
			Expect(stderrors.As(err, &de)).To(BeTrue())
			Expect(de.Fields).To(HaveKey("members"))
			Expect(countRows("padel_matches")).To(BeZero())
		})

		It("desfaz partida e grupo quando anexar membros falha", func() {
			service = newService(failingGroupRepo{groupRepo})

			_, err := service.CreateMatch(ctx, creator, input(ana.ID))
			Expect(errors.KindOf(err)).To(Equal(errors.KindInternal))
			Expect(countRows("padel_matches")).To(BeZero())
			Expect(countRows("chat_groups")).To(BeZero())
		})

		It("exige usuário autenticado", func() {
			_, err := service.CreateMatch(ctx, nil, input())
			Expect(err).To(MatchError(errors.ErrUnauthenticated))
		})
	})

	Describe("DeleteMatch", func() {
		It("remove a partida e o grupo em cascata", func() {
			created, err := service.CreateMatch(ctx, creator, services.CreateMatchInput{
				SelectedLevel: "1(Beginner)", MindText: "x", MemberIDs: []uint{ana.ID},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteMatch(ctx, created.Match.ID)).To(Succeed())
			Expect(countRows("padel_matches")).To(BeZero())
			Expect(countRows("chat_groups")).To(BeZero())
			Expect(countRows("chat_group_members")).To(BeZero())
		})

		It("retorna not found para partida inexistente", func() {
			Expect(service.DeleteMatch(ctx, 42)).To(MatchError(errors.ErrPadelMatchNotFound))
		})
	})

	Describe("JoinMatch e ApproveMember", func() {
		var match *entities.PadelMatch

		BeforeEach(func() {
			created, err := service.CreateMatch(ctx, creator, services.CreateMatchInput{
				SelectedLevel: "2(Lower-Intermediate)", MindText: "x",
			})
			Expect(err).NotTo(HaveOccurred())
			match = created.Match
		})

		It("cria pedido pendente e impede duplicado", func() {
			member, err := service.JoinMatch(ctx, ana, match.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.IsApproved).To(BeFalse())

			_, err = service.JoinMatch(ctx, ana, match.ID)
			Expect(err).To(MatchError(errors.ErrAlreadyRequested))
		})

		It("impede o criador de pedir entrada", func() {
			_, err := service.JoinMatch(ctx, creator, match.ID)
			Expect(err).To(MatchError(errors.ErrCreatorCannotJoin))
		})

		It("aprova e adiciona ao grupo", func() {
			_, err := service.JoinMatch(ctx, ana, match.ID)
			Expect(err).NotTo(HaveOccurred())

			member, err := service.ApproveMember(ctx, creator, match.ID, ana.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.IsApproved).To(BeTrue())

			group, err := groupRepo.FindByMatchID(ctx, match.ID)
			Expect(err).NotTo(HaveOccurred())
			isMember, err := groupRepo.IsMember(ctx, group.ID, ana.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(isMember).To(BeTrue())
		})

		It("só o criador aprova", func() {
			_, err := service.JoinMatch(ctx, ana, match.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ApproveMember(ctx, bruno, match.ID, ana.ID)
			Expect(err).To(MatchError(errors.ErrForbidden))
		})

		It("retorna not found sem pedido", func() {
			_, err := service.ApproveMember(ctx, creator, match.ID, bruno.ID)
			Expect(err).To(MatchError(errors.ErrJoinRequestNotFound))
		})

		It("recusa quando o grupo já tem 8 jogadores", func() {
			group, err := groupRepo.FindByMatchID(ctx, match.ID)
			Expect(err).NotTo(HaveOccurred())

			ids := make([]uint, 0, entities.JoinablePlayerLimit)
			for i := 0; i < entities.JoinablePlayerLimit-1; i++ {
				u := seedUser(db, &entities.User{FullName: "Extra", UserName: fmt.Sprintf("extra%d", i)})
				ids = append(ids, u.ID)
			}
			Expect(groupRepo.AttachMembers(ctx, group.ID, ids)).To(Succeed())

			_, err = service.JoinMatch(ctx, ana, match.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ApproveMember(ctx, creator, match.ID, ana.ID)
			Expect(err).To(MatchError(errors.ErrMatchFull))

			pending, err := postgres.NewPadelMatchRepository(db).FindMember(ctx, match.ID, ana.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending.IsApproved).To(BeFalse())
		})
	})
})
