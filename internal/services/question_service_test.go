package services_test

import (
	"context"
	stderrors "errors"
	"time"

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

// flakyQuestionRepo falha a partir da resposta de número failAt
type flakyQuestionRepo struct {
	repositories.QuestionRepository
	calls  int
	failAt int
}

func (r *flakyQuestionRepo) CreateAnswer(ctx context.Context, a *entities.TrailMatchAnswer) error {
	r.calls++
	if r.calls >= r.failAt {
		return stderrors.New("disk full")
	}
	return r.QuestionRepository.CreateAnswer(ctx, a)
}

var _ = Describe("QuestionService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		repo    repositories.QuestionRepository
		service *services.QuestionService
	)

	countAnswers := func() int64 {
		var n int64
		Expect(db.Table("answer_trail_match_questions").Count(&n).Error).To(Succeed())
		return n
	}

	create := func(text string) *entities.TrailMatchQuestion {
		q, err := service.Create(ctx, services.CreateQuestionInput{
			Question: text, A: "Nunca", B: "Às vezes", C: "Frequentemente", D: "Sempre",
		})
		Expect(err).NotTo(HaveOccurred())
		return q
	}

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		repo = postgres.NewQuestionRepository(db)
		service = services.NewQuestionService(repo, postgres.NewUnitOfWork(db), ports.NopLogger{})
	})

	Describe("CRUD", func() {
		It("cria com valores de 1 a 4 e status ativo", func() {
			q := create("  Com que frequência você joga?  ")
			Expect(q.Question).To(Equal("Com que frequência você joga?"))
			Expect(q.Status).To(BeTrue())
			Expect(q.Options.A).To(Equal(entities.Option{Value: 1, Option: "Nunca"}))
			Expect(q.Options.D).To(Equal(entities.Option{Value: 4, Option: "Sempre"}))
		})

		It("atualiza apenas os campos enviados", func() {
			q := create("Pergunta")

			updated, err := service.Update(ctx, q.ID, services.UpdateQuestionInput{
				Options: map[entities.OptionKey]string{entities.OptionB: "Raramente"},
				Status:  ptr(false),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Question).To(Equal("Pergunta"))
			Expect(updated.Status).To(BeFalse())

			stored, err := repo.FindByID(ctx, q.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Options.A.Option).To(Equal("Nunca"))
			Expect(stored.Options.B).To(Equal(entities.Option{Value: 2, Option: "Raramente"}))
			Expect(stored.Status).To(BeFalse())
		})

		It("lista e remove", func() {
			first := create("Primeira")
			create("Segunda")

			list, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))

			Expect(service.Delete(ctx, first.ID)).To(Succeed())
			Expect(service.Delete(ctx, first.ID)).To(MatchError(errors.ErrQuestionNotFound))
		})

		It("retorna not found com o quiz vazio", func() {
			_, err := service.List(ctx)
			Expect(err).To(MatchError(errors.ErrNoQuestions))
		})

		It("retorna not found ao atualizar pergunta inexistente", func() {
			_, err := service.Update(ctx, 123, services.UpdateQuestionInput{})
			Expect(err).To(MatchError(errors.ErrQuestionNotFound))
		})
	})

	Describe("SubmitAnswers", func() {
		var (
			user *entities.User
			tm   *entities.TrailMatch
			q1   *entities.TrailMatchQuestion
			q2   *entities.TrailMatchQuestion
		)

		BeforeEach(func() {
			user = seedUser(db, &entities.User{FullName: "Lia", UserName: "lia"})
			tm = seedTrailMatch(db, user.ID, time.Now().AddDate(0, 0, 1), true)
			q1 = create("Um")
			q2 = create("Dois")
		})

		It("grava o lote completo", func() {
			stored, err := service.SubmitAnswers(ctx, user, tm.ID, []services.AnswerInput{
				{QuestionID: q1.ID, Answer: "A", Value: 1},
				{QuestionID: q2.ID, Answer: "C", Value: 3},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(2))
			Expect(stored[1].UserID).To(Equal(user.ID))
			Expect(countAnswers()).To(BeEquivalentTo(2))
		})

		It("não grava nada quando uma resposta falha", func() {
			flaky := &flakyQuestionRepo{QuestionRepository: repo, failAt: 2}
			service = services.NewQuestionService(flaky, postgres.NewUnitOfWork(db), ports.NopLogger{})

			_, err := service.SubmitAnswers(ctx, user, tm.ID, []services.AnswerInput{
				{QuestionID: q1.ID, Answer: "A", Value: 1},
				{QuestionID: q2.ID, Answer: "B", Value: 2},
			})
			Expect(errors.KindOf(err)).To(Equal(errors.KindInternal))
			Expect(flaky.calls).To(Equal(2))
			Expect(countAnswers()).To(BeZero())
		})

		It("rejeita pergunta inexistente antes de gravar", func() {
			_, err := service.SubmitAnswers(ctx, user, tm.ID, []services.AnswerInput{
				{QuestionID: q1.ID, Answer: "A", Value: 1},
				{QuestionID: 999, Answer: "B", Value: 2},
			})

			var de *errors.DomainError
			Expect(stderrors.As(err, &de)).To(BeTrue())
			Expect(de.Kind).To(Equal(errors.KindValidation))
			Expect(de.Fields).To(HaveKey("answers"))
			Expect(countAnswers()).To(BeZero())
		})

		It("rejeita trail match inexistente", func() {
			_, err := service.SubmitAnswers(ctx, user, 999, []services.AnswerInput{
				{QuestionID: q1.ID, Answer: "A", Value: 1},
			})

			var de *errors.DomainError
			Expect(stderrors.As(err, &de)).To(BeTrue())
			Expect(de.Fields).To(HaveKey("trail_match_id"))
		})

		It("rejeita lote vazio", func() {
			_, err := service.SubmitAnswers(ctx, user, tm.ID, nil)
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})
	})
})
