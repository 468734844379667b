package services_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports/mocks"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/storage"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func pngUpload(name string) *services.ImageUpload {
	return &services.ImageUpload{Filename: name, Size: int64(len(pngBytes)), Content: bytes.NewReader(pngBytes)}
}

var _ = Describe("VolunteerService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		root    string
		service *services.VolunteerService
	)

	input := func(email string) services.VolunteerInput {
		return services.VolunteerInput{
			Name:     " Vera Costa ",
			Email:    email,
			Location: "Porto",
			Level:    4,
			Role:     "coach",
		}
	}

	fileExists := func(key string) bool {
		_, err := os.Stat(filepath.Join(root, filepath.FromSlash(key)))
		return err == nil
	}

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		root = GinkgoT().TempDir()

		local, err := storage.NewLocalStorage(root, "http://cdn.test")
		Expect(err).NotTo(HaveOccurred())
		service = services.NewVolunteerService(postgres.NewVolunteerRepository(db), local, ports.NopLogger{})
	})

	Describe("Create", func() {
		It("normaliza os campos e grava a imagem", func() {
			v, err := service.Create(ctx, input("Vera@Padel.com"), pngUpload("foto.PNG"))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Name).To(Equal("Vera Costa"))
			Expect(v.Email).To(Equal("vera@padel.com"))
			Expect(v.Status).To(BeTrue())
			Expect(v.Image).NotTo(BeNil())
			Expect(*v.Image).To(HavePrefix(services.VolunteerImageDir + "/"))
			Expect(*v.Image).To(HaveSuffix(".png"))
			Expect(fileExists(*v.Image)).To(BeTrue())
			Expect(*service.ImageURL(v)).To(Equal("http://cdn.test/" + *v.Image))
		})

		It("rejeita email duplicado", func() {
			_, err := service.Create(ctx, input("vera@padel.com"), nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(ctx, input("VERA@padel.com"), nil)
			var de *errors.DomainError
			Expect(stderrors.As(err, &de)).To(BeTrue())
			Expect(de.Fields["email"]).To(ContainElement("validation.unique"))
		})

		It("rejeita nível fora de 1..5", func() {
			in := input("nivel@padel.com")
			in.Level = 6
			_, err := service.Create(ctx, in, nil)
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("rejeita extensão não permitida", func() {
			_, err := service.Create(ctx, input("gif@padel.com"), pngUpload("foto.gif"))
			Expect(err).To(MatchError(errors.ErrInvalidImage))
		})

		It("rejeita conteúdo que não corresponde à extensão", func() {
			fake := &services.ImageUpload{Filename: "foto.jpg", Size: 5, Content: strings.NewReader("hello")}
			_, err := service.Create(ctx, input("fake@padel.com"), fake)
			Expect(err).To(MatchError(errors.ErrInvalidImage))
		})

		It("rejeita imagens maiores que 2 MB", func() {
			big := &services.ImageUpload{Filename: "foto.png", Size: services.MaxImageSize + 1, Content: bytes.NewReader(pngBytes)}
			_, err := service.Create(ctx, input("big@padel.com"), big)

			var de *errors.DomainError
			Expect(stderrors.As(err, &de)).To(BeTrue())
			Expect(de.Fields["image"]).To(ContainElement("validation.image_size"))
		})
	})

	Describe("Update", func() {
		It("substitui a imagem e apaga a anterior", func() {
			v, err := service.Create(ctx, input("troca@padel.com"), pngUpload("a.png"))
			Expect(err).NotTo(HaveOccurred())
			old := *v.Image

			updated, err := service.Update(ctx, v.ID, services.VolunteerUpdate{Location: ptr("Braga")}, pngUpload("b.png"))
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Location).To(Equal("Braga"))
			Expect(*updated.Image).NotTo(Equal(old))
			Expect(fileExists(*updated.Image)).To(BeTrue())
			Expect(fileExists(old)).To(BeFalse())
		})

		It("mantém o próprio email sem acusar duplicado", func() {
			v, err := service.Create(ctx, input("mesmo@padel.com"), nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Update(ctx, v.ID, services.VolunteerUpdate{Email: ptr("MESMO@padel.com"), Status: ptr(false)}, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("troca apenas o role", func() {
			v, err := service.Create(ctx, input("role@padel.com"), nil)
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateRole(ctx, v.ID, "referee")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal("referee"))
			Expect(updated.Name).To(Equal("Vera Costa"))

			_, err = service.UpdateRole(ctx, v.ID, " ")
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})

		It("retorna not found para voluntário inexistente", func() {
			_, err := service.Update(ctx, 55, services.VolunteerUpdate{}, nil)
			Expect(err).To(MatchError(errors.ErrVolunteerNotFound))
		})
	})

	Describe("List", func() {
		It("pagina 10 voluntários ativos por vez", func() {
			for i := 0; i < services.VolunteerPageSize+2; i++ {
				seedVolunteer(db, "v"+string(rune('a'+i)))
			}
			inactive := seedVolunteer(db, "inativo")
			_, err := service.Update(ctx, inactive.ID, services.VolunteerUpdate{Status: ptr(false)}, nil)
			Expect(err).NotTo(HaveOccurred())

			page, err := service.List(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Volunteers).To(HaveLen(services.VolunteerPageSize))
			Expect(page.Total).To(BeEquivalentTo(services.VolunteerPageSize + 2))
			Expect(page.TotalPages).To(Equal(2))

			_, err = service.List(ctx, 3)
			Expect(err).To(MatchError(errors.ErrNoVolunteers))
		})
	})

	Describe("Delete", func() {
		It("remove o voluntário e a imagem", func() {
			v, err := service.Create(ctx, input("sai@padel.com"), pngUpload("a.png"))
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, v.ID)).To(Succeed())
			Expect(fileExists(*v.Image)).To(BeFalse())
			Expect(service.Delete(ctx, v.ID)).To(MatchError(errors.ErrVolunteerNotFound))
		})

		It("sem imagem não toca no storage", func() {
			files := mocks.NewMockFileStorage(gomock.NewController(GinkgoT()))
			repo := postgres.NewVolunteerRepository(db)
			service = services.NewVolunteerService(repo, files, ports.NopLogger{})

			v := &entities.Volunteer{Name: "Sem Foto", Email: "semfoto@padel.com", Location: "Lisboa", Level: 2, Role: "coach", Status: true}
			Expect(repo.Create(ctx, v)).To(Succeed())

			Expect(service.Delete(ctx, v.ID)).To(Succeed())
			found, err := repo.FindByID(ctx, v.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("falha ao apagar o arquivo não impede a remoção", func() {
			files := mocks.NewMockFileStorage(gomock.NewController(GinkgoT()))
			repo := postgres.NewVolunteerRepository(db)
			service = services.NewVolunteerService(repo, files, ports.NopLogger{})

			image := "uploads/volunteers/antiga.png"
			v := &entities.Volunteer{Name: "X", Email: "x@padel.com", Location: "Faro", Level: 1, Role: "coach", Image: &image, Status: true}
			Expect(repo.Create(ctx, v)).To(Succeed())

			files.EXPECT().Delete(gomock.Any(), image).Return(stderrors.New("permission denied"))

			Expect(service.Delete(ctx, v.ID)).To(Succeed())
			found, err := repo.FindByID(ctx, v.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})
})
