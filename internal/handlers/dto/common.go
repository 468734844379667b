package dto

import (
	errs "errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// DateTimeLayout é o formato "Y-m-d H:i:s" usado nas respostas
const DateTimeLayout = services.DateTimeLayout

// Response é o envelope de todas as respostas da API
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Message string      `json:"message"`
}

// Success responde com o envelope de sucesso e a mensagem traduzida
func Success(c *gin.Context, status int, messageKey string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Data:    data,
		Message: T(c, messageKey),
	})
}

// StatusFor traduz o Kind do erro em status HTTP
func StatusFor(kind errors.Kind) int {
	switch kind {
	case errors.KindValidation:
		return http.StatusUnprocessableEntity
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindUnauthenticated:
		return http.StatusUnauthorized
	case errors.KindForbidden:
		return http.StatusForbidden
	case errors.KindBusinessRule:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error responde com o envelope de erro. Apenas a chave i18n chega ao cliente;
// a causa fica em c.Errors para o log da requisição.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	render(c, err)
}

func render(c *gin.Context, err error) {
	var de *errors.DomainError
	if !errors.As(err, &de) {
		de = errors.Internal(err)
	}

	// Erros internos nunca vazam detalhes, nem a chave específica
	key := de.Key
	if de.Kind == errors.KindInternal {
		key = errors.ErrInternal.Key
	}

	resp := Response{
		Success: false,
		Message: T(c, key),
	}
	if len(de.Fields) > 0 && de.Kind != errors.KindInternal {
		resp.Errors = translateFields(c, de.Fields)
	}

	c.AbortWithStatusJSON(StatusFor(de.Kind), resp)
}

// ErrorHandler renderiza erros registrados por middlewares que abortaram sem responder
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		render(c, c.Errors.Last().Err)
	}
}

// BindingError converte erros de binding/validação do Gin em erro de validação por campo
func BindingError(c *gin.Context, err error) {
	Error(c, ValidationFromBinding(err))
}

// ValidationFromBinding monta o DomainError de validação a partir do erro do validator
func ValidationFromBinding(err error) *errors.DomainError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return errors.ErrValidation.WithField("body", "validation.invalid").WithCause(err)
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := fieldPath(fe)
		fields[name] = append(fields[name], validationKey(fe)+paramSeparator+fe.Param())
	}
	return errors.Validation(fields).WithCause(err)
}

// paramSeparator separa a chave i18n do parâmetro da regra dentro de Fields
const paramSeparator = "|"

var knownTags = map[string]struct{}{
	"required": {}, "email": {}, "max": {}, "min": {}, "gte": {}, "lte": {},
	"oneof": {}, "latitude": {}, "longitude": {}, "gt": {},
}

func validationKey(fe validator.FieldError) string {
	tag := fe.Tag()
	if tag == "required_without" || tag == "required_with" {
		tag = "required"
	}
	if _, ok := knownTags[tag]; ok {
		return "validation." + tag
	}
	return "validation.invalid"
}

// fieldPath usa os nomes json ("answers[0].value" vira "answers.0.value")
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx != -1 {
		ns = ns[idx+1:]
	}
	ns = strings.NewReplacer("[", ".", "]", "").Replace(ns)
	return ns
}

func translateFields(c *gin.Context, fields map[string][]string) map[string][]string {
	out := make(map[string][]string, len(fields))
	for field, keys := range fields {
		msgs := make([]string, 0, len(keys))
		for _, key := range keys {
			key, param, _ := strings.Cut(key, paramSeparator)
			msgs = append(msgs, T(c, key, map[string]interface{}{
				"Field": strings.ReplaceAll(field, "_", " "),
				"Param": param,
			}))
		}
		out[field] = msgs
	}
	return out
}

var registerOnce sync.Once

// RegisterValidatorNames faz o validator do Gin reportar os campos pelo nome json/form
func RegisterValidatorNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

// NotFoundProblem responde rotas inexistentes com um documento RFC 7807
func NotFoundProblem(c *gin.Context) {
	problem := problems.NewDetailedProblem(http.StatusNotFound, T(c, errors.ErrRouteNotFound.Key))
	problem.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusNotFound, problem)
}

// BaseURL retorna o endereço público da API guardado no contexto
func BaseURL(c *gin.Context) string {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return baseURL
}

// ProfileImageURL monta a URL absoluta da foto de perfil, ou nil sem foto
func ProfileImageURL(c *gin.Context, image *string) *string {
	if image == nil || *image == "" {
		return nil
	}
	url := BaseURL(c) + "/Profile/" + strings.TrimPrefix(*image, "/")
	return &url
}
