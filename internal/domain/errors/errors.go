package errors

import "errors"

// Kind é a enumeração fechada de categorias de erro da aplicação.
// O handler HTTP decide o status apenas a partir do Kind.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthenticated
	KindForbidden
	KindBusinessRule
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindBusinessRule:
		return "business_rule"
	default:
		return "internal"
	}
}

// DomainError representa um erro de domínio com contexto adicional.
// Key é um message ID de i18n; Err nunca é exposto ao cliente.
type DomainError struct {
	Kind   Kind
	Key    string
	Fields map[string][]string
	Err    error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Key + ": " + e.Err.Error()
	}
	return e.Key
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is compara pela chave, assim erros derivados de um sentinel (WithCause, WithField)
// continuam casando com errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Key == t.Key
}

// WithCause retorna uma cópia do erro carregando a causa original (apenas para logs)
func (e *DomainError) WithCause(err error) *DomainError {
	cp := *e
	cp.Err = err
	return &cp
}

// WithField retorna uma cópia do erro com uma mensagem associada a um campo
func (e *DomainError) WithField(field, message string) *DomainError {
	cp := *e
	cp.Fields = make(map[string][]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		cp.Fields[k] = v
	}
	cp.Fields[field] = append(cp.Fields[field], message)
	return &cp
}

// New cria um DomainError
func New(kind Kind, key string) *DomainError {
	return &DomainError{Kind: kind, Key: key}
}

// Validation cria um erro de validação com mensagens por campo
func Validation(fields map[string][]string) *DomainError {
	return &DomainError{Kind: KindValidation, Key: ErrValidation.Key, Fields: fields}
}

// Internal embrulha uma falha inesperada
func Internal(err error) *DomainError {
	return ErrInternal.WithCause(err)
}

// KindOf retorna o Kind de qualquer erro; erros desconhecidos são internos
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// As expõe errors.As para quem importa este pacote com o nome errors
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Erros genéricos
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrInternal        = New(KindInternal, "error.internal")
	ErrValidation      = New(KindValidation, "error.validation")
	ErrUnauthenticated = New(KindUnauthenticated, "error.unauthenticated")
	ErrForbidden       = New(KindForbidden, "error.forbidden")
)

// Erros de negócio
var (
	ErrUserNotFound         = New(KindNotFound, "error.user_not_found")
	ErrUserLocationMissing  = New(KindBusinessRule, "error.user_location_missing")
	ErrNoNearbyMembers      = New(KindNotFound, "error.no_nearby_members")
	ErrNoMembersFound       = New(KindNotFound, "error.no_members_found")
	ErrPadelMatchNotFound   = New(KindNotFound, "error.padel_match_not_found")
	ErrLevelNameTooLong     = New(KindBusinessRule, "error.level_name_too_long")
	ErrMatchFull            = New(KindBusinessRule, "error.match_full")
	ErrAlreadyRequested     = New(KindBusinessRule, "error.match_already_requested")
	ErrCreatorCannotJoin    = New(KindBusinessRule, "error.creator_cannot_join")
	ErrJoinRequestNotFound  = New(KindNotFound, "error.join_request_not_found")
	ErrGroupNotFound        = New(KindNotFound, "error.group_not_found")
	ErrNotGroupMember       = New(KindForbidden, "error.not_group_member")
	ErrTrailMatchNotFound   = New(KindNotFound, "error.trail_match_not_found")
	ErrNoTrailMatches       = New(KindNotFound, "error.no_trail_matches")
	ErrTrailRequestNotFound = New(KindNotFound, "error.trail_request_not_found")
	ErrNoAdminAvailable     = New(KindInternal, "error.no_admin_available")
	ErrQuestionNotFound     = New(KindNotFound, "error.question_not_found")
	ErrNoQuestions          = New(KindNotFound, "error.no_questions")
	ErrVolunteerNotFound    = New(KindNotFound, "error.volunteer_not_found")
	ErrNoVolunteers         = New(KindNotFound, "error.no_volunteers")
	ErrNotificationNotFound = New(KindNotFound, "error.notification_not_found")
	ErrInvalidImage         = New(KindValidation, "error.invalid_image")
	ErrRouteNotFound        = New(KindNotFound, "error.route_not_found")
)
