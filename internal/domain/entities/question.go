package entities

import "time"

// OptionKey identifica uma das quatro alternativas fixas
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"
)

// OptionKeys lista as alternativas na ordem posicional
var OptionKeys = []OptionKey{OptionA, OptionB, OptionC, OptionD}

// Option é uma alternativa com seu valor posicional (1-4)
type Option struct {
	Value  int    `json:"value"`
	Option string `json:"option"`
}

// QuestionOptions é o objeto JSON persistido, chaveado de "A" a "D"
type QuestionOptions struct {
	A Option `json:"A"`
	B Option `json:"B"`
	C Option `json:"C"`
	D Option `json:"D"`
}

// NewQuestionOptions monta as alternativas atribuindo os valores 1..4
func NewQuestionOptions(a, b, c, d string) QuestionOptions {
	return QuestionOptions{
		A: Option{Value: 1, Option: a},
		B: Option{Value: 2, Option: b},
		C: Option{Value: 3, Option: c},
		D: Option{Value: 4, Option: d},
	}
}

// WithText troca o texto de uma alternativa mantendo o valor
func (o QuestionOptions) WithText(key OptionKey, text string) QuestionOptions {
	switch key {
	case OptionA:
		o.A.Option = text
	case OptionB:
		o.B.Option = text
	case OptionC:
		o.C.Option = text
	case OptionD:
		o.D.Option = text
	}
	return o
}

// Get retorna a alternativa da chave informada
func (o QuestionOptions) Get(key OptionKey) Option {
	switch key {
	case OptionB:
		return o.B
	case OptionC:
		return o.C
	case OptionD:
		return o.D
	default:
		return o.A
	}
}

// TrailMatchQuestion é uma pergunta do quiz
type TrailMatchQuestion struct {
	ID        uint
	Question  string
	Options   QuestionOptions
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrailMatchAnswer é a resposta de um usuário a uma pergunta
type TrailMatchAnswer struct {
	ID                   uint
	TrailMatchQuestionID uint
	TrailMatchID         uint
	UserID               uint
	Answer               string
	Value                int
	CreatedAt            time.Time
}
