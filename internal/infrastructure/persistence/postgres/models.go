package postgres

import (
	"time"

	"gorm.io/datatypes"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID            uint     `gorm:"primaryKey"`
	FullName      string   `gorm:"type:varchar(255);not null;index"`
	UserName      string   `gorm:"type:varchar(255);not null"`
	Email         string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	Level         int      `gorm:"not null;default:1"`
	LevelName     string   `gorm:"type:varchar(100)"`
	Latitude      *float64 `gorm:"index:idx_users_location"`
	Longitude     *float64 `gorm:"index:idx_users_location"`
	Role          string   `gorm:"type:varchar(20);not null;index"`
	Status        string   `gorm:"type:varchar(20);not null;index"`
	Image         *string  `gorm:"type:varchar(500)"`
	MatchesPlayed int      `gorm:"not null;default:0"`
	CreatedAt     int64    `gorm:"autoCreateTime"`
	UpdatedAt     int64    `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// PadelMatchModel é o model GORM para partidas
type PadelMatchModel struct {
	ID            uint      `gorm:"primaryKey"`
	CreatorID     uint      `gorm:"not null;index"`
	Creator       UserModel `gorm:"constraint:OnDelete:CASCADE"`
	Latitude      float64   `gorm:"not null"`
	Longitude     float64   `gorm:"not null"`
	MindText      string    `gorm:"type:varchar(120);not null"`
	SelectedLevel string    `gorm:"type:text;not null"`
	Level         int
	LevelName     string `gorm:"type:varchar(100)"`
	CreatedAt     int64  `gorm:"autoCreateTime;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime"`
}

func (PadelMatchModel) TableName() string {
	return "padel_matches"
}

// PadelMatchMemberModel liga uma partida a um usuário (pedido de entrada)
type PadelMatchMemberModel struct {
	ID           uint            `gorm:"primaryKey"`
	PadelMatchID uint            `gorm:"not null;uniqueIndex:idx_match_member"`
	PadelMatch   PadelMatchModel `gorm:"constraint:OnDelete:CASCADE"`
	UserID       uint            `gorm:"not null;uniqueIndex:idx_match_member;index"`
	User         UserModel       `gorm:"constraint:OnDelete:CASCADE"`
	IsApproved   bool            `gorm:"column:is_approved;not null"`
	CreatedAt    int64           `gorm:"autoCreateTime"`
	UpdatedAt    int64           `gorm:"autoUpdateTime"`
}

func (PadelMatchMemberModel) TableName() string {
	return "padel_match_members"
}

// GroupModel é a sala de chat de uma partida (1:1)
type GroupModel struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	MatchID   uint            `gorm:"not null;uniqueIndex"`
	Match     PadelMatchModel `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	CreatorID uint            `gorm:"not null;index"`
	Image     string          `gorm:"type:varchar(255)"`
	CreatedAt int64           `gorm:"autoCreateTime"`
	UpdatedAt int64           `gorm:"autoUpdateTime"`
}

func (GroupModel) TableName() string {
	return "chat_groups"
}

// GroupMemberModel é a tabela de junção grupo <-> usuário
type GroupMemberModel struct {
	ID        uint       `gorm:"primaryKey"`
	GroupID   uint       `gorm:"not null;uniqueIndex:idx_group_member"`
	Group     GroupModel `gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_group_member;index"`
	CreatedAt int64      `gorm:"autoCreateTime"`
}

func (GroupMemberModel) TableName() string {
	return "chat_group_members"
}

// GroupMessageModel é uma mensagem de grupo
type GroupMessageModel struct {
	ID        uint                        `gorm:"primaryKey"`
	GroupID   uint                        `gorm:"not null;index"`
	Group     GroupModel                  `gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint                        `gorm:"not null;index"`
	Message   string                      `gorm:"type:text"`
	Images    datatypes.JSONSlice[string] `gorm:"type:json"`
	IsRead    bool                        `gorm:"not null"`
	CreatedAt int64                       `gorm:"autoCreateTime;index"`
	UpdatedAt int64                       `gorm:"autoUpdateTime"`
}

func (GroupMessageModel) TableName() string {
	return "chat_group_messages"
}

// ClubModel é o clube onde acontece a trail match
type ClubModel struct {
	ID        uint   `gorm:"primaryKey"`
	ClubName  string `gorm:"type:varchar(255);not null"`
	Location  string `gorm:"type:varchar(255)"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (ClubModel) TableName() string {
	return "clubs"
}

// TrailMatchModel é o model GORM de trail matches.
// Voluntários ficam na tabela de junção trail_match_volunteers.
type TrailMatchModel struct {
	ID         uint             `gorm:"primaryKey"`
	UserID     uint             `gorm:"not null;index"`
	User       UserModel        `gorm:"constraint:OnDelete:CASCADE"`
	ClubID     *uint            `gorm:"index"`
	Club       *ClubModel       `gorm:"constraint:OnDelete:SET NULL"`
	Volunteers []VolunteerModel `gorm:"many2many:trail_match_volunteers;joinForeignKey:TrailMatchID;joinReferences:VolunteerID"`
	Date       time.Time        `gorm:"type:date;not null"`
	Time       string           `gorm:"type:varchar(10)"`
	Status     bool             `gorm:"not null"`
	CreatedAt  int64            `gorm:"autoCreateTime"`
	UpdatedAt  int64            `gorm:"autoUpdateTime"`
}

func (TrailMatchModel) TableName() string {
	return "trail_matches"
}

// TrailMatchRequestModel é o pedido de avaliação de nível
type TrailMatchRequestModel struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	User         UserModel `gorm:"constraint:OnDelete:CASCADE"`
	RequestLevel string    `gorm:"type:varchar(100);not null"`
	Status       string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt    int64     `gorm:"autoCreateTime"`
	UpdatedAt    int64     `gorm:"autoUpdateTime"`
}

func (TrailMatchRequestModel) TableName() string {
	return "trail_match_requests"
}

// VolunteerModel é o model GORM de voluntários
type VolunteerModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Email       string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Location    string  `gorm:"type:varchar(255);not null"`
	Level       int     `gorm:"not null"`
	Role        string  `gorm:"type:varchar(255);not null"`
	PhoneNumber *string `gorm:"type:varchar(20)"`
	Image       *string `gorm:"type:varchar(500)"`
	Status      bool    `gorm:"not null;index"`
	CreatedAt   int64   `gorm:"autoCreateTime"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
}

func (VolunteerModel) TableName() string {
	return "volunteers"
}

// QuestionModel é uma pergunta do quiz com alternativas em JSON
type QuestionModel struct {
	ID        uint                                         `gorm:"primaryKey"`
	Question  string                                       `gorm:"type:varchar(255);not null"`
	Options   datatypes.JSONType[entities.QuestionOptions] `gorm:"type:json;not null"`
	Status    bool                                         `gorm:"not null"`
	CreatedAt int64                                        `gorm:"autoCreateTime"`
	UpdatedAt int64                                        `gorm:"autoUpdateTime"`
}

func (QuestionModel) TableName() string {
	return "trail_match_questions"
}

// AnswerModel é a resposta de um usuário a uma pergunta
type AnswerModel struct {
	ID                   uint            `gorm:"primaryKey"`
	TrailMatchQuestionID uint            `gorm:"not null;index"`
	TrailMatchQuestion   QuestionModel   `gorm:"constraint:OnDelete:CASCADE"`
	TrailMatchID         uint            `gorm:"not null;index"`
	TrailMatch           TrailMatchModel `gorm:"constraint:OnDelete:CASCADE"`
	UserID               uint            `gorm:"not null;index"`
	Answer               string          `gorm:"type:varchar(255);not null"`
	Value                int             `gorm:"not null"`
	CreatedAt            int64           `gorm:"autoCreateTime"`
	UpdatedAt            int64           `gorm:"autoUpdateTime"`
}

func (AnswerModel) TableName() string {
	return "answer_trail_match_questions"
}

// NotificationModel segue o formato do canal "database": id uuid e destinatário polimórfico
type NotificationModel struct {
	ID             string            `gorm:"type:varchar(36);primaryKey"`
	NotifiableType string            `gorm:"type:varchar(20);not null;index:idx_notifiable"`
	NotifiableID   uint              `gorm:"not null;index:idx_notifiable"`
	Type           string            `gorm:"type:varchar(50);not null"`
	Title          string            `gorm:"type:varchar(255)"`
	Message        string            `gorm:"type:text"`
	Data           datatypes.JSONMap `gorm:"type:json"`
	ReadAt         *int64
	CreatedAt      int64 `gorm:"autoCreateTime;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// AllModels lista os models na ordem de migração (dependências primeiro)
func AllModels() []any {
	return []any{
		&UserModel{},
		&PadelMatchModel{},
		&PadelMatchMemberModel{},
		&GroupModel{},
		&GroupMemberModel{},
		&GroupMessageModel{},
		&ClubModel{},
		&VolunteerModel{},
		&TrailMatchModel{},
		&TrailMatchRequestModel{},
		&QuestionModel{},
		&AnswerModel{},
		&NotificationModel{},
	}
}
