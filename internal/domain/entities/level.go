package entities

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinLevel = 1
	MaxLevel = 5

	// MaxLevelNameLength é medido em bytes
	MaxLevelNameLength = 100
)

var (
	ErrInvalidSelectedLevel = errors.New("selected level must look like N(Name)")
	ErrLevelNameTooLong     = errors.New("level name is too long")
)

var selectedLevelPattern = regexp.MustCompile(`(\d+)\((.*?)\)`)

// LevelNames é a tabela fixa de nomes por nível
var LevelNames = map[int]string{
	1: "Beginner",
	2: "Lower-Intermediate",
	3: "Upper-Intermediate",
	4: "Advanced",
	5: "Professional",
}

// LevelDescriptor é um par nível/nome
type LevelDescriptor struct {
	Level     int
	LevelName string
}

// DescribeLevel retorna o descritor de um nível, "Unknown" fora da tabela
func DescribeLevel(level int) LevelDescriptor {
	name, ok := LevelNames[level]
	if !ok {
		name = "Unknown"
	}
	return LevelDescriptor{Level: level, LevelName: name}
}

// ParseSelectedLevel decompõe "3(Upper-Intermediate)" em 3 e "Upper-Intermediate"
func ParseSelectedLevel(selected string) (int, string, error) {
	m := selectedLevelPattern.FindStringSubmatch(selected)
	if m == nil {
		return 0, "", ErrInvalidSelectedLevel
	}

	level, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", ErrInvalidSelectedLevel
	}

	name := strings.TrimSpace(m[2])
	if len(name) > MaxLevelNameLength {
		return 0, "", ErrLevelNameTooLong
	}

	return level, name, nil
}

// LevelProgress descreve a posição do usuário na escada de níveis
type LevelProgress struct {
	UserID   uint
	FullName string
	UserName string
	Current  LevelDescriptor
	Before   []LevelDescriptor
	Next     *LevelDescriptor
}

// IsMaxLevel indica o topo da escada; neste caso os campos "before" são omitidos
func (p *LevelProgress) IsMaxLevel() bool {
	return p.Current.Level == MaxLevel
}

// NewLevelProgress calcula os níveis anteriores e o próximo nível
func NewLevelProgress(user *User) *LevelProgress {
	current := user.Level

	before := make([]LevelDescriptor, 0, MaxLevel)
	for i := MinLevel; i < current; i++ {
		before = append(before, DescribeLevel(i))
	}

	var next *LevelDescriptor
	if current < MaxLevel {
		d := DescribeLevel(current + 1)
		next = &d
	}

	return &LevelProgress{
		UserID:   user.ID,
		FullName: user.FullName,
		UserName: user.UserName,
		Current:  DescribeLevel(current),
		Before:   before,
		Next:     next,
	}
}
