package entities

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSelectedLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLevel int
		wantName  string
		wantErr   error
	}{
		{"formato padrão", "3(Upper-Intermediate)", 3, "Upper-Intermediate", nil},
		{"nome vazio", "2()", 2, "", nil},
		{"remove espaços do nome", "4( Advanced )", 4, "Advanced", nil},
		{"texto ao redor", "level 5(Professional) please", 5, "Professional", nil},
		{"sem parênteses", "3", 0, "", ErrInvalidSelectedLevel},
		{"sem número", "(Beginner)", 0, "", ErrInvalidSelectedLevel},
		{"nome longo demais", "1(" + strings.Repeat("x", MaxLevelNameLength+1) + ")", 0, "", ErrLevelNameTooLong},
		{"nome no limite", "1(" + strings.Repeat("x", MaxLevelNameLength) + ")", 1, strings.Repeat("x", MaxLevelNameLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, name, err := ParseSelectedLevel(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("esperava erro %v, obteve %v", tt.wantErr, err)
			}
			if level != tt.wantLevel {
				t.Errorf("esperava nível %d, obteve %d", tt.wantLevel, level)
			}
			if name != tt.wantName {
				t.Errorf("esperava nome '%s', obteve '%s'", tt.wantName, name)
			}
		})
	}
}

func TestDescribeLevel(t *testing.T) {
	if got := DescribeLevel(1).LevelName; got != "Beginner" {
		t.Errorf("esperava 'Beginner', obteve '%s'", got)
	}
	if got := DescribeLevel(9).LevelName; got != "Unknown" {
		t.Errorf("esperava 'Unknown', obteve '%s'", got)
	}
}

func TestNewLevelProgress(t *testing.T) {
	t.Run("nível inicial não tem anteriores", func(t *testing.T) {
		p := NewLevelProgress(&User{ID: 1, Level: 1})
		if len(p.Before) != 0 {
			t.Errorf("esperava 0 níveis anteriores, obteve %d", len(p.Before))
		}
		if p.Next == nil || p.Next.Level != 2 {
			t.Fatalf("esperava próximo nível 2, obteve %+v", p.Next)
		}
	})

	t.Run("nível intermediário", func(t *testing.T) {
		p := NewLevelProgress(&User{ID: 1, Level: 3})
		if len(p.Before) != 2 || p.Before[0].Level != 1 || p.Before[1].Level != 2 {
			t.Errorf("esperava níveis anteriores [1 2], obteve %+v", p.Before)
		}
		if p.Next.LevelName != "Advanced" {
			t.Errorf("esperava próximo 'Advanced', obteve '%s'", p.Next.LevelName)
		}
		if p.IsMaxLevel() {
			t.Error("nível 3 não é o máximo")
		}
	})

	t.Run("nível máximo não tem próximo", func(t *testing.T) {
		p := NewLevelProgress(&User{ID: 1, Level: MaxLevel})
		if p.Next != nil {
			t.Errorf("esperava próximo nil, obteve %+v", p.Next)
		}
		if !p.IsMaxLevel() {
			t.Error("esperava nível máximo")
		}
		if len(p.Before) != MaxLevel-1 {
			t.Errorf("esperava %d níveis anteriores, obteve %d", MaxLevel-1, len(p.Before))
		}
	})
}
