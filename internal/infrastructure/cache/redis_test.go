package cache

import (
	"testing"

	"github.com/rafabene/padelmatch-backend/internal/infrastructure/config"
)

func TestRedisOptions(t *testing.T) {
	t.Run("endereço simples", func(t *testing.T) {
		opts, err := redisOptions(config.RedisConfig{URL: "localhost:6379", Password: "x", DB: 2})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if opts.Addr != "localhost:6379" || opts.Password != "x" || opts.DB != 2 {
			t.Errorf("opções inesperadas: %+v", opts)
		}
	})

	t.Run("URL redis://", func(t *testing.T) {
		opts, err := redisOptions(config.RedisConfig{URL: "redis://cache:6380/3"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if opts.Addr != "cache:6380" || opts.DB != 3 {
			t.Errorf("opções inesperadas: %+v", opts)
		}
	})

	t.Run("senha da configuração sobrescreve a da URL", func(t *testing.T) {
		opts, err := redisOptions(config.RedisConfig{URL: "redis://:old@cache:6379/0", Password: "new"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if opts.Password != "new" {
			t.Errorf("esperava senha 'new', obteve '%s'", opts.Password)
		}
	})

	t.Run("URL inválida", func(t *testing.T) {
		if _, err := redisOptions(config.RedisConfig{URL: "redis://cache:porta"}); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}
