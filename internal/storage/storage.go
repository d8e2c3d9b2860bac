package storage

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Store é a porta de armazenamento chave-valor. O repositório só conhece esta
// interface, então file/redis/postgres são intercambiáveis sem tocar na lógica.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ReadJSON lê e decodifica um slot JSON. Chave ausente, erro de leitura ou
// payload corrompido devolvem o default — nunca erro.
func ReadJSON[T any](ctx context.Context, s Store, key string, def T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage: falha ao ler slot")
		return def
	}
	if !ok {
		return def
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage: slot corrompido, usando default")
		return def
	}
	return out
}

// WriteJSON serializa e grava um slot. Persistência é best-effort: o erro é
// devolvido para quem quiser logar, mas os chamadores não falham por causa dele.
func WriteJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(raw))
}
