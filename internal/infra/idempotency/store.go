package idempotency

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "salon:idempotency:"
	pendingPrefix = "pending"
	donePrefix    = "done"
	separator     = ":"

	// DefaultTTL сколько хранится результат завершенного запроса
	DefaultTTL = 24 * time.Hour
	// DefaultPendingTTL сколько живет отметка "в процессе", если запрос не завершился
	DefaultPendingTTL = 30 * time.Second

	maxReserveAttempts = 3
)

// State состояние ключа идемпотентности после Reserve
type State int

const (
	// StateReserved ключ занят этим запросом, можно создавать запись
	StateReserved State = iota
	// StateInProgress другой запрос с тем же ключом еще выполняется
	StateInProgress
	// StateCompleted запись по ключу уже создана
	StateCompleted
	// StateMismatch ключ уже использован для запроса с другими данными
	StateMismatch
)

// Reservation результат Reserve
type Reservation struct {
	State         State
	AppointmentID string
}

// Store хранит ключи Idempotency-Key в Redis.
// Значение ключа: "pending:<fingerprint>" до завершения запроса (короткий TTL),
// затем "done:<fingerprint>:<appointment id>" (долгий TTL).
type Store struct {
	client     *redis.Client
	ttl        time.Duration
	pendingTTL time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl, pendingTTL: DefaultPendingTTL}
}

// WithPendingTTL задает время жизни отметки "в процессе".
// Должно быть не меньше дедлайна создания записи.
func (s *Store) WithPendingTTL(ttl time.Duration) *Store {
	if ttl > 0 {
		s.pendingTTL = ttl
	}
	return s
}

// Reserve пытается занять ключ для запроса с отпечатком fingerprint.
// Если ключ уже есть, возвращает его состояние относительно этого запроса.
func (s *Store) Reserve(ctx context.Context, key, fingerprint string) (Reservation, error) {
	redisKey, err := s.redisKey(key)
	if err != nil {
		return Reservation{}, err
	}

	for attempt := 0; attempt < maxReserveAttempts; attempt++ {
		ok, err := s.client.SetNX(ctx, redisKey, pendingPrefix+separator+fingerprint, s.pendingTTL).Result()
		if err != nil {
			return Reservation{}, fmt.Errorf("%w: SETNX %s: %w", ErrRedis, redisKey, err)
		}
		if ok {
			return Reservation{State: StateReserved}, nil
		}

		value, err := s.client.Get(ctx, redisKey).Result()
		if errors.Is(err, redis.Nil) {
			// ключ истек между SETNX и GET
			continue
		}
		if err != nil {
			return Reservation{}, fmt.Errorf("%w: GET %s: %w", ErrRedis, redisKey, err)
		}

		return parseValue(value, fingerprint), nil
	}

	return Reservation{}, fmt.Errorf("%w: %s after %d attempts", ErrKeyUnstable, redisKey, maxReserveAttempts)
}

// Complete сохраняет ID созданной записи под ключом с долгим TTL
func (s *Store) Complete(ctx context.Context, key, fingerprint, appointmentID string) error {
	redisKey, err := s.redisKey(key)
	if err != nil {
		return err
	}

	value := strings.Join([]string{donePrefix, fingerprint, appointmentID}, separator)
	if err := s.client.Set(ctx, redisKey, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SET %s: %w", ErrRedis, redisKey, err)
	}
	return nil
}

// Release освобождает ключ после неуспешного запроса, чтобы клиент мог повторить
func (s *Store) Release(ctx context.Context, key string) error {
	redisKey, err := s.redisKey(key)
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("%w: DEL %s: %w", ErrRedis, redisKey, err)
	}
	return nil
}

// parseValue сравнивает сохраненное значение с отпечатком текущего запроса.
// Нераспознанное значение считается чужим.
func parseValue(value, fingerprint string) Reservation {
	parts := strings.SplitN(value, separator, 3)

	switch {
	case len(parts) == 2 && parts[0] == pendingPrefix:
		if parts[1] != fingerprint {
			return Reservation{State: StateMismatch}
		}
		return Reservation{State: StateInProgress}

	case len(parts) == 3 && parts[0] == donePrefix && parts[2] != "":
		if parts[1] != fingerprint {
			return Reservation{State: StateMismatch}
		}
		return Reservation{State: StateCompleted, AppointmentID: parts[2]}
	}

	return Reservation{State: StateMismatch}
}

func (s *Store) redisKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyKey
	}
	return keyPrefix + key, nil
}
