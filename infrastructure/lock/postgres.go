package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// PostgresLocker usa pg_try_advisory_lock. O lock pertence à sessão, então a
// conexão fica reservada do pool até o unlock.
type PostgresLocker struct {
	pool *pgxpool.Pool
}

func NewPostgresLocker(ctx context.Context, connString string) (*PostgresLocker, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("erro ao configurar pool do postgres: %w", err)
	}

	config.MaxConns = 4

	p, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool do postgres: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("sem resposta do postgres: %w", err)
	}

	return &PostgresLocker{pool: p}, nil
}

func (l *PostgresLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao obter conexão para lock: %w", err)
	}

	var acquired bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock(hashtext($1))", key).Scan(&acquired); err != nil {
		conn.Release()
		return nil, false, fmt.Errorf("erro ao tentar lock %s: %w", key, err)
	}

	if !acquired {
		conn.Release()
		return nil, false, nil
	}

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			// o contexto da chamada pode já ter sido cancelado
			unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if _, err := conn.Exec(unlockCtx, "SELECT pg_advisory_unlock(hashtext($1))", key); err != nil {
				logrus.WithFields(logrus.Fields{
					"key":   key,
					"error": err.Error(),
				}).Warn("lock: failed to release advisory lock, dropping connection")
				_ = conn.Conn().Close(unlockCtx)
			}
			conn.Release()
		})
	}

	return unlock, true, nil
}

func (l *PostgresLocker) Close() {
	l.pool.Close()
}
