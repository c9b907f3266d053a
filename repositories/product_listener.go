package repositories

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

const productChannel = "product_updates"

// ProductListener holds a dedicated connection LISTENing on the product
// update channel and invokes onUpdate once per notification. Errors other
// than a deliberate Close stop the listener and reach onError; retrying or
// restarting is the caller's decision.
type ProductListener struct {
	pool     *pgxpool.Pool
	onUpdate func(context.Context) error
	onError  func(error)

	cancel context.CancelFunc
	done   chan struct{}
}

func NewProductListener(pool *pgxpool.Pool, onUpdate func(context.Context) error, onError func(error)) *ProductListener {
	return &ProductListener{
		pool:     pool,
		onUpdate: onUpdate,
		onError:  onError,
		done:     make(chan struct{}),
	}
}

func (l *ProductListener) Start(ctx context.Context) error {
	ctx, l.cancel = context.WithCancel(ctx)

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		l.cancel()
		close(l.done)
		return err
	}

	if _, err := conn.Exec(ctx, "LISTEN "+productChannel); err != nil {
		conn.Release()
		l.cancel()
		close(l.done)
		return err
	}

	go l.loop(ctx, conn)
	return nil
}

func (l *ProductListener) loop(ctx context.Context, conn *pgxpool.Conn) {
	defer close(l.done)
	defer conn.Release()

	for {
		_, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.onError(err)
			return
		}

		if err := l.onUpdate(ctx); err != nil {
			log.Printf("Catalog refresh failed: %v", err)
		}
	}
}

// Close cancels the subscription and waits for the loop to exit, so a
// superseded listener can never fire after Close returns.
func (l *ProductListener) Close() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
}
