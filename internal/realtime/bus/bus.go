package bus

import (
	"context"

	"github.com/yungbote/chirp-backend/internal/realtime"
)

// Bus carries realtime messages between instances. The redis implementation
// is used when REDIS_ADDR is set; otherwise events stay in-process.
type Bus interface {
	Publish(ctx context.Context, msg realtime.SSEMessage) error
	StartForwarder(ctx context.Context, onMsg func(m realtime.SSEMessage)) error
	Close() error
}
