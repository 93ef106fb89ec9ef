package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
}

var global = &closer{}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

// AddNamed registers fn to run on CloseAll. Functions run in reverse order.
func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll runs every registered function once, newest first, and joins errors.
func CloseAll(ctx context.Context) error {
	var result error
	global.once.Do(func() {
		global.mu.Lock()
		funcs := global.funcs
		global.funcs = nil
		l := global.logger
		global.mu.Unlock()

		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := f.fn(ctx); err != nil {
				if l != nil {
					l.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
				}
				result = errors.Join(result, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			if l != nil {
				l.Info(ctx, "closed", zap.String("name", f.name))
			}
		}
	})
	return result
}
