package services

import "context"

// persistentContext detaches lock acquire/release from request cancellation
// so an interrupted caller still releases its advisory lock.
func persistentContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return context.WithoutCancel(ctx)
}
