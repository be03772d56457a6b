package notification

import "context"

// Dispatcher delivers routed intents. Implementations are expected to be
// best-effort; the claim lifecycle never fails because a send did.
type Dispatcher interface {
	Dispatch(ctx context.Context, intents []Intent) error
}
