package market

import (
	"errors"
	"fmt"
)

// ErrInvalidPrice rejects order prices that are NaN or infinite.
var ErrInvalidPrice = errors.New("order price must be finite and not NaN")

type SecurityNotFoundError struct {
	Sec SecID
}

func (e *SecurityNotFoundError) Error() string {
	return fmt.Sprintf("security %s does not exist", e.Sec)
}

type AccountNotFoundError struct {
	Acc AccID
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s does not exist", e.Acc)
}

// NoBidsError reports an empty bid queue. It is informational: callers
// should treat it as an absent value, not a precondition failure.
type NoBidsError struct {
	Sec SecID
}

func (e *NoBidsError) Error() string {
	return fmt.Sprintf("no bids are placed for security %s", e.Sec)
}

// NoAsksError reports an empty ask queue; see NoBidsError.
type NoAsksError struct {
	Sec SecID
}

func (e *NoAsksError) Error() string {
	return fmt.Sprintf("no asks are placed for security %s", e.Sec)
}
