package errno

import (
	"errors"
	"fmt"
)

// BizError carries a sentinel code together with the underlying cause. The
// cause is logged server-side and never rendered to clients.
type BizError struct {
	Errno *Errno
	Cause error
}

func NewBizError(errno *Errno, cause error) *BizError {
	return &BizError{Errno: errno, Cause: cause}
}

func (e *BizError) Error() string {
	if e.Cause == nil {
		return e.Errno.Message
	}
	return fmt.Sprintf("%s: %v", e.Errno.Message, e.Cause)
}

func (e *BizError) Unwrap() error {
	return e.Cause
}

// CodeOf resolves the sentinel for any error produced by this service.
// Unknown errors map to ErrInternalServer.
func CodeOf(err error) *Errno {
	var en *Errno
	if errors.As(err, &en) {
		return en
	}
	var biz *BizError
	if errors.As(err, &biz) {
		return biz.Errno
	}
	return ErrInternalServer
}
