package errno

// code=2xx success
// code=4xx client error
// code=5xx server error
// code=2xxxx business error

type Errno struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *Errno) Error() string {
	return e.Message
}

var (
	OK      = &Errno{Code: 200, Message: "Success"}
	Created = &Errno{Code: 201, Message: "Created"}

	ErrInvalidParam = &Errno{Code: 400, Message: "Invalid parameter"}
	ErrNotFound     = &Errno{Code: 404, Message: "Not found"}

	ErrInternalServer    = &Errno{Code: 500, Message: "Internal server error"}
	ErrDatabase          = &Errno{Code: 501, Message: "Database error"}
	ErrVideoCreateFailed = &Errno{Code: 502, Message: "Failed to create video"}

	// Business error codes.
	ErrOriginalURLRequired  = &Errno{Code: 20001, Message: "original_url is required"}
	ErrHighlightURLRequired = &Errno{Code: 20002, Message: "highlight_url is required"}
	ErrTitleRequired        = &Errno{Code: 20003, Message: "title is required"}
	ErrBatchEmpty           = &Errno{Code: 20004, Message: "videos must contain at least one item"}
	ErrBatchTooLarge        = &Errno{Code: 20005, Message: "videos cannot exceed 100 items"}
	ErrVideoIDRequired      = &Errno{Code: 20006, Message: "video_id must be a positive integer"}
	ErrHighlightIDRequired  = &Errno{Code: 20007, Message: "highlight_id must be a positive integer"}
)
