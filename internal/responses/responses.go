package responses

import (
	"errors"

	"flavourfleet/internal/structs"
)

var (
	Success     = structs.Response{Success: true}
	BadRequest  = structs.Response{Success: false, Message: "bad request"}
	NotFound    = structs.Response{Success: false, Message: "not found"}
	InternalErr = structs.Response{Success: false, Message: "internal error"}
	Unreachable = structs.Response{Success: false, Message: "Network error. Please try again."}
)

// FailureMessage maps a service error to the message shown to the user:
// rejections verbatim, transport failures as the uniform network message.
func FailureMessage(err error) string {
	if rej, ok := structs.AsRejection(err); ok {
		return rej.Message
	}
	if errors.Is(err, structs.ErrStoreUnreachable) {
		return Unreachable.Message
	}
	return InternalErr.Message
}
