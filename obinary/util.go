package obinary

import (
	"fmt"

	"github.com/nu7hatch/gouuid"
)

// catch converts a panic raised inside the codec or the transport into
// an ordinary error at an operation boundary.
func catch(err *error) {
	if r := recover(); r != nil {
		switch rr := r.(type) {
		case error:
			*err = rr
		default:
			*err = fmt.Errorf("%v", r)
		}
	}
}

// newClientID generates the driver client id sent on Connect/DbOpen
// when the caller did not supply one.  In a clustered configuration the
// caller should supply the distributed node id instead.
func newClientID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
