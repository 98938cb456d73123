package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/dto"
)

// FailureWriter writes the response for a request that failed outside its
// handler: a recovered panic or an expired deadline. The server passes one
// that answers browsers with an HTML page and API clients with problem JSON.
type FailureWriter func(w http.ResponseWriter, r *http.Request, err error)

// orProblemJSON returns fail, or a writer emitting RFC 9457 JSON when fail
// is nil.
func orProblemJSON(fail FailureWriter) FailureWriter {
	if fail != nil {
		return fail
	}
	return dto.WriteProblem
}
