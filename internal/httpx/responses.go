package httpx

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"
)

// ErrorBody is the public error envelope. statusCode keeps its historical
// camelCase name; book payloads elsewhere in the API use snake_case.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

const (
	genericMessage = "Internal server error"
	genericDetails = "An unexpected error occurred"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the error envelope with the given status code.
func JSONError(w http.ResponseWriter, statusCode int, message, details string) {
	JSON(w, statusCode, ErrorBody{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	})
}

// ErrorWriter converts internal failures into the envelope. In development
// mode the envelope carries the real error text and a trace; in production it
// carries fixed generic strings. The mode is set once at construction, never
// read from the environment per request.
type ErrorWriter struct {
	Dev bool
}

// Internal logs err with request context and writes a 500 envelope.
func (e ErrorWriter) Internal(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("internal error request_id=%s method=%s path=%s error=%v",
		RequestIDFrom(r), r.Method, r.URL.Path, err)
	e.respond(w, err)
}

func (e ErrorWriter) respond(w http.ResponseWriter, err error) {
	if e.Dev {
		JSONError(w, http.StatusInternalServerError, err.Error(), string(debug.Stack()))
		return
	}
	JSONError(w, http.StatusInternalServerError, genericMessage, genericDetails)
}
