package api

import (
	"net/http"

	"github.com/go-chi/render"
)

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

type Response struct {
	Status  string            `json:"status"`
	Error   string            `json:"error,omitempty"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, r *http.Request, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, Response{Status: StatusError, Error: msg})
}

// Internal responde 500 com a mensagem do banco/planilha em details.
func Internal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, Response{Status: StatusError, Error: msg, Details: err.Error()})
}
