// Package response writes the catalog's JSON bodies:
//
//	{"res": <data>}                                  success
//	{"error": "<message>"}                           failure
//	{"error": "Validation failed", "fields": {...}}  invalid input
package response

import (
	"encoding/json"
	"net/http"
)

type body struct {
	Res    interface{}       `json:"res,omitempty"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func write(w http.ResponseWriter, status int, b body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(b) //nolint:errcheck
}

// JSON sends {"res": data} with status.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, body{Res: data})
}

// Success sends 200 {"res": data}.
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// Created sends 201 {"res": data}.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// Error sends {"error": message} with status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, body{Error: message})
}

// ValidationError sends 400 with a field → message map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, body{Error: "Validation failed", Fields: errs})
}

// NotFound sends 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// InternalError sends 500 without leaking the cause.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal Server Error")
}
