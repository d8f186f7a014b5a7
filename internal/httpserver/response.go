package httpserver

import (
	"encoding/json"
	"net/http"
)

type detailEnvelope struct {
	Detail string `json:"detail"`
}

// WriteJSON сериализует payload со статусом status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONError возвращает ошибку в едином формате {"detail": ...}.
func WriteJSONError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, detailEnvelope{Detail: detail})
}
