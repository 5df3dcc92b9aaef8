package response

import (
	"encoding/json"
	"net/http"

	"logistics/internal/generated/dto"
)

func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// Message отдает ошибку в виде {"message": ...}.
func Message(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, dto.ErrorResponse{Message: message})
}
