package relay

import (
	"encoding/json"
	"io"
	"net/http"

	"nanogen/internal/auth"
	"nanogen/internal/httpserver"
	"log/slog"
)

type HandlerDeps struct {
	Guard   *auth.Guard
	Service *Service
	Logger  *slog.Logger
}

// Handler обрабатывает POST /generate.
type Handler struct {
	guard   *auth.Guard
	service *Service
	logger  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		guard:   deps.Guard,
		service: deps.Service,
		logger:  deps.Logger,
	}
}

type generationRequest struct {
	Prompt              string   `json:"prompt"`
	ConversationHistory []string `json:"conversation_history"`
	// Указатель, чтобы отличать отсутствующий secret (422) от неверного (401).
	Secret *string `json:"secret"`
}

type generationResponse struct {
	GeneratedText string `json:"generated_text"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)

	var req generationRequest
	if err := dec.Decode(&req); err != nil {
		httpserver.WriteJSONError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	// Тело должно быть ровно одним JSON-документом, данные после него — ошибка.
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		httpserver.WriteJSONError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if req.Prompt == "" {
		httpserver.WriteJSONError(w, http.StatusUnprocessableEntity, "Field 'prompt' is required")
		return
	}
	if req.Secret == nil {
		httpserver.WriteJSONError(w, http.StatusUnprocessableEntity, "Field 'secret' is required")
		return
	}

	if err := h.guard.Verify(*req.Secret); err != nil {
		httpserver.WriteJSONError(w, http.StatusUnauthorized, "Invalid authentication secret")
		return
	}

	answer, err := h.service.Generate(r.Context(), req.Prompt, req.ConversationHistory)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("generation failed", slog.String("error", err.Error()))
		}
		httpserver.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, generationResponse{GeneratedText: answer})
}
