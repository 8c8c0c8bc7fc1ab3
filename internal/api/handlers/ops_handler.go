package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

// OpsService — операции движка, доступные операторскому API.
type OpsService interface {
	Status() models.SchedulerStatus

	Restart()

	ForceRefresh(userID string)
}

// OpsHandler — операторский HTTP-интерфейс движка уведомлений.
type OpsHandler struct {
	service OpsService
	logger  *slog.Logger
}

func NewOpsHandler(service OpsService, logger *slog.Logger) *OpsHandler {
	return &OpsHandler{
		service: service,
		logger:  logger,
	}
}

// Register вешает маршруты на mux.
func (h *OpsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /status", h.getStatus)
	mux.HandleFunc("POST /restart", h.postRestart)
	mux.HandleFunc("POST /users/{id}/refresh", h.postUserRefresh)
}

func (h *OpsHandler) getStatus(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Status())
}

func (h *OpsHandler) postRestart(w http.ResponseWriter, _ *http.Request) {
	h.service.Restart()

	h.writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "restart scheduled",
	})
}

func (h *OpsHandler) postUserRefresh(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		http.Error(w, "user id is required", http.StatusBadRequest)
		return
	}

	h.service.ForceRefresh(userID)

	h.writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "refresh scheduled",
		"userId": userID,
	})
}

func (h *OpsHandler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Ошибка при записи ответа",
			"error", err,
		)
	}
}
