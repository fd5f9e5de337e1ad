package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Vibhuti270/virtual-herbal-backend/service"
)

const homeMessage = "API of the Virtual Herbal Garden"

type Handler struct {
	Service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{Service: svc}
}

type errorResponse struct {
	Error string `json:"error"`
}

type visitCountResponse struct {
	VisitCount int `json:"visitCount"`
}

// HandleHome records a visit and answers with a plain confirmation
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if !isReadMethod(r) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, err := h.Service.RecordVisit(r.Context()); err != nil {
		slog.Error("Error incrementing visit count", "error", err)
		h.sendError(w, http.StatusInternalServerError, "Failed to increment visit count")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(homeMessage))
}

func (h *Handler) HandleVisitCount(w http.ResponseWriter, r *http.Request) {
	if !isReadMethod(r) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	count, err := h.Service.GetVisitCount(r.Context())
	if err != nil {
		slog.Error("Error fetching visit count", "error", err)
		h.sendError(w, http.StatusInternalServerError, "Failed to fetch visit count")
		return
	}

	h.sendResponse(w, http.StatusOK, visitCountResponse{VisitCount: count})
}

func (h *Handler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	if !isReadMethod(r) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := h.Service.ListAllUsers(r.Context())
	if err != nil {
		slog.Error("Error fetching users", "error", err)
		h.sendError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	h.sendResponse(w, http.StatusOK, list)
}

// HEAD is served like GET; net/http drops the body
func isReadMethod(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func (h *Handler) sendError(w http.ResponseWriter, status int, msg string) {
	h.sendResponse(w, status, errorResponse{Error: msg})
}

func (h *Handler) sendResponse(w http.ResponseWriter, status int, resp any) {
	body, err := json.Marshal(resp)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
