package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lendflow/internal/domain"
)

// Service defines the interface for pipeline operations.
type Service interface {
	Process(ctx context.Context, app *domain.Application) (domain.Decision, error)
}

// Handler is the thin HTTP layer. It delegates to the decision service
// without embedding business logic so transport concerns remain isolated.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts application endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applications", h.HandleSubmit)
}

type documentPayload struct {
	Type    string `json:"type"`
	FileRef string `json:"file_ref"`
}

type submitRequest struct {
	ApplicantName string            `json:"applicant_name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	LoanAmount    float64           `json:"loan_amount"`
	LoanPurpose   string            `json:"loan_purpose"`
	Documents     []documentPayload `json:"documents"`
}

type submitResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// HandleSubmit handles POST /applications requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)
	start := time.Now()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad_request", "malformed request body")
		return
	}

	app := &domain.Application{
		ApplicantName: req.ApplicantName,
		Email:         req.Email,
		Phone:         req.Phone,
		LoanAmount:    req.LoanAmount,
		LoanPurpose:   req.LoanPurpose,
	}
	for _, doc := range req.Documents {
		app.Documents = append(app.Documents, domain.Document{
			Type:    domain.DocumentType(doc.Type),
			FileRef: doc.FileRef,
		})
	}

	decision, err := h.service.Process(ctx, app)
	if err != nil {
		if h.logger != nil {
			h.logger.ErrorContext(ctx, "application processing failed",
				"request_id", requestID,
				"error", err,
			)
		}
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "application processing failed")
		return
	}

	if h.logger != nil {
		h.logger.InfoContext(ctx, "application submitted",
			"request_id", requestID,
			"status", string(decision.Status),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(submitResponse{
		Status: string(decision.Status),
		Reason: decision.Reason,
	})
}
