package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/chat"
)

// chatService defines the minimal interface needed by BridgeHandler.
type chatService interface {
	HandleText(ctx context.Context, userID domain.UserID, text string) chat.Reply
	HandleCallback(ctx context.Context, userID domain.UserID, data string) chat.Reply
}

type ratingReader interface {
	GetRatingByName(ctx context.Context, userID domain.UserID, name string) (*domain.Rating, error)
}

// BridgeHandler serves the chat bridge API. A bridge relays every user
// message or button press and renders the returned reply.
type BridgeHandler struct {
	chat    chatService
	ratings ratingReader
	log     *slog.Logger
}

// NewBridgeHandler creates a BridgeHandler.
func NewBridgeHandler(chat chatService, ratings ratingReader, logger *slog.Logger) *BridgeHandler {
	return &BridgeHandler{chat: chat, ratings: ratings, log: logger.With("handler", "bridge")}
}

// maxUpdateBytes bounds the request body of a single update.
const maxUpdateBytes = 16 << 10

type updateRequest struct {
	UserID   int64   `json:"user_id"`
	Text     *string `json:"text"`
	Callback *string `json:"callback"`
}

func (r updateRequest) validate() error {
	var errs []domain.FieldError
	if r.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "must be positive"})
	}
	if (r.Text == nil) == (r.Callback == nil) {
		errs = append(errs, domain.FieldError{Field: "text", Message: "exactly one of text or callback is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

type ratingResponse struct {
	UserID     int64     `json:"user_id"`
	Dictionary string    `json:"dictionary"`
	LastScore  int       `json:"last_score"`
	BestScore  int       `json:"best_score"`
	TotalWords int       `json:"total_words"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Update handles POST /api/v1/updates.
func (h *BridgeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ctx := r.Context()
	userID := domain.UserID(req.UserID)

	var reply chat.Reply
	if req.Text != nil {
		reply = h.chat.HandleText(ctx, userID, *req.Text)
	} else {
		reply = h.chat.HandleCallback(ctx, userID, *req.Callback)
	}

	writeJSON(w, http.StatusOK, reply)
}

// Rating handles GET /api/v1/users/{userID}/ratings?dictionary=<name>.
func (h *BridgeHandler) Rating(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("userID"), 10, 64)
	if err != nil || id <= 0 {
		handleError(h.log, w, r, domain.NewValidationError("user_id", "must be a positive integer"))
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("dictionary"))
	if name == "" {
		handleError(h.log, w, r, domain.NewValidationError("dictionary", "required"))
		return
	}

	rating, err := h.ratings.GetRatingByName(r.Context(), domain.UserID(id), name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ratingResponse{
		UserID:     int64(rating.UserID),
		Dictionary: name,
		LastScore:  rating.LastScore,
		BestScore:  rating.BestScore,
		TotalWords: rating.TotalWords,
		UpdatedAt:  rating.UpdatedAt,
	})
}
