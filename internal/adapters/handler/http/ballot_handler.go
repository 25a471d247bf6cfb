package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quickvote/ballot/internal/core/domain"
	"github.com/quickvote/ballot/internal/core/ports"
)

type BallotHandler struct {
	service ports.BallotService
}

func NewBallotHandler(service ports.BallotService) *BallotHandler {
	return &BallotHandler{
		service: service,
	}
}

type createBallotRequest struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

type addOptionRequest struct {
	Text string `json:"text"`
}

type voteRequest struct {
	OptionID int64 `json:"option_id"`
}

type optionResultResponse struct {
	OptionID   int64   `json:"option_id"`
	Text       string  `json:"text"`
	Votes      int64   `json:"votes"`
	Ratio      float64 `json:"ratio"`
	Percentage float64 `json:"percentage"`
}

func (h *BallotHandler) CreateBallot(w http.ResponseWriter, r *http.Request) {
	var req createBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CreateBallotInput{
		Title:   req.Title,
		Options: req.Options,
	}

	ballot, err := h.service.Create(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, ballot)
}

func (h *BallotHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing ballot id", http.StatusBadRequest)
		return
	}

	ballot, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ballot)
}

func (h *BallotHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req addOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ballot, err := h.service.AddOption(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ballot)
}

func (h *BallotHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ballot, err := h.service.CastVote(r.Context(), id, req.OptionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ballot)
}

func (h *BallotHandler) ResetBallot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ballot, err := h.service.Reset(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ballot)
}

func (h *BallotHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stats, err := h.service.Results(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]optionResultResponse, 0, len(stats))
	for _, s := range stats {
		results = append(results, optionResultResponse{
			OptionID:   s.OptionID,
			Text:       s.Text,
			Votes:      s.VoteCount,
			Ratio:      s.Ratio,
			Percentage: s.Percentage,
		})
	}

	writeJSON(w, http.StatusOK, results)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidBallotID) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, domain.ErrEmptyOptionText) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, domain.ErrOptionNotFound) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, domain.ErrBallotNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
