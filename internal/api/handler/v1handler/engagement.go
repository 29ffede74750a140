package v1handler

import (
	"net/http"

	"civic/pkg/controller"
	"civic/pkg/domain"
)

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Engagement.Submit(ctx, domain.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, DomainFeedbackToV1(res))
}

func (h *Handler) recentFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryLimit(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	items, err := h.deps.Engagement.Recent(ctx, limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	out := FeedbackList{Items: make([]Feedback, 0, len(items))}
	for i := range items {
		out.Items = append(out.Items, DomainFeedbackToV1(&items[i]))
	}

	controller.WriteJSON(w, http.StatusOK, out)
}

// recordVisit counts one visit of the page and returns its new total.
func (h *Handler) recordVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VisitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Engagement.RecordVisit(ctx, req.Page)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) getVisits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.deps.Engagement.Visits(ctx, r.URL.Query().Get("page"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, res)
}
