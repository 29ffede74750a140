package v1handler

import (
	"net/http"
	"strconv"

	"civic/pkg/controller"
	"civic/pkg/domain"
	"civic/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func pathUUID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id")
	}

	return id, nil
}

// generateNumbers returns count fresh identity numbers without storing them.
func (h *Handler) generateNumbers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := queryInt(r, "count", 1)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	numbers, err := h.deps.Identity.GenerateNumbers(count)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	h.generated.Add(ctx, int64(len(numbers)))

	controller.WriteJSON(w, http.StatusOK, GenerateNumbersResponse{Numbers: numbers})
}

func (h *Handler) validateNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateNumberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res := h.deps.Identity.Validate(req.Number)
	h.validated.Add(ctx, 1, metric.WithAttributes(attribute.String("valid", strconv.FormatBool(res.Valid))))

	controller.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) issueIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req IssueIdentityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Identity.Issue(ctx, GetUserIDFromContext(ctx), domain.Holder{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, DomainIdentityToV1(res))
}

func (h *Handler) listIdentities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryLimit(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	identities, next, err := h.deps.Identity.List(ctx,
		GetUserIDFromContext(ctx),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	out := IdentityList{Items: make([]Identity, 0, len(identities))}
	for i := range identities {
		out.Items = append(out.Items, DomainIdentityToV1(&identities[i]))
	}
	if next != "" {
		out.NextCursor = &next
	}

	controller.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) getIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Identity.Get(ctx, GetUserIDFromContext(ctx), domain.IdentityID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, DomainIdentityToV1(res))
}

func (h *Handler) deleteIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Identity.Delete(ctx, GetUserIDFromContext(ctx), domain.IdentityID(id)); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// enqueueBatch accepts a batch for background processing.
func (h *Handler) enqueueBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EnqueueBatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Identity.EnqueueBatch(ctx, GetUserIDFromContext(ctx), req.Size)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusAccepted, DomainBatchToV1(res))
}

func (h *Handler) getBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Identity.Batch(ctx, GetUserIDFromContext(ctx), domain.BatchID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, DomainBatchToV1(res))
}
