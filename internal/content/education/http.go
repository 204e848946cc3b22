package education

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foliumhq/folium/internal/content/engine"
	requestutil "github.com/foliumhq/folium/internal/platform/request"
	"github.com/foliumhq/folium/internal/platform/respond"
	"github.com/foliumhq/folium/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listEducation)
	router.Post("/", handler.createEducation)
	router.Post("/bulk-delete", handler.bulkDeleteEducation)

	router.Get("/{id}", handler.getEducation)
	router.Patch("/{id}", handler.updateEducation)
	router.Delete("/{id}", handler.deleteEducation)
	router.Post("/{id}/restore", handler.restoreEducation)
}

func (handler *Handler) listEducation(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Deleted: engine.ParseVisibility(request.URL.Query().Get("deleted")),
	}

	records, total, err := handler.service.ListEducation(request.Context(), ownerID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getEducation(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.GetEducation(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) createEducation(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Education
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateEducation(request.Context(), ownerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateEducation(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	existing, err := handler.service.GetEducation(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Partial update: fields absent from the body keep their stored values.
	input := *existing
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateEducation(request.Context(), ownerID, requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteEducation(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEducation(request.Context(), ownerID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) restoreEducation(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RestoreEducation(request.Context(), ownerID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) bulkDeleteEducation(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		IDs []string `json:"ids"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.BulkDeleteEducation(request.Context(), ownerID, input.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
