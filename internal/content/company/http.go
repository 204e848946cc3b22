package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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
	router.Get("/", handler.listCompanies)
	router.Post("/", handler.createCompany)
	router.Post("/bulk-delete", handler.bulkDeleteCompanies)

	router.Get("/{id}", handler.getCompany)
	router.Patch("/{id}", handler.updateCompany)
	router.Delete("/{id}", handler.deleteCompany)
}

func (handler *Handler) listCompanies(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	companies, total, err := handler.service.ListCompanies(request.Context(), ownerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, companies, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCompany(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.GetCompany(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) createCompany(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Company
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCompany(request.Context(), ownerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCompany(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	existing, err := handler.service.GetCompany(request.Context(), ownerID, requestutil.ID(request, "id"))
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

	updated, err := handler.service.UpdateCompany(request.Context(), ownerID, requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteCompany(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCompany(request.Context(), ownerID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) bulkDeleteCompanies(writer http.ResponseWriter, request *http.Request) {
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

	result, err := handler.service.BulkDeleteCompanies(request.Context(), ownerID, input.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
