package certification

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
	router.Get("/", handler.listCertifications)
	router.Post("/", handler.createCertification)
	router.Post("/bulk-delete", handler.bulkDeleteCertifications)

	router.Get("/{id}", handler.getCertification)
	router.Patch("/{id}", handler.updateCertification)
	router.Delete("/{id}", handler.deleteCertification)
}

func (handler *Handler) listCertifications(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	records, total, err := handler.service.ListCertifications(request.Context(), ownerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCertification(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.GetCertification(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) createCertification(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Certification
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCertification(request.Context(), ownerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCertification(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	existing, err := handler.service.GetCertification(request.Context(), ownerID, requestutil.ID(request, "id"))
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

	updated, err := handler.service.UpdateCertification(request.Context(), ownerID, requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteCertification(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCertification(request.Context(), ownerID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) bulkDeleteCertifications(writer http.ResponseWriter, request *http.Request) {
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

	result, err := handler.service.BulkDeleteCertifications(request.Context(), ownerID, input.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
