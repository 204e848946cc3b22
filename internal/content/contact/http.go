package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/foliumhq/folium/internal/platform/request"
	"github.com/foliumhq/folium/internal/platform/respond"
	"github.com/foliumhq/folium/pkg/convert"
	"github.com/foliumhq/folium/pkg/pagination"
	"github.com/foliumhq/folium/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listContacts)
	router.Post("/", handler.createContact)
	router.Post("/bulk-delete", handler.bulkDeleteContacts)
	router.Put("/order", handler.reorderContacts)

	router.Get("/{id}", handler.getContact)
	router.Patch("/{id}", handler.updateContact)
	router.Delete("/{id}", handler.deleteContact)
}

func (handler *Handler) listContacts(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	var filter Filter
	if raw := request.URL.Query().Get("active"); raw != "" {
		filter.Active = pointer.To(convert.ToBool(raw))
	}

	contacts, total, err := handler.service.ListContacts(request.Context(), ownerID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, contacts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getContact(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.GetContact(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) createContact(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Contact
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateContact(request.Context(), ownerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateContact(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	existing, err := handler.service.GetContact(request.Context(), ownerID, requestutil.ID(request, "id"))
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

	updated, err := handler.service.UpdateContact(request.Context(), ownerID, requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteContact(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteContact(request.Context(), ownerID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) bulkDeleteContacts(writer http.ResponseWriter, request *http.Request) {
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

	result, err := handler.service.BulkDeleteContacts(request.Context(), ownerID, input.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) reorderContacts(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.service.ReorderContacts(request.Context(), ownerID, input.IDs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
