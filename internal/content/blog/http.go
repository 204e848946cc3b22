package blog

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
	router.Get("/", handler.listPosts)
	router.Post("/", handler.createPost)
	router.Post("/bulk-delete", handler.bulkDeletePosts)

	router.Get("/{id}", handler.getPost)
	router.Patch("/{id}", handler.updatePost)
	router.Delete("/{id}", handler.deletePost)
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	var filter Filter
	if raw := request.URL.Query().Get("published"); raw != "" {
		filter.Published = pointer.To(convert.ToBool(raw))
	}

	posts, total, err := handler.service.ListPosts(request.Context(), ownerID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.GetPost(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input BlogPost
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePost(request.Context(), ownerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	existing, err := handler.service.GetPost(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Partial update: fields absent from the body keep their stored values.
	// The slug is seeded empty on purpose: omitted means follow the title,
	// submitted means an explicit claim.
	input := *existing
	input.Slug = ""
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdatePost(request.Context(), ownerID, requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredOwnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePost(request.Context(), ownerID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) bulkDeletePosts(writer http.ResponseWriter, request *http.Request) {
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

	result, err := handler.service.BulkDeletePosts(request.Context(), ownerID, input.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
