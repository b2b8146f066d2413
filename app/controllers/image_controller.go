package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bookstore/app/services"
	"github.com/shashiranjanraj/bookstore/pkg/response"
)

type ImageInput struct {
	URL string `json:"url" validate:"required,url"`
}

type ImageController struct {
	images *services.ImageService
}

func NewImageController(images *services.ImageService) *ImageController {
	return &ImageController{images: images}
}

func (c *ImageController) Index(w http.ResponseWriter, r *http.Request) {
	images, err := c.images.List()
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, images)
}

func (c *ImageController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	image, err := c.images.Get(id)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, image)
}

func (c *ImageController) Store(w http.ResponseWriter, r *http.Request) {
	var in ImageInput
	if !bindJSON(w, r, &in) {
		return
	}

	image, err := c.images.Create(in.URL)
	if err != nil {
		fail(w, err)
		return
	}
	response.Created(w, image)
}

func (c *ImageController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in ImageInput
	if !bindJSON(w, r, &in) {
		return
	}

	image, err := c.images.Update(id, in.URL)
	if err != nil {
		fail(w, err)
		return
	}
	response.OK(w, image)
}

func (c *ImageController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramUint(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.images.Delete(id); err != nil {
		fail(w, err)
		return
	}
	response.Deleted(w)
}
