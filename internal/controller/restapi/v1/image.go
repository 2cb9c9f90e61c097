package v1

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kshecodes/image-service/internal/controller/restapi/v1/request"
	"github.com/kshecodes/image-service/internal/controller/restapi/v1/response"
	"github.com/kshecodes/image-service/internal/dto"
)

func (r *V1) createPresignedUpload(ctx *fiber.Ctx) error {
	var body request.PresignUpload

	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	out, err := r.img.CreatePresignedUpload(ctx.UserContext(), body.ToDTO())
	if err != nil {
		return r.failure(ctx, "createPresignedUpload", err)
	}

	return ctx.Status(http.StatusCreated).JSON(response.PresignedUpload{
		ImageID:   out.ImageID,
		UploadURL: out.UploadURL,
		ObjectKey: out.ObjectKey,
		ExpiresIn: out.ExpiresIn,
	})
}

// uploadImage takes a multipart form: user_id, content_type, optional title,
// description and comma-joined tags, plus the file part.
func (r *V1) uploadImage(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "multipart form is required")
	}

	files := form.File["file"]
	if len(files) == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "file is required")
	}

	file, err := files[0].Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer file.Close()

	out, err := r.img.UploadDirect(ctx.UserContext(), dto.DirectUpload{
		UserID:      formValue(form, "user_id"),
		ContentType: formValue(form, "content_type"),
		Title:       optionalFormValue(form, "title"),
		Description: optionalFormValue(form, "description"),
		Tags:        formValue(form, "tags"),
		Body:        file,
		Size:        files[0].Size,
	})
	if err != nil {
		return r.failure(ctx, "uploadImage", err)
	}

	return ctx.Status(http.StatusCreated).JSON(response.UploadedImage{
		ImageID:   out.ImageID,
		ObjectKey: out.ObjectKey,
	})
}

// listImages returns one page, newest first. limit defaults to 50.
func (r *V1) listImages(ctx *fiber.Ctx) error {
	limit := dto.DefaultListLimit

	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	page, err := r.img.ListImages(ctx.UserContext(), dto.ListImages{
		UserID:      ctx.Query("user_id"),
		Tag:         ctx.Query("tag"),
		CreatedFrom: ctx.Query("created_from"),
		CreatedTo:   ctx.Query("created_to"),
		Limit:       limit,
		PageToken:   ctx.Query("next_token"),
	})
	if err != nil {
		return r.failure(ctx, "listImages", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.NewImageList(page.Items, page.NextToken))
}

func (r *V1) getImage(ctx *fiber.Ctx) error {
	view, err := r.img.GetImage(ctx.UserContext(), ctx.Params("image_id"))
	if err != nil {
		return r.failure(ctx, "getImage", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.Image{
		ImageID:     view.ImageID,
		DownloadURL: view.DownloadURL,
		ExpiresIn:   view.ExpiresIn,
		Metadata:    response.NewImageMetadata(view.Image),
	})
}

func (r *V1) deleteImage(ctx *fiber.Ctx) error {
	err := r.img.DeleteImage(ctx.UserContext(), ctx.Params("image_id"))
	if err != nil {
		return r.failure(ctx, "deleteImage", err)
	}

	return ctx.SendStatus(http.StatusNoContent)
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}

	return ""
}

// optionalFormValue tells an absent field (nil) from an empty one.
func optionalFormValue(form *multipart.Form, key string) *string {
	values := form.Value[key]
	if len(values) == 0 {
		return nil
	}

	return &values[0]
}
