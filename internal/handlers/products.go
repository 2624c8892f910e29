package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vaughan-dsouza/shoply/internal/models"
	"github.com/vaughan-dsouza/shoply/internal/store"
	"github.com/vaughan-dsouza/shoply/internal/utils"
)

const maxUploadSize = 32 << 20

type ProductHandler struct {
	Products  store.ProductStore
	UploadDir string
	Log       zerolog.Logger
}

func NewProductHandler(d Deps) *ProductHandler {
	return &ProductHandler{Products: d.Products, UploadDir: d.UploadDir, Log: d.Log}
}

// ---------------------- CREATE ----------------------

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	product := &models.Product{}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid form data"})
			return
		}

		product.Name = r.FormValue("name")
		product.Description = r.FormValue("description")
		product.Category = r.FormValue("category")
		product.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)

		image, err := h.saveUpload(r)
		if err != nil {
			h.productError(w, err)
			return
		}
		product.Image = image
	} else {
		var body struct {
			Name        string  `json:"name"`
			Description string  `json:"description"`
			Price       float64 `json:"price"`
			Category    string  `json:"category"`
		}
		if err := utils.DecodeJSON(w, r, &body); err != nil {
			return
		}
		product.Name = body.Name
		product.Description = body.Description
		product.Price = body.Price
		product.Category = body.Category
	}

	if err := h.Products.Create(r.Context(), product); err != nil {
		h.productError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{"product": product})
}

// ---------------------- LIST ----------------------

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context())
	if err != nil {
		h.productError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, products)
}

// ---------------------- UPDATE ----------------------

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	product, err := h.Products.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSON(w, http.StatusNotFound, map[string]string{"msg": "Product not found"})
		return
	}
	if err != nil {
		h.productError(w, err)
		return
	}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.JSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid form data"})
			return
		}

		if v, ok := formValue(r, "name"); ok {
			product.Name = v
		}
		if v, ok := formValue(r, "description"); ok {
			product.Description = v
		}
		if v, ok := formValue(r, "category"); ok {
			product.Category = v
		}
		if v, ok := formValue(r, "price"); ok {
			product.Price, _ = strconv.ParseFloat(v, 64)
		}

		image, err := h.saveUpload(r)
		if err != nil {
			h.productError(w, err)
			return
		}
		if image != "" {
			product.Image = image
		}
	} else {
		var body struct {
			Name        *string  `json:"name"`
			Description *string  `json:"description"`
			Price       *float64 `json:"price"`
			Category    *string  `json:"category"`
		}
		if err := utils.DecodeJSON(w, r, &body); err != nil {
			return
		}

		if body.Name != nil {
			product.Name = *body.Name
		}
		if body.Description != nil {
			product.Description = *body.Description
		}
		if body.Price != nil {
			product.Price = *body.Price
		}
		if body.Category != nil {
			product.Category = *body.Category
		}
	}

	if err := h.Products.Update(r.Context(), product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, map[string]string{"msg": "Product not found"})
			return
		}
		h.productError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"product": product})
}

// ---------------------- DELETE ----------------------

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	if err := h.Products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, map[string]string{"msg": "Product not found"})
			return
		}
		h.productError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"msg": "Product deleted successfully"})
}

// ---------------------- helpers ----------------------

func (h *ProductHandler) productError(w http.ResponseWriter, err error) {
	h.Log.Error().Err(err).Msg("product operation failed")
	utils.JSON(w, http.StatusInternalServerError, map[string]string{"msg": "Server error"})
}

// saveUpload stores the "image" form file under a fresh name and returns
// its public path, or "" when no file was attached.
func (h *ProductHandler) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	return h.writeFile(file, header)
}

func (h *ProductHandler) writeFile(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + filepath.Ext(header.Filename)

	dst, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals := r.MultipartForm.Value[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
