package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pequelandia/agendita/internal/db"
	"github.com/pequelandia/agendita/internal/models"
	"github.com/pequelandia/agendita/internal/store"
)

type productoRequest struct {
	Name            string  `json:"nombre" validate:"required"`
	Quantity        int     `json:"cantidad" validate:"min=0"`
	Price           float64 `json:"precio" validate:"required,gt=0"`
	Characteristics string  `json:"caracteristicas"`
}

func (req *productoRequest) check() (string, bool) {
	req.Name = strings.TrimSpace(req.Name)
	req.Characteristics = strings.TrimSpace(req.Characteristics)
	if err := validate.Struct(req); err != nil {
		return validationMessage(err), false
	}
	return "", true
}

// GET /api/productos
func ListProductos(w http.ResponseWriter, r *http.Request) {
	productos, err := store.ListActiveProductos(db.Conn())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productos)
}

// POST /api/productos
func CreateProducto(w http.ResponseWriter, r *http.Request) {
	var req productoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	if msg, ok := req.check(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	p := models.Producto{Name: req.Name, Quantity: req.Quantity, Price: req.Price, Characteristics: req.Characteristics}
	if err := store.CreateProducto(db.Conn(), &p); err != nil {
		if err == store.ErrConflict {
			writeError(w, http.StatusConflict, fmt.Sprintf("ya existe un producto con el nombre %q", p.Name))
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GET /api/productos/{id}
func GetProducto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	p, err := store.FindProductoByID(db.Conn(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PUT /api/productos/{id}
func UpdateProducto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	var req productoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	if msg, ok := req.check(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	p, err := store.FindProductoByID(db.Conn(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	p.Name, p.Quantity, p.Price, p.Characteristics = req.Name, req.Quantity, req.Price, req.Characteristics
	if err := store.UpdateProducto(db.Conn(), &p); err != nil {
		if err == store.ErrConflict {
			writeError(w, http.StatusConflict, fmt.Sprintf("ya existe un producto con el nombre %q", p.Name))
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DELETE /api/productos/{id} — soft delete.
func DeleteProducto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	if err := store.DeactivateProducto(db.Conn(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Producto eliminado correctamente"})
}
