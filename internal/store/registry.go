package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pequelandia/agendita/internal/models"
)

// Roster records (peques, maestros, productos) are soft-deleted: listings
// filter on active and "delete" flips the flag. Display names must be unique
// among active records only, so a deactivated record's name can be reused.

func ListActivePeques(gdb *gorm.DB) ([]models.Peque, error) {
	var out []models.Peque
	err := gdb.Where("active = ?", true).Order("name ASC").Find(&out).Error
	return out, err
}

func FindPequeByID(gdb *gorm.DB, id string) (models.Peque, error) {
	var p models.Peque
	if err := gdb.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Peque{}, ErrNotFound
		}
		return models.Peque{}, err
	}
	return p, nil
}

func CreatePeque(gdb *gorm.DB, p *models.Peque) error {
	taken, err := activeNameTaken(gdb, &models.Peque{}, p.Name, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	p.ID = NewID()
	p.Active = true
	return translate(gdb.Create(p).Error)
}

func UpdatePeque(gdb *gorm.DB, p *models.Peque) error {
	taken, err := activeNameTaken(gdb, &models.Peque{}, p.Name, p.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	res := gdb.Model(&models.Peque{}).Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at", "active").Updates(p)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeactivatePeque(gdb *gorm.DB, id string) error {
	return deactivate(gdb, &models.Peque{}, id)
}

func ListActiveMaestros(gdb *gorm.DB) ([]models.Maestro, error) {
	var out []models.Maestro
	err := gdb.Where("active = ?", true).Order("name ASC").Find(&out).Error
	return out, err
}

func FindMaestroByID(gdb *gorm.DB, id string) (models.Maestro, error) {
	var m models.Maestro
	if err := gdb.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Maestro{}, ErrNotFound
		}
		return models.Maestro{}, err
	}
	return m, nil
}

func CreateMaestro(gdb *gorm.DB, m *models.Maestro) error {
	taken, err := activeNameTaken(gdb, &models.Maestro{}, m.Name, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	m.ID = NewID()
	m.Active = true
	return translate(gdb.Create(m).Error)
}

func UpdateMaestro(gdb *gorm.DB, m *models.Maestro) error {
	taken, err := activeNameTaken(gdb, &models.Maestro{}, m.Name, m.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	res := gdb.Model(&models.Maestro{}).Where("id = ?", m.ID).
		Select("*").Omit("id", "created_at", "active").Updates(m)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeactivateMaestro(gdb *gorm.DB, id string) error {
	return deactivate(gdb, &models.Maestro{}, id)
}

func ListActiveProductos(gdb *gorm.DB) ([]models.Producto, error) {
	var out []models.Producto
	err := gdb.Where("active = ?", true).Order("name ASC").Find(&out).Error
	return out, err
}

func FindProductoByID(gdb *gorm.DB, id string) (models.Producto, error) {
	var p models.Producto
	if err := gdb.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Producto{}, ErrNotFound
		}
		return models.Producto{}, err
	}
	return p, nil
}

func CreateProducto(gdb *gorm.DB, p *models.Producto) error {
	taken, err := activeNameTaken(gdb, &models.Producto{}, p.Name, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	p.ID = NewID()
	p.Active = true
	return translate(gdb.Create(p).Error)
}

func UpdateProducto(gdb *gorm.DB, p *models.Producto) error {
	taken, err := activeNameTaken(gdb, &models.Producto{}, p.Name, p.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	res := gdb.Model(&models.Producto{}).Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at", "active").Updates(p)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeactivateProducto(gdb *gorm.DB, id string) error {
	return deactivate(gdb, &models.Producto{}, id)
}

func CreateUser(gdb *gorm.DB, u *models.User) error {
	return translate(gdb.Create(u).Error)
}

func FindUserByUsername(gdb *gorm.DB, username string) (models.User, error) {
	var u models.User
	if err := gdb.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func activeNameTaken(gdb *gorm.DB, model any, name, excludeID string) (bool, error) {
	var n int64
	q := gdb.Model(model).Where("active = ? AND name = ?", true, name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func deactivate(gdb *gorm.DB, model any, id string) error {
	res := gdb.Model(model).Where("id = ? AND active = ?", id, true).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
