package store

import (
	"errors"
	"testing"

	"github.com/pequelandia/agendita/internal/models"
)

func TestCreateMaestro_DuplicateActiveName(t *testing.T) {
	gdb := openTestDB(t)

	m := models.Maestro{Name: "Ana", Age: "28", Phone: "5512345678"}
	if err := CreateMaestro(gdb, &m); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := models.Maestro{Name: "Ana", Age: "30", Phone: "5587654321"}
	if err := CreateMaestro(gdb, &dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate active name: want ErrConflict, got %v", err)
	}

	// After deactivation the name is free again.
	if err := DeactivateMaestro(gdb, m.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if err := CreateMaestro(gdb, &dup); err != nil {
		t.Fatalf("name of deactivated maestro should be reusable: %v", err)
	}
}

func TestDeactivate_SoftDeleteSemantics(t *testing.T) {
	gdb := openTestDB(t)

	p := models.Peque{Name: "Sofía"}
	if err := CreatePeque(gdb, &p); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := DeactivatePeque(gdb, p.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	// Not in the active listing, but the row is still there.
	active, err := ListActivePeques(gdb)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("deactivated peque still listed: %v", active)
	}
	if _, err := FindPequeByID(gdb, p.ID); err != nil {
		t.Errorf("deactivated peque must remain fetchable by id: %v", err)
	}

	// Repeat deactivation is not silent.
	if err := DeactivatePeque(gdb, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second deactivate: want ErrNotFound, got %v", err)
	}
}

func TestListActiveMaestros_SortedByName(t *testing.T) {
	gdb := openTestDB(t)
	for _, name := range []string{"Carla", "Ana", "Beatriz"} {
		m := models.Maestro{Name: name}
		if err := CreateMaestro(gdb, &m); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	out, err := ListActiveMaestros(gdb)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Ana", "Beatriz", "Carla"}
	for i, w := range want {
		if out[i].Name != w {
			t.Errorf("pos %d: want %s, got %s", i, w, out[i].Name)
		}
	}
}

func TestUpdateProducto_KeepsOwnName(t *testing.T) {
	gdb := openTestDB(t)

	p := models.Producto{Name: "Pañales", Quantity: 10, Price: 150}
	if err := CreateProducto(gdb, &p); err != nil {
		t.Fatalf("create: %v", err)
	}

	p.Quantity = 8
	if err := UpdateProducto(gdb, &p); err != nil {
		t.Fatalf("update keeping same name must not self-conflict: %v", err)
	}

	got, err := FindProductoByID(gdb, p.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Quantity != 8 {
		t.Errorf("quantity: want 8, got %d", got.Quantity)
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	gdb := openTestDB(t)

	u := models.User{ID: NewID(), Username: "direccion", PasswordHash: "x", Role: "admin"}
	if err := CreateUser(gdb, &u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	dup := models.User{ID: NewID(), Username: "direccion", PasswordHash: "y", Role: "user"}
	if err := CreateUser(gdb, &dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate username: want ErrConflict, got %v", err)
	}
}
