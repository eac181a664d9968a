package repository

import "github.com/tu-usuario/banking-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List() ([]*entity.User, error)
	// Search busca por nombre, apellido, documento o email (substring,
	// insensible a mayúsculas y acentos; el normalizador vive en application).
	Search(query string) ([]*entity.User, error)
	// ExistsByEmail / ExistsByDocument: predicados de unicidad tipados.
	// excludeID excluye un registro (para updates); vacío = sin exclusión.
	ExistsByEmail(email, excludeID string) (bool, error)
	ExistsByDocument(document, excludeID string) (bool, error)
}
