package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios (titulares de cuentas).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registra un usuario nuevo y devuelve su ID.
// Errores: ErrInvalidInput, ErrEmailExists, ErrDocumentExists.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (string, error) {
	if in.Name == "" || in.Lastname == "" || in.Document == "" || in.Email == "" || in.Password == "" {
		return "", domain.ErrInvalidInput
	}
	exists, err := uc.repo.ExistsByEmail(in.Email, "")
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrEmailExists
	}
	exists, err = uc.repo.ExistsByDocument(in.Document, "")
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrDocumentExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Lastname:     in.Lastname,
		Document:     in.Document,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update actualiza los campos no vacíos de un usuario. Email y documento
// conservan su unicidad excluyendo al propio registro.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if in.Email != "" && in.Email != user.Email {
		exists, err := uc.repo.ExistsByEmail(in.Email, id)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrEmailExists
		}
		user.Email = in.Email
	}
	if in.Document != "" && in.Document != user.Document {
		exists, err := uc.repo.ExistsByDocument(in.Document, id)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDocumentExists
		}
		user.Document = in.Document
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Lastname != "" {
		user.Lastname = in.Lastname
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// Delete elimina un usuario; sus cuentas y transacciones caen en cascada.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Search busca usuarios por texto libre (nombre, apellido, documento o
// email). Un término vacío equivale a listar todo.
func (uc *UserUseCase) Search(query string) ([]dto.UserResponse, error) {
	q := normalizeQuery(query)
	if q == "" {
		return uc.List()
	}
	users, err := uc.repo.Search(q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}
