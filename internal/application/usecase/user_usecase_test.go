package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/banking-api/internal/application/dto"
	"github.com/tu-usuario/banking-api/internal/application/usecase"
	"github.com/tu-usuario/banking-api/internal/domain"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
)

func validUserRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "José",
		Lastname: "Silva",
		Document: "12345678901",
		Phone:    "+55 11 99999-0000",
		Email:    "jose@example.com",
		Password: "secreto-muy-largo",
	}
}

// Caso 1: registro válido persiste el usuario con la password hasheada.
func TestUserCreate_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	id, err := uc.Create(validUserRequest())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored := repo.users[id]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto-muy-largo", stored.PasswordHash,
		"la password nunca se guarda en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("secreto-muy-largo")))
}

// Caso 2: email duplicado.
func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(validUserRequest())
	require.NoError(t, err)

	in := validUserRequest()
	in.Document = "99999999999" // documento distinto, email igual
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

// Caso 3: documento (CPF) duplicado.
func TestUserCreate_DocumentoDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(validUserRequest())
	require.NoError(t, err)

	in := validUserRequest()
	in.Email = "otro@example.com" // email distinto, documento igual
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDocumentExists)
}

// Caso 4: campos obligatorios vacíos.
func TestUserCreate_EntradaInvalida(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	in := validUserRequest()
	in.Email = ""
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 5: update conserva la unicidad pero se excluye a sí mismo, así que
// re-enviar el propio email no es conflicto.
func TestUserUpdate_ExcluyeAlPropioRegistro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	id, err := uc.Create(validUserRequest())
	require.NoError(t, err)

	otro := validUserRequest()
	otro.Email = "otro@example.com"
	otro.Document = "99999999999"
	otroID, err := uc.Create(otro)
	require.NoError(t, err)

	// El propio email no conflictúa.
	err = uc.Update(id, dto.UpdateUserRequest{Email: "jose@example.com", Name: "Joselito"})
	require.NoError(t, err)
	assert.Equal(t, "Joselito", repo.users[id].Name)

	// El email del otro usuario sí.
	err = uc.Update(id, dto.UpdateUserRequest{Email: "otro@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	// Y el documento del otro también.
	err = uc.Update(id, dto.UpdateUserRequest{Document: repo.users[otroID].Document})
	assert.ErrorIs(t, err, domain.ErrDocumentExists)
}

// Caso 6: update y delete de un usuario inexistente.
func TestUserUpdateDelete_NoExiste(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	err := uc.Update("no-existe", dto.UpdateUserRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Caso 7: la búsqueda normaliza acentos y mayúsculas antes de consultar.
func TestUserSearch_NormalizaElTermino(t *testing.T) {
	now := time.Now()
	repo := newFakeUserRepo(&entity.User{
		ID: "u1", Name: "jose", Lastname: "silva",
		Document: "123", Email: "jose@example.com",
		CreatedAt: now, UpdatedAt: now,
	})
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Search("  JOSÉ ")
	require.NoError(t, err)
	require.Len(t, out, 1, "JOSÉ debe encontrar a jose")
	assert.Equal(t, "u1", out[0].ID)
}
