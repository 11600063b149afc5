package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	dto "akademiku_backend/internals/features/users/user/dto"
	model "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Whitelist ORDER BY (aman)
var userSortable = map[string]string{
	"created_at": "users_created_at",
	"first_name": "users_first_name",
	"last_name":  "users_last_name",
	"document":   "users_document_number",
	"email":      "users_email",
	"role":       "users_role",
	"last_login": "users_last_login_at",
}

/* ===================== ADMIN ===================== */

// GET /api/a/users
func (uc *UserController) List(c *fiber.Ctx) error {
	var q dto.ListUsersQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	orderClause, err := p.SafeOrderClause(userSortable, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sort_by no es válido")
	}
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	tx := uc.DB.Model(&model.UserModel{})

	if q.Role != nil && strings.TrimSpace(*q.Role) != "" {
		role, err := constants.ParseRole(*q.Role)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Rol no reconocido")
		}
		tx = tx.Where("users_role = ?", role)
	}
	if q.IsActive != nil {
		tx = tx.Where("users_is_active = ?", *q.IsActive)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where(
			"users_document_number ILIKE ? OR users_first_name ILIKE ? OR users_last_name ILIKE ? OR users_email ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] contando usuarios:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los usuarios")
	}

	var users []model.UserModel
	if err := tx.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		log.Println("[ERROR] listando usuarios:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar los usuarios")
	}

	return helper.Success(c, "Usuarios obtenidos", fiber.Map{
		"items":      dto.NewUserResponses(users),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/a/users/:id
func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "users_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.Success(c, "Usuario obtenido", dto.NewUserResponse(&user))
}

// PUT /api/a/users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}
	return uc.updateUser(c, id, true)
}

// DELETE /api/a/users/:id
// Desactivación: marca inactivo y aplica soft delete. No borra filas.
func (uc *UserController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if callerID == id {
		return helper.Error(c, fiber.StatusBadRequest, "No puedes desactivar tu propia cuenta")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "users_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).UpdateColumn("users_is_active", false).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		log.Println("[ERROR] desactivando usuario:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo desactivar el usuario")
	}

	return helper.Success(c, "Usuario desactivado correctamente", fiber.Map{
		"users_id": id,
	})
}

// POST /api/a/users/:id/photo
func (uc *UserController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}
	return uc.savePhoto(c, id)
}

/* ===================== SELF ===================== */

// PUT /api/u/users/me
func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return uc.updateUser(c, userID, false)
}

// POST /api/u/users/me/photo
func (uc *UserController) UploadMyPhoto(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return uc.savePhoto(c, userID)
}

/* ===================== INTERNOS ===================== */

func (uc *UserController) updateUser(c *fiber.Ctx, id uuid.UUID, asAdmin bool) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "users_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	req.ApplyToModel(&user)

	// Rol y estado solo los toca un administrador.
	if asAdmin {
		if req.UsersRole != nil {
			role, err := constants.ParseRole(*req.UsersRole)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "Rol no reconocido")
			}
			user.UsersRole = role
		}
		if req.UsersIsActive != nil {
			user.UsersIsActive = *req.UsersIsActive
		}
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "El documento o el correo ya está registrado")
		}
		log.Println("[ERROR] actualizando usuario:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario")
	}

	return helper.Success(c, "Usuario actualizado correctamente", dto.NewUserResponse(&user))
}

func (uc *UserController) savePhoto(c *fiber.Ctx, id uuid.UUID) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Debe adjuntar una imagen en el campo 'photo'")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "users_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	rel, err := helper.ProcessProfilePhoto("perfiles", fh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	oldPhoto := user.UsersPhotoURL
	now := time.Now()
	if err := uc.DB.Model(&user).UpdateColumns(map[string]interface{}{
		"users_photo_url":  rel,
		"users_updated_at": now,
	}).Error; err != nil {
		// la imagen ya quedó en disco; evitar huérfanos
		_ = helper.RemoveBlob(rel)
		log.Println("[ERROR] guardando foto de perfil:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar la foto de perfil")
	}

	if oldPhoto != nil {
		_ = helper.RemoveBlob(*oldPhoto)
	}

	user.UsersPhotoURL = &rel
	user.UsersUpdatedAt = now
	return helper.Success(c, "Foto de perfil actualizada", dto.NewUserResponse(&user))
}
