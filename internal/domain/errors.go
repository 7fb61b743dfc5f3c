package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrCategoryImmutable = errors.New("la categoría no puede modificarse después de creado el producto")
	ErrPasswordMismatch  = errors.New("las contraseñas no coinciden")
	ErrSessionNotFound   = errors.New("sesión no encontrada o expirada")
	ErrCannotDeleteSelf  = errors.New("no es posible eliminar el propio usuario")
)
