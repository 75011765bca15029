package controllers

import "github.com/gin-gonic/gin"

// ErrNoPermission dipakai saat role user tidak berhak melakukan aksi.
var ErrNoPermission = &CustomError{"You do not have permission"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// currentUserID mengambil identitas user dari context yang diisi
// auth middleware. ok = false untuk request tanpa identitas (guest).
func currentUserID(c *gin.Context) (uint, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := idVal.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func currentRole(c *gin.Context) string {
	roleVal, _ := c.Get("role")
	role, _ := roleVal.(string)
	return role
}
