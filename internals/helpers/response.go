package helper

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

/* =========================================================
 * Wire format API (kontrak lama, jangan diubah):
 * - error   : {"error": "...", "message": "..."}
 * - list    : {"content": [...], "total_elements": n}
 * ========================================================= */

// JSON mengirim payload apa adanya dengan status code tertentu.
func JSON(c *fiber.Ctx, code int, payload interface{}) error {
	return c.Status(code).JSON(payload)
}

// List membungkus hasil listing sesuai kontrak lama.
func List(c *fiber.Ctx, content interface{}, total int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"content":        content,
		"total_elements": total,
	})
}

// ValidationError → 422. Kesalahan klien, bukan fault server: jangan di-log
// sebagai error.
func ValidationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":   "validation_error",
		"message": message,
	})
}

// BadRequest → 400 untuk payload yang bentuknya tidak dikenal.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "bad request",
		"message": message,
	})
}

// NotFound → 404.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "not found",
	})
}

// Unauthorized → 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "unauthorized",
		"message": message,
	})
}

// InternalError → 500. Fault server: selalu di-log.
func InternalError(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] internal server error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
