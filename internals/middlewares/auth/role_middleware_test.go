package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newRoleTestApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		OnlyRoles("nope", allowed...),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func TestOnlyRoles(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"admin passes admin gate", "admin", []string{"admin"}, fiber.StatusOK},
		{"faculty passes combined gate", "faculty", []string{"faculty", "admin"}, fiber.StatusOK},
		{"student blocked from admin gate", "student", []string{"admin"}, fiber.StatusForbidden},
		{"unknown role blocked", "owner", []string{"admin", "faculty", "student"}, fiber.StatusForbidden},
		{"missing role is unauthorized", "", []string{"admin"}, fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newRoleTestApp(tc.role, tc.allowed...)
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
