package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-Id"
	sessionLocal  = "session_id"
)

// SessionMiddleware makes every request carry a session id. Clients echo back the
// X-Session-Id response header; websocket clients, which cannot set headers, pass
// it as the session_id query parameter.
func SessionMiddleware(ctx *fiber.Ctx) error {
	id := ctx.Get(SessionHeader)
	if id == "" {
		id = ctx.Query(sessionLocal)
	}
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	ctx.Locals(sessionLocal, id)
	ctx.Set(SessionHeader, id)
	return ctx.Next()
}

func SessionID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(sessionLocal).(string)
	return id
}
