package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"equiprent/internal/domain"
	jwtsvc "equiprent/internal/pkg/jwt"
	"equiprent/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer for the rest of the API; the
	// feed carries no sensitive payload beyond what GET /bookings exposes.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed/bookings", h.Subscribe)
}

// Subscribe upgrades the connection and streams booking events until the
// client goes away. Websocket clients cannot set headers, so the token
// arrives as a query parameter.
func (h *Handler) Subscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Token is required")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid token")
		return
	}
	if !domain.ParseRole(claims.Role).AtLeast(domain.RoleEquipmentManager) {
		response.Error(c, http.StatusForbidden, response.CodePermissionDenied, "Manager access required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	// Reads are discarded; the feed is one-way. The loop ends when the
	// client closes the connection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
