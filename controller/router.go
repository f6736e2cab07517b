package controller

import (
	"time"

	"clubdesk/auth"
	"clubdesk/repository"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method              string
	Path                string
	HandlerFunc         gin.HandlerFunc
	Authenticated       bool
	RequiredPermissions []repository.Permission
	Cached              bool
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupEventController(db)...)
	routes = append(routes, setupBookingController(db)...)
	routes = append(routes, setupMemberController(db)...)
	routes = append(routes, setupActivityController(db)...)
	routes = append(routes, setupBatchController(db)...)
	routes = append(routes, setupHallController(db)...)
	routes = append(routes, setupStaffController(db)...)
	routes = append(routes, setupStreamController()...)
	api := r.Group("/api")
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredPermissions))
		}
		if route.Cached {
			handlerfuncs = append(handlerfuncs, cache.CachePage(cacheStore, 60*time.Second, route.HandlerFunc))
		} else {
			handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		}
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func AuthMiddleware(permissions []repository.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCookie, err := c.Cookie("auth")
		if err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		token, err := auth.ParseToken(authCookie)
		if err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		if !token.Valid {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		if len(permissions) == 0 {
			c.Next()
			return
		}

		for _, requiredPermission := range permissions {
			if claims.HasPermission(requiredPermission) {
				c.Next()
				return
			}
		}
		c.JSON(403, gin.H{"error": "Unauthorized"})
		c.Abort()
	}
}
