package middleware

import (
	"net/http"
	"os"
	"strings"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	UserTypeEmployee = "employee"
	UserTypeVendor   = "vendor"

	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates JWT token
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Check Bearer prefix
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Parse token
		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Get claims
		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		// Check the account still exists
		switch claims.UserType {
		case UserTypeVendor:
			var vendor models.Vendor
			if err := config.DB.Where("id = ?", claims.UserID).First(&vendor).Error; err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Vendor not found"})
				c.Abort()
				return
			}
		default:
			var employee models.Employee
			if err := config.DB.Where("id = ?", claims.UserID).First(&employee).Error; err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Employee not found"})
				c.Abort()
				return
			}
		}

		// Set user info in context
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("userType", claims.UserType)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireEmployee allows only employee accounts
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("userType")
		if !exists || userType.(string) != UserTypeEmployee {
			c.JSON(http.StatusForbidden, gin.H{"error": "Employee access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireVendor allows only vendor accounts
func RequireVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("userType")
		if !exists || userType.(string) != UserTypeVendor {
			c.JSON(http.StatusForbidden, gin.H{"error": "Vendor access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin allows admin and superadmin employees
func RequireAdmin() gin.HandlerFunc {
	return requireRole(RoleAdmin, RoleSuperadmin)
}

// RequireSuperadmin allows only superadmin employees
func RequireSuperadmin() gin.HandlerFunc {
	return requireRole(RoleSuperadmin)
}

func requireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("userType")
		if !exists || userType.(string) != UserTypeEmployee {
			c.JSON(http.StatusForbidden, gin.H{"error": "Employee access required"})
			c.Abort()
			return
		}

		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found"})
			c.Abort()
			return
		}

		userRole := strings.ToLower(role.(string))
		allowed := false
		for _, r := range roles {
			if userRole == r {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
