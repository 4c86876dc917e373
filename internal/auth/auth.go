package auth

import (
	"net/http"
	"time"

	apperrors "pawnote_go_backend/internal/errors"
	"pawnote_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, petService services.PetServiceDB, tokenSecret string) {
	api := r.Group("/api")
	{
		api.POST("/access", accessHandler(petService, tokenSecret))
	}
}

// accessHandler grants dashboard access when the pet name and birth date
// match an existing pet. With a token secret configured, a signed access
// token for that pet is included in the response.
func accessHandler(petService services.PetServiceDB, tokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			PetName   string `json:"pet_name" binding:"required"`
			BirthDate string `json:"birth_date" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		pet, err := petService.FindPetByNameAndBirthDate(request.PetName, request.BirthDate)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.HandleError(c, apperrors.New404Error("Pet not found. Please check the name and birth date."))
				return
			}
			apperrors.HandleError(c, err)
			return
		}

		response := gin.H{
			"success": true,
			"pet":     pet,
		}
		if tokenSecret != "" {
			token, err := generateAccessToken(pet.ID, tokenSecret)
			if err != nil {
				apperrors.HandleError(c, err)
				return
			}
			response["token"] = token
		}
		c.JSON(http.StatusOK, response)
	}
}

func generateAccessToken(petID, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub": petID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
