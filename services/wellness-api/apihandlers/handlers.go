package apihandlers

import (
	"net/http"
	"time"

	"github.com/Lokeshwar-goud/Psyvana/pkg/assessment"
	"github.com/gin-gonic/gin"

	userDB "github.com/Lokeshwar-goud/Psyvana/pkg/db/user"
	wellnessDB "github.com/Lokeshwar-goud/Psyvana/pkg/db/wellness"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	wellnessDBConn        *wellnessDB.WellnessDBService
	userDBConn            *userDB.UserDBService
	tokenSignKey          string
	tokenExpiresIn        time.Duration
	maxNewUsersPer5Minute int
	sessions              *assessment.SessionStore
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	wellnessDBConn *wellnessDB.WellnessDBService,
	userDBConn *userDB.UserDBService,
	maxNewUsersPer5Minute int,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:          tokenSignKey,
		tokenExpiresIn:        tokenExpiresIn,
		wellnessDBConn:        wellnessDBConn,
		userDBConn:            userDBConn,
		maxNewUsersPer5Minute: maxNewUsersPer5Minute,
		sessions:              assessment.NewSessionStore(),
	}
}
