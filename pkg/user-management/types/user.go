package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Account struct {
	Email       string `bson:"email" json:"email"`
	Password    string `bson:"password" json:"password,omitempty"`
	DisplayName string `bson:"displayName" json:"displayName"`
	IsAdmin     bool   `bson:"isAdmin" json:"isAdmin"`

	// Rate limiting
	FailedLoginAttempts []int64 `bson:"failedLoginAttempts" json:"-"`
}

type Timestamps struct {
	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
	LastLogin int64 `bson:"lastLogin" json:"lastLogin"`
}

type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Account    Account    `bson:"account" json:"account"`
	Timestamps Timestamps `bson:"timestamps" json:"timestamps"`
}
