package model

import (
	"time"

	"gorm.io/datatypes"

	"peertest/internal/pkg/git/api"
)

// User 本地用户模型
// GitlabUserToken 落库前用AES加密, 读出后解密再进入编排层
type User struct {
	BaseModel
	Username        string                                 `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password        string                                 `gorm:"size:255;not null" json:"-"` // 不返回到前端
	Email           string                                 `gorm:"size:100;not null;uniqueIndex" json:"email"`
	GitlabID        int                                    `gorm:"index" json:"gitlabid"`
	GitlabURL       string                                 `gorm:"size:255;not null" json:"gitlaburl"`
	GitlabUserToken string                                 `gorm:"size:512;not null" json:"-"` // AES加密存储
	FirstName       *string                                `gorm:"size:240" json:"first_name"`
	LastName        *string                                `gorm:"size:255" json:"last_name"`
	AvatarURL       *string                                `gorm:"size:255" json:"avatar_url"`
	WebURL          *string                                `gorm:"size:255" json:"web_url"`
	State           *string                                `gorm:"size:200" json:"state"`
	PhoneNumber     *string                                `gorm:"size:200" json:"phonenumber"`
	IsActive        bool                                   `gorm:"not null;default:0" json:"is_active"`
	IsStaff         bool                                   `gorm:"not null;default:0" json:"is_staff"`
	Groups          datatypes.JSONType[[]api.GroupSummary] `json:"groups"`
	LastLoginAt     *time.Time                             `json:"last_login_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
