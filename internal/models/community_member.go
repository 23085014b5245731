package models

import "time"

// CommunityMemberRole defines a member's role within a community.
type CommunityMemberRole string

const (
	// CommunityMemberRoleMember is the default member role.
	CommunityMemberRoleMember CommunityMemberRole = "member"
	// CommunityMemberRoleModerator can moderate community posts.
	CommunityMemberRoleModerator CommunityMemberRole = "moderator"
	// CommunityMemberRoleAdmin is granted to the community creator.
	CommunityMemberRoleAdmin CommunityMemberRole = "admin"
)

// CommunityMember maps users to communities and tracks role.
// CreatedAt doubles as the join timestamp.
type CommunityMember struct {
	CommunityID uint                `gorm:"primaryKey;autoIncrement:false" json:"community_id"`
	Community   *Community          `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
	UserID      uint                `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User        *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role        CommunityMemberRole `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt   time.Time           `json:"joined_at"`
	UpdatedAt   time.Time           `json:"-"`
}
