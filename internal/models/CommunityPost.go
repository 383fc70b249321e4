package models

import "gorm.io/gorm"

type CommunityPost struct {
	gorm.Model
	Content   string        `json:"content"`
	CreatedBy uint          `json:"created_by" gorm:"index"`
	Creator   User          `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Images    []PostImage   `json:"images,omitempty"`
	Likes     []PostLike    `json:"likes,omitempty"`
	Comments  []PostComment `json:"comments,omitempty"`
}

type PostImage struct {
	gorm.Model
	CommunityPostID uint   `json:"community_post_id" gorm:"index"`
	URL             string `json:"url"`
	FileName        string `json:"file_name"`
}

type PostLike struct {
	gorm.Model
	CommunityPostID uint `json:"community_post_id" gorm:"index"`
	UserID          uint `json:"user_id" gorm:"index"`
}

type PostComment struct {
	gorm.Model
	CommunityPostID uint   `json:"community_post_id" gorm:"index"`
	Content         string `json:"content"`
	CreatedBy       uint   `json:"created_by"`
	Creator         User   `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}
